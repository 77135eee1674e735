package portfolio

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/model"
)

// SQLiteStore persists the holding list in the holding table. The position
// column preserves list order, since the API contract identifies holdings
// by index. Row ids exist only to give the table a primary key.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a database-backed store. The schema must already
// be migrated (see the database package).
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Load reads the persisted holding list in position order.
func (s *SQLiteStore) Load() ([]model.Holding, error) {
	rows, err := s.db.Query(`
          SELECT symbol, shares, buy_price
          FROM holding
          ORDER BY position
      `)
	if err != nil {
		return nil, fmt.Errorf("failed to query holding table: %w", err)
	}
	defer rows.Close()

	holdings := []model.Holding{}

	for rows.Next() {
		var h model.Holding

		err := rows.Scan(
			&h.Symbol,
			&h.Shares,
			&h.BuyPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holding table results: %w", err)
		}

		holdings = append(holdings, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holding table: %w", err)
	}

	return holdings, nil
}

// Save replaces the persisted list with the given one in a single
// transaction, matching the store port's whole-document write-through
// semantics.
func (s *SQLiteStore) Save(holdings []model.Holding) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM holding`); err != nil {
		return fmt.Errorf("failed to clear holding table: %w", err)
	}

	for i, h := range holdings {
		_, err := tx.Exec(`
              INSERT INTO holding (id, position, symbol, shares, buy_price)
              VALUES (?, ?, ?, ?, ?)
          `, uuid.New().String(), i, h.Symbol, h.Shares, h.BuyPrice)
		if err != nil {
			return fmt.Errorf("failed to insert holding: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit holdings: %w", err)
	}

	return nil
}
