// Package portfolio owns the user's holding ledger: an ordered list of
// positions persisted write-through behind a small store port, valued
// against the latest loaded prices on every read.
package portfolio

import "github.com/kwangdi/RSEBL-Tracker-Backend/internal/model"

// Store is the persistence port for the holding list. Implementations
// persist the whole ordered list as one document with last-writer-wins
// semantics; there is a single writer per deployment.
//
// Load must treat absent or corrupt persisted data as an empty list:
// a damaged store degrades to "no holdings", it never blocks startup.
type Store interface {
	Load() ([]model.Holding, error)
	Save(holdings []model.Holding) error
}
