package portfolio

import (
	"fmt"
	"sync"

	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/api/request"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/apperrors"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/model"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/validation"
)

// Service handles holding ledger operations: validated append, removal by
// index, and valuation against the current security list. The in-memory
// list is authoritative between writes; every mutation persists
// write-through before it is acknowledged.
type Service struct {
	store Store

	mu       sync.Mutex
	holdings []model.Holding
}

// NewService creates a portfolio service loading the persisted ledger
// through the given store. Per the store contract, absent or corrupt data
// loads as an empty list rather than failing.
func NewService(store Store) (*Service, error) {
	holdings, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load portfolio: %w", err)
	}
	return &Service{store: store, holdings: holdings}, nil
}

// Holdings returns a copy of the current ordered holding list.
func (s *Service) Holdings() []model.Holding {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Holding, len(s.holdings))
	copy(out, s.holdings)
	return out
}

// AddHolding validates and appends a holding, persisting immediately.
// Validation failure leaves both memory and store untouched; a persist
// failure rolls the in-memory append back so memory and store never
// diverge.
func (s *Service) AddHolding(req request.AddHoldingRequest) error {
	if err := validation.ValidateAddHolding(req); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.holdings = append(s.holdings, model.Holding{
		Symbol:   req.Symbol,
		Shares:   req.Shares,
		BuyPrice: req.BuyPrice,
	})

	if err := s.store.Save(s.holdings); err != nil {
		s.holdings = s.holdings[:len(s.holdings)-1]
		return fmt.Errorf("%w: %v", apperrors.ErrFailedToPersistPortfolio, err)
	}

	return nil
}

// RemoveHolding removes the holding at the given position and persists
// immediately. An out-of-range index is rejected; the UI only renders
// remove controls for indices that exist.
func (s *Service) RemoveHolding(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.holdings) {
		return apperrors.ErrHoldingIndexOutOfRange
	}

	removed := s.holdings[index]
	s.holdings = append(s.holdings[:index], s.holdings[index+1:]...)

	if err := s.store.Save(s.holdings); err != nil {
		s.holdings = append(s.holdings[:index], append([]model.Holding{removed}, s.holdings[index:]...)...)
		return fmt.Errorf("%w: %v", apperrors.ErrFailedToPersistPortfolio, err)
	}

	return nil
}

// Valuation values every holding against the given security list. It is
// recomputed on every call and never cached: current prices change under
// the portfolio with each feed load.
//
// A holding whose symbol has no resolvable price (delisted, or the feed
// not loaded) gets nil current/pnl/return but still contributes its
// invested amount to the portfolio totals. Total current sums only priced
// holdings, and total return is 0 when total invested is 0.
func (s *Service) Valuation(securities []model.Security) model.PortfolioValuation {
	prices := make(map[string]float64, len(securities))
	for _, sec := range securities {
		if sec.Price != nil {
			prices[sec.Symbol] = *sec.Price
		}
	}

	holdings := s.Holdings()
	valuation := model.PortfolioValuation{
		Rows: make([]model.HoldingValuation, 0, len(holdings)),
	}

	for _, h := range holdings {
		row := model.HoldingValuation{
			Holding:  h,
			Invested: h.Shares * h.BuyPrice,
		}
		valuation.TotalInvested += row.Invested

		if price, ok := prices[h.Symbol]; ok {
			current := h.Shares * price
			pnl := current - row.Invested
			returnPct := pnl / row.Invested * 100

			row.Current = &current
			row.PnL = &pnl
			row.ReturnPct = &returnPct

			valuation.TotalCurrent += current
		}

		valuation.Rows = append(valuation.Rows, row)
	}

	// Portfolio totals derive from the two sums directly, like a single
	// holding would. Return stays 0 for an empty or zero-cost portfolio.
	valuation.TotalPnL = valuation.TotalCurrent - valuation.TotalInvested
	if valuation.TotalInvested > 0 {
		valuation.TotalReturnPct = valuation.TotalPnL / valuation.TotalInvested * 100
	}

	return valuation
}
