package portfolio_test

import (
	"errors"
	"os"
	"testing"

	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/api/request"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/apperrors"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/model"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/portfolio"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/testutil"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/validation"
)

func newService(t *testing.T, path string) *portfolio.Service {
	t.Helper()
	svc, err := portfolio.NewService(portfolio.NewFileStore(path))
	if err != nil {
		t.Fatalf("Failed to create portfolio service: %v", err)
	}
	return svc
}

// TestAddHolding tests validated append with write-through persistence.
//
// WHY: The add form is the only write path into the ledger; an invalid
// submission must change nothing anywhere, and a valid one must survive a
// process restart.
func TestAddHolding(t *testing.T) {
	t.Run("valid holding persists and survives reload", func(t *testing.T) {
		path := tempStorePath(t)
		svc := newService(t, path)

		err := svc.AddHolding(request.AddHoldingRequest{Symbol: "BNBL", Shares: 100, BuyPrice: 32.5})
		if err != nil {
			t.Fatalf("AddHolding failed: %v", err)
		}
		err = svc.AddHolding(request.AddHoldingRequest{Symbol: "RICB", Shares: 40, BuyPrice: 81})
		if err != nil {
			t.Fatalf("AddHolding failed: %v", err)
		}

		// A fresh service over the same store models a page reload.
		reloaded := newService(t, path)
		holdings := reloaded.Holdings()
		if len(holdings) != 2 {
			t.Fatalf("Expected 2 holdings after reload, got %d", len(holdings))
		}
		if holdings[0].Symbol != "BNBL" || holdings[1].Symbol != "RICB" {
			t.Errorf("Expected order preserved, got %+v", holdings)
		}
	})

	t.Run("negative shares are rejected without persisting", func(t *testing.T) {
		path := tempStorePath(t)
		svc := newService(t, path)

		err := svc.AddHolding(request.AddHoldingRequest{Symbol: "BNBL", Shares: -5, BuyPrice: 32.5})

		var validationErr *validation.Error
		if !errors.As(err, &validationErr) {
			t.Fatalf("Expected validation error, got %v", err)
		}
		if _, ok := validationErr.Fields["shares"]; !ok {
			t.Errorf("Expected a shares field error, got %v", validationErr.Fields)
		}
		if len(svc.Holdings()) != 0 {
			t.Errorf("Expected holding list unchanged")
		}
		// No persistence write may occur on rejection.
		if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Expected no store file after rejected add")
		}
	})

	t.Run("empty symbol and zero buy price are rejected", func(t *testing.T) {
		svc := newService(t, tempStorePath(t))

		err := svc.AddHolding(request.AddHoldingRequest{Symbol: "  ", Shares: 1, BuyPrice: 0})

		var validationErr *validation.Error
		if !errors.As(err, &validationErr) {
			t.Fatalf("Expected validation error, got %v", err)
		}
		if len(validationErr.Fields) != 2 {
			t.Errorf("Expected symbol and buyPrice errors, got %v", validationErr.Fields)
		}
	})
}

// TestRemoveHolding tests removal by position.
func TestRemoveHolding(t *testing.T) {
	path := tempStorePath(t)
	svc := newService(t, path)
	for _, symbol := range []string{"BNBL", "RICB", "PCAL"} {
		if err := svc.AddHolding(request.AddHoldingRequest{Symbol: symbol, Shares: 10, BuyPrice: 50}); err != nil {
			t.Fatalf("AddHolding failed: %v", err)
		}
	}

	t.Run("removes by index and persists", func(t *testing.T) {
		if err := svc.RemoveHolding(1); err != nil {
			t.Fatalf("RemoveHolding failed: %v", err)
		}

		holdings := newService(t, path).Holdings()
		if len(holdings) != 2 {
			t.Fatalf("Expected 2 holdings after reload, got %d", len(holdings))
		}
		if holdings[0].Symbol != "BNBL" || holdings[1].Symbol != "PCAL" {
			t.Errorf("Expected RICB removed, got %+v", holdings)
		}
	})

	t.Run("out-of-range index is rejected", func(t *testing.T) {
		for _, index := range []int{-1, 2, 99} {
			if err := svc.RemoveHolding(index); !errors.Is(err, apperrors.ErrHoldingIndexOutOfRange) {
				t.Errorf("Expected out-of-range error for index %d, got %v", index, err)
			}
		}
		if len(svc.Holdings()) != 2 {
			t.Errorf("Expected holding list unchanged by rejected removals")
		}
	})
}

// TestValuation tests PnL derivation against the live security list.
//
// WHY: Valuation is recomputed on every render and must degrade per-row:
// a delisted symbol keeps contributing its invested amount to the totals
// while its current value renders as unavailable.
func TestValuation(t *testing.T) {
	securities := []model.Security{
		testutil.NewSecurity("BNBL").WithPrice(40).Build(),
		testutil.NewSecurity("RICB").WithoutPrice().Build(),
	}

	svc := newService(t, tempStorePath(t))
	mustAdd := func(symbol string, shares, buyPrice float64) {
		t.Helper()
		if err := svc.AddHolding(request.AddHoldingRequest{Symbol: symbol, Shares: shares, BuyPrice: buyPrice}); err != nil {
			t.Fatalf("AddHolding failed: %v", err)
		}
	}

	t.Run("empty portfolio values to zero with zero return", func(t *testing.T) {
		v := svc.Valuation(securities)
		if v.TotalInvested != 0 || v.TotalCurrent != 0 || v.TotalReturnPct != 0 {
			t.Errorf("Expected zero totals, got %+v", v)
		}
	})

	mustAdd("BNBL", 100, 32) // priced: invested 3200, current 4000
	mustAdd("RICB", 10, 80)  // no current price: invested 800
	mustAdd("GONE", 5, 20)   // not in security list: invested 100

	v := svc.Valuation(securities)

	t.Run("priced holding derives pnl and return", func(t *testing.T) {
		row := v.Rows[0]
		if row.Invested != 3200 {
			t.Errorf("Expected invested 3200, got %v", row.Invested)
		}
		if row.Current == nil || *row.Current != 4000 {
			t.Errorf("Expected current 4000, got %v", row.Current)
		}
		if row.PnL == nil || *row.PnL != 800 {
			t.Errorf("Expected pnl 800, got %v", row.PnL)
		}
		if row.ReturnPct == nil || *row.ReturnPct != 25 {
			t.Errorf("Expected return 25%%, got %v", row.ReturnPct)
		}
	})

	t.Run("unpriced holdings mark derived fields unavailable", func(t *testing.T) {
		for _, row := range v.Rows[1:] {
			if row.Current != nil || row.PnL != nil || row.ReturnPct != nil {
				t.Errorf("Expected unavailable valuation for %s, got %+v", row.Symbol, row)
			}
		}
	})

	t.Run("totals include invested for every holding", func(t *testing.T) {
		if v.TotalInvested != 3200+800+100 {
			t.Errorf("Expected total invested 4100, got %v", v.TotalInvested)
		}
		if v.TotalCurrent != 4000 {
			t.Errorf("Expected total current 4000 (priced holdings only), got %v", v.TotalCurrent)
		}
		if v.TotalPnL != 4000-4100 {
			t.Errorf("Expected total pnl -100, got %v", v.TotalPnL)
		}
	})
}
