package portfolio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/model"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/portfolio"
)

func tempStorePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "portfolio.json")
}

// TestFileStore_RoundTrip tests persistence through the file port.
//
// WHY: The file document is the contract the original browser build kept
// in localStorage; a save followed by a fresh load must reproduce the
// same ordered list.
func TestFileStore_RoundTrip(t *testing.T) {
	path := tempStorePath(t)
	store := portfolio.NewFileStore(path)

	holdings := []model.Holding{
		{Symbol: "BNBL", Shares: 100, BuyPrice: 32.5},
		{Symbol: "RICB", Shares: 40, BuyPrice: 81},
	}
	if err := store.Save(holdings); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := portfolio.NewFileStore(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("Expected 2 holdings, got %d", len(loaded))
	}
	if loaded[0] != holdings[0] || loaded[1] != holdings[1] {
		t.Errorf("Round trip changed holdings: %+v", loaded)
	}
}

// TestFileStore_Degradation tests the intentional resilience rules.
func TestFileStore_Degradation(t *testing.T) {
	t.Run("missing file loads as empty list", func(t *testing.T) {
		loaded, err := portfolio.NewFileStore(tempStorePath(t)).Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if loaded == nil || len(loaded) != 0 {
			t.Errorf("Expected empty list, got %v", loaded)
		}
	})

	t.Run("corrupt file loads as empty list", func(t *testing.T) {
		path := tempStorePath(t)
		if err := os.WriteFile(path, []byte("{{{"), 0o644); err != nil {
			t.Fatalf("Failed to write corrupt file: %v", err)
		}

		loaded, err := portfolio.NewFileStore(path).Load()
		if err != nil {
			t.Fatalf("Expected corruption to degrade, got error: %v", err)
		}
		if len(loaded) != 0 {
			t.Errorf("Expected empty list from corrupt file, got %v", loaded)
		}
	})
}
