package handlers_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/feed"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/portfolio"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/testutil"
)

// newFeedService builds a feed service refreshed once against the given
// stub server, mirroring the initial page load.
func newFeedService(t *testing.T, fs *testutil.FeedServer) *feed.Service {
	t.Helper()
	svc := feed.NewService(feed.NewClient(fs.URL))
	_ = svc.Refresh(context.Background())
	return svc
}

// newPortfolioService builds a portfolio service over a fresh file store.
func newPortfolioService(t *testing.T) *portfolio.Service {
	t.Helper()
	store := portfolio.NewFileStore(filepath.Join(t.TempDir(), "portfolio.json"))
	svc, err := portfolio.NewService(store)
	if err != nil {
		t.Fatalf("Failed to create portfolio service: %v", err)
	}
	return svc
}

// marketStocks is a three-row stocks document used across handler tests:
// two banks and one row with blank metrics.
const marketStocks = `{
	"updated_at": "2025-08-29T18:00:00+00:00",
	"bsi": 1108.4,
	"stocks": [
		{"symbol": "BNBL", "name": "Bhutan National Bank", "price": 38.5, "change_pct": 1.2, "pe_ratio": 10.1, "volume": 1200, "market_cap": 2100000000},
		{"symbol": "TBL", "name": "T-Bank", "price": 21.0, "change_pct": -0.4, "pe_ratio": 8.2, "volume": 300, "market_cap": 900000000},
		{"symbol": "PCAL", "name": "Penden Cement", "price": null, "change_pct": null, "pe_ratio": null, "volume": null, "market_cap": null}
	]
}`
