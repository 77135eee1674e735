package feed_test

import (
	"context"
	"testing"

	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/feed"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/testutil"
)

func refreshed(t *testing.T, fs *testutil.FeedServer) feed.Snapshot {
	t.Helper()
	svc := feed.NewService(feed.NewClient(fs.URL))
	_ = svc.Refresh(context.Background())
	return svc.Snapshot()
}

// TestRefresh_Normalization tests the loader boundary.
//
// WHY: The scraper publishes whatever the exchange site renders, including
// blank cells, comma-grouped strings, and rows with no symbol. Everything
// past the loader assumes well-typed, already-defaulted values, so the
// normalization has to happen here and only here.
func TestRefresh_Normalization(t *testing.T) {
	fs := testutil.NewFeedServer(t)
	fs.Stocks = `{
		"updated_at": "2025-08-29T18:00:00+00:00",
		"bsi": "1,108.40",
		"stocks": [
			{"symbol": "BNBL", "name": "Bhutan National Bank", "price": 38.5, "change_pct": null, "pe_ratio": "N/A", "volume": "1,200", "market_cap": 2100000000},
			{"symbol": "", "name": "Header Row"},
			{"symbol": "  ", "name": "Blank Symbol"},
			{"symbol": "RICB"}
		]
	}`

	snap := refreshed(t, fs)

	if snap.SecuritiesErr != nil {
		t.Fatalf("Unexpected securities error: %v", snap.SecuritiesErr)
	}
	if len(snap.Securities) != 2 {
		t.Fatalf("Expected symbol-less rows dropped, got %d securities", len(snap.Securities))
	}

	bnbl := snap.Securities[0]
	if bnbl.Price == nil || *bnbl.Price != 38.5 {
		t.Errorf("Expected price 38.5, got %v", bnbl.Price)
	}
	if bnbl.ChangePct != nil {
		t.Errorf("Expected null change_pct to stay nil, got %v", *bnbl.ChangePct)
	}
	if bnbl.PERatio != nil {
		t.Errorf("Expected unparseable pe_ratio to become nil, got %v", *bnbl.PERatio)
	}
	if bnbl.Volume == nil || *bnbl.Volume != 1200 {
		t.Errorf("Expected comma-grouped volume 1200, got %v", bnbl.Volume)
	}

	if snap.BSI == nil || *snap.BSI != 1108.40 {
		t.Errorf("Expected string BSI parsed to 1108.40, got %v", snap.BSI)
	}
	if snap.UpdatedAt == nil {
		t.Errorf("Expected updated_at parsed")
	}
}

// TestRefresh_PartialFailure tests independent settlement of the three
// documents.
//
// WHY: A broken stocks.json must degrade the table to an error state while
// the news section still renders; one bad scrape should never blank the
// whole page.
func TestRefresh_PartialFailure(t *testing.T) {
	t.Run("securities failure leaves news and history intact", func(t *testing.T) {
		fs := testutil.NewFeedServer(t)
		fs.FailStocks = true
		fs.News = `{"news": [{"title": "Trading notice"}]}`
		fs.History = `{"history": {"BNBL": [{"date": "2025-08-28", "close": 38.1}]}}`

		svc := feed.NewService(feed.NewClient(fs.URL))
		err := svc.Refresh(context.Background())
		if err == nil {
			t.Fatalf("Expected refresh to report the securities failure")
		}

		snap := svc.Snapshot()
		if snap.SecuritiesErr == nil {
			t.Errorf("Expected securities error state")
		}
		if len(snap.Securities) != 0 {
			t.Errorf("Expected no securities, got %d", len(snap.Securities))
		}
		if len(snap.News) != 1 {
			t.Errorf("Expected news loaded independently, got %d items", len(snap.News))
		}
		if len(snap.History["BNBL"]) != 1 {
			t.Errorf("Expected history loaded independently")
		}
	})

	t.Run("news failure does not fail the refresh", func(t *testing.T) {
		fs := testutil.NewFeedServer(t)
		fs.FailNews = true

		svc := feed.NewService(feed.NewClient(fs.URL))
		if err := svc.Refresh(context.Background()); err != nil {
			t.Fatalf("Expected refresh to succeed, got %v", err)
		}
		snap := svc.Snapshot()
		if snap.NewsErr == nil {
			t.Errorf("Expected news error recorded")
		}
	})

	t.Run("malformed stocks document is a securities error", func(t *testing.T) {
		fs := testutil.NewFeedServer(t)
		fs.Stocks = `{not json`

		snap := refreshed(t, fs)
		if snap.SecuritiesErr == nil {
			t.Errorf("Expected parse failure surfaced as securities error")
		}
	})
}

// TestRefresh_History tests history normalization.
func TestRefresh_History(t *testing.T) {
	fs := testutil.NewFeedServer(t)
	fs.History = `{"history": {
		"BNBL": [
			{"date": "2025-08-27", "close": 38.0},
			{"date": "not-a-date", "close": 38.2},
			{"date": "2025-08-28", "close": null},
			{"date": "2025-08-29", "close": 38.4}
		],
		"GHOST": [
			{"date": "bad", "close": null}
		]
	}}`

	snap := refreshed(t, fs)

	points := snap.History["BNBL"]
	if len(points) != 2 {
		t.Fatalf("Expected 2 valid points, got %d", len(points))
	}
	if points[0].Close != 38.0 || points[1].Close != 38.4 {
		t.Errorf("Unexpected closes: %+v", points)
	}

	if _, ok := snap.History["GHOST"]; ok {
		t.Errorf("Expected a series with no valid points to be dropped")
	}
}

// TestRefresh_News tests news normalization and order.
func TestRefresh_News(t *testing.T) {
	fs := testutil.NewFeedServer(t)
	fs.News = `{"news": [
		{"title": "Second notice", "url": "https://rsebl.org.bt/n/2", "date": "2025-08-29"},
		{"title": "First notice"},
		{"title": ""}
	]}`

	snap := refreshed(t, fs)

	if len(snap.News) != 2 {
		t.Fatalf("Expected untitled items dropped, got %d", len(snap.News))
	}
	if snap.News[0].Title != "Second notice" || snap.News[1].Title != "First notice" {
		t.Errorf("Expected feed order preserved, got %+v", snap.News)
	}
}
