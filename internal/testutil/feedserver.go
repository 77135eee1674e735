package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// FeedServer is a stub of the scraper's publish directory: an HTTP server
// serving stocks.json, history.json and news.json. Individual documents
// can be switched to failure to exercise partial-load behavior.
type FeedServer struct {
	*httptest.Server

	// Document bodies served for each path. Stored as raw JSON so tests
	// can also serve malformed payloads.
	Stocks  string
	History string
	News    string

	// Per-document failure switches: when true, the path returns 500.
	FailStocks  bool
	FailHistory bool
	FailNews    bool
}

// NewFeedServer starts a stub feed server with minimal valid documents.
// The server is shut down when the test completes.
func NewFeedServer(t *testing.T) *FeedServer {
	t.Helper()

	fs := &FeedServer{
		Stocks:  `{"updated_at": "2025-08-29T18:00:00+00:00", "bsi": 1108.4, "stocks": []}`,
		History: `{"history": {}}`,
		News:    `{"news": []}`,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/stocks.json", func(w http.ResponseWriter, r *http.Request) {
		fs.serve(w, fs.Stocks, fs.FailStocks)
	})
	mux.HandleFunc("/history.json", func(w http.ResponseWriter, r *http.Request) {
		fs.serve(w, fs.History, fs.FailHistory)
	})
	mux.HandleFunc("/news.json", func(w http.ResponseWriter, r *http.Request) {
		fs.serve(w, fs.News, fs.FailNews)
	})

	fs.Server = httptest.NewServer(mux)
	t.Cleanup(fs.Server.Close)

	return fs
}

func (fs *FeedServer) serve(w http.ResponseWriter, body string, fail bool) {
	if fail {
		http.Error(w, "scrape failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}
