package model

import "time"

// Security represents a single listed instrument from the market watch feed.
// All market metrics are optional: the exchange publishes blanks for thinly
// traded symbols and the scraper passes those through as nulls.
type Security struct {
	Symbol    string   `json:"symbol"`
	Name      string   `json:"name,omitempty"`
	Price     *float64 `json:"price"`
	ChangePct *float64 `json:"change_pct"`
	PERatio   *float64 `json:"pe_ratio"`
	Volume    *int64   `json:"volume"`
	MarketCap *float64 `json:"market_cap"`
}

// HistoryPoint represents one trading day's closing price for a symbol.
// Points within a symbol's series are ordered ascending by date.
type HistoryPoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// NewsItem represents a news or announcement entry from the feed.
// URL and Date are optional; Date is kept as the raw scraped string because
// the source publishes it in inconsistent formats.
type NewsItem struct {
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
	Date  string `json:"date,omitempty"`
}
