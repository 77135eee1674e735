package feed

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// stocksDocument is the raw shape of the scraper's stocks.json.
type stocksDocument struct {
	UpdatedAt string     `json:"updated_at"`
	BSI       looseFloat `json:"bsi"`
	Stocks    []rawStock `json:"stocks"`
}

// rawStock is one screener row as scraped. Every metric is loose because
// the scraper falls back to the raw cell text when it cannot parse a
// number, and publishes null for blank cells.
type rawStock struct {
	Symbol    string     `json:"symbol"`
	Name      string     `json:"name"`
	Price     looseFloat `json:"price"`
	ChangePct looseFloat `json:"change_pct"`
	PERatio   looseFloat `json:"pe_ratio"`
	Volume    looseFloat `json:"volume"`
	MarketCap looseFloat `json:"market_cap"`
}

// historyDocument is the raw shape of history.json: per-symbol daily
// closes, each series chronologically ascending.
type historyDocument struct {
	History map[string][]rawHistoryPoint `json:"history"`
}

type rawHistoryPoint struct {
	Date  string     `json:"date"`
	Close looseFloat `json:"close"`
}

// newsDocument is the raw shape of news.json.
type newsDocument struct {
	News []rawNewsItem `json:"news"`
}

type rawNewsItem struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Date  string `json:"date"`
}

// looseFloat decodes a scraper numeric cell, which may be a JSON number,
// null, or a string the scraper could not parse (it publishes the raw cell
// text in that case). Anything non-numeric decodes to nil rather than
// failing the document.
type looseFloat struct {
	value *float64
}

func (l *looseFloat) UnmarshalJSON(data []byte) error {
	// Unmarshalling null into a float64 is a no-op with a nil error, so
	// it must be handled before the number branch or a blank cell would
	// decode as 0 instead of staying unavailable.
	if string(bytes.TrimSpace(data)) == "null" {
		l.value = nil
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		l.value = &f
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		clean := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
		if f, err := strconv.ParseFloat(clean, 64); err == nil {
			l.value = &f
		}
		return nil
	}

	l.value = nil
	return nil
}

// Float returns the decoded value, or nil when the cell was blank or
// unparseable.
func (l looseFloat) Float() *float64 {
	return l.value
}

// Int returns the decoded value truncated to an integer, for count fields
// like volume.
func (l looseFloat) Int() *int64 {
	if l.value == nil {
		return nil
	}
	v := int64(*l.value)
	return &v
}
