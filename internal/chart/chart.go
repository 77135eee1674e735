// Package chart derives the price-history series the frontend's chart
// component renders. The derivation is pure; which symbol and range are
// selected is client state.
package chart

import (
	"fmt"
	"time"

	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/format"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/model"
)

// State tells the client what to render for a chart request.
type State string

const (
	// StateOK means Labels/Values hold a drawable series.
	StateOK State = "ok"
	// StateNoHistory means the symbol has no history entries at all.
	StateNoHistory State = "no_history"
	// StateEmptyRange means history exists but none of it falls inside
	// the requested range window.
	StateEmptyRange State = "empty_range"
)

// Trend palettes for the rendered line. Presentation only: last close vs
// first close in the window, not a statistical claim.
const (
	TrendPositive = "positive"
	TrendNegative = "negative"
)

// maxMarkerPoints is the densest series that still gets per-point markers.
// Beyond this the markers are suppressed so the line stays legible.
const maxMarkerPoints = 200

// DefaultRangeMonths is the range window selected on page load.
const DefaultRangeMonths = 6

// Series is the chart-config contract passed to the frontend's charting
// library. Labels and Values are parallel; both are empty unless State
// is StateOK.
type Series struct {
	State       State     `json:"state"`
	Symbol      string    `json:"symbol"`
	RangeMonths int       `json:"rangeMonths"`
	Labels      []string  `json:"labels"`
	Values      []float64 `json:"values"`
	Trend       string    `json:"trend,omitempty"`
	ShowPoints  bool      `json:"showPoints"`
	Caption     string    `json:"caption,omitempty"`
}

// BuildSeries filters a symbol's history to the trailing range window and
// derives the series to draw. rangeMonths 0 means the full history.
// Missing or empty history yields a no-history placeholder; a window that
// excludes every point yields a distinct empty-range placeholder.
func BuildSeries(symbol string, points []model.HistoryPoint, rangeMonths int, now time.Time) Series {
	s := Series{Symbol: symbol, RangeMonths: rangeMonths}

	if len(points) == 0 {
		s.State = StateNoHistory
		return s
	}

	window := points
	if rangeMonths > 0 {
		cutoff := now.AddDate(0, -rangeMonths, 0)
		window = nil
		for _, p := range points {
			if !p.Date.Before(cutoff) {
				window = append(window, p)
			}
		}
	}

	if len(window) == 0 {
		s.State = StateEmptyRange
		return s
	}

	s.State = StateOK
	s.Labels = make([]string, len(window))
	s.Values = make([]float64, len(window))
	for i, p := range window {
		s.Labels[i] = p.Date.Format("2006-01-02")
		s.Values[i] = p.Close
	}

	if window[len(window)-1].Close >= window[0].Close {
		s.Trend = TrendPositive
	} else {
		s.Trend = TrendNegative
	}
	s.ShowPoints = len(window) <= maxMarkerPoints

	s.Caption = fmt.Sprintf("%s to %s, %d trading days",
		format.Date(window[0].Date),
		format.Date(window[len(window)-1].Date),
		len(window),
	)

	return s
}
