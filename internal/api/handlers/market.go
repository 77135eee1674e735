package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/apperrors"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/chart"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/feed"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/format"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/sector"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/table"
)

// MarketHandler handles market-data HTTP requests: the dashboard header,
// the security table, the sector bar, and the history chart.
type MarketHandler struct {
	feedService *feed.Service
}

// NewMarketHandler creates a new MarketHandler
func NewMarketHandler(feedService *feed.Service) *MarketHandler {
	return &MarketHandler{
		feedService: feedService,
	}
}

// MarketResponse represents the dashboard header data.
type MarketResponse struct {
	BSI              *float64 `json:"bsi"`
	BSIDisplay       string   `json:"bsiDisplay"`
	UpdatedAt        *string  `json:"updatedAt"`
	UpdatedAtDisplay string   `json:"updatedAtDisplay"`
	SecurityCount    int      `json:"securityCount"`
	Error            string   `json:"error,omitempty"`
}

// Market returns the dashboard header: the composite index value, the
// feed's last-updated stamp, and whether the securities load failed.
//
// Endpoint: GET /api/market
func (h *MarketHandler) Market(w http.ResponseWriter, r *http.Request) {
	snap := h.feedService.Snapshot()

	response := MarketResponse{
		BSI:              snap.BSI,
		BSIDisplay:       format.Price(snap.BSI),
		UpdatedAtDisplay: "-",
		SecurityCount:    len(snap.Securities),
	}
	if snap.UpdatedAt != nil {
		iso := snap.UpdatedAt.Format(time.RFC3339)
		response.UpdatedAt = &iso
		response.UpdatedAtDisplay = format.Date(*snap.UpdatedAt)
	}
	if snap.SecuritiesErr != nil {
		response.Error = "Failed to load market data"
	}

	respondJSON(w, http.StatusOK, response)
}

// SecurityRowResponse is one table row: raw values for client-side logic
// plus preformatted display strings and the derived sector label.
type SecurityRowResponse struct {
	Symbol           string   `json:"symbol"`
	Name             string   `json:"name"`
	Sector           string   `json:"sector"`
	Price            *float64 `json:"price"`
	PriceDisplay     string   `json:"priceDisplay"`
	ChangePct        *float64 `json:"change_pct"`
	ChangePctDisplay string   `json:"changePctDisplay"`
	PERatio          *float64 `json:"pe_ratio"`
	PERatioDisplay   string   `json:"peRatioDisplay"`
	Volume           *int64   `json:"volume"`
	VolumeDisplay    string   `json:"volumeDisplay"`
	MarketCap        *float64 `json:"market_cap"`
	MarketCapDisplay string   `json:"marketCapDisplay"`
}

// SecuritiesResponse represents the derived table: the visible rows and
// their count.
type SecuritiesResponse struct {
	Rows  []SecurityRowResponse `json:"rows"`
	Count int                   `json:"count"`
}

// Securities returns the filtered, sorted table rows.
//
// Endpoint: GET /api/market/securities?q=&sector=&sort=&dir=
// The sort parameter names a table column; an omitted sort uses the
// default view (market cap, largest first), and an omitted dir uses the
// column's default direction.
func (h *MarketHandler) Securities(w http.ResponseWriter, r *http.Request) {
	snap := h.feedService.Snapshot()
	if snap.SecuritiesErr != nil {
		errorResponse := map[string]string{
			"error":  apperrors.ErrSecuritiesUnavailable.Error(),
			"detail": snap.SecuritiesErr.Error(),
		}
		respondJSON(w, http.StatusServiceUnavailable, errorResponse)
		return
	}

	view := table.DefaultView()
	view.Query = r.URL.Query().Get("q")
	view.Sector = r.URL.Query().Get("sector")

	if sortParam := r.URL.Query().Get("sort"); sortParam != "" {
		col := table.Column(sortParam)
		if !table.ValidColumn(col) {
			errorResponse := map[string]string{
				"error":  apperrors.ErrInvalidSortColumn.Error(),
				"detail": sortParam,
			}
			respondJSON(w, http.StatusBadRequest, errorResponse)
			return
		}
		view.Sort = col
		view.Dir = table.DefaultDirection(col)
	}
	if dirParam := r.URL.Query().Get("dir"); dirParam != "" {
		switch table.Direction(dirParam) {
		case table.Ascending, table.Descending:
			view.Dir = table.Direction(dirParam)
		default:
			errorResponse := map[string]string{
				"error":  "invalid sort direction",
				"detail": dirParam,
			}
			respondJSON(w, http.StatusBadRequest, errorResponse)
			return
		}
	}

	rows := table.VisibleRows(snap.Securities, view)

	response := SecuritiesResponse{
		Rows:  make([]SecurityRowResponse, len(rows)),
		Count: len(rows),
	}
	for i, sec := range rows {
		response.Rows[i] = SecurityRowResponse{
			Symbol:           sec.Symbol,
			Name:             sec.Name,
			Sector:           sector.Of(sec.Symbol),
			Price:            sec.Price,
			PriceDisplay:     format.Price(sec.Price),
			ChangePct:        sec.ChangePct,
			ChangePctDisplay: format.Percent(sec.ChangePct),
			PERatio:          sec.PERatio,
			PERatioDisplay:   format.Price(sec.PERatio),
			Volume:           sec.Volume,
			VolumeDisplay:    format.Volume(sec.Volume),
			MarketCap:        sec.MarketCap,
			MarketCapDisplay: format.OptAbbrev(sec.MarketCap),
		}
	}

	respondJSON(w, http.StatusOK, response)
}

// SectorsResponse represents the sector bar and filter options.
type SectorsResponse struct {
	Counts map[string]int `json:"counts"`
	Labels []string       `json:"labels"`
}

// Sectors returns per-sector security counts and the sorted distinct
// labels present in the loaded data.
//
// Endpoint: GET /api/market/sectors
func (h *MarketHandler) Sectors(w http.ResponseWriter, r *http.Request) {
	snap := h.feedService.Snapshot()
	if snap.SecuritiesErr != nil {
		errorResponse := map[string]string{
			"error":  apperrors.ErrSecuritiesUnavailable.Error(),
			"detail": snap.SecuritiesErr.Error(),
		}
		respondJSON(w, http.StatusServiceUnavailable, errorResponse)
		return
	}

	response := SectorsResponse{
		Counts: sector.Counts(snap.Securities),
		Labels: sector.Labels(snap.Securities),
	}

	respondJSON(w, http.StatusOK, response)
}

// History returns the chart series for a symbol over the requested range.
//
// Endpoint: GET /api/market/history/{symbol}?months=
// months is a positive number of trailing months, or "all" (also 0) for
// the full series; omitted means the default six-month window. Missing
// history is not an error: the response carries a placeholder state the
// client renders instead of a chart.
func (h *MarketHandler) History(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	months := chart.DefaultRangeMonths
	if monthsParam := r.URL.Query().Get("months"); monthsParam != "" {
		if monthsParam == "all" {
			months = 0
		} else {
			parsed, err := strconv.Atoi(monthsParam)
			if err != nil || parsed < 0 {
				errorResponse := map[string]string{
					"error":  apperrors.ErrInvalidRangeMonths.Error(),
					"detail": monthsParam,
				}
				respondJSON(w, http.StatusBadRequest, errorResponse)
				return
			}
			months = parsed
		}
	}

	points := h.feedService.HistoryFor(symbol)
	series := chart.BuildSeries(symbol, points, months, time.Now())

	respondJSON(w, http.StatusOK, series)
}

// RefreshResponse summarizes an on-demand feed reload.
type RefreshResponse struct {
	Securities int    `json:"securities"`
	Series     int    `json:"series"`
	News       int    `json:"news"`
	Error      string `json:"error,omitempty"`
}

// Refresh reloads the three feed documents immediately.
//
// Endpoint: POST /api/market/refresh
// A failed securities document reports 502 since the table cannot render
// without it; history or news failures degrade those sections only.
func (h *MarketHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	err := h.feedService.Refresh(r.Context())

	snap := h.feedService.Snapshot()
	response := RefreshResponse{
		Securities: len(snap.Securities),
		Series:     len(snap.History),
		News:       len(snap.News),
	}

	if err != nil {
		response.Error = apperrors.ErrFailedToRefreshFeed.Error()
		respondJSON(w, http.StatusBadGateway, response)
		return
	}

	respondJSON(w, http.StatusOK, response)
}
