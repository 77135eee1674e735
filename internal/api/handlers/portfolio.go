package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/api/request"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/apperrors"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/feed"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/format"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/model"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/portfolio"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/validation"
)

// PortfolioHandler handles portfolio tracker HTTP requests
type PortfolioHandler struct {
	portfolioService *portfolio.Service
	feedService      *feed.Service
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioService *portfolio.Service, feedService *feed.Service) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
		feedService:      feedService,
	}
}

// HoldingRowResponse is one valued holding. Current, PnL and ReturnPct are
// null when the symbol has no price in the loaded security list; their
// display strings render as unavailable in that case.
type HoldingRowResponse struct {
	Symbol           string   `json:"symbol"`
	Shares           float64  `json:"shares"`
	BuyPrice         float64  `json:"buyPrice"`
	Invested         float64  `json:"invested"`
	InvestedDisplay  string   `json:"investedDisplay"`
	Current          *float64 `json:"current"`
	CurrentDisplay   string   `json:"currentDisplay"`
	PnL              *float64 `json:"pnl"`
	PnLDisplay       string   `json:"pnlDisplay"`
	ReturnPct        *float64 `json:"returnPct"`
	ReturnPctDisplay string   `json:"returnPctDisplay"`
}

// PortfolioResponse represents the valued portfolio: per-holding rows and
// portfolio-level totals.
type PortfolioResponse struct {
	Rows           []HoldingRowResponse `json:"rows"`
	TotalInvested  float64              `json:"totalInvested"`
	TotalCurrent   float64              `json:"totalCurrent"`
	TotalPnL       float64              `json:"totalPnl"`
	TotalReturnPct float64              `json:"totalReturnPct"`
}

// Portfolio returns the holding list valued against the latest loaded
// prices. Valuation is recomputed on every request; prices move under the
// portfolio with each feed load.
//
// Endpoint: GET /api/portfolio
func (h *PortfolioHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	valuation := h.portfolioService.Valuation(h.feedService.Securities())

	response := PortfolioResponse{
		Rows:           make([]HoldingRowResponse, len(valuation.Rows)),
		TotalInvested:  valuation.TotalInvested,
		TotalCurrent:   valuation.TotalCurrent,
		TotalPnL:       valuation.TotalPnL,
		TotalReturnPct: valuation.TotalReturnPct,
	}
	for i, row := range valuation.Rows {
		response.Rows[i] = HoldingRowResponse{
			Symbol:           row.Symbol,
			Shares:           row.Shares,
			BuyPrice:         row.BuyPrice,
			Invested:         row.Invested,
			InvestedDisplay:  format.Amount(row.Invested),
			Current:          row.Current,
			CurrentDisplay:   amountOrDash(row.Current),
			PnL:              row.PnL,
			PnLDisplay:       amountOrDash(row.PnL),
			ReturnPct:        row.ReturnPct,
			ReturnPctDisplay: format.Percent(row.ReturnPct),
		}
	}

	respondJSON(w, http.StatusOK, response)
}

// AddHolding appends a holding after validation and persists it
// write-through.
//
// Endpoint: POST /api/portfolio
// Response: 201 Created with the updated holding list
// Error: 400 with per-field messages when validation fails; nothing is
// persisted in that case.
func (h *PortfolioHandler) AddHolding(w http.ResponseWriter, r *http.Request) {
	var req request.AddHoldingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse := map[string]string{
			"error":  "invalid request body",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusBadRequest, errorResponse)
		return
	}

	if err := h.portfolioService.AddHolding(req); err != nil {
		var validationErr *validation.Error
		if errors.As(err, &validationErr) {
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  "validation failed",
				"fields": validationErr.Fields,
			})
			return
		}
		errorResponse := map[string]string{
			"error":  "failed to add holding",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	respondJSON(w, http.StatusCreated, holdingsResponse(h.portfolioService.Holdings()))
}

// RemoveHolding removes the holding at the given position and persists
// the change.
//
// Endpoint: DELETE /api/portfolio/{index}
// Response: 200 OK with the updated holding list
// Error: 400 for a non-numeric or out-of-range index. The UI only renders
// remove buttons for existing rows, so out-of-range indicates a stale or
// hand-crafted request.
func (h *PortfolioHandler) RemoveHolding(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		errorResponse := map[string]string{
			"error":  "invalid holding index",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusBadRequest, errorResponse)
		return
	}

	if err := h.portfolioService.RemoveHolding(index); err != nil {
		if errors.Is(err, apperrors.ErrHoldingIndexOutOfRange) {
			errorResponse := map[string]string{
				"error": apperrors.ErrHoldingIndexOutOfRange.Error(),
			}
			respondJSON(w, http.StatusBadRequest, errorResponse)
			return
		}
		errorResponse := map[string]string{
			"error":  "failed to remove holding",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	respondJSON(w, http.StatusOK, holdingsResponse(h.portfolioService.Holdings()))
}

// HoldingsListResponse represents the bare holding list, returned after
// mutations so the client can re-render without a second round trip.
type HoldingsListResponse struct {
	Holdings []model.Holding `json:"holdings"`
}

func holdingsResponse(holdings []model.Holding) HoldingsListResponse {
	return HoldingsListResponse{Holdings: holdings}
}

// amountOrDash formats an optional monetary value, rendering unavailable
// values as "-".
func amountOrDash(v *float64) string {
	if v == nil {
		return "-"
	}
	return format.Amount(*v)
}
