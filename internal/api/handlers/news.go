package handlers

import (
	"net/http"

	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/feed"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/format"
)

// NewsHandler handles news feed HTTP requests
type NewsHandler struct {
	feedService *feed.Service
}

// NewNewsHandler creates a new NewsHandler
func NewNewsHandler(feedService *feed.Service) *NewsHandler {
	return &NewsHandler{
		feedService: feedService,
	}
}

// NewsItemResponse is one feed entry. URL is empty for plain-text items;
// DateDisplay is the formatted date or empty when the source gave none.
type NewsItemResponse struct {
	Title       string `json:"title"`
	URL         string `json:"url,omitempty"`
	Date        string `json:"date,omitempty"`
	DateDisplay string `json:"dateDisplay,omitempty"`
}

// NewsResponse represents the news feed in supplied order.
type NewsResponse struct {
	Items []NewsItemResponse `json:"items"`
}

// News returns the feed as loaded, without sorting or deduplication. An
// empty feed returns an empty items array the client renders as its
// "no news" placeholder.
//
// Endpoint: GET /api/news
func (h *NewsHandler) News(w http.ResponseWriter, r *http.Request) {
	items := h.feedService.Snapshot().News

	response := NewsResponse{
		Items: make([]NewsItemResponse, len(items)),
	}
	for i, item := range items {
		response.Items[i] = NewsItemResponse{
			Title:       item.Title,
			URL:         item.URL,
			Date:        item.Date,
			DateDisplay: format.LooseDate(item.Date),
		}
	}

	respondJSON(w, http.StatusOK, response)
}
