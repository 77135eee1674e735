package handlers

import (
	"net/http"
	"time"

	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/feed"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/version"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	feedService *feed.Service
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(feedService *feed.Service) *SystemHandler {
	return &SystemHandler{
		feedService: feedService,
	}
}

// HealthResponse represents the health check response. The server stays
// healthy even when the feed is degraded; Feed tells the operator which
// state it is in.
type HealthResponse struct {
	Status   string `json:"status"`
	Feed     string `json:"feed"`
	LoadedAt string `json:"loadedAt,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Health reports server liveness and the feed's last-load state.
//
// Endpoint: GET /api/system/health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	snap := h.feedService.Snapshot()

	response := HealthResponse{Status: "healthy", Feed: "loaded"}
	switch {
	case snap.LoadedAt.IsZero():
		response.Feed = "not loaded"
	case snap.SecuritiesErr != nil:
		response.Feed = "degraded"
		response.Error = snap.SecuritiesErr.Error()
	}
	if !snap.LoadedAt.IsZero() {
		response.LoadedAt = snap.LoadedAt.Format(time.RFC3339)
	}

	respondJSON(w, http.StatusOK, response)
}

// VersionResponse represents the version check response
type VersionResponse struct {
	AppVersion string `json:"app_version"`
}

// Version returns the application version.
//
// Endpoint: GET /api/system/version
func (h *SystemHandler) Version(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, VersionResponse{AppVersion: version.Version})
}
