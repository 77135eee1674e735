package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/api/handlers"
	custommiddleware "github.com/kwangdi/RSEBL-Tracker-Backend/internal/api/middleware"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/config"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/feed"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/portfolio"
)

// NewRouter creates and configures the HTTP router
func NewRouter(feedService *feed.Service, portfolioService *portfolio.Service, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(feedService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/market", func(r chi.Router) {
			marketHandler := handlers.NewMarketHandler(feedService)
			r.Get("/", marketHandler.Market)
			r.Get("/securities", marketHandler.Securities)
			r.Get("/sectors", marketHandler.Sectors)
			r.Get("/history/{symbol}", marketHandler.History)
			r.Post("/refresh", marketHandler.Refresh)
		})

		r.Route("/news", func(r chi.Router) {
			newsHandler := handlers.NewNewsHandler(feedService)
			r.Get("/", newsHandler.News)
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(portfolioService, feedService)
			r.Get("/", portfolioHandler.Portfolio)
			r.Post("/", portfolioHandler.AddHolding)
			r.Delete("/{index}", portfolioHandler.RemoveHolding)
		})
	})

	return r
}
