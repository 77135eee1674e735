package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/api"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/config"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/database"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/feed"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/portfolio"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Select the portfolio persistence backend
	var store portfolio.Store
	switch cfg.Portfolio.Backend {
	case config.BackendSQLite:
		db, err := database.Open(cfg.Portfolio.DatabasePath)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer db.Close()

		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}

		log.Printf("Portfolio store: sqlite at %s", cfg.Portfolio.DatabasePath)
		store = portfolio.NewSQLiteStore(db)
	default:
		log.Printf("Portfolio store: file at %s", cfg.Portfolio.FilePath)
		store = portfolio.NewFileStore(cfg.Portfolio.FilePath)
	}

	portfolioService, err := portfolio.NewService(store)
	if err != nil {
		log.Fatalf("Failed to load portfolio: %v", err)
	}

	// Create the feed service and do the initial load. A degraded feed is
	// not fatal: the page stays up with error states until data arrives.
	feedService := feed.NewService(feed.NewClient(cfg.Feed.BaseURL))
	if err := feedService.Refresh(context.Background()); err != nil {
		log.Printf("Initial feed load degraded: %v", err)
	}

	// Reload the feed on the configured schedule; the scraper publishes
	// new documents daily.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Feed.RefreshSchedule, func() {
		if err := feedService.Refresh(context.Background()); err != nil {
			log.Printf("Scheduled feed refresh degraded: %v", err)
		}
	}); err != nil {
		log.Fatalf("Invalid feed refresh schedule %q: %v", cfg.Feed.RefreshSchedule, err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create router
	router := api.NewRouter(feedService, portfolioService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
