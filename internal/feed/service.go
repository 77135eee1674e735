package feed

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/model"
)

// Snapshot is the in-memory market state built from one load. Each
// document settles independently: a per-document error leaves that
// section empty and records the failure without blocking the others.
type Snapshot struct {
	BSI        *float64
	UpdatedAt  *time.Time
	Securities []model.Security
	History    map[string][]model.HistoryPoint
	News       []model.NewsItem
	LoadedAt   time.Time

	SecuritiesErr error
	HistoryErr    error
	NewsErr       error
}

// Service owns the current snapshot. A successful refresh replaces it
// wholesale; there are no partial updates. Reads take a copy of the
// top-level struct, so callers must treat the contained slices and map
// as read-only.
type Service struct {
	client *Client

	mu   sync.RWMutex
	snap Snapshot
}

// NewService creates a feed service around the given client. The snapshot
// starts empty; call Refresh to populate it.
func NewService(client *Client) *Service {
	return &Service{client: client}
}

// Refresh fetches the three documents in parallel and swaps in the new
// snapshot. The fan-out joins when all three settle; per-document failures
// are recorded in the snapshot rather than returned, except the securities
// document whose failure is also returned because without row data the
// table, sector bar and portfolio prices cannot render.
func (s *Service) Refresh(ctx context.Context) error {
	snap := Snapshot{LoadedAt: time.Now()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		snap.BSI, snap.UpdatedAt, snap.Securities, snap.SecuritiesErr = s.client.fetchStocks(gctx)
		return nil
	})
	g.Go(func() error {
		snap.History, snap.HistoryErr = s.client.fetchHistory(gctx)
		return nil
	})
	g.Go(func() error {
		snap.News, snap.NewsErr = s.client.fetchNews(gctx)
		return nil
	})
	// Goroutines record their own errors; Wait is just the join point.
	_ = g.Wait()

	for _, err := range []error{snap.SecuritiesErr, snap.HistoryErr, snap.NewsErr} {
		if err != nil {
			log.Printf("Feed refresh: %v", err)
		}
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	log.Printf("Feed refreshed: %d securities, %d history series, %d news items",
		len(snap.Securities), len(snap.History), len(snap.News))

	return snap.SecuritiesErr
}

// Snapshot returns the current snapshot.
func (s *Service) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Securities returns the current security list, empty when the last
// securities load failed.
func (s *Service) Securities() []model.Security {
	return s.Snapshot().Securities
}

// HistoryFor returns the loaded price series for a symbol, or nil when
// the symbol has no history.
func (s *Service) HistoryFor(symbol string) []model.HistoryPoint {
	return s.Snapshot().History[symbol]
}
