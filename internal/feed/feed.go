// Package feed loads the three JSON documents the daily scraper publishes
// (stocks.json, history.json, news.json), normalizes them at the boundary,
// and holds the current in-memory snapshot for the rest of the server.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/model"
)

// Fixed relative paths of the scraper's output documents.
const (
	stocksPath  = "stocks.json"
	historyPath = "history.json"
	newsPath    = "news.json"
)

// Client fetches the scraper's published documents over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a feed client for the given base URL (the directory
// the scraper publishes into, without trailing slash).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// fetchJSON retrieves one document and decodes it into out.
func (c *Client) fetchJSON(ctx context.Context, path string, out any) error {
	url := c.baseURL + "/" + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to fetch %s: status %d", path, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return nil
}

// fetchStocks loads and normalizes stocks.json. Entries without a symbol
// are dropped at the boundary; the rest of the server assumes every
// security has one.
func (c *Client) fetchStocks(ctx context.Context) (*float64, *time.Time, []model.Security, error) {
	var doc stocksDocument
	if err := c.fetchJSON(ctx, stocksPath, &doc); err != nil {
		return nil, nil, nil, err
	}

	var updatedAt *time.Time
	if doc.UpdatedAt != "" {
		if t, err := time.Parse(time.RFC3339, doc.UpdatedAt); err == nil {
			updatedAt = &t
		}
	}

	securities := make([]model.Security, 0, len(doc.Stocks))
	for _, raw := range doc.Stocks {
		symbol := strings.TrimSpace(raw.Symbol)
		if symbol == "" {
			continue
		}
		securities = append(securities, model.Security{
			Symbol:    symbol,
			Name:      strings.TrimSpace(raw.Name),
			Price:     raw.Price.Float(),
			ChangePct: raw.ChangePct.Float(),
			PERatio:   raw.PERatio.Float(),
			Volume:    raw.Volume.Int(),
			MarketCap: raw.MarketCap.Float(),
		})
	}

	return doc.BSI.Float(), updatedAt, securities, nil
}

// fetchHistory loads and normalizes history.json. Points with an invalid
// date or a missing close are dropped; symbols left with no points are
// dropped entirely so absence stays distinguishable from emptiness.
func (c *Client) fetchHistory(ctx context.Context) (map[string][]model.HistoryPoint, error) {
	var doc historyDocument
	if err := c.fetchJSON(ctx, historyPath, &doc); err != nil {
		return nil, err
	}

	history := make(map[string][]model.HistoryPoint, len(doc.History))
	for symbol, rawPoints := range doc.History {
		points := make([]model.HistoryPoint, 0, len(rawPoints))
		for _, raw := range rawPoints {
			date, err := time.Parse("2006-01-02", raw.Date)
			if err != nil {
				continue
			}
			closePrice := raw.Close.Float()
			if closePrice == nil {
				continue
			}
			points = append(points, model.HistoryPoint{Date: date, Close: *closePrice})
		}
		if len(points) > 0 {
			history[symbol] = points
		}
	}

	return history, nil
}

// fetchNews loads news.json. Items without a title are dropped; order is
// otherwise preserved as supplied.
func (c *Client) fetchNews(ctx context.Context) ([]model.NewsItem, error) {
	var doc newsDocument
	if err := c.fetchJSON(ctx, newsPath, &doc); err != nil {
		return nil, err
	}

	items := make([]model.NewsItem, 0, len(doc.News))
	for _, raw := range doc.News {
		title := strings.TrimSpace(raw.Title)
		if title == "" {
			continue
		}
		items = append(items, model.NewsItem{
			Title: title,
			URL:   strings.TrimSpace(raw.URL),
			Date:  strings.TrimSpace(raw.Date),
		})
	}

	return items, nil
}
