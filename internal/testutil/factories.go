package testutil

import (
	"time"

	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/model"
)

// Float returns a pointer to v, for filling optional security metrics.
func Float(v float64) *float64 {
	return &v
}

// Int returns a pointer to v, for filling optional count fields.
func Int(v int64) *int64 {
	return &v
}

// SecurityBuilder provides a fluent interface for creating test securities.
//
// Example usage:
//
//	// Simple creation with defaults
//	sec := testutil.NewSecurity("BNBL").Build()
//
//	// Customized security
//	sec := testutil.NewSecurity("BNBL").
//	    WithName("Bhutan National Bank").
//	    WithPrice(38.5).
//	    WithMarketCap(2.1e9).
//	    Build()
type SecurityBuilder struct {
	security model.Security
}

// NewSecurity creates a SecurityBuilder with sensible defaults: a named,
// priced security with all metrics present.
func NewSecurity(symbol string) *SecurityBuilder {
	return &SecurityBuilder{security: model.Security{
		Symbol:    symbol,
		Name:      symbol + " Ltd",
		Price:     Float(100),
		ChangePct: Float(0.5),
		PERatio:   Float(12),
		Volume:    Int(1000),
		MarketCap: Float(1e9),
	}}
}

// WithName sets a custom name.
func (b *SecurityBuilder) WithName(name string) *SecurityBuilder {
	b.security.Name = name
	return b
}

// WithPrice sets a custom price.
func (b *SecurityBuilder) WithPrice(price float64) *SecurityBuilder {
	b.security.Price = Float(price)
	return b
}

// WithChangePct sets a custom daily change percentage.
func (b *SecurityBuilder) WithChangePct(pct float64) *SecurityBuilder {
	b.security.ChangePct = Float(pct)
	return b
}

// WithMarketCap sets a custom market cap.
func (b *SecurityBuilder) WithMarketCap(cap float64) *SecurityBuilder {
	b.security.MarketCap = Float(cap)
	return b
}

// WithVolume sets a custom traded volume.
func (b *SecurityBuilder) WithVolume(v int64) *SecurityBuilder {
	b.security.Volume = Int(v)
	return b
}

// WithoutMetrics clears every optional metric, modelling a thinly traded
// symbol the scraper published with blank cells.
func (b *SecurityBuilder) WithoutMetrics() *SecurityBuilder {
	b.security.Price = nil
	b.security.ChangePct = nil
	b.security.PERatio = nil
	b.security.Volume = nil
	b.security.MarketCap = nil
	return b
}

// WithoutPrice clears just the price.
func (b *SecurityBuilder) WithoutPrice() *SecurityBuilder {
	b.security.Price = nil
	return b
}

// Build returns the security.
func (b *SecurityBuilder) Build() model.Security {
	return b.security
}

// MakeHistory creates a daily close series of the given length ending at
// end, walking linearly from startClose to endClose.
func MakeHistory(end time.Time, days int, startClose, endClose float64) []model.HistoryPoint {
	points := make([]model.HistoryPoint, days)
	for i := range points {
		frac := 0.0
		if days > 1 {
			frac = float64(i) / float64(days-1)
		}
		points[i] = model.HistoryPoint{
			Date:  end.AddDate(0, 0, i-days+1),
			Close: startClose + (endClose-startClose)*frac,
		}
	}
	return points
}
