// Package format provides pure display formatters for the dashboard API.
// Handlers attach these display strings alongside raw values so the static
// frontend does not need its own locale logic.
package format

import (
	"fmt"
	"strings"
	"time"
)

// Amount formats a monetary value with the exchange's Nu. prefix and
// comma-separated thousands, e.g. "Nu. 1,234.56".
func Amount(v float64) string {
	return "Nu. " + Comma(v, 2)
}

// Comma formats a number with comma-separated thousands and the given
// number of decimal places.
func Comma(v float64, decimals int) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.*f", decimals, v)
	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	start := len(intPart) % 3
	if start > 0 {
		b.WriteString(intPart[:start])
	}
	for i := start; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}

	out := b.String() + fracPart
	// A negative value that rounds to all zeros must not keep its sign.
	if neg && strings.Trim(out, "0.,") != "" {
		return "-" + out
	}
	return out
}

// Percent formats a percentage with an explicit sign, e.g. "+1.25%".
// A nil value formats as "-" (metric unavailable).
func Percent(v *float64) string {
	if v == nil {
		return "-"
	}
	if *v >= 0 {
		return fmt.Sprintf("+%.2f%%", *v)
	}
	return fmt.Sprintf("%.2f%%", *v)
}

// Price formats an optional price, or "-" when unavailable.
func Price(v *float64) string {
	if v == nil {
		return "-"
	}
	return Comma(*v, 2)
}

// Abbrev formats a large magnitude with B/M/K suffixes, e.g. market cap
// or traded value.
func Abbrev(v float64) string {
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.2fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.1fK", v/1e3)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

// OptAbbrev formats an optional magnitude, or "-" when unavailable.
func OptAbbrev(v *float64) string {
	if v == nil {
		return "-"
	}
	return Abbrev(*v)
}

// Volume formats an optional share count, or "-" when unavailable.
func Volume(v *int64) string {
	if v == nil {
		return "-"
	}
	return Comma(float64(*v), 0)
}

// Date formats a calendar date for display, e.g. "Jan 2, 2006".
func Date(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// dateLayouts are the formats the scraper has been observed to emit for
// news dates and the feed's updated_at stamp.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02 Jan 2006",
	"January 2, 2006",
}

// LooseDate formats a scraped date string for display, trying the known
// source layouts. Strings that match no layout are returned as-is: the
// feed's content is trusted, not rewritten.
func LooseDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date(t)
		}
	}
	return s
}
