// Package table derives the visible row set for the market watch table
// from the full security list and the client's current view state.
// Derivation is pure: the same list and view always produce the same rows.
package table

import (
	"slices"
	"strings"

	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/model"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/sector"
)

// Column identifies a sortable table column.
type Column string

// Sortable columns, matching the feed's field names.
const (
	ColumnSymbol    Column = "symbol"
	ColumnName      Column = "name"
	ColumnPrice     Column = "price"
	ColumnChangePct Column = "change_pct"
	ColumnPERatio   Column = "pe_ratio"
	ColumnVolume    Column = "volume"
	ColumnMarketCap Column = "market_cap"
)

// Direction is a sort direction.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// View is the table's current filter and sort state. The client owns the
// authoritative copy and sends it with each request; the engine never
// holds view state between derivations.
type View struct {
	Query  string // case-insensitive substring match on symbol or name
	Sector string // exact sector label, empty = no filter
	Sort   Column
	Dir    Direction
}

// DefaultView is the view state on page load: largest companies first,
// no filters.
func DefaultView() View {
	return View{Sort: ColumnMarketCap, Dir: Descending}
}

// ValidColumn reports whether c names a sortable column.
func ValidColumn(c Column) bool {
	switch c {
	case ColumnSymbol, ColumnName, ColumnPrice, ColumnChangePct,
		ColumnPERatio, ColumnVolume, ColumnMarketCap:
		return true
	}
	return false
}

// DefaultDirection returns the direction a column sorts by when first
// selected: alphabetical for text columns, largest-first for metrics.
func DefaultDirection(c Column) Direction {
	switch c {
	case ColumnSymbol, ColumnName:
		return Ascending
	}
	return Descending
}

// Toggle returns the view after a click on a column header: the active
// column flips direction, a new column takes its default direction.
// Filters are untouched.
func Toggle(v View, c Column) View {
	if v.Sort == c {
		if v.Dir == Ascending {
			v.Dir = Descending
		} else {
			v.Dir = Ascending
		}
		return v
	}
	v.Sort = c
	v.Dir = DefaultDirection(c)
	return v
}

// VisibleRows derives the ordered row set for a view. It always produces
// a result; an empty slice means the client renders its "no results" row.
//
// Missing values sort to the end regardless of direction, string compare
// is case-insensitive, and ties keep their relative order (stable sort).
func VisibleRows(securities []model.Security, v View) []model.Security {
	rows := make([]model.Security, 0, len(securities))
	query := strings.ToLower(strings.TrimSpace(v.Query))
	for _, sec := range securities {
		if query != "" &&
			!strings.Contains(strings.ToLower(sec.Symbol), query) &&
			!strings.Contains(strings.ToLower(sec.Name), query) {
			continue
		}
		if v.Sector != "" && sector.Of(sec.Symbol) != v.Sector {
			continue
		}
		rows = append(rows, sec)
	}

	slices.SortStableFunc(rows, func(a, b model.Security) int {
		return compareRows(a, b, v.Sort, v.Dir)
	})

	return rows
}

// compareRows orders two rows for the given column and direction.
// Direction only flips comparisons between present values; rows missing
// the sort value stay after all present ones either way.
func compareRows(a, b model.Security, col Column, dir Direction) int {
	switch col {
	case ColumnSymbol:
		return flip(compareStrings(a.Symbol, b.Symbol), dir)
	case ColumnName:
		av, aok := optString(a.Name)
		bv, bok := optString(b.Name)
		if c, decided := compareMissing(aok, bok); decided {
			return c
		}
		return flip(compareStrings(av, bv), dir)
	default:
		av, aok := numericValue(a, col)
		bv, bok := numericValue(b, col)
		if c, decided := compareMissing(aok, bok); decided {
			return c
		}
		switch {
		case av < bv:
			return flip(-1, dir)
		case av > bv:
			return flip(1, dir)
		}
		return 0
	}
}

// compareMissing handles rows without a value for the sort column.
// The second return is false when both values are present and the normal
// comparison should decide.
func compareMissing(aok, bok bool) (int, bool) {
	switch {
	case aok && bok:
		return 0, false
	case !aok && !bok:
		return 0, true
	case !aok:
		return 1, true
	default:
		return -1, true
	}
}

func compareStrings(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func flip(c int, dir Direction) int {
	if dir == Descending {
		return -c
	}
	return c
}

func optString(s string) (string, bool) {
	return s, s != ""
}

// numericValue extracts the optional numeric sort value for a column.
func numericValue(sec model.Security, col Column) (float64, bool) {
	var v *float64
	switch col {
	case ColumnPrice:
		v = sec.Price
	case ColumnChangePct:
		v = sec.ChangePct
	case ColumnPERatio:
		v = sec.PERatio
	case ColumnVolume:
		if sec.Volume == nil {
			return 0, false
		}
		return float64(*sec.Volume), true
	case ColumnMarketCap:
		v = sec.MarketCap
	}
	if v == nil {
		return 0, false
	}
	return *v, true
}
