package apperrors

import "errors"

// Domain entity errors represent missing data in the system. A symbol
// without history or a holding without a resolvable price are not errors
// here: those render as placeholders or null valuations instead.
var (
	// ErrSecuritiesUnavailable indicates the last securities load failed,
	// so there is no row data to serve.
	ErrSecuritiesUnavailable = errors.New("securities data unavailable")
)

// Business logic errors represent validation failures or constraint
// violations.
var (
	// ErrHoldingIndexOutOfRange indicates a removal index that does not
	// reference an existing holding. The UI only renders remove buttons
	// for valid indices, so reaching this is a contract violation.
	ErrHoldingIndexOutOfRange = errors.New("holding index out of range")

	// ErrInvalidRangeMonths indicates a chart range that is not a
	// non-negative number of months.
	ErrInvalidRangeMonths = errors.New("invalid range: months must be a non-negative integer")

	// ErrInvalidSortColumn indicates a sort parameter naming no table column.
	ErrInvalidSortColumn = errors.New("invalid sort column")
)

// Operation failure errors represent system-level failures.
var (
	// ErrFailedToPersistPortfolio indicates the portfolio store rejected
	// a write; the in-memory holding list is rolled back when this occurs.
	ErrFailedToPersistPortfolio = errors.New("failed to persist portfolio")

	// ErrFailedToRefreshFeed indicates an on-demand feed refresh could not
	// load the securities document.
	ErrFailedToRefreshFeed = errors.New("failed to refresh market data")
)
