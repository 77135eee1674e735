package validation

import (
	"strings"

	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/api/request"
)

// ValidateAddHolding validates a holding creation request.
//
// Required fields:
//   - symbol: Must be non-empty
//   - shares: Must be strictly positive
//   - buyPrice: Must be strictly positive
//
// Returns a validation Error with field-specific error messages if
// validation fails. The symbol is not checked against the loaded security
// list: holdings in delisted or not-yet-loaded symbols are legitimate and
// simply value as unavailable.
func ValidateAddHolding(req request.AddHoldingRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}

	if req.Shares <= 0.0 {
		errors["shares"] = "shares must be positive"
	}

	if req.BuyPrice <= 0.0 {
		errors["buyPrice"] = "buyPrice must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
