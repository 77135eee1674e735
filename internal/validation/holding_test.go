package validation_test

import (
	"errors"
	"testing"

	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/api/request"
	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/validation"
)

// TestValidateAddHolding tests the portfolio add-form rules.
func TestValidateAddHolding(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		err := validation.ValidateAddHolding(request.AddHoldingRequest{
			Symbol: "BNBL", Shares: 0.5, BuyPrice: 32.5,
		})
		if err != nil {
			t.Errorf("Expected valid request to pass, got %v", err)
		}
	})

	t.Run("all failures are reported per field", func(t *testing.T) {
		err := validation.ValidateAddHolding(request.AddHoldingRequest{
			Symbol: "", Shares: -5, BuyPrice: 0,
		})

		var validationErr *validation.Error
		if !errors.As(err, &validationErr) {
			t.Fatalf("Expected *validation.Error, got %v", err)
		}
		for _, field := range []string{"symbol", "shares", "buyPrice"} {
			if _, ok := validationErr.Fields[field]; !ok {
				t.Errorf("Expected error for field %s, got %v", field, validationErr.Fields)
			}
		}
	})

	t.Run("whitespace symbol is empty", func(t *testing.T) {
		err := validation.ValidateAddHolding(request.AddHoldingRequest{
			Symbol: "   ", Shares: 1, BuyPrice: 1,
		})
		if err == nil {
			t.Errorf("Expected whitespace symbol to be rejected")
		}
	})
}
