package request

// AddHoldingRequest represents the request body for adding a holding to
// the portfolio tracker. Shares and BuyPrice must decode as JSON numbers;
// non-numeric input fails at decode time before validation runs.
type AddHoldingRequest struct {
	Symbol   string  `json:"symbol"`
	Shares   float64 `json:"shares"`
	BuyPrice float64 `json:"buyPrice"`
}
