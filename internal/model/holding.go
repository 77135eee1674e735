package model

// Holding represents a user-recorded position in the portfolio tracker.
// Holdings have no id of their own; identity is position in the ordered
// list, and removal is by index.
type Holding struct {
	Symbol   string  `json:"symbol"`
	Shares   float64 `json:"shares"`
	BuyPrice float64 `json:"buyPrice"`
}

// HoldingValuation is one holding valued against the latest loaded prices.
// Current, PnL and ReturnPct are nil when the symbol has no resolvable
// price in the current security list (delisted, or feed not loaded);
// Invested is always computable from the holding itself.
type HoldingValuation struct {
	Holding
	Invested  float64  `json:"invested"`
	Current   *float64 `json:"current"`
	PnL       *float64 `json:"pnl"`
	ReturnPct *float64 `json:"returnPct"`
}

// PortfolioValuation aggregates holdings at the portfolio level.
// TotalCurrent sums only holdings with a resolvable price; TotalInvested
// sums all holdings. TotalReturnPct is 0 when TotalInvested is 0.
type PortfolioValuation struct {
	Rows           []HoldingValuation `json:"rows"`
	TotalInvested  float64            `json:"totalInvested"`
	TotalCurrent   float64            `json:"totalCurrent"`
	TotalPnL       float64            `json:"totalPnl"`
	TotalReturnPct float64            `json:"totalReturnPct"`
}
