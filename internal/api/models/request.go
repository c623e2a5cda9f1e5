package models

// CalculateRequest is the body of POST /api/v1/calculate.
// Values are in form units: rates in percent, beta as a plain number.
// The field named by Unknown is ignored; omitted known fields take the configured defaults.
type CalculateRequest struct {
	Unknown        string   `json:"unknown" binding:"required"` // "risk_free_rate", "beta", "market_return", "expected_return"
	RiskFreeRate   *float64 `json:"risk_free_rate,omitempty"`
	Beta           *float64 `json:"beta,omitempty"`
	MarketReturn   *float64 `json:"market_return,omitempty"`
	ExpectedReturn *float64 `json:"expected_return,omitempty"`
}

// ChartQuery is the query string of the chart endpoints, in form units.
type ChartQuery struct {
	RiskFreeRate   *float64 `form:"risk_free_rate"`
	Beta           *float64 `form:"beta"`
	MarketReturn   *float64 `form:"market_return"`
	ExpectedReturn *float64 `form:"expected_return"`
	SolvedValue    *float64 `form:"solved_value"` // comparison bar: the solved value ×100
	Format         string   `form:"format,omitempty"` // "png" (default) or "svg"
}
