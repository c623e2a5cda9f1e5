package models

import "capm-calculator/internal/chart"

// CalculateResponse is returned for both solved and failed calculations.
type CalculateResponse struct {
	ID      string `json:"id"`
	Status  string `json:"status"` // "ok" or "error"
	Unknown string `json:"unknown"`
	Label   string `json:"label"`

	// Raw solver output: fraction for rates, plain number for beta.
	Value        *float64 `json:"value,omitempty"`
	DisplayValue *float64 `json:"display_value,omitempty"`
	Formatted    string   `json:"formatted,omitempty"`
	Message      string   `json:"message"`

	Inputs     FormValues          `json:"inputs"`
	SML        []chart.Point       `json:"sml,omitempty"`
	AssetPoint *chart.Point        `json:"asset_point,omitempty"`
	Comparison chart.ComparisonSet `json:"comparison"`
	ChartURLs  ChartURLs           `json:"chart_urls"`

	ImageURL string       `json:"image_url,omitempty"`
	Warnings []string     `json:"warnings,omitempty"`
	Error    *ErrorDetail `json:"error,omitempty"`
}

// FormValues echoes the inputs that were used, in form units. The unknown is omitted.
type FormValues struct {
	RiskFreeRate   *float64 `json:"risk_free_rate,omitempty"`
	Beta           *float64 `json:"beta,omitempty"`
	MarketReturn   *float64 `json:"market_return,omitempty"`
	ExpectedReturn *float64 `json:"expected_return,omitempty"`
}

type ChartURLs struct {
	SML        string `json:"sml,omitempty"`
	Comparison string `json:"comparison"`
}

// VariableInfo describes one input of the calculator form.
type VariableInfo struct {
	Name    string  `json:"name"`
	Label   string  `json:"label"`
	Unit    string  `json:"unit"` // "percent" or "ratio"
	Default float64 `json:"default"`
	Min     float64 `json:"min"`
	Step    float64 `json:"step"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
