package model

import (
	"fmt"
	"strings"
)

// Quantity names one of the four CAPM variables.
// Keep these values stable; they are the wire names used by the API and CLI.
type Quantity string

const (
	QuantityRiskFreeRate   Quantity = "risk_free_rate"
	QuantityBeta           Quantity = "beta"
	QuantityMarketReturn   Quantity = "market_return"
	QuantityExpectedReturn Quantity = "expected_return"
)

// Quantities lists the selector choices in display order.
var Quantities = []Quantity{
	QuantityExpectedReturn,
	QuantityRiskFreeRate,
	QuantityBeta,
	QuantityMarketReturn,
}

// Label is the human-facing name shown next to inputs and results.
func (q Quantity) Label() string {
	switch q {
	case QuantityRiskFreeRate:
		return "Risk-Free Rate (Rf)"
	case QuantityBeta:
		return "Beta (β)"
	case QuantityMarketReturn:
		return "Market Return (Rm)"
	case QuantityExpectedReturn:
		return "Expected Return"
	default:
		return string(q)
	}
}

// IsRate reports whether the quantity is a rate of return (fraction internally, percent on display).
// Beta is the only dimensionless quantity.
func (q Quantity) IsRate() bool {
	return q == QuantityRiskFreeRate || q == QuantityMarketReturn || q == QuantityExpectedReturn
}

func (q Quantity) Valid() bool {
	switch q {
	case QuantityRiskFreeRate, QuantityBeta, QuantityMarketReturn, QuantityExpectedReturn:
		return true
	}
	return false
}

// ParseQuantity accepts wire names plus a few short aliases ("rf", "rm", "er").
func ParseQuantity(s string) (Quantity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "risk_free_rate", "rf":
		return QuantityRiskFreeRate, nil
	case "beta":
		return QuantityBeta, nil
	case "market_return", "rm":
		return QuantityMarketReturn, nil
	case "expected_return", "er":
		return QuantityExpectedReturn, nil
	}
	return "", fmt.Errorf("unknown quantity %q", s)
}
