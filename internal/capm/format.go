package capm

import (
	"strconv"
	"strings"

	"capm-calculator/internal/model"
)

// InvalidInputMessage is shown for every solver failure.
const InvalidInputMessage = "Invalid input combination. Please check your values."

// FormatNumber prints v with 9 decimals, then strips trailing zeros and a bare decimal point.
// Negative and very large values get the same literal treatment.
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', 9, 64)
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// DisplayValue converts a solved value into display units: percent for rates, unchanged for beta.
func DisplayValue(q model.Quantity, v float64) float64 {
	if q.IsRate() {
		return v * 100
	}
	return v
}

// FormatResult formats a solved value for display, e.g. "8%" or "0.5".
func FormatResult(q model.Quantity, v float64) string {
	s := FormatNumber(DisplayValue(q, v))
	if q.IsRate() {
		return s + "%"
	}
	return s
}

// ResultMessage is the success line, e.g. "Expected Return: 8%".
func ResultMessage(sol Solution) string {
	return sol.Unknown.Label() + ": " + FormatResult(sol.Unknown, sol.Value)
}
