package capm

import (
	"testing"

	"capm-calculator/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{5.0, "5"},
		{5.1234, "5.1234"},
		{0.000000001, "0.000000001"},
		{0.0, "0"},
		{8.000000000000002, "8"},
		{12.5, "12.5"},
		{100, "100"},
		{-2.5, "-2.5"},
		{1.0000000004, "1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in), "FormatNumber(%v)", tt.in)
	}
}

func TestResultMessage(t *testing.T) {
	assert.Equal(t, "Expected Return: 8%", ResultMessage(Solution{Unknown: model.QuantityExpectedReturn, Value: 0.08}))
	assert.Equal(t, "Risk-Free Rate (Rf): 3%", ResultMessage(Solution{Unknown: model.QuantityRiskFreeRate, Value: 0.03}))
	assert.Equal(t, "Beta (β): 0.5", ResultMessage(Solution{Unknown: model.QuantityBeta, Value: 0.5}))
	assert.Equal(t, "Market Return (Rm): 8.25%", ResultMessage(Solution{Unknown: model.QuantityMarketReturn, Value: 0.0825}))
}

func TestDisplayValue(t *testing.T) {
	assert.InDelta(t, 2.0, DisplayValue(model.QuantityRiskFreeRate, 0.02), 1e-12)
	assert.Equal(t, 1.2, DisplayValue(model.QuantityBeta, 1.2))
}
