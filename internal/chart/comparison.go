package chart

import "capm-calculator/internal/model"

const (
	LabelRiskFreeRate   = "Risk-Free Rate"
	LabelMarketReturn   = "Market Return"
	LabelExpectedReturn = "Expected Return"
)

// ComparisonEntry is one bar of the input comparison, in percent.
type ComparisonEntry struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ComparisonSet always has exactly three entries, in label order above.
type ComparisonSet []ComparisonEntry

// BuildComparisonSet scales the two rates and the solved value by 100. The solved value fills the
// "Expected Return" bar whichever quantity was unknown. Absent values contribute 0.
func BuildComparisonSet(riskFreeRate, marketReturn, solvedValue model.Optional) ComparisonSet {
	return ComparisonSet{
		{Label: LabelRiskFreeRate, Value: riskFreeRate.Scale(100).Or(0)},
		{Label: LabelMarketReturn, Value: marketReturn.Scale(100).Or(0)},
		{Label: LabelExpectedReturn, Value: solvedValue.Scale(100).Or(0)},
	}
}

// Map returns the set keyed by label.
func (s ComparisonSet) Map() map[string]float64 {
	out := make(map[string]float64, len(s))
	for _, e := range s {
		out[e.Label] = e.Value
	}
	return out
}
