package chart

import (
	"testing"

	"capm-calculator/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSMLCurve_Defaults(t *testing.T) {
	curve, ok := BuildSMLCurve(model.Present(0.02), model.Present(0.08))
	require.True(t, ok)
	require.Len(t, curve, 100)

	assert.Equal(t, 0.0, curve[0].Beta)
	assert.InDelta(t, 2.0, curve[0].ExpectedReturn, 1e-9)
	assert.Equal(t, 2.0, curve[99].Beta)
	assert.InDelta(t, 14.0, curve[99].ExpectedReturn, 1e-9)

	for i := 1; i < len(curve); i++ {
		assert.Greater(t, curve[i].Beta, curve[i-1].Beta)
		assert.InDelta(t, 2.0/99, curve[i].Beta-curve[i-1].Beta, 1e-12)
	}
}

func TestBuildSMLCurve_Options(t *testing.T) {
	curve, ok := BuildSMLCurve(model.Present(0.03), model.Present(0.07), WithSampleCount(5), WithBetaMax(3))
	require.True(t, ok)
	require.Len(t, curve, 5)
	assert.Equal(t, []float64{0, 0.75, 1.5, 2.25, 3}, betas(curve))
	assert.InDelta(t, 3+3*(7-3), curve[4].ExpectedReturn, 1e-9)

	one, ok := BuildSMLCurve(model.Present(0.03), model.Present(0.07), WithSampleCount(1))
	require.True(t, ok)
	assert.Equal(t, []Point{{Beta: 0, ExpectedReturn: 3}}, one)

	none, ok := BuildSMLCurve(model.Present(0.03), model.Present(0.07), WithSampleCount(0))
	require.True(t, ok)
	assert.Empty(t, none)
}

func TestBuildSMLCurve_DegradedWhenRateAbsent(t *testing.T) {
	curve, ok := BuildSMLCurve(model.Absent(), model.Present(0.08))
	assert.False(t, ok)
	assert.Nil(t, curve)

	curve, ok = BuildSMLCurve(model.Present(0.02), model.Absent())
	assert.False(t, ok)
	assert.Nil(t, curve)
}

func TestAssetPoint(t *testing.T) {
	p, ok := AssetPoint(model.Present(1.5), model.Present(0.11))
	require.True(t, ok)
	assert.Equal(t, 1.5, p.Beta)
	assert.InDelta(t, 11.0, p.ExpectedReturn, 1e-9)

	_, ok = AssetPoint(model.Absent(), model.Present(0.11))
	assert.False(t, ok)
}

func TestBuildComparisonSet(t *testing.T) {
	set := BuildComparisonSet(model.Present(0.02), model.Present(0.08), model.Present(0.05))
	require.Len(t, set, 3)
	assert.Equal(t, LabelRiskFreeRate, set[0].Label)
	assert.Equal(t, LabelMarketReturn, set[1].Label)
	assert.Equal(t, LabelExpectedReturn, set[2].Label)
	assert.InDelta(t, 2.0, set[0].Value, 1e-9)
	assert.InDelta(t, 8.0, set[1].Value, 1e-9)
	assert.InDelta(t, 5.0, set[2].Value, 1e-9)
}

func TestBuildComparisonSet_SolvedBeta(t *testing.T) {
	set := BuildComparisonSet(model.Present(0.02), model.Present(0.08), model.Present(0.5))
	assert.InDelta(t, 50.0, set.Map()[LabelExpectedReturn], 1e-9)
}

func TestBuildComparisonSet_AbsentContributesZero(t *testing.T) {
	for _, set := range []ComparisonSet{
		BuildComparisonSet(model.Absent(), model.Present(0.08), model.Present(0.05)),
		BuildComparisonSet(model.Absent(), model.Absent(), model.Present(0.05)),
		BuildComparisonSet(model.Absent(), model.Absent(), model.Absent()),
	} {
		m := set.Map()
		assert.Len(t, m, 3)
		assert.Contains(t, m, LabelRiskFreeRate)
		assert.Contains(t, m, LabelMarketReturn)
		assert.Contains(t, m, LabelExpectedReturn)
		assert.Equal(t, 0.0, m[LabelRiskFreeRate])
	}
}

func betas(curve []Point) []float64 {
	out := make([]float64, len(curve))
	for i, p := range curve {
		out[i] = p.Beta
	}
	return out
}
