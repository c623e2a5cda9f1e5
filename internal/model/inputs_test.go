package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_ZeroValueIsAbsent(t *testing.T) {
	var o Optional
	assert.False(t, o.IsPresent())
	assert.Equal(t, 7.0, o.Or(7))

	z := Present(0)
	v, ok := z.Get()
	assert.True(t, ok)
	assert.Equal(t, 0.0, v)
}

func TestOptional_FromPtrAndScale(t *testing.T) {
	assert.False(t, OptionalFromPtr(nil).IsPresent())

	x := 2.5
	o := OptionalFromPtr(&x).Scale(2)
	v, ok := o.Get()
	require.True(t, ok)
	assert.Equal(t, 5.0, v)
	assert.False(t, Absent().Scale(2).IsPresent())
}

func TestCapmInputs_AbsentQuantities(t *testing.T) {
	in := CapmInputs{RiskFreeRate: Present(0.02), MarketReturn: Present(0.08)}
	assert.Equal(t, []Quantity{QuantityExpectedReturn, QuantityBeta}, in.AbsentQuantities())

	in = in.With(QuantityBeta, Present(1)).With(QuantityExpectedReturn, Present(0.08))
	assert.Empty(t, in.AbsentQuantities())
}

func TestParseQuantity(t *testing.T) {
	for _, s := range []string{"rf", "risk_free_rate", " RF "} {
		q, err := ParseQuantity(s)
		require.NoError(t, err)
		assert.Equal(t, QuantityRiskFreeRate, q)
	}
	q, err := ParseQuantity("er")
	require.NoError(t, err)
	assert.Equal(t, QuantityExpectedReturn, q)

	_, err = ParseQuantity("alpha")
	assert.Error(t, err)
}

func TestQuantity_Labels(t *testing.T) {
	assert.Equal(t, "Beta (β)", QuantityBeta.Label())
	assert.False(t, QuantityBeta.IsRate())
	assert.True(t, QuantityMarketReturn.IsRate())
	assert.False(t, Quantity("alpha").Valid())
}
