package model

// CapmInputs holds one calculation request.
// Units:
// - RiskFreeRate, MarketReturn, ExpectedReturn: fraction (0.02 = 2%)
// - Beta: dimensionless
//
// Exactly one field is expected to be absent: that is the quantity to solve for.
type CapmInputs struct {
	RiskFreeRate   Optional
	Beta           Optional
	MarketReturn   Optional
	ExpectedReturn Optional
}

func (in CapmInputs) Get(q Quantity) Optional {
	switch q {
	case QuantityRiskFreeRate:
		return in.RiskFreeRate
	case QuantityBeta:
		return in.Beta
	case QuantityMarketReturn:
		return in.MarketReturn
	case QuantityExpectedReturn:
		return in.ExpectedReturn
	}
	return Absent()
}

// With returns a copy with q set to v.
func (in CapmInputs) With(q Quantity, v Optional) CapmInputs {
	out := in
	switch q {
	case QuantityRiskFreeRate:
		out.RiskFreeRate = v
	case QuantityBeta:
		out.Beta = v
	case QuantityMarketReturn:
		out.MarketReturn = v
	case QuantityExpectedReturn:
		out.ExpectedReturn = v
	}
	return out
}

// AbsentQuantities lists the absent fields in selector order.
func (in CapmInputs) AbsentQuantities() []Quantity {
	var out []Quantity
	for _, q := range Quantities {
		if !in.Get(q).IsPresent() {
			out = append(out, q)
		}
	}
	return out
}
