// Package chart builds the Security Market Line and input comparison data
// and renders them as images.
package chart

import "capm-calculator/internal/model"

const (
	DefaultSampleCount = 100
	DefaultBetaMax     = 2.0
)

// Point is one (beta, expected return %) sample on the SML.
type Point struct {
	Beta           float64 `json:"beta"`
	ExpectedReturn float64 `json:"expected_return"`
}

type curveOptions struct {
	sampleCount int
	betaMax     float64
}

// CurveOption tweaks BuildSMLCurve.
type CurveOption func(*curveOptions)

func WithSampleCount(n int) CurveOption {
	return func(o *curveOptions) { o.sampleCount = n }
}

func WithBetaMax(b float64) CurveOption {
	return func(o *curveOptions) { o.betaMax = b }
}

// BuildSMLCurve samples the SML at evenly spaced betas over [0, betaMax], both ends included.
// Rates are fractions in, percent out. ok is false, and no curve is built, when either rate is absent.
func BuildSMLCurve(riskFreeRate, marketReturn model.Optional, opts ...CurveOption) (curve []Point, ok bool) {
	rf, okRF := riskFreeRate.Get()
	rm, okRM := marketReturn.Get()
	if !okRF || !okRM {
		return nil, false
	}

	o := curveOptions{sampleCount: DefaultSampleCount, betaMax: DefaultBetaMax}
	for _, opt := range opts {
		opt(&o)
	}
	if o.sampleCount <= 0 {
		return []Point{}, true
	}

	rfPct := rf * 100
	rmPct := rm * 100
	out := make([]Point, o.sampleCount)
	step := 0.0
	if o.sampleCount > 1 {
		step = o.betaMax / float64(o.sampleCount-1)
	}
	for i := range out {
		beta := float64(i) * step
		if i == o.sampleCount-1 && o.sampleCount > 1 {
			beta = o.betaMax
		}
		out[i] = Point{Beta: beta, ExpectedReturn: rfPct + beta*(rmPct-rfPct)}
	}
	return out, true
}

// AssetPoint is the overlay marker for the asset. Expected return is a fraction in, percent out.
func AssetPoint(beta, expectedReturn model.Optional) (Point, bool) {
	b, okB := beta.Get()
	er, okER := expectedReturn.Get()
	if !okB || !okER {
		return Point{}, false
	}
	return Point{Beta: b, ExpectedReturn: er * 100}, true
}
