// Package capm solves the Capital Asset Pricing Model identity
//
//	expectedReturn = riskFreeRate + beta * (marketReturn - riskFreeRate)
//
// for whichever one of its four quantities is absent.
package capm

import (
	"errors"
	"fmt"

	"capm-calculator/internal/model"
)

var (
	// ErrInvalidInputCombination means zero or more than one quantity was absent.
	ErrInvalidInputCombination = errors.New("invalid input combination")
	// ErrDivisionByZero means the rearrangement for the chosen unknown divides by zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// SolverError is returned by Solve. Kind is one of the Err* sentinels above,
// so callers can use errors.Is.
type SolverError struct {
	Kind    error
	Unknown model.Quantity // empty for ErrInvalidInputCombination
	Detail  string
}

func (e *SolverError) Error() string {
	if e.Unknown == "" {
		return fmt.Sprintf("%v: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("solving for %s: %v: %s", e.Unknown, e.Kind, e.Detail)
}

func (e *SolverError) Unwrap() error { return e.Kind }

// Solution is the solved quantity. Value is a fraction for rates and a plain number for beta.
type Solution struct {
	Unknown model.Quantity
	Value   float64
}

// ExpectedReturn evaluates the CAPM identity.
func ExpectedReturn(riskFreeRate, beta, marketReturn float64) float64 {
	return riskFreeRate + beta*(marketReturn-riskFreeRate)
}

// Solve returns the single absent quantity of in.
// No rounding is applied; zero checks are exact comparisons.
func Solve(in model.CapmInputs) (Solution, error) {
	absent := in.AbsentQuantities()
	if len(absent) != 1 {
		return Solution{}, &SolverError{
			Kind:   ErrInvalidInputCombination,
			Detail: fmt.Sprintf("exactly one quantity must be unknown, got %d", len(absent)),
		}
	}
	unknown := absent[0]

	rf, _ := in.RiskFreeRate.Get()
	beta, _ := in.Beta.Get()
	rm, _ := in.MarketReturn.Get()
	er, _ := in.ExpectedReturn.Get()

	var v float64
	switch unknown {
	case model.QuantityRiskFreeRate:
		if beta == 1 {
			return Solution{}, divByZero(unknown, "beta equals 1")
		}
		v = (er - beta*rm) / (1 - beta)
	case model.QuantityBeta:
		if rm == rf {
			return Solution{}, divByZero(unknown, "market return equals risk-free rate")
		}
		v = (er - rf) / (rm - rf)
	case model.QuantityMarketReturn:
		if beta == 0 {
			return Solution{}, divByZero(unknown, "beta equals 0")
		}
		v = (er-rf)/beta + rf
	case model.QuantityExpectedReturn:
		v = ExpectedReturn(rf, beta, rm)
	}
	return Solution{Unknown: unknown, Value: v}, nil
}

// Resolve fills the solved quantity into in.
func Resolve(in model.CapmInputs, sol Solution) model.CapmInputs {
	return in.With(sol.Unknown, model.Present(sol.Value))
}

func divByZero(q model.Quantity, detail string) *SolverError {
	return &SolverError{Kind: ErrDivisionByZero, Unknown: q, Detail: detail}
}
