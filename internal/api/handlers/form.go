package handlers

import (
	"fmt"
	"net/url"
	"strconv"

	"capm-calculator/internal/api/models"
	"capm-calculator/internal/config"
	"capm-calculator/internal/model"

	"github.com/gin-gonic/gin"
)

func abortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// formValue is one input in form units (percent for rates).
func formValue(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

// collectForm picks the three known inputs, falling back to defaults, and rejects negatives
// since every form field has a minimum of 0.
func collectForm(req models.CalculateRequest, unknown model.Quantity, d config.FormDefaults) (models.FormValues, error) {
	var out models.FormValues
	set := func(q model.Quantity, dst **float64, v *float64, def float64) error {
		if q == unknown {
			return nil
		}
		x := formValue(v, def)
		if x < 0 {
			return fmt.Errorf("%s must be >= 0, got %v", q, x)
		}
		*dst = &x
		return nil
	}
	if err := set(model.QuantityRiskFreeRate, &out.RiskFreeRate, req.RiskFreeRate, d.RiskFreeRatePct); err != nil {
		return out, err
	}
	if err := set(model.QuantityBeta, &out.Beta, req.Beta, d.Beta); err != nil {
		return out, err
	}
	if err := set(model.QuantityMarketReturn, &out.MarketReturn, req.MarketReturn, d.MarketReturnPct); err != nil {
		return out, err
	}
	if err := set(model.QuantityExpectedReturn, &out.ExpectedReturn, req.ExpectedReturn, d.ExpectedReturnPct); err != nil {
		return out, err
	}
	return out, nil
}

// toInputs converts form units to solver units (percent -> fraction).
func toInputs(f models.FormValues) model.CapmInputs {
	return model.CapmInputs{
		RiskFreeRate:   model.OptionalFromPtr(f.RiskFreeRate).Scale(0.01),
		Beta:           model.OptionalFromPtr(f.Beta),
		MarketReturn:   model.OptionalFromPtr(f.MarketReturn).Scale(0.01),
		ExpectedReturn: model.OptionalFromPtr(f.ExpectedReturn).Scale(0.01),
	}
}

// chartQuery encodes resolved inputs back into form units for the chart endpoints.
func chartQuery(in model.CapmInputs) url.Values {
	q := url.Values{}
	add := func(key string, o model.Optional, k float64) {
		if v, ok := o.Get(); ok {
			q.Set(key, strconv.FormatFloat(v*k, 'f', -1, 64))
		}
	}
	add("risk_free_rate", in.RiskFreeRate, 100)
	add("beta", in.Beta, 1)
	add("market_return", in.MarketReturn, 100)
	add("expected_return", in.ExpectedReturn, 100)
	return q
}
