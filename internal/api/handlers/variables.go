package handlers

import (
	"net/http"

	"capm-calculator/internal/api/models"
	"capm-calculator/internal/config"
	"capm-calculator/internal/model"

	"github.com/gin-gonic/gin"
)

// VariableHandler describes the calculator inputs.
type VariableHandler struct {
	defaults config.FormDefaults
}

// NewVariableHandler creates a new variable handler
func NewVariableHandler(defaults config.FormDefaults) *VariableHandler {
	return &VariableHandler{defaults: defaults}
}

// ListVariables handles GET /api/v1/variables
func (h *VariableHandler) ListVariables(c *gin.Context) {
	vars := make([]models.VariableInfo, 0, len(model.Quantities))
	for _, q := range model.Quantities {
		unit := "ratio"
		if q.IsRate() {
			unit = "percent"
		}
		vars = append(vars, models.VariableInfo{
			Name:    string(q),
			Label:   q.Label(),
			Unit:    unit,
			Default: h.defaultFor(q),
			Min:     0,
			Step:    0.1,
		})
	}
	c.JSON(http.StatusOK, gin.H{"variables": vars})
}

func (h *VariableHandler) defaultFor(q model.Quantity) float64 {
	switch q {
	case model.QuantityRiskFreeRate:
		return h.defaults.RiskFreeRatePct
	case model.QuantityBeta:
		return h.defaults.Beta
	case model.QuantityMarketReturn:
		return h.defaults.MarketReturnPct
	default:
		return h.defaults.ExpectedReturnPct
	}
}
