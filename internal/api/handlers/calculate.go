package handlers

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strconv"
	"time"

	"capm-calculator/internal/api/models"
	"capm-calculator/internal/capm"
	"capm-calculator/internal/chart"
	"capm-calculator/internal/config"
	"capm-calculator/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CalculateHandler serves the calculator form submission.
type CalculateHandler struct {
	cfg    *config.Config
	logger logrus.FieldLogger
}

// NewCalculateHandler creates a new calculate handler
func NewCalculateHandler(cfg *config.Config, logger logrus.FieldLogger) *CalculateHandler {
	return &CalculateHandler{
		cfg:    cfg,
		logger: logger.WithField("component", "calculate"),
	}
}

// Calculate handles POST /api/v1/calculate
func (h *CalculateHandler) Calculate(c *gin.Context) {
	var req models.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	unknown, err := model.ParseQuantity(req.Unknown)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_UNKNOWN", err.Error())
		return
	}
	form, err := collectForm(req, unknown, h.cfg.Defaults)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	inputs := toInputs(form)
	sol, solveErr := capm.Solve(inputs)

	if err := h.wait(c.Request.Context()); err != nil {
		h.logger.WithError(err).Debug("client went away during processing delay")
		c.Abort()
		return
	}

	resp := models.CalculateResponse{
		ID:      uuid.NewString(),
		Unknown: string(unknown),
		Label:   unknown.Label(),
		Inputs:  form,
	}
	log := h.logger.WithFields(logrus.Fields{"id": resp.ID, "unknown": unknown})

	// The curve only uses rates the user typed in; an unknown rate means no curve.
	curve, hasCurve := chart.BuildSMLCurve(inputs.RiskFreeRate, inputs.MarketReturn, h.cfg.CurveOptions()...)
	if hasCurve {
		resp.SML = curve
	}

	status := http.StatusOK
	solved := model.Absent()
	if solveErr != nil {
		status = http.StatusUnprocessableEntity
		resp.Status = "error"
		resp.Message = capm.InvalidInputMessage
		resp.Error = &models.ErrorDetail{
			Code:    solverErrorCode(solveErr),
			Message: capm.InvalidInputMessage,
			Details: map[string]interface{}{"reason": solveErr.Error()},
		}
		log.WithError(solveErr).Info("calculation rejected")
	} else {
		resolved := capm.Resolve(inputs, sol)
		solved = model.Present(sol.Value)
		display := capm.DisplayValue(sol.Unknown, sol.Value)

		resp.Status = "ok"
		resp.Value = &sol.Value
		resp.DisplayValue = &display
		resp.Formatted = capm.FormatResult(sol.Unknown, sol.Value)
		resp.Message = capm.ResultMessage(sol)

		if hasCurve {
			if p, ok := chart.AssetPoint(resolved.Beta, resolved.ExpectedReturn); ok {
				resp.AssetPoint = &p
				inputs = resolved
			}
		}
		h.attachImage(&resp, log)
		log.WithField("value", sol.Value).Info("calculation solved")
	}

	resp.Comparison = chart.BuildComparisonSet(inputs.RiskFreeRate, inputs.MarketReturn, solved)
	resp.ChartURLs = h.chartURLs(inputs, solved, hasCurve)

	c.JSON(status, resp)
}

// wait applies the configured processing delay. It never touches the result.
func (h *CalculateHandler) wait(ctx context.Context) error {
	if h.cfg.Presentation.ProcessingDelay <= 0 {
		return nil
	}
	t := time.NewTimer(h.cfg.Presentation.ProcessingDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// attachImage links the decorative image when it exists; a missing file is only a warning.
func (h *CalculateHandler) attachImage(resp *models.CalculateResponse, log logrus.FieldLogger) {
	path := h.cfg.Presentation.ImagePath
	if path == "" {
		return
	}
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		resp.ImageURL = "/api/v1/asset"
		return
	}
	log.WithField("path", path).Warn("decorative image not found")
	resp.Warnings = append(resp.Warnings, "Decorative image not found.")
}

func (h *CalculateHandler) chartURLs(in model.CapmInputs, solved model.Optional, hasCurve bool) models.ChartURLs {
	var urls models.ChartURLs
	if hasCurve {
		q := chartQuery(in)
		urls.SML = "/api/v1/charts/sml?" + q.Encode()
	}
	cq := chartQuery(model.CapmInputs{
		RiskFreeRate: in.RiskFreeRate,
		MarketReturn: in.MarketReturn,
	})
	if v, ok := solved.Get(); ok {
		cq.Set("solved_value", strconv.FormatFloat(v*100, 'f', -1, 64))
	}
	urls.Comparison = "/api/v1/charts/comparison"
	if enc := cq.Encode(); enc != "" {
		urls.Comparison += "?" + enc
	}
	return urls
}

func solverErrorCode(err error) string {
	if errors.Is(err, capm.ErrDivisionByZero) {
		return "DIVISION_BY_ZERO"
	}
	return "INVALID_INPUT_COMBINATION"
}
