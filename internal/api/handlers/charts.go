package handlers

import (
	"net/http"

	"capm-calculator/internal/api/models"
	"capm-calculator/internal/chart"
	"capm-calculator/internal/config"
	"capm-calculator/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ChartHandler renders chart images.
type ChartHandler struct {
	cfg    *config.Config
	cache  *chart.RenderCache
	logger logrus.FieldLogger
}

// NewChartHandler creates a new chart handler. cache may be nil.
func NewChartHandler(cfg *config.Config, cache *chart.RenderCache, logger logrus.FieldLogger) *ChartHandler {
	return &ChartHandler{
		cfg:    cfg,
		cache:  cache,
		logger: logger.WithField("component", "charts"),
	}
}

// SML handles GET /api/v1/charts/sml
func (h *ChartHandler) SML(c *gin.Context) {
	q, format, ok := h.bindQuery(c)
	if !ok {
		return
	}
	in := toInputs(models.FormValues{
		RiskFreeRate:   q.RiskFreeRate,
		Beta:           q.Beta,
		MarketReturn:   q.MarketReturn,
		ExpectedReturn: q.ExpectedReturn,
	})
	curve, ok := chart.BuildSMLCurve(in.RiskFreeRate, in.MarketReturn, h.cfg.CurveOptions()...)
	if !ok {
		abortWithError(c, http.StatusBadRequest, "MISSING_RATES", "risk_free_rate and market_return are required to draw the SML")
		return
	}
	var asset *chart.Point
	if p, ok := chart.AssetPoint(in.Beta, in.ExpectedReturn); ok {
		asset = &p
	}

	key := chart.CacheKey("sml", string(format), c.Request.URL.RawQuery)
	h.serve(c, key, format, func(opts chart.RenderOptions) ([]byte, error) {
		return chart.RenderSML(curve, asset, opts)
	})
}

// Comparison handles GET /api/v1/charts/comparison
func (h *ChartHandler) Comparison(c *gin.Context) {
	q, format, ok := h.bindQuery(c)
	if !ok {
		return
	}
	set := chart.BuildComparisonSet(
		model.OptionalFromPtr(q.RiskFreeRate).Scale(0.01),
		model.OptionalFromPtr(q.MarketReturn).Scale(0.01),
		model.OptionalFromPtr(q.SolvedValue).Scale(0.01),
	)

	key := chart.CacheKey("comparison", string(format), c.Request.URL.RawQuery)
	h.serve(c, key, format, func(opts chart.RenderOptions) ([]byte, error) {
		return chart.RenderComparison(set, opts)
	})
}

func (h *ChartHandler) bindQuery(c *gin.Context) (models.ChartQuery, chart.Format, bool) {
	var q models.ChartQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return q, "", false
	}
	format, err := chart.ParseFormat(q.Format)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_FORMAT", err.Error())
		return q, "", false
	}
	return q, format, true
}

func (h *ChartHandler) serve(c *gin.Context, key string, format chart.Format, render func(chart.RenderOptions) ([]byte, error)) {
	if img, ok := h.cache.Get(key); ok {
		c.Header("X-Cache", "HIT")
		c.Data(http.StatusOK, format.ContentType(), img)
		return
	}
	img, err := render(chart.RenderOptions{
		Format: format,
		Width:  h.cfg.Chart.Width,
		Height: h.cfg.Chart.Height,
	})
	if err != nil {
		h.logger.WithError(err).Error("chart render failed")
		abortWithError(c, http.StatusInternalServerError, "RENDER_ERROR", err.Error())
		return
	}
	h.cache.Set(key, img)
	c.Header("X-Cache", "MISS")
	c.Data(http.StatusOK, format.ContentType(), img)
}
