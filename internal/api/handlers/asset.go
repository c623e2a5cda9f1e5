package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AssetHandler serves the optional decorative image shown after a successful calculation.
type AssetHandler struct {
	path   string
	logger logrus.FieldLogger
}

// NewAssetHandler creates a new asset handler
func NewAssetHandler(path string, logger logrus.FieldLogger) *AssetHandler {
	return &AssetHandler{path: path, logger: logger.WithField("component", "asset")}
}

// Asset handles GET /api/v1/asset
func (h *AssetHandler) Asset(c *gin.Context) {
	info, err := os.Stat(h.path)
	if h.path == "" || err != nil || info.IsDir() {
		h.logger.WithField("path", h.path).Warn("decorative image not found")
		abortWithError(c, http.StatusNotFound, "ASSET_NOT_FOUND", "Decorative image not found.")
		return
	}
	c.File(h.path)
}
