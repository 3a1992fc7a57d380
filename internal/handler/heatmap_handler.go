package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/handshou/rainmap-go/internal/interp"
	"github.com/handshou/rainmap-go/internal/models"
	"github.com/handshou/rainmap-go/internal/service"
	"github.com/handshou/rainmap-go/pkg/response"
)

// HeatmapHandler handles HTTP requests for interpolated heatmap grids
type HeatmapHandler struct {
	service *service.HeatmapService
}

// NewHeatmapHandler creates a new heatmap handler
func NewHeatmapHandler(svc *service.HeatmapService) *HeatmapHandler {
	return &HeatmapHandler{service: svc}
}

// GetHeatmap handles GET /api/v1/rainfall/heatmap
func (h *HeatmapHandler) GetHeatmap(c *gin.Context) {
	var filter models.HeatmapFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "invalid query parameters", err)
		return
	}

	heatmap, err := h.service.Generate(interp.GridOptions{
		Resolution: filter.Resolution,
		Power:      filter.Power,
		BufferKm:   filter.BufferKm,
	})
	if err != nil {
		response.InternalError(c, "failed to generate heatmap", err)
		return
	}

	response.Success(c, heatmap)
}

// GetBoundary handles GET /api/v1/boundary
func (h *HeatmapHandler) GetBoundary(c *gin.Context) {
	poly := h.service.Boundary()
	if poly.IsEmpty() {
		response.NotFound(c, "no boundary configured")
		return
	}

	vertices := poly.Vertices()

	// GeoJSON-style (longitude, latitude) pairs for the renderer.
	ring := make([][2]float64, 0, len(vertices))
	for _, v := range vertices {
		ring = append(ring, [2]float64{v.Lon, v.Lat})
	}

	response.Success(c, gin.H{
		"ring":  ring,
		"count": len(ring),
	})
}
