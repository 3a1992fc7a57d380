package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/handshou/rainmap-go/internal/models"
	"github.com/handshou/rainmap-go/internal/repository"
	"github.com/handshou/rainmap-go/internal/service"
	"github.com/handshou/rainmap-go/pkg/response"
)

// RainfallHandler handles HTTP requests for rainfall reading batches
type RainfallHandler struct {
	service *service.RainfallService
}

// NewRainfallHandler creates a new rainfall handler
func NewRainfallHandler(svc *service.RainfallService) *RainfallHandler {
	return &RainfallHandler{service: svc}
}

// GetLatest handles GET /api/v1/rainfall/latest
func (h *RainfallHandler) GetLatest(c *gin.Context) {
	batch, err := h.service.Latest()
	if err != nil {
		if errors.Is(err, repository.ErrNoReadings) {
			response.NotFound(c, "no rainfall readings stored yet")
			return
		}
		response.InternalError(c, "failed to load latest readings", err)
		return
	}

	response.Success(c, batch)
}

// GetHistory handles GET /api/v1/rainfall/history
func (h *RainfallHandler) GetHistory(c *gin.Context) {
	from, err := parseTimeParam(c.Query("from"))
	if err != nil {
		response.BadRequest(c, "invalid from parameter", err)
		return
	}
	to, err := parseTimeParam(c.Query("to"))
	if err != nil {
		response.BadRequest(c, "invalid to parameter", err)
		return
	}
	if !to.After(from) {
		response.BadRequest(c, "to must be after from", nil)
		return
	}

	batches, err := h.service.History(from, to)
	if err != nil {
		if errors.Is(err, repository.ErrNoReadings) {
			response.NotFound(c, "no rainfall readings in range")
			return
		}
		response.InternalError(c, "failed to load reading history", err)
		return
	}

	response.Success(c, gin.H{
		"from":    from,
		"to":      to,
		"batches": batches,
		"count":   len(batches),
	})
}

// Ingest handles POST /api/v1/rainfall/readings (JWT-protected backfill).
func (h *RainfallHandler) Ingest(c *gin.Context) {
	var batch models.ReadingBatch
	if err := c.ShouldBindJSON(&batch); err != nil {
		response.BadRequest(c, "invalid reading batch", err)
		return
	}

	if err := h.service.Ingest(batch); err != nil {
		if errors.Is(err, service.ErrEmptyBatch) {
			response.BadRequest(c, "reading batch is empty", nil)
			return
		}
		response.InternalError(c, "failed to store reading batch", err)
		return
	}

	response.Success(c, gin.H{"stored": len(batch.Readings)})
}

// parseTimeParam accepts RFC3339 or Unix seconds.
func parseTimeParam(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(unix, 0).UTC(), nil
	}
	return time.Time{}, errors.New("use RFC3339 or unix seconds")
}
