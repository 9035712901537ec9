package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/creatorbridge/api/pkg/analytics"
	"github.com/creatorbridge/api/pkg/api/errors"
)

// AnalyticsHandler handles aggregate reporting endpoints.
type AnalyticsHandler struct {
	service *analytics.Service
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(service *analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Overview godoc
// @Summary Pipeline overview
// @Description Lead, client, and application aggregates; cached for five minutes
// @Tags Analytics
// @Produce json
// @Success 200 {object} models.AnalyticsOverview
// @Security BearerAuth
// @Router /analytics/overview [get]
func (h *AnalyticsHandler) Overview(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.service.Overview(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// DocumentPerformance godoc
// @Summary Onboarding document performance
// @Description Per-month generation, approval, and revision figures; cached for five minutes
// @Tags Analytics
// @Produce json
// @Success 200 {object} models.DocumentPerformance
// @Security BearerAuth
// @Router /analytics/document-performance [get]
func (h *AnalyticsHandler) DocumentPerformance(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.service.DocumentPerformance(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}
