package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/creatorbridge/api/pkg/api/errors"
	"github.com/creatorbridge/api/pkg/applications"
	"github.com/creatorbridge/api/pkg/audit"
	"github.com/creatorbridge/api/pkg/models"
)

// AdminHandler handles the admin application-review panel.
type AdminHandler struct {
	applications *applications.Service
	auditLogger  *audit.Service
	validator    *validator.Validate
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(applicationsSvc *applications.Service, auditLogger *audit.Service) *AdminHandler {
	return &AdminHandler{
		applications: applicationsSvc,
		auditLogger:  auditLogger,
		validator:    validator.New(),
	}
}

// ListApplications godoc
// @Summary List applications for review
// @Tags Admin
// @Produce json
// @Param status query string false "Filter by status"
// @Param search query string false "Search by creator name"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} models.ApplicationListResponse
// @Failure 403 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /admin/applications [get]
func (h *AdminHandler) ListApplications(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	resp, err := h.applications.List(ctx, applications.ListFilters{
		Status: c.QueryParam("status"),
		Search: c.QueryParam("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return errors.DatabaseError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetApplication godoc
// @Summary Get one application
// @Tags Admin
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} models.ApplicationResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /admin/applications/{id} [get]
func (h *AdminHandler) GetApplication(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.BadRequest(c, "invalid_id", "Invalid application ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.applications.Get(ctx, id)
	if err != nil {
		if err == applications.ErrApplicationNotFound {
			return errors.NotFoundError(c)
		}
		return errors.InternalError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// ReviewApplication godoc
// @Summary Review an application
// @Description Patch status, reviewer notes, and tags
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param request body models.ApplicationReviewRequest true "Review patch"
// @Success 200 {object} models.ApplicationResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /admin/applications/{id} [patch]
func (h *AdminHandler) ReviewApplication(c echo.Context) error {
	adminID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.BadRequest(c, "invalid_id", "Invalid application ID")
	}

	var req models.ApplicationReviewRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequest(c, "invalid_request", "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.applications.Review(ctx, adminID, id, req)
	if err != nil {
		if err == applications.ErrApplicationNotFound {
			return errors.NotFoundError(c)
		}
		return errors.InternalError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// ExportApplications godoc
// @Summary Export applications as a spreadsheet
// @Tags Admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /admin/applications/export [get]
func (h *AdminHandler) ExportApplications(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	data, err := h.applications.ExportXLSX(ctx)
	if err != nil {
		return errors.InternalError(c, err)
	}

	filename := fmt.Sprintf("applications-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// RecentAuditLogs godoc
// @Summary List recent audit log entries
// @Tags Admin
// @Produce json
// @Param limit query int false "Max entries (default 50)"
// @Success 200 {array} object
// @Security BearerAuth
// @Router /admin/audit-logs [get]
func (h *AdminHandler) RecentAuditLogs(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 || limit > 500 {
		limit = 50
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	logs, err := h.auditLogger.GetRecentLogs(ctx, limit)
	if err != nil {
		return errors.DatabaseError(c, err)
	}
	return c.JSON(http.StatusOK, logs)
}

// ApplicationStatusCounts godoc
// @Summary Application counts per review status
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]int
// @Security BearerAuth
// @Router /admin/applications/status-counts [get]
func (h *AdminHandler) ApplicationStatusCounts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	counts, err := h.applications.CountsByStatus(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}
	return c.JSON(http.StatusOK, counts)
}
