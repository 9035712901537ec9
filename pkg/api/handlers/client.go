package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/creatorbridge/api/pkg/api/errors"
	"github.com/creatorbridge/api/pkg/audit"
	"github.com/creatorbridge/api/pkg/clients"
	"github.com/creatorbridge/api/pkg/health"
	"github.com/creatorbridge/api/pkg/metrics"
	"github.com/creatorbridge/api/pkg/models"
)

// ClientHandler handles client CRM endpoints.
type ClientHandler struct {
	service     *clients.Service
	health      *health.Service
	auditLogger *audit.Service
	metrics     *metrics.Metrics
	validator   *validator.Validate
}

// NewClientHandler creates a new client handler
func NewClientHandler(service *clients.Service, healthSvc *health.Service, auditLogger *audit.Service, m *metrics.Metrics) *ClientHandler {
	return &ClientHandler{
		service:     service,
		health:      healthSvc,
		auditLogger: auditLogger,
		metrics:     m,
		validator:   validator.New(),
	}
}

// Get godoc
// @Summary Get a client
// @Description Health status is derived from the stored score on every read
// @Tags Clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} models.ClientResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.BadRequest(c, "invalid_id", "Invalid client ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.Get(ctx, id)
	if err != nil {
		if err == clients.ErrClientNotFound {
			return errors.NotFoundError(c)
		}
		return errors.InternalError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary List clients
// @Tags Clients
// @Produce json
// @Param journey_stage query string false "Filter by journey stage"
// @Param health_status query string false "Filter by derived health status (green, yellow, red)"
// @Param search query string false "Search name, email, company"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} models.ClientListResponse
// @Security BearerAuth
// @Router /clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	resp, err := h.service.List(ctx, clients.ListFilters{
		JourneyStage: c.QueryParam("journey_stage"),
		HealthStatus: c.QueryParam("health_status"),
		Search:       c.QueryParam("search"),
		Page:         page,
		Limit:        limit,
	})
	if err != nil {
		return errors.DatabaseError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Update a client
// @Description Patch journey stage and progress; a progress change refreshes the health score
// @Tags Clients
// @Accept json
// @Produce json
// @Param id path int true "Client ID"
// @Param request body models.ClientUpdateRequest true "Patch"
// @Success 200 {object} models.ClientResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /clients/{id} [patch]
func (h *ClientHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.BadRequest(c, "invalid_id", "Invalid client ID")
	}

	var req models.ClientUpdateRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequest(c, "invalid_request", "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.service.Update(ctx, id, req)
	if err != nil {
		if err == clients.ErrClientNotFound {
			return errors.NotFoundError(c)
		}
		return errors.InternalError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// RecomputeHealth godoc
// @Summary Recompute a client's health score
// @Tags Clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} health.Result
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/health/recompute [post]
func (h *ClientHandler) RecomputeHealth(c echo.Context) error {
	userID, _ := c.Get("user_id").(int)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.BadRequest(c, "invalid_id", "Invalid client ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	result, err := h.health.Recompute(ctx, id)
	if err != nil {
		if err == health.ErrClientNotFound {
			return errors.NotFoundError(c)
		}
		return errors.InternalError(c, err)
	}

	if h.metrics != nil {
		h.metrics.HealthRecomputes.Inc()
	}
	h.auditLogger.LogHealthRecomputed(ctx, userID, id, result.Score)
	return c.JSON(http.StatusOK, result)
}

// CreateMilestone godoc
// @Summary Create a milestone
// @Tags Clients
// @Accept json
// @Produce json
// @Param id path int true "Client ID"
// @Param request body models.MilestoneCreateRequest true "Milestone"
// @Success 201 {object} models.MilestoneResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/milestones [post]
func (h *ClientHandler) CreateMilestone(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.BadRequest(c, "invalid_id", "Invalid client ID")
	}

	var req models.MilestoneCreateRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequest(c, "invalid_request", "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.service.CreateMilestone(ctx, id, req)
	if err != nil {
		if err == clients.ErrClientNotFound {
			return errors.NotFoundError(c)
		}
		return errors.InternalError(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// ListMilestones godoc
// @Summary List a client's milestones
// @Tags Clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {array} models.MilestoneResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/milestones [get]
func (h *ClientHandler) ListMilestones(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.BadRequest(c, "invalid_id", "Invalid client ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.ListMilestones(ctx, id)
	if err != nil {
		if err == clients.ErrClientNotFound {
			return errors.NotFoundError(c)
		}
		return errors.InternalError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// UpdateMilestoneStatus godoc
// @Summary Update a milestone's status
// @Description Completing a milestone refreshes the client's health score
// @Tags Clients
// @Accept json
// @Produce json
// @Param id path int true "Client ID"
// @Param milestoneId path int true "Milestone ID"
// @Param request body models.MilestoneStatusRequest true "New status"
// @Success 200 {object} models.MilestoneResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/milestones/{milestoneId}/status [patch]
func (h *ClientHandler) UpdateMilestoneStatus(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.BadRequest(c, "invalid_id", "Invalid client ID")
	}
	milestoneID, err := strconv.Atoi(c.Param("milestoneId"))
	if err != nil {
		return errors.BadRequest(c, "invalid_id", "Invalid milestone ID")
	}

	var req models.MilestoneStatusRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequest(c, "invalid_request", "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.service.UpdateMilestoneStatus(ctx, id, milestoneID, req.Status)
	if err != nil {
		if err == clients.ErrMilestoneNotFound {
			return errors.NotFoundError(c)
		}
		return errors.InternalError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// CreateActivity godoc
// @Summary Record an activity
// @Tags Clients
// @Accept json
// @Produce json
// @Param id path int true "Client ID"
// @Param request body models.ActivityCreateRequest true "Activity"
// @Success 201 {object} models.ActivityResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/activities [post]
func (h *ClientHandler) CreateActivity(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.BadRequest(c, "invalid_id", "Invalid client ID")
	}

	var req models.ActivityCreateRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequest(c, "invalid_request", "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.service.CreateActivity(ctx, id, req)
	if err != nil {
		if err == clients.ErrClientNotFound {
			return errors.NotFoundError(c)
		}
		return errors.InternalError(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// ListActivities godoc
// @Summary List a client's activities
// @Tags Clients
// @Produce json
// @Param id path int true "Client ID"
// @Param limit query int false "Max entries (default 50)"
// @Success 200 {array} models.ActivityResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/activities [get]
func (h *ClientHandler) ListActivities(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.BadRequest(c, "invalid_id", "Invalid client ID")
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.ListActivities(ctx, id, limit)
	if err != nil {
		if err == clients.ErrClientNotFound {
			return errors.NotFoundError(c)
		}
		return errors.InternalError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}
