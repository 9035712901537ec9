package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/creatorbridge/api/pkg/api/errors"
	"github.com/creatorbridge/api/pkg/leads"
	"github.com/creatorbridge/api/pkg/metrics"
	"github.com/creatorbridge/api/pkg/models"
)

// LeadHandler handles lead pipeline endpoints.
type LeadHandler struct {
	service   *leads.Service
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(service *leads.Service, m *metrics.Metrics) *LeadHandler {
	return &LeadHandler{
		service:   service,
		metrics:   m,
		validator: validator.New(),
	}
}

// Create godoc
// @Summary Create a lead
// @Description Create a lead and start fit analysis in the background. Analysis failure leaves the lead unanalyzed.
// @Tags Leads
// @Accept json
// @Produce json
// @Param request body models.LeadCreateRequest true "Lead details"
// @Success 201 {object} models.LeadResponse
// @Failure 400 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /leads [post]
func (h *LeadHandler) Create(c echo.Context) error {
	var req models.LeadCreateRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequest(c, "invalid_request", "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.service.Create(ctx, req)
	if err != nil {
		return errors.DatabaseError(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// Get godoc
// @Summary Get a lead
// @Tags Leads
// @Produce json
// @Param id path int true "Lead ID"
// @Success 200 {object} models.LeadResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /leads/{id} [get]
func (h *LeadHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.BadRequest(c, "invalid_id", "Invalid lead ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.Get(ctx, id)
	if err != nil {
		if err == leads.ErrLeadNotFound {
			return errors.NotFoundError(c)
		}
		return errors.InternalError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary List leads
// @Tags Leads
// @Produce json
// @Param stage query string false "Filter by pipeline stage"
// @Param search query string false "Search name, email, company"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} models.LeadListResponse
// @Security BearerAuth
// @Router /leads [get]
func (h *LeadHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	resp, err := h.service.List(ctx, leads.ListFilters{
		Stage:  c.QueryParam("stage"),
		Search: c.QueryParam("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return errors.DatabaseError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// UpdateStage godoc
// @Summary Move a lead through the pipeline
// @Tags Leads
// @Accept json
// @Produce json
// @Param id path int true "Lead ID"
// @Param request body models.LeadStageUpdateRequest true "New stage"
// @Success 200 {object} models.LeadResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /leads/{id}/stage [patch]
func (h *LeadHandler) UpdateStage(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.BadRequest(c, "invalid_id", "Invalid lead ID")
	}

	var req models.LeadStageUpdateRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequest(c, "invalid_request", "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.service.UpdateStage(ctx, id, userID, req)
	if err != nil {
		if err == leads.ErrLeadNotFound {
			return errors.NotFoundError(c)
		}
		return errors.InternalError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// StageHistory godoc
// @Summary Get a lead's stage history
// @Tags Leads
// @Produce json
// @Param id path int true "Lead ID"
// @Success 200 {array} models.LeadStageHistoryResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /leads/{id}/stage-history [get]
func (h *LeadHandler) StageHistory(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.BadRequest(c, "invalid_id", "Invalid lead ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.GetStageHistory(ctx, id)
	if err != nil {
		if err == leads.ErrLeadNotFound {
			return errors.NotFoundError(c)
		}
		return errors.InternalError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Reanalyze godoc
// @Summary Re-run fit analysis for a lead
// @Description Synchronous retry for leads whose background analysis failed
// @Tags Leads
// @Produce json
// @Param id path int true "Lead ID"
// @Success 200 {object} models.LeadResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /leads/{id}/analyze [post]
func (h *LeadHandler) Reanalyze(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.BadRequest(c, "invalid_id", "Invalid lead ID")
	}

	// Analysis calls an external model; allow it more time than a
	// plain database endpoint.
	ctx, cancel := context.WithTimeout(c.Request().Context(), 90*time.Second)
	defer cancel()

	resp, err := h.service.Reanalyze(ctx, id)
	if err != nil {
		if err == leads.ErrLeadNotFound {
			return errors.NotFoundError(c)
		}
		if h.metrics != nil {
			h.metrics.LeadsAnalyzed.WithLabelValues("failed").Inc()
		}
		return errors.UpstreamError(c, "analysis", err)
	}

	if h.metrics != nil {
		h.metrics.LeadsAnalyzed.WithLabelValues("success").Inc()
	}
	return c.JSON(http.StatusOK, resp)
}

// Convert godoc
// @Summary Convert a lead into a client
// @Description One-way conversion; converting an already converted lead returns 409
// @Tags Leads
// @Produce json
// @Param id path int true "Lead ID"
// @Success 201 {object} models.ClientResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /leads/{id}/convert [post]
func (h *LeadHandler) Convert(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.BadRequest(c, "invalid_id", "Invalid lead ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.service.Convert(ctx, id, userID)
	if err != nil {
		switch err {
		case leads.ErrLeadNotFound:
			return errors.NotFoundError(c)
		case leads.ErrAlreadyConverted:
			return errors.ConflictError(c, "Lead has already been converted")
		default:
			return errors.InternalError(c, err)
		}
	}
	return c.JSON(http.StatusCreated, resp)
}

// StageCounts godoc
// @Summary Lead counts per pipeline stage
// @Tags Leads
// @Produce json
// @Success 200 {object} map[string]int
// @Security BearerAuth
// @Router /leads/stage-counts [get]
func (h *LeadHandler) StageCounts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	counts, err := h.service.CountsByStage(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}
	return c.JSON(http.StatusOK, counts)
}
