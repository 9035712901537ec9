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
	"github.com/creatorbridge/api/pkg/metrics"
	"github.com/creatorbridge/api/pkg/models"
	"github.com/creatorbridge/api/pkg/onboarding"
)

// OnboardingHandler handles onboarding kit and document lifecycle endpoints.
type OnboardingHandler struct {
	service   *onboarding.Service
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewOnboardingHandler creates a new onboarding handler
func NewOnboardingHandler(service *onboarding.Service, m *metrics.Metrics) *OnboardingHandler {
	return &OnboardingHandler{
		service:   service,
		metrics:   m,
		validator: validator.New(),
	}
}

// GetKit godoc
// @Summary Get a client's onboarding kit
// @Description Returns all eight months with derived lock state and the current month
// @Tags Onboarding
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} models.KitResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/onboarding-kit [get]
func (h *OnboardingHandler) GetKit(c echo.Context) error {
	clientID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.BadRequest(c, "invalid_id", "Invalid client ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.service.GetKit(ctx, clientID)
	if err != nil {
		if err == onboarding.ErrClientNotFound {
			return errors.NotFoundError(c)
		}
		return errors.InternalError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// GenerateMonth godoc
// @Summary Generate a month's documents
// @Description Generates all five documents for an unlocked month in a single operation
// @Tags Onboarding
// @Produce json
// @Param id path int true "Client ID"
// @Param month path int true "Month (1-8)"
// @Success 201 {object} models.MonthResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/onboarding-kit/month/{month}/generate [post]
func (h *OnboardingHandler) GenerateMonth(c echo.Context) error {
	userID, _ := c.Get("user_id").(int)

	clientID, month, err := h.kitParams(c)
	if err != nil {
		return errors.BadRequest(c, "invalid_path", err.Error())
	}

	// Content generation can call the LLM once per document.
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Minute)
	defer cancel()

	resp, err := h.service.GenerateMonth(ctx, clientID, month, userID)
	if err != nil {
		return h.mapError(c, err)
	}

	if h.metrics != nil {
		h.metrics.DocumentsGenerated.Add(float64(len(resp.Documents)))
	}
	return c.JSON(http.StatusCreated, resp)
}

// MarkSent godoc
// @Summary Mark a document as sent
// @Tags Onboarding
// @Produce json
// @Param id path int true "Client ID"
// @Param month path int true "Month (1-8)"
// @Param slot path int true "Document slot (1-5)"
// @Success 200 {object} models.DocumentResponse
// @Failure 409 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/onboarding-kit/month/{month}/document/{slot}/sent [post]
func (h *OnboardingHandler) MarkSent(c echo.Context) error {
	clientID, month, slot, err := h.documentParams(c)
	if err != nil {
		return errors.BadRequest(c, "invalid_path", err.Error())
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.service.MarkSent(ctx, clientID, month, slot)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// MarkViewed godoc
// @Summary Mark a document as viewed
// @Tags Onboarding
// @Produce json
// @Param id path int true "Client ID"
// @Param month path int true "Month (1-8)"
// @Param slot path int true "Document slot (1-5)"
// @Success 200 {object} models.DocumentResponse
// @Failure 409 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/onboarding-kit/month/{month}/document/{slot}/viewed [post]
func (h *OnboardingHandler) MarkViewed(c echo.Context) error {
	clientID, month, slot, err := h.documentParams(c)
	if err != nil {
		return errors.BadRequest(c, "invalid_path", err.Error())
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.service.MarkViewed(ctx, clientID, month, slot)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Approve godoc
// @Summary Approve a document
// @Description Approval is terminal; approving the fifth document of a month unlocks the next one
// @Tags Onboarding
// @Produce json
// @Param id path int true "Client ID"
// @Param month path int true "Month (1-8)"
// @Param slot path int true "Document slot (1-5)"
// @Success 200 {object} models.DocumentResponse
// @Failure 409 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/onboarding-kit/month/{month}/document/{slot}/approve [post]
func (h *OnboardingHandler) Approve(c echo.Context) error {
	userID, _ := c.Get("user_id").(int)

	clientID, month, slot, err := h.documentParams(c)
	if err != nil {
		return errors.BadRequest(c, "invalid_path", err.Error())
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.service.Approve(ctx, clientID, month, slot, userID)
	if err != nil {
		return h.mapError(c, err)
	}

	if h.metrics != nil {
		h.metrics.DocumentsApproved.Inc()
	}
	return c.JSON(http.StatusOK, resp)
}

// RequestRevision godoc
// @Summary Request a revision on a document
// @Tags Onboarding
// @Accept json
// @Produce json
// @Param id path int true "Client ID"
// @Param month path int true "Month (1-8)"
// @Param slot path int true "Document slot (1-5)"
// @Param request body models.RevisionRequest true "Revision notes"
// @Success 200 {object} models.DocumentResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/onboarding-kit/month/{month}/document/{slot}/revision [post]
func (h *OnboardingHandler) RequestRevision(c echo.Context) error {
	userID, _ := c.Get("user_id").(int)

	clientID, month, slot, err := h.documentParams(c)
	if err != nil {
		return errors.BadRequest(c, "invalid_path", err.Error())
	}

	var req models.RevisionRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequest(c, "invalid_request", "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.service.RequestRevision(ctx, clientID, month, slot, req.Notes, userID)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Regenerate godoc
// @Summary Regenerate a document after a revision request
// @Tags Onboarding
// @Produce json
// @Param id path int true "Client ID"
// @Param month path int true "Month (1-8)"
// @Param slot path int true "Document slot (1-5)"
// @Success 200 {object} models.DocumentResponse
// @Failure 409 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/onboarding-kit/month/{month}/document/{slot}/regenerate [post]
func (h *OnboardingHandler) Regenerate(c echo.Context) error {
	clientID, month, slot, err := h.documentParams(c)
	if err != nil {
		return errors.BadRequest(c, "invalid_path", err.Error())
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 60*time.Second)
	defer cancel()

	resp, err := h.service.Regenerate(ctx, clientID, month, slot)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Download godoc
// @Summary Download a document as markdown
// @Tags Onboarding
// @Produce text/markdown
// @Param id path int true "Client ID"
// @Param month path int true "Month (1-8)"
// @Param slot path int true "Document slot (1-5)"
// @Success 200 {string} string "Markdown content"
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/onboarding-kit/month/{month}/document/{slot}/download [get]
func (h *OnboardingHandler) Download(c echo.Context) error {
	clientID, month, slot, err := h.documentParams(c)
	if err != nil {
		return errors.BadRequest(c, "invalid_path", err.Error())
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	filename, content, err := h.service.Download(ctx, clientID, month, slot)
	if err != nil {
		return h.mapError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Blob(http.StatusOK, "text/markdown; charset=utf-8", []byte(content))
}

func (h *OnboardingHandler) kitParams(c echo.Context) (clientID, month int, err error) {
	clientID, err = strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid client ID")
	}
	month, err = strconv.Atoi(c.Param("month"))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month")
	}
	return clientID, month, nil
}

func (h *OnboardingHandler) documentParams(c echo.Context) (clientID, month, slot int, err error) {
	clientID, month, err = h.kitParams(c)
	if err != nil {
		return 0, 0, 0, err
	}
	slot, err = strconv.Atoi(c.Param("slot"))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid document slot")
	}
	return clientID, month, slot, nil
}

func (h *OnboardingHandler) mapError(c echo.Context, err error) error {
	switch err {
	case onboarding.ErrClientNotFound, onboarding.ErrDocumentNotFound, onboarding.ErrNotGenerated:
		return errors.NotFoundError(c)
	case onboarding.ErrInvalidMonth:
		return errors.BadRequest(c, "invalid_month", "Month must be between 1 and 8")
	case onboarding.ErrEmptyRevisionNotes:
		return errors.BadRequest(c, "empty_revision_notes", "Revision notes must not be empty")
	case onboarding.ErrMonthLocked:
		return errors.ConflictError(c, "Month is locked until the previous month is fully approved")
	case onboarding.ErrAlreadyGenerated:
		return errors.ConflictError(c, "Month has already been generated")
	case onboarding.ErrInvalidTransition:
		return errors.ConflictError(c, "Document is not in a state that allows this action")
	default:
		return errors.InternalError(c, err)
	}
}
