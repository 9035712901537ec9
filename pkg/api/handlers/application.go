package handlers

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"net/http"

	"github.com/creatorbridge/api/pkg/api/errors"
	"github.com/creatorbridge/api/pkg/applications"
	"github.com/creatorbridge/api/pkg/metrics"
	"github.com/creatorbridge/api/pkg/models"
)

// ApplicationHandler handles applicant-facing application endpoints.
type ApplicationHandler struct {
	service   *applications.Service
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(service *applications.Service, m *metrics.Metrics) *ApplicationHandler {
	return &ApplicationHandler{
		service:   service,
		metrics:   m,
		validator: validator.New(),
	}
}

// Submit godoc
// @Summary Submit an accelerator application
// @Description Submit the application form with optional pitch deck and media kit PDFs. Submission is immediate; there is no draft state.
// @Tags Applications
// @Accept mpfd
// @Produce json
// @Param creator_name formData string true "Creator name"
// @Param project_idea formData string true "Project idea"
// @Param target_audience formData string true "Target audience"
// @Param why_join formData string true "Why join"
// @Param pitch_deck formData file false "Pitch deck PDF"
// @Param media_kit formData file false "Media kit PDF"
// @Success 201 {object} models.ApplicationResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /applications [post]
func (h *ApplicationHandler) Submit(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c)
	}

	var req models.ApplicationCreateRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequest(c, "invalid_request", "Invalid form data")
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	pitchDeck, err := filePart(c, "pitch_deck")
	if err != nil {
		return errors.BadRequest(c, "invalid_file", "Could not read pitch deck")
	}
	mediaKit, err := filePart(c, "media_kit")
	if err != nil {
		return errors.BadRequest(c, "invalid_file", "Could not read media kit")
	}
	if pitchDeck != nil {
		defer pitchDeck.close()
	}
	if mediaKit != nil {
		defer mediaKit.close()
	}

	// Uploads can be slow; give the whole submission a generous window.
	ctx, cancel := context.WithTimeout(c.Request().Context(), 60*time.Second)
	defer cancel()

	resp, err := h.service.Create(ctx, userID, req, pitchDeck.upload(), mediaKit.upload())
	if err != nil {
		switch err {
		case applications.ErrAlreadyApplied:
			return errors.ConflictError(c, "You already have an application")
		case applications.ErrUploadTooLarge:
			return errors.BadRequest(c, "file_too_large", "Uploaded file exceeds the size limit")
		default:
			return errors.InternalError(c, err)
		}
	}

	if h.metrics != nil {
		h.metrics.ApplicationsSubmitted.Inc()
	}
	return c.JSON(http.StatusCreated, resp)
}

// GetMine godoc
// @Summary Get the caller's application
// @Tags Applications
// @Produce json
// @Success 200 {object} models.ApplicationResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /applications/me [get]
func (h *ApplicationHandler) GetMine(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.GetForUser(ctx, userID)
	if err != nil {
		if err == applications.ErrApplicationNotFound {
			return errors.NotFoundError(c)
		}
		return errors.InternalError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// filePartHandle wraps one optional multipart file.
type filePartHandle struct {
	u     *applications.Upload
	onEnd func() error
}

func (f *filePartHandle) upload() *applications.Upload {
	if f == nil {
		return nil
	}
	return f.u
}

func (f *filePartHandle) close() {
	if f != nil && f.onEnd != nil {
		f.onEnd()
	}
}

func filePart(c echo.Context, name string) (*filePartHandle, error) {
	fh, err := c.FormFile(name)
	if err != nil {
		// Absent file parts are fine; only read errors matter.
		return nil, nil
	}
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	return &filePartHandle{
		u:     &applications.Upload{Body: src, Size: fh.Size},
		onEnd: src.Close,
	}, nil
}
