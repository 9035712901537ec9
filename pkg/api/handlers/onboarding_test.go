package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorbridge/api/ent"
	"github.com/creatorbridge/api/ent/enttest"
	"github.com/creatorbridge/api/pkg/audit"
	"github.com/creatorbridge/api/pkg/onboarding"

	_ "github.com/mattn/go-sqlite3"
)

type fixedLLM struct{}

func (fixedLLM) Complete(ctx context.Context, prompt string, systemPrompt ...string) (string, error) {
	return "# Deliverable\n\ncontent body", nil
}

func setupOnboardingHandler(t *testing.T) (*ent.Client, *OnboardingHandler, int) {
	db := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { db.Close() })

	svc := onboarding.NewService(db, fixedLLM{}, audit.NewService(db))
	handler := NewOnboardingHandler(svc, nil)

	// Audit rows reference the acting user, so seed one before anything writes.
	db.User.Create().
		SetEmail("admin@test.com").
		SetName("Admin").
		SaveX(context.Background())
	cl := db.Creator.Create().SetName("Maya Vlogs").SaveX(context.Background())
	return db, handler, cl.ID
}

func kitContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, clientID, month string) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("user_id", 1)
	c.Set("user_email", "admin@test.com")
	c.SetParamNames("id", "month")
	c.SetParamValues(clientID, month)
	return c
}

func docContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, clientID, month, slot string) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("user_id", 1)
	c.Set("user_email", "admin@test.com")
	c.SetParamNames("id", "month", "slot")
	c.SetParamValues(clientID, month, slot)
	return c
}

func TestGenerateMonthEndpoint(t *testing.T) {
	_, handler, clientID := setupOnboardingHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/clients/1/onboarding-kit/month/1/generate", nil)
	rec := httptest.NewRecorder()
	c := kitContext(e, req, rec, strconv.Itoa(clientID), "1")

	err := handler.GenerateMonth(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &response)
	assert.Equal(t, true, response["generated"])
	docs := response["documents"].([]interface{})
	assert.Equal(t, 5, len(docs))
}

func TestGenerateMonthLockedReturnsConflict(t *testing.T) {
	_, handler, clientID := setupOnboardingHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/clients/1/onboarding-kit/month/2/generate", nil)
	rec := httptest.NewRecorder()
	c := kitContext(e, req, rec, strconv.Itoa(clientID), "2")

	err := handler.GenerateMonth(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGenerateMonthInvalidMonth(t *testing.T) {
	_, handler, clientID := setupOnboardingHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/clients/1/onboarding-kit/month/9/generate", nil)
	rec := httptest.NewRecorder()
	c := kitContext(e, req, rec, strconv.Itoa(clientID), "9")

	err := handler.GenerateMonth(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDocumentLifecycleEndpoints(t *testing.T) {
	_, handler, clientID := setupOnboardingHandler(t)
	generateMonth(t, handler, clientID, "1")

	e := echo.New()

	// Viewed before sent is rejected.
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	err := handler.MarkViewed(docContext(e, req, rec, strconv.Itoa(clientID), "1", "1"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Sent, then viewed, then approved.
	for _, step := range []func(echo.Context) error{handler.MarkSent, handler.MarkViewed, handler.Approve} {
		req = httptest.NewRequest(http.MethodPost, "/", nil)
		rec = httptest.NewRecorder()
		err = step(docContext(e, req, rec, strconv.Itoa(clientID), "1", "1"))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	var doc map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &doc)
	assert.Equal(t, "approved", doc["status"])

	// Approved is terminal.
	req = httptest.NewRequest(http.MethodPost, "/", nil)
	rec = httptest.NewRecorder()
	err = handler.MarkSent(docContext(e, req, rec, strconv.Itoa(clientID), "1", "1"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRequestRevisionEndpoint(t *testing.T) {
	_, handler, clientID := setupOnboardingHandler(t)
	generateMonth(t, handler, clientID, "1")

	e := echo.New()

	// Blank notes are rejected before any state change.
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"notes":"   "}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	err := handler.RequestRevision(docContext(e, req, rec, strconv.Itoa(clientID), "1", "2"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"notes":"tighten the intro"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	err = handler.RequestRevision(docContext(e, req, rec, strconv.Itoa(clientID), "1", "2"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &doc)
	assert.Equal(t, "revision_requested", doc["status"])
	assert.Equal(t, "tighten the intro", doc["revision_notes"])
}

func TestDownloadEndpoint(t *testing.T) {
	_, handler, clientID := setupOnboardingHandler(t)

	e := echo.New()

	// Before generation there is nothing to download.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	err := handler.Download(docContext(e, req, rec, strconv.Itoa(clientID), "1", "1"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	generateMonth(t, handler, clientID, "1")

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	err = handler.Download(docContext(e, req, rec, strconv.Itoa(clientID), "1", "1"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), `filename="welcome-program-overview.md"`)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/markdown")
	assert.Contains(t, rec.Body.String(), "Deliverable")
}

func TestGetKitEndpoint(t *testing.T) {
	_, handler, clientID := setupOnboardingHandler(t)
	generateMonth(t, handler, clientID, "1")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", 1)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(clientID))

	err := handler.GetKit(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var kit map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &kit)
	assert.Equal(t, 1.0, kit["current_month"])
	months := kit["months"].([]interface{})
	require.Len(t, months, 8)
	first := months[0].(map[string]interface{})
	second := months[1].(map[string]interface{})
	assert.Equal(t, false, first["locked"])
	assert.Equal(t, true, second["locked"])
}

func TestGetKitUnknownClient(t *testing.T) {
	_, handler, _ := setupOnboardingHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", 1)
	c.SetParamNames("id")
	c.SetParamValues("999")

	err := handler.GetKit(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func generateMonth(t *testing.T, handler *OnboardingHandler, clientID int, month string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	err := handler.GenerateMonth(kitContext(e, req, rec, strconv.Itoa(clientID), month))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, rec.Code)
}
