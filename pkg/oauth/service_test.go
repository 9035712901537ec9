package oauth

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/creatorbridge/api/config"
	"github.com/creatorbridge/api/ent"
	"github.com/creatorbridge/api/ent/enttest"

	_ "github.com/mattn/go-sqlite3"
)

// recordingTransport answers the token and userinfo calls in-process and
// keeps the paths it served, so tests can tell which client carried them.
type recordingTransport struct {
	mu    sync.Mutex
	paths []string
}

func (rt *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	rt.mu.Lock()
	rt.paths = append(rt.paths, req.URL.Path)
	rt.mu.Unlock()

	body := `{"sub":"g-123","email":"maya@example.com","name":"Maya Vlogs"}`
	if strings.Contains(req.URL.Path, "/token") {
		body = `{"access_token":"tok","token_type":"Bearer"}`
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    req,
	}, nil
}

func (rt *recordingTransport) served() []string {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return append([]string(nil), rt.paths...)
}

func setupService(t *testing.T) (*ent.Client, *Service, *recordingTransport) {
	db := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { db.Close() })

	svc := NewService(db, &config.Config{
		GoogleClientID:     "client-id",
		GoogleClientSecret: "client-secret",
		OAuthRedirectBase:  "http://localhost:8080",
	})

	rt := &recordingTransport{}
	svc.client = &http.Client{Transport: rt}
	svc.configs[ProviderGoogle].Endpoint = oauth2.Endpoint{TokenURL: "https://auth.test/token"}
	return db, svc, rt
}

func TestAuthURLUnknownProvider(t *testing.T) {
	_, svc, _ := setupService(t)

	_, err := svc.AuthURL(Provider("gitlab"), "state")
	assert.ErrorIs(t, err, ErrInvalidProvider)
}

func TestHandleCallbackUsesServiceClient(t *testing.T) {
	db, svc, rt := setupService(t)

	u, err := svc.HandleCallback(context.Background(), ProviderGoogle, "auth-code")
	require.NoError(t, err)
	assert.Equal(t, "maya@example.com", u.Email)
	assert.Equal(t, "Maya Vlogs", u.Name)
	require.NotNil(t, u.OauthProvider)
	assert.Equal(t, "google", *u.OauthProvider)

	// Both the code exchange and the profile fetch must go through the
	// service's own HTTP client.
	paths := rt.served()
	require.Len(t, paths, 2)
	assert.Equal(t, "/token", paths[0])
	assert.Equal(t, "/v1/userinfo", paths[1])

	// Same email signs in again instead of creating a duplicate.
	again, err := svc.HandleCallback(context.Background(), ProviderGoogle, "auth-code")
	require.NoError(t, err)
	assert.Equal(t, u.ID, again.ID)
	assert.Equal(t, 1, db.User.Query().CountX(context.Background()))
}
