package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/creatorbridge/api/config"
	"github.com/creatorbridge/api/ent"
	"github.com/creatorbridge/api/ent/user"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"
)

var (
	// ErrInvalidProvider is returned when an unsupported provider is specified
	ErrInvalidProvider = errors.New("invalid OAuth provider")
	// ErrNoEmail is returned when the provider account exposes no usable email
	ErrNoEmail = errors.New("OAuth account has no verified email")
	// ErrProviderAPIError is returned when the provider API returns an error
	ErrProviderAPIError = errors.New("OAuth provider API error")
)

// Provider represents an OAuth provider
type Provider string

const (
	// ProviderGoogle represents Google OAuth
	ProviderGoogle Provider = "google"
	// ProviderGitHub represents GitHub OAuth
	ProviderGitHub Provider = "github"
)

// UserInfo holds basic user information from OAuth providers
type UserInfo struct {
	ID       string
	Email    string
	Name     string
	Provider Provider
}

// Service handles OAuth sign-in via Google and GitHub.
type Service struct {
	db      *ent.Client
	configs map[Provider]*oauth2.Config
	client  *http.Client
}

// NewService creates a new OAuth service
func NewService(db *ent.Client, cfg *config.Config) *Service {
	redirect := func(p Provider) string {
		return fmt.Sprintf("%s/api/v1/auth/oauth/%s/callback", cfg.OAuthRedirectBase, p)
	}

	return &Service{
		db: db,
		configs: map[Provider]*oauth2.Config{
			ProviderGoogle: {
				ClientID:     cfg.GoogleClientID,
				ClientSecret: cfg.GoogleClientSecret,
				RedirectURL:  redirect(ProviderGoogle),
				Scopes:       []string{"openid", "email", "profile"},
				Endpoint:     google.Endpoint,
			},
			ProviderGitHub: {
				ClientID:     cfg.GitHubClientID,
				ClientSecret: cfg.GitHubClientSecret,
				RedirectURL:  redirect(ProviderGitHub),
				Scopes:       []string{"read:user", "user:email"},
				Endpoint:     github.Endpoint,
			},
		},
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// AuthURL returns the OAuth authorization URL for a provider.
func (s *Service) AuthURL(provider Provider, state string) (string, error) {
	cfg, ok := s.configs[provider]
	if !ok {
		return "", ErrInvalidProvider
	}
	return cfg.AuthCodeURL(state), nil
}

// HandleCallback exchanges the authorization code, fetches the provider
// profile and upserts the matching user by email.
func (s *Service) HandleCallback(ctx context.Context, provider Provider, code string) (*ent.User, error) {
	cfg, ok := s.configs[provider]
	if !ok {
		return nil, ErrInvalidProvider
	}

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	// Route the exchange and profile calls through our own client so the
	// per-request timeout applies.
	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.client)

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}

	info, err := s.fetchUserInfo(ctx, provider, cfg, token)
	if err != nil {
		return nil, err
	}
	if info.Email == "" {
		return nil, ErrNoEmail
	}

	return s.upsertUser(ctx, info)
}

func (s *Service) fetchUserInfo(ctx context.Context, provider Provider, cfg *oauth2.Config, token *oauth2.Token) (*UserInfo, error) {
	client := cfg.Client(ctx, token)

	switch provider {
	case ProviderGoogle:
		var payload struct {
			Sub   string `json:"sub"`
			Email string `json:"email"`
			Name  string `json:"name"`
		}
		if err := getJSON(client, "https://openidconnect.googleapis.com/v1/userinfo", &payload); err != nil {
			return nil, err
		}
		return &UserInfo{ID: payload.Sub, Email: payload.Email, Name: payload.Name, Provider: provider}, nil

	case ProviderGitHub:
		var payload struct {
			ID    int64  `json:"id"`
			Email string `json:"email"`
			Name  string `json:"name"`
			Login string `json:"login"`
		}
		if err := getJSON(client, "https://api.github.com/user", &payload); err != nil {
			return nil, err
		}
		name := payload.Name
		if name == "" {
			name = payload.Login
		}
		email := payload.Email
		if email == "" {
			// The profile email can be private; the emails endpoint
			// lists the verified ones.
			var emails []struct {
				Email    string `json:"email"`
				Primary  bool   `json:"primary"`
				Verified bool   `json:"verified"`
			}
			if err := getJSON(client, "https://api.github.com/user/emails", &emails); err != nil {
				return nil, err
			}
			for _, e := range emails {
				if e.Primary && e.Verified {
					email = e.Email
					break
				}
			}
		}
		return &UserInfo{ID: fmt.Sprintf("%d", payload.ID), Email: email, Name: name, Provider: provider}, nil

	default:
		return nil, ErrInvalidProvider
	}
}

func (s *Service) upsertUser(ctx context.Context, info *UserInfo) (*ent.User, error) {
	existing, err := s.db.User.Query().Where(user.EmailEQ(info.Email)).Only(ctx)
	switch {
	case err == nil:
		return existing.Update().
			SetOauthProvider(string(info.Provider)).
			SetOauthID(info.ID).
			SetName(info.Name).
			SetLastLoginAt(time.Now()).
			Save(ctx)
	case ent.IsNotFound(err):
		return s.db.User.Create().
			SetEmail(info.Email).
			SetName(info.Name).
			SetOauthProvider(string(info.Provider)).
			SetOauthID(info.ID).
			SetLastLoginAt(time.Now()).
			Save(ctx)
	default:
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
}

func getJSON(client *http.Client, url string, out interface{}) error {
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProviderAPIError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d: %s", ErrProviderAPIError, resp.StatusCode, body)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
