package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/creatorbridge/api/ent"
	"github.com/creatorbridge/api/ent/user"
	"github.com/creatorbridge/api/pkg/cache"
	"github.com/google/uuid"
)

var (
	// ErrTokenInvalid is returned for unknown, expired, or already
	// consumed magic-link tokens.
	ErrTokenInvalid = errors.New("magic link token invalid or expired")
)

// MagicLinkService issues and verifies single-use email sign-in tokens.
// Only the SHA-256 hash of a token is persisted; the plain token travels
// in the emailed link. Consumption is additionally marked in Redis so a
// token replayed within its TTL is refused even after the hash is cleared.
type MagicLinkService struct {
	db    *ent.Client
	cache *cache.Client
	ttl   time.Duration
}

// NewMagicLinkService creates a new magic link service.
func NewMagicLinkService(db *ent.Client, cacheClient *cache.Client, ttl time.Duration) *MagicLinkService {
	return &MagicLinkService{
		db:    db,
		cache: cacheClient,
		ttl:   ttl,
	}
}

// Issue creates (or refreshes) the pending magic-link token for the given
// email, upserting the user row, and returns the plain token for emailing.
func (s *MagicLinkService) Issue(ctx context.Context, email string) (string, error) {
	token := uuid.NewString()
	hash := hashToken(token)
	expires := time.Now().Add(s.ttl)

	existing, err := s.db.User.Query().Where(user.EmailEQ(email)).Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().
			SetMagicLinkTokenHash(hash).
			SetMagicLinkExpiresAt(expires).
			Save(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to store magic link token: %w", err)
		}
	case ent.IsNotFound(err):
		_, err = s.db.User.Create().
			SetEmail(email).
			SetMagicLinkTokenHash(hash).
			SetMagicLinkExpiresAt(expires).
			Save(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to create user for magic link: %w", err)
		}
	default:
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	return token, nil
}

// Verify consumes a magic-link token and returns the signed-in user.
func (s *MagicLinkService) Verify(ctx context.Context, token string) (*ent.User, error) {
	hash := hashToken(token)

	u, err := s.db.User.Query().
		Where(user.MagicLinkTokenHashEQ(hash)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrTokenInvalid
		}
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}

	if u.MagicLinkExpiresAt == nil || time.Now().After(*u.MagicLinkExpiresAt) {
		return nil, ErrTokenInvalid
	}

	// Single use: refuse replays even if the row update races.
	if s.cache != nil {
		ok, err := s.cache.SetNX(ctx, "magiclink:consumed:"+hash, 1, s.ttl)
		if err == nil && !ok {
			return nil, ErrTokenInvalid
		}
	}

	u, err = u.Update().
		ClearMagicLinkTokenHash().
		ClearMagicLinkExpiresAt().
		SetLastLoginAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to consume token: %w", err)
	}

	return u, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
