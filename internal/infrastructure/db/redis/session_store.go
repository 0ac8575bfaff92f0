package redis

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Lokesh0728/volconBE/internal/core/domain"
)

// SessionStore keeps exactly one live refresh token per account under
// session:<account_id>. Redis executes SET/GET/DEL atomically per key,
// which is all the single-session-per-account policy needs: the last
// login to write wins and every earlier token stops being current.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Set overwrites the account's session slot with the new refresh token.
// The key expires with the token: an untouched session dies together with
// the refresh token it holds.
func (s *SessionStore) Set(ctx context.Context, accountID, refreshToken string) error {
	if err := s.client.Set(ctx, s.key(accountID), refreshToken, domain.RefreshTokenTTL).Err(); err != nil {
		return fmt.Errorf("session set: %w: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

// Get returns the stored refresh token, or empty when no session exists.
func (s *SessionStore) Get(ctx context.Context, accountID string) (string, error) {
	val, err := s.client.Get(ctx, s.key(accountID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("session get: %w: %v", domain.ErrStorageUnavailable, err)
	}
	return val, nil
}

// Clear revokes the session. Deleting an absent key is not an error.
func (s *SessionStore) Clear(ctx context.Context, accountID string) error {
	if err := s.client.Del(ctx, s.key(accountID)).Err(); err != nil {
		return fmt.Errorf("session clear: %w: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

// IsCurrent reports whether presented equals the stored token. This is the
// revocation check on every refresh: logout, a newer login, or rotation
// each replace or drop the stored value and retire everything issued before.
func (s *SessionStore) IsCurrent(ctx context.Context, accountID, presented string) (bool, error) {
	stored, err := s.Get(ctx, accountID)
	if err != nil {
		return false, err
	}
	if stored == "" {
		return false, nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1, nil
}

func (s *SessionStore) key(accountID string) string {
	return "session:" + accountID
}
