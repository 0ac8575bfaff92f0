package ports

import "context"

// SessionStore holds at most one live refresh token per account. Set
// overwrites whatever was stored before (a second login silently ends the
// first session), Clear is idempotent, and IsCurrent is the revocation
// check performed on every refresh: only the most recently stored token
// is current. Operations on a single account key must be atomic at the
// storage layer; no ordering is required across accounts.
type SessionStore interface {
	Set(ctx context.Context, accountID, refreshToken string) error
	Get(ctx context.Context, accountID string) (string, error)
	Clear(ctx context.Context, accountID string) error
	IsCurrent(ctx context.Context, accountID, presented string) (bool, error)
}
