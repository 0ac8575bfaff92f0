package ports

import "time"

// TokenClass distinguishes the two token kinds issued by the service.
// Each class is signed with its own secret, so an access token can never
// be replayed where a refresh token is required and vice versa.
type TokenClass string

const (
	TokenClassAccess  TokenClass = "access"
	TokenClassRefresh TokenClass = "refresh"
)

// TokenClaims is the verified payload extracted from a signed token.
// Role is only ever present on access tokens; refresh tokens carry the
// subject alone so privileges are re-derived from the account record on
// every refresh.
type TokenClaims struct {
	Subject   string
	Role      string
	Class     TokenClass
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenIssuer creates and verifies signed, time-bounded tokens. Verify
// fails with domain.ErrTokenExpired past the expiry, domain.ErrTokenInvalid
// on a bad signature or structure, and domain.ErrTokenWrongClass when the
// token was signed for the other class.
type TokenIssuer interface {
	IssueAccess(accountID, role string) (string, error)
	IssueRefresh(accountID string) (string, error)
	Verify(token string, expected TokenClass) (*TokenClaims, error)
}
