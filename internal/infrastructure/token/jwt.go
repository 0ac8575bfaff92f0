package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Lokesh0728/volconBE/internal/core/domain"
	"github.com/Lokesh0728/volconBE/internal/core/ports"
)

// authClaims is the signed JWT payload. Cls names the token class so a
// wrong-class presentation is detectable even before the signature check;
// Role is set on access tokens only.
type authClaims struct {
	Role string `json:"role,omitempty"`
	Cls  string `json:"cls"`
	jwt.RegisteredClaims
}

// JWTIssuer implements ports.TokenIssuer with HS256 and one signing
// secret per token class. Compromise of one secret does not allow forging
// tokens of the other class.
type JWTIssuer struct {
	accessSecret  []byte
	refreshSecret []byte
	now           func() time.Time
}

// NewJWTIssuer builds an issuer from explicitly injected secrets. The
// clock is overridable for tests via WithClock.
func NewJWTIssuer(accessSecret, refreshSecret string) *JWTIssuer {
	return &JWTIssuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		now:           time.Now,
	}
}

// WithClock replaces the issuer's time source and returns the issuer.
func (i *JWTIssuer) WithClock(now func() time.Time) *JWTIssuer {
	i.now = now
	return i
}

func (i *JWTIssuer) IssueAccess(accountID, role string) (string, error) {
	return i.sign(authClaims{
		Role:             role,
		Cls:              string(ports.TokenClassAccess),
		RegisteredClaims: i.registered(accountID, domain.AccessTokenTTL),
	}, i.accessSecret)
}

func (i *JWTIssuer) IssueRefresh(accountID string) (string, error) {
	// Refresh claims never carry a role: privileges are re-derived from
	// the account record on every refresh.
	return i.sign(authClaims{
		Cls:              string(ports.TokenClassRefresh),
		RegisteredClaims: i.registered(accountID, domain.RefreshTokenTTL),
	}, i.refreshSecret)
}

// Verify parses and validates a token against the expected class. Outcomes:
//
//	domain.ErrTokenExpired:    signature fine, expiry passed
//	domain.ErrTokenWrongClass: valid token of the other class
//	domain.ErrTokenInvalid:    anything else (bad signature, garbage)
func (i *JWTIssuer) Verify(token string, expected ports.TokenClass) (*ports.TokenClaims, error) {
	claims, err := i.parse(token, i.secretFor(expected))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		// A token signed for the other class fails the signature check
		// here; re-parse under the other secret to tell the two apart.
		other := ports.TokenClassAccess
		if expected == ports.TokenClassAccess {
			other = ports.TokenClassRefresh
		}
		if _, otherErr := i.parse(token, i.secretFor(other)); otherErr == nil || errors.Is(otherErr, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenWrongClass
		}
		return nil, domain.ErrTokenInvalid
	}
	if claims.Cls != string(expected) {
		return nil, domain.ErrTokenWrongClass
	}

	out := &ports.TokenClaims{
		Subject: claims.Subject,
		Role:    claims.Role,
		Class:   expected,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

func (i *JWTIssuer) registered(accountID string, ttl time.Duration) jwt.RegisteredClaims {
	now := i.now().UTC()
	return jwt.RegisteredClaims{
		Subject:   accountID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

func (i *JWTIssuer) sign(claims authClaims, secret []byte) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (i *JWTIssuer) parse(token string, secret []byte) (*authClaims, error) {
	claims := &authClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

func (i *JWTIssuer) secretFor(class ports.TokenClass) []byte {
	if class == ports.TokenClassRefresh {
		return i.refreshSecret
	}
	return i.accessSecret
}
