package token

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Lokesh0728/volconBE/internal/core/domain"
	"github.com/Lokesh0728/volconBE/internal/core/ports"
)

func testIssuer() *JWTIssuer {
	return NewJWTIssuer("access-secret", "refresh-secret")
}

func TestJWTIssuer_AccessRoundTrip(t *testing.T) {
	issuer := testIssuer()

	signed, err := issuer.IssueAccess("acc-1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("IssueAccess returned error: %v", err)
	}

	claims, err := issuer.Verify(signed, ports.TokenClassAccess)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.Subject != "acc-1" {
		t.Fatalf("subject %q, want acc-1", claims.Subject)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("role %q, want %q", claims.Role, domain.RoleAdmin)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt); got != domain.AccessTokenTTL {
		t.Fatalf("access lifetime %v, want %v", got, domain.AccessTokenTTL)
	}
}

func TestJWTIssuer_RefreshCarriesNoRole(t *testing.T) {
	issuer := testIssuer()

	signed, err := issuer.IssueRefresh("acc-1")
	if err != nil {
		t.Fatalf("IssueRefresh returned error: %v", err)
	}

	claims, err := issuer.Verify(signed, ports.TokenClassRefresh)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.Role != "" {
		t.Fatalf("refresh token must not carry a role, got %q", claims.Role)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt); got != domain.RefreshTokenTTL {
		t.Fatalf("refresh lifetime %v, want %v", got, domain.RefreshTokenTTL)
	}
}

func TestJWTIssuer_WrongClassBothDirections(t *testing.T) {
	issuer := testIssuer()

	access, _ := issuer.IssueAccess("acc-1", domain.RoleUser)
	refresh, _ := issuer.IssueRefresh("acc-1")

	if _, err := issuer.Verify(access, ports.TokenClassRefresh); !errors.Is(err, domain.ErrTokenWrongClass) {
		t.Fatalf("access-as-refresh: expected ErrTokenWrongClass, got %v", err)
	}
	if _, err := issuer.Verify(refresh, ports.TokenClassAccess); !errors.Is(err, domain.ErrTokenWrongClass) {
		t.Fatalf("refresh-as-access: expected ErrTokenWrongClass, got %v", err)
	}
}

func TestJWTIssuer_Expired(t *testing.T) {
	past := time.Now().Add(-3 * 24 * time.Hour)
	issuer := testIssuer().WithClock(func() time.Time { return past })

	signed, err := issuer.IssueRefresh("acc-1")
	if err != nil {
		t.Fatalf("IssueRefresh returned error: %v", err)
	}

	verifier := testIssuer()
	if _, err := verifier.Verify(signed, ports.TokenClassRefresh); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTIssuer_ExpiredWrongClassIsWrongClass(t *testing.T) {
	// An expired access token presented as a refresh token reports the
	// class mismatch, not the expiry of some other class's token.
	past := time.Now().Add(-time.Hour)
	signed, err := testIssuer().WithClock(func() time.Time { return past }).IssueAccess("acc-1", domain.RoleUser)
	if err != nil {
		t.Fatalf("IssueAccess returned error: %v", err)
	}

	if _, err := testIssuer().Verify(signed, ports.TokenClassRefresh); !errors.Is(err, domain.ErrTokenWrongClass) {
		t.Fatalf("expected ErrTokenWrongClass, got %v", err)
	}
}

func TestJWTIssuer_Invalid(t *testing.T) {
	issuer := testIssuer()

	if _, err := issuer.Verify("not-a-token", ports.TokenClassAccess); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("garbage: expected ErrTokenInvalid, got %v", err)
	}

	signed, _ := issuer.IssueAccess("acc-1", domain.RoleUser)
	tampered := signed[:strings.LastIndex(signed, ".")] + ".AAAA"
	if _, err := issuer.Verify(tampered, ports.TokenClassAccess); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("tampered signature: expected ErrTokenInvalid, got %v", err)
	}

	foreign := NewJWTIssuer("other-access", "other-refresh")
	foreignToken, _ := foreign.IssueAccess("acc-1", domain.RoleUser)
	if _, err := issuer.Verify(foreignToken, ports.TokenClassAccess); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("foreign secret: expected ErrTokenInvalid, got %v", err)
	}
}

func TestJWTIssuer_AccessAndRefreshDiffer(t *testing.T) {
	clock := time.Now()
	issuer := testIssuer().WithClock(func() time.Time { return clock })

	a, _ := issuer.IssueAccess("acc-1", domain.RoleUser)
	b, _ := issuer.IssueRefresh("acc-1")
	if a == b {
		t.Fatalf("token classes must never produce identical tokens")
	}
}
