package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Lokesh0728/volconBE/internal/core/domain"
	"github.com/Lokesh0728/volconBE/internal/infrastructure/token"
)

func newAuthContext(t *testing.T, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuth_ValidAccessToken(t *testing.T) {
	issuer := token.NewJWTIssuer("access-secret", "refresh-secret")
	signed, err := issuer.IssueAccess("acc-1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue access: %v", err)
	}

	c, rec := newAuthContext(t, "Bearer "+signed)

	called := false
	handler := Auth(issuer)(func(c echo.Context) error {
		called = true
		if c.Get("account_id") != "acc-1" {
			t.Fatalf("account_id not injected: %v", c.Get("account_id"))
		}
		if c.Get("role") != domain.RoleAdmin {
			t.Fatalf("role not injected: %v", c.Get("role"))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	issuer := token.NewJWTIssuer("access-secret", "refresh-secret")
	c, _ := newAuthContext(t, "")

	handler := Auth(issuer)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_BadScheme(t *testing.T) {
	issuer := token.NewJWTIssuer("access-secret", "refresh-secret")
	c, _ := newAuthContext(t, "Basic dXNlcjpwdw==")

	handler := Auth(issuer)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_RefreshTokenRejected(t *testing.T) {
	// A refresh token must not open the door access tokens guard.
	issuer := token.NewJWTIssuer("access-secret", "refresh-secret")
	signed, err := issuer.IssueRefresh("acc-1")
	if err != nil {
		t.Fatalf("issue refresh: %v", err)
	}

	c, _ := newAuthContext(t, "Bearer "+signed)
	handler := Auth(issuer)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	errOut := handler(c)
	he, ok := errOut.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", errOut)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	signed, err := token.NewJWTIssuer("access-secret", "refresh-secret").
		WithClock(func() time.Time { return past }).
		IssueAccess("acc-1", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue access: %v", err)
	}

	issuer := token.NewJWTIssuer("access-secret", "refresh-secret")
	c, _ := newAuthContext(t, "Bearer "+signed)
	handler := Auth(issuer)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	errOut := handler(c)
	he, ok := errOut.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", errOut)
	}
	if he.Message != "token expired" {
		t.Fatalf("expected expiry message, got %v", he.Message)
	}
}
