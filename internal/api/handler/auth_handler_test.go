package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Lokesh0728/volconBE/internal/core/domain"
	"github.com/Lokesh0728/volconBE/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.Account, error)
	loginFn    func(ctx context.Context, email, password, remoteIP string) (*ports.LoginResult, error)
	refreshFn  func(ctx context.Context, refreshToken, remoteIP string) (*ports.LoginResult, error)
	logoutFn   func(ctx context.Context, accountID, remoteIP string) error
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Account, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password, remoteIP string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password, remoteIP)
}

func (s *stubAuthService) Refresh(ctx context.Context, refreshToken, remoteIP string) (*ports.LoginResult, error) {
	return s.refreshFn(ctx, refreshToken, remoteIP)
}

func (s *stubAuthService) Logout(ctx context.Context, accountID, remoteIP string) error {
	return s.logoutFn(ctx, accountID, remoteIP)
}

func testAccount() *domain.Account {
	return &domain.Account{
		ID:           "acc-1",
		Email:        "a@x.com",
		PasswordHash: "$2a$10$secret",
		Role:         domain.RoleUser,
		Profile: domain.Profile{
			Name:       "A",
			Phone:      "1",
			PostalCode: "00000",
			Region:     "X",
			Address:    "Y",
		},
	}
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

const registerBody = `{"email":"a@x.com","password":"pw1234","name":"A","phone":"1","postal_code":"00000","region":"X","address":"Y"}`

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*domain.Account, error) {
			if in.Email != "a@x.com" || in.PostalCode != "00000" || in.Region != "X" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return testAccount(), nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/register", registerBody)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	if strings.Contains(rec.Body.String(), "secret") {
		t.Fatalf("password hash leaked into response: %s", rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	account, ok := resp["account"].(map[string]any)
	if !ok {
		t.Fatalf("expected account in response")
	}
	if account["id"] != "acc-1" || account["role"] != domain.RoleUser {
		t.Fatalf("unexpected account payload: %+v", account)
	}
}

func TestAuthHandler_Register_MissingField(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.Account, error) {
			t.Fatalf("service must not be called on invalid payload")
			return nil, nil
		},
	})

	c, _ := newTestContext(t, http.MethodPost, "/auth/register", `{"email":"a@x.com","password":"pw1234"}`)
	err := h.Register(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Register_OverlongPassword(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.Account, error) {
			t.Fatalf("service must not be called on invalid payload")
			return nil, nil
		},
	})

	// 100 bytes: past bcrypt's 72-byte limit, rejected at validation.
	body := `{"email":"a@x.com","password":"` + strings.Repeat("x", 100) +
		`","name":"A","phone":"1","postal_code":"00000","region":"X","address":"Y"}`
	c, _ := newTestContext(t, http.MethodPost, "/auth/register", body)
	err := h.Register(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.Account, error) {
			return nil, domain.ErrEmailTaken
		},
	})

	c, _ := newTestContext(t, http.MethodPost, "/auth/register", registerBody)
	if err := h.Register(c); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken passed through, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password, _ string) (*ports.LoginResult, error) {
			if email != "a@x.com" || password != "pw1234" {
				t.Fatalf("unexpected credentials: %s %s", email, password)
			}
			return &ports.LoginResult{
				AccessToken:  "access-token",
				RefreshToken: "refresh-token",
				Account:      testAccount(),
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/login", `{"email":"a@x.com","password":"pw1234"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "access-token" || resp["refresh_token"] != "refresh-token" {
		t.Fatalf("unexpected tokens: %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string, string) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	})

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", `{"email":"a@x.com","password":"wrong"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials passed through, got %v", err)
	}
}

func TestAuthHandler_Refresh_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		refreshFn: func(_ context.Context, refreshToken, _ string) (*ports.LoginResult, error) {
			if refreshToken != "old-refresh" {
				t.Fatalf("unexpected token: %s", refreshToken)
			}
			return &ports.LoginResult{
				AccessToken:  "new-access",
				RefreshToken: "new-refresh",
				Account:      testAccount(),
			}, nil
		},
	})

	c, rec := newTestContext(t, http.MethodPost, "/auth/refresh", `{"refresh_token":"old-refresh"}`)
	if err := h.Refresh(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "new-refresh") {
		t.Fatalf("rotated token missing from response")
	}
}

func TestAuthHandler_Refresh_Revoked(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		refreshFn: func(context.Context, string, string) (*ports.LoginResult, error) {
			return nil, domain.ErrTokenRevoked
		},
	})

	c, _ := newTestContext(t, http.MethodPost, "/auth/refresh", `{"refresh_token":"stale"}`)
	if err := h.Refresh(c); !errors.Is(err, domain.ErrTokenRevoked) {
		t.Fatalf("expected ErrTokenRevoked passed through, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	var cleared string
	h := NewAuthHandler(&stubAuthService{
		logoutFn: func(_ context.Context, accountID, _ string) error {
			cleared = accountID
			return nil
		},
	})

	c, rec := newTestContext(t, http.MethodPost, "/auth/logout", "")
	c.Set("account_id", "acc-1")

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if cleared != "acc-1" {
		t.Fatalf("logout cleared %q, want acc-1", cleared)
	}
}

func TestAuthHandler_Logout_NoClaims(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		logoutFn: func(context.Context, string, string) error {
			t.Fatalf("service must not be called without claims")
			return nil
		},
	})

	c, _ := newTestContext(t, http.MethodPost, "/auth/logout", "")
	err := h.Logout(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
