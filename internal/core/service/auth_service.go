package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/Lokesh0728/volconBE/internal/api/metrics"
	"github.com/Lokesh0728/volconBE/internal/core/domain"
	"github.com/Lokesh0728/volconBE/internal/core/ports"
)

// AuditSink abstracts the async audit pipeline (the queue dispatcher).
// Enqueue must never block the request path.
type AuditSink interface {
	Enqueue(event ports.AuthEventInput)
}

type authService struct {
	accounts ports.AccountRepository
	hasher   ports.PasswordHasher
	issuer   ports.TokenIssuer
	sessions ports.SessionStore
	audit    AuditSink
	log      zerolog.Logger
}

// NewAuthService returns an AuthService implementation wired to the given
// collaborators. The audit sink may be nil when no trail is wanted.
func NewAuthService(
	accounts ports.AccountRepository,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
	sessions ports.SessionStore,
	audit AuditSink,
	log zerolog.Logger,
) ports.AuthService {
	return &authService{
		accounts: accounts,
		hasher:   hasher,
		issuer:   issuer,
		sessions: sessions,
		audit:    audit,
		log:      log,
	}
}

// Register hashes the password and creates the account. The repository owns
// the email-uniqueness race: two concurrent registrations for the same
// address both reach Create and the storage layer picks exactly one winner.
func (s *authService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Account, error) {
	if in.Email == "" || in.Password == "" || in.Name == "" || in.Phone == "" ||
		in.PostalCode == "" || in.Region == "" || in.Address == "" {
		return nil, domain.ErrMissingFields
	}

	pwHash, err := s.hasher.Hash(in.Password)
	if err != nil {
		if !errors.Is(err, domain.ErrPasswordTooLong) {
			s.log.Error().Err(err).Msg("password hashing failed")
		}
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Email:        domain.NormalizeEmail(in.Email),
		PasswordHash: pwHash,
		Role:         domain.RoleUser,
		Profile: domain.Profile{
			Name:       in.Name,
			Phone:      in.Phone,
			PostalCode: in.PostalCode,
			Region:     in.Region,
			Address:    in.Address,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.accounts.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.Inc()
	s.record(created.ID, domain.AuthEventRegister, in.RemoteIP)
	s.log.Info().Str("account_id", created.ID).Msg("account registered")

	return created, nil
}

// Login verifies credentials and opens the account's single session. The
// two failure causes stay distinguishable in logs only; the caller always
// sees domain.ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, email, password, remoteIP string) (*ports.LoginResult, error) {
	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			s.log.Warn().Str("reason", "email_not_found").Msg("login failed")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, account.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		s.log.Warn().Str("reason", "bad_password").Str("account_id", account.ID).Msg("login failed")
		return nil, domain.ErrInvalidCredentials
	}

	result, err := s.openSession(ctx, account)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.record(account.ID, domain.AuthEventLogin, remoteIP)
	s.log.Info().Str("account_id", account.ID).Msg("login succeeded")

	return result, nil
}

// Refresh exchanges a current refresh token for a rotated token pair. The
// role is re-derived from the account record, never read from the old token.
func (s *authService) Refresh(ctx context.Context, refreshToken, remoteIP string) (*ports.LoginResult, error) {
	claims, err := s.issuer.Verify(refreshToken, ports.TokenClassRefresh)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenExpired):
			metrics.TokenRefreshesTotal.WithLabelValues("expired").Inc()
		default:
			metrics.TokenRefreshesTotal.WithLabelValues("invalid").Inc()
		}
		return nil, err
	}

	current, err := s.sessions.IsCurrent(ctx, claims.Subject, refreshToken)
	if err != nil {
		return nil, err
	}
	if !current {
		metrics.TokenRefreshesTotal.WithLabelValues("revoked").Inc()
		s.log.Warn().Str("account_id", claims.Subject).Msg("refresh with superseded token")
		return nil, domain.ErrTokenRevoked
	}

	account, err := s.accounts.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			metrics.TokenRefreshesTotal.WithLabelValues("invalid").Inc()
			return nil, domain.ErrTokenInvalid
		}
		return nil, err
	}

	result, err := s.openSession(ctx, account)
	if err != nil {
		return nil, err
	}

	metrics.TokenRefreshesTotal.WithLabelValues("success").Inc()
	s.record(account.ID, domain.AuthEventRefresh, remoteIP)

	return result, nil
}

// Logout clears the session slot. Idempotent: logging out twice, or with
// no session open, succeeds.
func (s *authService) Logout(ctx context.Context, accountID, remoteIP string) error {
	if err := s.sessions.Clear(ctx, accountID); err != nil {
		return err
	}
	metrics.SessionsRevokedTotal.WithLabelValues("logout").Inc()
	s.record(accountID, domain.AuthEventLogout, remoteIP)
	s.log.Info().Str("account_id", accountID).Msg("session revoked")
	return nil
}

// openSession issues a fresh token pair and stores the refresh token,
// superseding whatever session existed before.
func (s *authService) openSession(ctx context.Context, account *domain.Account) (*ports.LoginResult, error) {
	accessToken, err := s.issuer.IssueAccess(account.ID, account.Role)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.issuer.IssueRefresh(account.ID)
	if err != nil {
		return nil, err
	}

	prior, err := s.sessions.Get(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	if prior != "" {
		metrics.SessionsRevokedTotal.WithLabelValues("superseded").Inc()
	}

	if err := s.sessions.Set(ctx, account.ID, refreshToken); err != nil {
		return nil, err
	}

	return &ports.LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Account:      account,
	}, nil
}

func (s *authService) record(accountID string, kind domain.AuthEventKind, remoteIP string) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(ports.AuthEventInput{
		AccountID: accountID,
		Kind:      kind,
		Timestamp: time.Now().UTC(),
		RemoteIP:  remoteIP,
	})
}
