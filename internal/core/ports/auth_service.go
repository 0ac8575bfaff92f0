package ports

import (
	"context"

	"github.com/Lokesh0728/volconBE/internal/core/domain"
)

// RegisterInput is the DTO passed from the transport layer to AuthService.
type RegisterInput struct {
	Email      string
	Password   string
	Name       string
	Phone      string
	PostalCode string
	Region     string
	Address    string
	RemoteIP   string // audit only
}

// LoginResult bundles the issued token pair with the sanitized account view.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	Account      *domain.Account
}

// AuthService orchestrates the credential and token lifecycle.
type AuthService interface {
	// Register creates a new account after hashing the password. Fails with
	// domain.ErrMissingFields on empty required fields and domain.ErrEmailTaken
	// on a duplicate email.
	Register(ctx context.Context, in RegisterInput) (*domain.Account, error)

	// Login verifies credentials and opens a session, superseding any prior
	// one for the account. Unknown email and wrong password are both
	// reported as domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password, remoteIP string) (*LoginResult, error)

	// Refresh exchanges a current refresh token for a new token pair,
	// rotating the stored refresh token. A presented token that is not the
	// stored one fails with domain.ErrTokenRevoked.
	Refresh(ctx context.Context, refreshToken, remoteIP string) (*LoginResult, error)

	// Logout revokes the account's session. Clearing an absent session is
	// not an error.
	Logout(ctx context.Context, accountID, remoteIP string) error
}
