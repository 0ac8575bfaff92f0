package domain

import (
	"errors"
	"strings"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Token lifetimes are policy, not adapter detail: the session slot in the
// store must expire together with the refresh token it holds, so both the
// issuer and the session store read the same constants.
const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 2 * 24 * time.Hour
)

var ErrAccountNotFound = errors.New("account not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrMissingFields = errors.New("required fields missing")
var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
var ErrStorageUnavailable = errors.New("storage unavailable")

var ErrTokenExpired = errors.New("token expired")
var ErrTokenInvalid = errors.New("token invalid")
var ErrTokenWrongClass = errors.New("token presented for wrong class")
var ErrTokenRevoked = errors.New("token revoked")

// Profile holds the mutable, non-credential attributes of an account.
type Profile struct {
	Name       string `json:"name" bson:"name"`
	Phone      string `json:"phone" bson:"phone"`
	PostalCode string `json:"postal_code" bson:"postal_code"`
	Region     string `json:"region" bson:"region"`
	Address    string `json:"address" bson:"address"`
	ImageURL   string `json:"image_url,omitempty" bson:"image_url,omitempty"`
}

// Account models a registered account holder. PasswordHash is never
// serialized outward; the session token lives in the session store, not here.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Profile      Profile   `json:"profile"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NormalizeEmail is the canonical form used for the uniqueness invariant:
// two registrations differing only in case or surrounding space collide.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
