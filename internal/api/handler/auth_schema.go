package handler

import (
	"time"

	"github.com/Lokesh0728/volconBE/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type registerRequest struct {
	Email      string `json:"email"       validate:"required,email"`
	Password   string `json:"password"    validate:"required,min=6,max=72"`
	Name       string `json:"name"        validate:"required"`
	Phone      string `json:"phone"       validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Region     string `json:"region"      validate:"required"`
	Address    string `json:"address"     validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// --- Response types ---
// Response-only types owned by the transport layer, deliberately separate
// from domain types so the JSON contract is not coupled to internal changes.
// The password hash and session state never appear here.

type profileResponse struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	PostalCode string `json:"postal_code"`
	Region     string `json:"region"`
	Address    string `json:"address"`
	ImageURL   string `json:"image_url,omitempty"`
}

type accountResponse struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	Role      string          `json:"role"`
	Profile   profileResponse `json:"profile"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type registerResponse struct {
	Message string          `json:"message"`
	Account accountResponse `json:"account"`
}

type tokenPairResponse struct {
	Message      string          `json:"message"`
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	Account      accountResponse `json:"account"`
}

type logoutResponse struct {
	Message string `json:"message"`
}

func toAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{
		ID:    a.ID,
		Email: a.Email,
		Role:  a.Role,
		Profile: profileResponse{
			Name:       a.Profile.Name,
			Phone:      a.Profile.Phone,
			PostalCode: a.Profile.PostalCode,
			Region:     a.Profile.Region,
			Address:    a.Profile.Address,
			ImageURL:   a.Profile.ImageURL,
		},
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
