package ports

import (
	"context"

	"github.com/Lokesh0728/volconBE/internal/core/domain"
)

// ProfilePatch carries a partial profile update. Nil fields are left
// untouched; only the profile attributes are reachable through it.
// Email, password hash and role have no update path here.
type ProfilePatch struct {
	Name       *string
	Phone      *string
	PostalCode *string
	Region     *string
	Address    *string
	ImageURL   *string
}

// AccountRepository defines persistence for account records. The storage
// layer owns the email-uniqueness invariant: Create must fail with
// domain.ErrEmailTaken when the normalized email already exists, even
// under concurrent registration.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
}
