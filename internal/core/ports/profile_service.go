package ports

import (
	"context"

	"github.com/Lokesh0728/volconBE/internal/core/domain"
)

// ProfileService exposes the account-directory reads and the partial
// profile update.
type ProfileService interface {
	Get(ctx context.Context, id string) (*domain.Account, error)

	// List returns every account. Unbounded; pagination is a recognized
	// future boundary.
	List(ctx context.Context) ([]domain.Account, error)

	// UpdateProfile applies only the fields present in patch, leaving the
	// rest untouched. Fails with domain.ErrAccountNotFound for an unknown id.
	UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (*domain.Account, error)
}
