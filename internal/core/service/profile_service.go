package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Lokesh0728/volconBE/internal/core/domain"
	"github.com/Lokesh0728/volconBE/internal/core/ports"
)

type profileService struct {
	accounts ports.AccountRepository
	log      zerolog.Logger
}

// NewProfileService returns a ProfileService implementation.
func NewProfileService(accounts ports.AccountRepository, log zerolog.Logger) ports.ProfileService {
	return &profileService{accounts: accounts, log: log}
}

func (s *profileService) Get(ctx context.Context, id string) (*domain.Account, error) {
	return s.accounts.FindByID(ctx, id)
}

func (s *profileService) List(ctx context.Context) ([]domain.Account, error) {
	return s.accounts.List(ctx)
}

// UpdateProfile merges the patch into the stored profile. Fields absent
// from the patch keep their value; credential and identity fields are not
// reachable through a patch at all.
func (s *profileService) UpdateProfile(ctx context.Context, id string, patch ports.ProfilePatch) (*domain.Account, error) {
	updated, err := s.accounts.UpdateProfile(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("account_id", id).Msg("profile updated")
	return updated, nil
}
