package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/campusdesk/campusdesk-api/internal/models"
	"github.com/campusdesk/campusdesk-api/internal/repository"
)

// ErrSeedCredentialsMissing indicates bootstrap was requested without
// configured admin credentials.
var ErrSeedCredentialsMissing = errors.New("admin seed credentials are not configured")

// AdminSeed holds the bootstrap admin account details from configuration.
type AdminSeed struct {
	Name     string
	Email    string
	Password string
}

// SeedService guarantees a usable admin account exists at startup.
type SeedService interface {
	EnsureAdmin(ctx context.Context, seed AdminSeed) error
}

type seedService struct {
	users  repository.UserRepository
	logger zerolog.Logger
}

// NewSeedService constructs the bootstrap service.
func NewSeedService(users repository.UserRepository, logger zerolog.Logger) SeedService {
	return &seedService{
		users:  users,
		logger: logger.With().Str("component", "seed_service").Logger(),
	}
}

// EnsureAdmin creates the configured admin account unless some admin already
// exists. Existing admins are never modified.
func (s *seedService) EnsureAdmin(ctx context.Context, seed AdminSeed) error {
	count, err := s.users.CountByRole(ctx, models.RoleAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Debug().Msg("admin account already present, skipping seed")
		return nil
	}

	if seed.Email == "" || seed.Password == "" {
		return ErrSeedCredentialsMissing
	}

	admin := models.User{
		UserName: normalizeName(seed.Name),
		Password: seed.Password,
		Email:    normalizeEmail(seed.Email),
		Role:     models.RoleAdmin,
		MobileNo: "0000000000",
	}
	if err := s.users.CreateWithProfile(ctx, &admin); err != nil {
		return err
	}

	s.logger.Info().Str("email", admin.Email).Msg("bootstrap admin created")
	return nil
}
