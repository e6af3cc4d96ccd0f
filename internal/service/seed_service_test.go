package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campusdesk/campusdesk-api/internal/models"
	"github.com/campusdesk/campusdesk-api/internal/repository"
)

func TestSeedServiceEnsureAdmin(t *testing.T) {
	db := setupServiceDB(t)
	users := repository.NewUserRepository(db)
	svc := NewSeedService(users, testLogger())
	ctx := context.Background()

	seed := AdminSeed{Name: "Company", Email: "Admin@Example.com", Password: "changeme"}
	require.NoError(t, svc.EnsureAdmin(ctx, seed))

	admin, err := users.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, admin.Role)
	require.Equal(t, "0000000000", admin.MobileNo)

	// A second run must not touch the existing account.
	seed.Password = "different"
	require.NoError(t, svc.EnsureAdmin(ctx, seed))

	count, err := users.CountByRole(ctx, models.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestSeedServiceMissingCredentials(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewSeedService(repository.NewUserRepository(db), testLogger())

	err := svc.EnsureAdmin(context.Background(), AdminSeed{Name: "Company"})
	require.ErrorIs(t, err, ErrSeedCredentialsMissing)
}
