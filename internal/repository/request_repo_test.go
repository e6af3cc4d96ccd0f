package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campusdesk/campusdesk-api/internal/models"
)

func TestRequestRepositoryResubmitReopensPending(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.UpsertPending(ctx, "Alice Stone", "Databases"))

	affected, err := repo.SetStatus(ctx, "Alice Stone", "Databases", models.RequestRejected)
	require.NoError(t, err)
	require.Equal(t, int64(1), affected)

	require.NoError(t, repo.UpsertPending(ctx, "Alice Stone", "Databases"))

	var rows []models.CourseRequest
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	require.Equal(t, models.RequestPending, rows[0].Status)
}

func TestRequestRepositorySetStatusMissingPair(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)

	affected, err := repo.SetStatus(context.Background(), "Nobody Here", "Ghost Course", models.RequestAccepted)
	require.NoError(t, err)
	require.Zero(t, affected)
}

func TestRequestRepositoryListByStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.UpsertPending(ctx, "Alice Stone", "Databases"))
	require.NoError(t, repo.UpsertPending(ctx, "Bob Reed", "Networks"))

	_, err := repo.SetStatus(ctx, "Bob Reed", "Networks", models.RequestAccepted)
	require.NoError(t, err)

	pending, err := repo.ListByStatus(ctx, models.RequestPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, "Alice Stone", pending[0].ProfessorName)

	count, err := repo.CountByStatus(ctx, models.RequestPending)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestRequestRepositoryListByProfessorCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.UpsertPending(ctx, "Alice Stone", "Databases"))
	require.NoError(t, repo.UpsertPending(ctx, "Alice Stone", "Networks"))
	require.NoError(t, repo.UpsertPending(ctx, "Bob Reed", "Networks"))

	rows, err := repo.ListByProfessor(ctx, "alice stone")
	require.NoError(t, err)
	require.Len(t, rows, 2)
}
