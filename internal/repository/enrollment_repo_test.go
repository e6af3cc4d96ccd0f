package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campusdesk/campusdesk-api/internal/models"
)

func TestEnrollmentRepositoryUpsertReactivatesDropped(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEnrollmentRepository(db)
	ctx := context.Background()

	course := models.Course{CourseName: "Databases", CourseDuration: "NA"}
	require.NoError(t, db.Create(&course).Error)

	require.NoError(t, repo.Upsert(ctx, course.CourseID, 4))

	affected, err := repo.SetStatus(ctx, course.CourseID, 4, models.EnrollmentDropped)
	require.NoError(t, err)
	require.Equal(t, int64(1), affected)

	require.NoError(t, repo.Upsert(ctx, course.CourseID, 4))

	status, err := repo.GetStatus(ctx, course.CourseID, 4)
	require.NoError(t, err)
	require.Equal(t, models.EnrollmentEnrolled, status)
}

func TestEnrollmentRepositoryListActiveStudents(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEnrollmentRepository(db)
	ctx := context.Background()

	course := models.Course{CourseName: "Networks", CourseDuration: "NA"}
	require.NoError(t, db.Create(&course).Error)

	alice := models.User{UserName: "Alice Ray", Password: "pass", Email: "alice@example.com", Role: models.RoleStudent, MobileNo: "1234567890"}
	bob := models.User{UserName: "Bob Lane", Password: "pass", Email: "bob@example.com", Role: models.RoleStudent, MobileNo: "1234567891"}
	require.NoError(t, db.Create(&alice).Error)
	require.NoError(t, db.Create(&bob).Error)

	require.NoError(t, repo.Upsert(ctx, course.CourseID, alice.UserID))
	require.NoError(t, repo.Upsert(ctx, course.CourseID, bob.UserID))

	_, err := repo.SetStatus(ctx, course.CourseID, bob.UserID, models.EnrollmentDropped)
	require.NoError(t, err)

	students, err := repo.ListActiveStudents(ctx, course.CourseID)
	require.NoError(t, err)
	require.Equal(t, []string{"Alice Ray"}, students)
}
