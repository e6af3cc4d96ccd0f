package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campusdesk/campusdesk-api/internal/models"
)

func TestAssignmentRepositoryUpsertIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssignmentRepository(db)
	ctx := context.Background()

	course := models.Course{CourseName: "Operating Systems", CourseDuration: "NA"}
	require.NoError(t, db.Create(&course).Error)

	require.NoError(t, repo.Upsert(ctx, course.CourseID, 3))
	require.NoError(t, db.Model(&models.CourseProfessor{}).
		Where("course_id = ? AND professor_id = ?", course.CourseID, 3).
		Update("status", models.AssignmentInactive).Error)

	// Re-assigning the same pair reactivates it rather than duplicating.
	require.NoError(t, repo.Upsert(ctx, course.CourseID, 3))

	var rows []models.CourseProfessor
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	require.Equal(t, models.AssignmentActive, rows[0].Status)
}

func TestAssignmentRepositoryListActiveCourses(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssignmentRepository(db)
	ctx := context.Background()

	first := models.Course{CourseName: "Calculus", CourseDuration: "NA"}
	second := models.Course{CourseName: "Algebra", CourseDuration: "NA"}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)

	require.NoError(t, repo.Upsert(ctx, first.CourseID, 5))
	require.NoError(t, repo.Upsert(ctx, second.CourseID, 5))
	require.NoError(t, db.Model(&models.CourseProfessor{}).
		Where("course_id = ?", second.CourseID).
		Update("status", models.AssignmentInactive).Error)

	courses, err := repo.ListActiveCourses(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, []string{"Calculus"}, courses)

	courses, err = repo.ListActiveCourses(ctx, 99)
	require.NoError(t, err)
	require.Empty(t, courses)
}
