package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campusdesk/campusdesk-api/internal/models"
	"github.com/campusdesk/campusdesk-api/internal/repository"
)

func TestCourseServiceAddNormalizesName(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewCourseService(repository.NewCourseRepository(db), testLogger())
	ctx := context.Background()

	course, err := svc.Add(ctx, "  data structures ")
	require.NoError(t, err)
	require.Equal(t, "Data Structures", course.Name)
	require.Equal(t, "NA", course.Duration)
	require.Zero(t, course.Fees)
}

func TestCourseServiceAddRejectsInvalidNames(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewCourseService(repository.NewCourseRepository(db), testLogger())
	ctx := context.Background()

	for _, name := range []string{"", "   ", "12345", "C++ Basics", "math!"} {
		_, err := svc.Add(ctx, name)
		require.ErrorIs(t, err, ErrInvalidCourseName, "name %q", name)
	}

	for _, name := range []string{"Go 101", "Intro: Databases", "data-science_2"} {
		_, err := svc.Add(ctx, name)
		require.NoError(t, err, "name %q", name)
	}
}

func TestCourseServiceAddDuplicateCaseInsensitive(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewCourseService(repository.NewCourseRepository(db), testLogger())
	ctx := context.Background()

	_, err := svc.Add(ctx, "Databases")
	require.NoError(t, err)

	_, err = svc.Add(ctx, "dataBASES")
	require.ErrorIs(t, err, ErrCourseExists)
}

func TestCourseServiceDeleteCascades(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewCourseService(repository.NewCourseRepository(db), testLogger())
	ctx := context.Background()

	created, err := svc.Add(ctx, "Databases")
	require.NoError(t, err)

	require.NoError(t, db.Create(&models.Enrollment{CourseID: created.CourseID, StudentID: 2}).Error)
	require.NoError(t, db.Create(&models.Grade{CourseID: created.CourseID, StudentID: 2, Grade: "B"}).Error)

	require.NoError(t, svc.Delete(ctx, "databases"))

	exists, err := svc.Exists(ctx, "Databases")
	require.NoError(t, err)
	require.False(t, exists)

	var enrollments int64
	require.NoError(t, db.Model(&models.Enrollment{}).Count(&enrollments).Error)
	require.Zero(t, enrollments)

	require.ErrorIs(t, svc.Delete(ctx, "Databases"), ErrCourseNotFound)
}
