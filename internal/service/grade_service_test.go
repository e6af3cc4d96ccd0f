package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/campusdesk/campusdesk-api/internal/dto"
	"github.com/campusdesk/campusdesk-api/internal/models"
	"github.com/campusdesk/campusdesk-api/internal/repository"
)

func newGradeFixture(t *testing.T, db *gorm.DB) (GradeService, EnrollmentService, models.Course) {
	t.Helper()
	courses := repository.NewCourseRepository(db)
	enrollments := repository.NewEnrollmentRepository(db)
	users := repository.NewUserRepository(db)

	grades := NewGradeService(courses, enrollments, repository.NewGradeRepository(db), validator.New(validator.WithRequiredStructEnabled()), testLogger())
	enrollSvc := NewEnrollmentService(courses, enrollments, users, testLogger())

	course := models.Course{CourseName: "Databases", CourseDuration: "NA"}
	require.NoError(t, db.Create(&course).Error)
	return grades, enrollSvc, course
}

func TestGradeServiceUploadRequiresEnrollment(t *testing.T) {
	db := setupServiceDB(t)
	grades, _, _ := newGradeFixture(t, db)
	ctx := context.Background()

	err := grades.Upload(ctx, dto.GradeUploadRequest{CourseName: "Databases", StudentID: 2, Grade: "A"})
	require.ErrorIs(t, err, ErrNotEnrolled)

	err = grades.Upload(ctx, dto.GradeUploadRequest{CourseName: "Ghost Course", StudentID: 2, Grade: "A"})
	require.ErrorIs(t, err, ErrCourseNotFound)
}

func TestGradeServiceUploadAndOverwrite(t *testing.T) {
	db := setupServiceDB(t)
	grades, enrollments, course := newGradeFixture(t, db)
	ctx := context.Background()

	require.NoError(t, enrollments.Enroll(ctx, "databases", 2))

	require.NoError(t, grades.Upload(ctx, dto.GradeUploadRequest{CourseName: "Databases", StudentID: 2, Grade: "B"}))
	require.NoError(t, grades.Upload(ctx, dto.GradeUploadRequest{CourseName: "Databases", StudentID: 2, Grade: "A"}))

	grade, err := grades.View(ctx, 2, "databases")
	require.NoError(t, err)
	require.Equal(t, "A", grade.Grade)
	require.Equal(t, course.CourseName, grade.CourseName)

	var rows int64
	require.NoError(t, db.Model(&models.Grade{}).Count(&rows).Error)
	require.Equal(t, int64(1), rows)
}

func TestGradeServiceUploadRejectsDroppedStudent(t *testing.T) {
	db := setupServiceDB(t)
	grades, enrollments, course := newGradeFixture(t, db)
	ctx := context.Background()

	require.NoError(t, enrollments.Enroll(ctx, "Databases", 2))
	_, err := repository.NewEnrollmentRepository(db).SetStatus(ctx, course.CourseID, 2, models.EnrollmentDropped)
	require.NoError(t, err)

	err = grades.Upload(ctx, dto.GradeUploadRequest{CourseName: "Databases", StudentID: 2, Grade: "A"})
	require.ErrorIs(t, err, ErrNotEnrolled)
}

func TestGradeServiceViewFailsClosed(t *testing.T) {
	db := setupServiceDB(t)
	grades, _, _ := newGradeFixture(t, db)
	ctx := context.Background()

	_, err := grades.View(ctx, 2, "Databases")
	require.ErrorIs(t, err, ErrGradeNotFound)

	_, err = grades.View(ctx, 2, "Ghost Course")
	require.ErrorIs(t, err, ErrGradeNotFound)
}
