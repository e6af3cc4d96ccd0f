package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/campusdesk/campusdesk-api/internal/repository"
)

// EnrollmentService maps students onto courses.
type EnrollmentService interface {
	Enroll(ctx context.Context, courseName string, studentID uint) error
	ListForStudent(ctx context.Context, studentID uint) ([]string, error)
	ListStudents(ctx context.Context, courseName string) ([]string, error)
}

type enrollmentService struct {
	courses     repository.CourseRepository
	enrollments repository.EnrollmentRepository
	users       repository.UserRepository
	logger      zerolog.Logger
}

// NewEnrollmentService constructs the enrollment service.
func NewEnrollmentService(courses repository.CourseRepository, enrollments repository.EnrollmentRepository, users repository.UserRepository, logger zerolog.Logger) EnrollmentService {
	return &enrollmentService{
		courses:     courses,
		enrollments: enrollments,
		users:       users,
		logger:      logger.With().Str("component", "enrollment_service").Logger(),
	}
}

// Enroll writes (course, student, enrolled), idempotently.
func (s *enrollmentService) Enroll(ctx context.Context, courseName string, studentID uint) error {
	course, err := s.courses.GetByName(ctx, courseName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		return err
	}

	if err := s.users.EnsureStudentProfile(ctx, studentID); err != nil {
		return err
	}
	if err := s.enrollments.Upsert(ctx, course.CourseID, studentID); err != nil {
		return err
	}

	s.logger.Info().Str("course", course.CourseName).Uint("student_id", studentID).Msg("student enrolled")
	return nil
}

func (s *enrollmentService) ListForStudent(ctx context.Context, studentID uint) ([]string, error) {
	return s.enrollments.ListActiveCourses(ctx, studentID)
}

// ListStudents returns the names of currently enrolled students. An unknown
// course yields an empty list, not an error.
func (s *enrollmentService) ListStudents(ctx context.Context, courseName string) ([]string, error) {
	course, err := s.courses.GetByName(ctx, courseName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []string{}, nil
		}
		return nil, err
	}
	return s.enrollments.ListActiveStudents(ctx, course.CourseID)
}
