package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/campusdesk/campusdesk-api/internal/dto"
	"github.com/campusdesk/campusdesk-api/internal/models"
	"github.com/campusdesk/campusdesk-api/internal/repository"
)

var (
	// ErrNotEnrolled indicates the student has no current enrollment on the
	// course, so a grade cannot be written.
	ErrNotEnrolled = errors.New("student is not enrolled in this course")
	// ErrGradeNotFound indicates no grade exists for the pair.
	ErrGradeNotFound = errors.New("grade not found")
)

// GradeService writes and reads the single grade per course/student pair.
type GradeService interface {
	Upload(ctx context.Context, req dto.GradeUploadRequest) error
	View(ctx context.Context, studentID uint, courseName string) (dto.GradeResponse, error)
}

type gradeService struct {
	courses     repository.CourseRepository
	enrollments repository.EnrollmentRepository
	grades      repository.GradeRepository
	validator   *validator.Validate
	logger      zerolog.Logger
}

// NewGradeService constructs the grade service.
func NewGradeService(courses repository.CourseRepository, enrollments repository.EnrollmentRepository, grades repository.GradeRepository, validator *validator.Validate, logger zerolog.Logger) GradeService {
	return &gradeService{
		courses:     courses,
		enrollments: enrollments,
		grades:      grades,
		validator:   validator,
		logger:      logger.With().Str("component", "grade_service").Logger(),
	}
}

// Upload writes the grade, replacing any previous value. The pair must hold
// an enrollment in the enrolled state at write time; completed or dropped
// enrollments are rejected.
func (s *gradeService) Upload(ctx context.Context, req dto.GradeUploadRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return err
	}

	course, err := s.courses.GetByName(ctx, req.CourseName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		return err
	}

	status, err := s.enrollments.GetStatus(ctx, course.CourseID, req.StudentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotEnrolled
		}
		return err
	}
	if status != models.EnrollmentEnrolled {
		return ErrNotEnrolled
	}

	if err := s.grades.Upsert(ctx, course.CourseID, req.StudentID, req.Grade); err != nil {
		return err
	}

	s.logger.Info().Str("course", course.CourseName).Uint("student_id", req.StudentID).Str("grade", req.Grade).Msg("grade uploaded")
	return nil
}

// View returns the grade for the pair, failing closed to not-found when the
// course itself is unknown.
func (s *gradeService) View(ctx context.Context, studentID uint, courseName string) (dto.GradeResponse, error) {
	course, err := s.courses.GetByName(ctx, courseName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.GradeResponse{}, ErrGradeNotFound
		}
		return dto.GradeResponse{}, err
	}

	row, err := s.grades.Get(ctx, course.CourseID, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.GradeResponse{}, ErrGradeNotFound
		}
		return dto.GradeResponse{}, err
	}

	return dto.GradeResponse{CourseName: course.CourseName, Grade: row.Grade}, nil
}
