package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/campusdesk/campusdesk-api/internal/repository"
)

// AssignmentService maps professors onto courses.
type AssignmentService interface {
	Assign(ctx context.Context, courseName string, professorID uint) error
	ListForProfessor(ctx context.Context, professorID uint) ([]string, error)
}

type assignmentService struct {
	courses     repository.CourseRepository
	assignments repository.AssignmentRepository
	users       repository.UserRepository
	logger      zerolog.Logger
}

// NewAssignmentService constructs the assignment service.
func NewAssignmentService(courses repository.CourseRepository, assignments repository.AssignmentRepository, users repository.UserRepository, logger zerolog.Logger) AssignmentService {
	return &assignmentService{
		courses:     courses,
		assignments: assignments,
		users:       users,
		logger:      logger.With().Str("component", "assignment_service").Logger(),
	}
}

// Assign writes (course, professor, active), idempotently. A missing
// professor profile row is materialised before the assignment write.
func (s *assignmentService) Assign(ctx context.Context, courseName string, professorID uint) error {
	course, err := s.courses.GetByName(ctx, courseName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		return err
	}

	if err := s.users.EnsureProfessorProfile(ctx, professorID); err != nil {
		return err
	}
	if err := s.assignments.Upsert(ctx, course.CourseID, professorID); err != nil {
		return err
	}

	s.logger.Info().Str("course", course.CourseName).Uint("professor_id", professorID).Msg("professor assigned")
	return nil
}

func (s *assignmentService) ListForProfessor(ctx context.Context, professorID uint) ([]string, error) {
	return s.assignments.ListActiveCourses(ctx, professorID)
}
