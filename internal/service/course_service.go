package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/campusdesk/campusdesk-api/internal/dto"
	"github.com/campusdesk/campusdesk-api/internal/models"
	"github.com/campusdesk/campusdesk-api/internal/repository"
)

var (
	// ErrCourseNotFound indicates no course matches the normalized name.
	ErrCourseNotFound = errors.New("course not found")
	// ErrCourseExists indicates a case-insensitive duplicate course name.
	ErrCourseExists = errors.New("course already exists")
	// ErrInvalidCourseName indicates a name outside the allowed charset or
	// without a single letter.
	ErrInvalidCourseName = errors.New("course name must contain at least one letter; letters, digits, spaces, '-', ':' and '_' are allowed")
)

// CourseService manages the course catalog.
type CourseService interface {
	Add(ctx context.Context, name string) (dto.CourseResponse, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]dto.CourseResponse, error)
	Exists(ctx context.Context, name string) (bool, error)
}

type courseService struct {
	courses repository.CourseRepository
	logger  zerolog.Logger
}

// NewCourseService constructs the catalog service.
func NewCourseService(courses repository.CourseRepository, logger zerolog.Logger) CourseService {
	return &courseService{
		courses: courses,
		logger:  logger.With().Str("component", "course_service").Logger(),
	}
}

func (s *courseService) Add(ctx context.Context, name string) (dto.CourseResponse, error) {
	if !validCourseName(name) {
		return dto.CourseResponse{}, ErrInvalidCourseName
	}

	normalized := normalizeName(name)
	if _, err := s.courses.GetByName(ctx, normalized); err == nil {
		return dto.CourseResponse{}, ErrCourseExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.CourseResponse{}, err
	}

	course := models.Course{
		CourseName:     normalized,
		CourseFees:     0,
		CourseDuration: "NA",
	}
	if err := s.courses.Create(ctx, &course); err != nil {
		return dto.CourseResponse{}, err
	}

	s.logger.Info().Str("course", normalized).Msg("course added")
	return dto.NewCourseResponse(course), nil
}

func (s *courseService) Delete(ctx context.Context, name string) error {
	course, err := s.courses.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		return err
	}

	if err := s.courses.DeleteCascade(ctx, course); err != nil {
		return err
	}

	s.logger.Info().Str("course", course.CourseName).Msg("course deleted with dependents")
	return nil
}

func (s *courseService) List(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, dto.NewCourseResponse(course))
	}
	return responses, nil
}

func (s *courseService) Exists(ctx context.Context, name string) (bool, error) {
	_, err := s.courses.GetByName(ctx, name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}
