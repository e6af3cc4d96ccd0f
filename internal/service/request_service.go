package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"

	"github.com/campusdesk/campusdesk-api/internal/dto"
	"github.com/campusdesk/campusdesk-api/internal/models"
	"github.com/campusdesk/campusdesk-api/internal/repository"
)

var (
	// ErrRequestNotFound indicates no request row exists for the pair.
	ErrRequestNotFound = errors.New("course request not found")
	// ErrInvalidDecision indicates a resolve status other than accepted/rejected.
	ErrInvalidDecision = errors.New("decision must be accepted or rejected")
)

// RequestService runs the professor course-request workflow: pending ->
// accepted | rejected, with re-request reopening any terminal state.
type RequestService interface {
	Submit(ctx context.Context, professorName, courseName string) error
	ListPending(ctx context.Context) ([]dto.CourseRequestResponse, error)
	Resolve(ctx context.Context, professorName, courseName, status string) error
	ListForProfessor(ctx context.Context, professorName string) ([]dto.CourseRequestResponse, error)
}

type requestService struct {
	db          *gorm.DB
	requests    repository.RequestRepository
	courses     repository.CourseRepository
	assignments repository.AssignmentRepository
	users       repository.UserRepository
	logger      zerolog.Logger
}

// NewRequestService constructs the request workflow service. The db handle is
// used to run the accept path as a single transaction.
func NewRequestService(db *gorm.DB, requests repository.RequestRepository, courses repository.CourseRepository, assignments repository.AssignmentRepository, users repository.UserRepository, logger zerolog.Logger) RequestService {
	return &requestService{
		db:          db,
		requests:    requests,
		courses:     courses,
		assignments: assignments,
		users:       users,
		logger:      logger.With().Str("component", "request_service").Logger(),
	}
}

// Submit records the pair as pending. A previously accepted or rejected pair
// is reopened rather than duplicated.
func (s *requestService) Submit(ctx context.Context, professorName, courseName string) error {
	professorName = normalizeName(professorName)
	course, err := s.courses.GetByName(ctx, courseName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		return err
	}

	if err := s.requests.UpsertPending(ctx, professorName, course.CourseName); err != nil {
		return err
	}

	s.logger.Info().Str("professor", professorName).Str("course", course.CourseName).Msg("course request submitted")
	return nil
}

func (s *requestService) ListPending(ctx context.Context) ([]dto.CourseRequestResponse, error) {
	requests, err := s.requests.ListByStatus(ctx, models.RequestPending)
	if err != nil {
		return nil, err
	}
	return toRequestResponses(requests), nil
}

// Resolve applies the admin decision. Acceptance performs the assignment
// write (professor resolved by name, created when absent) and the status
// update inside one transaction, so a failed assignment leaves the request
// pending instead of half-applied.
func (s *requestService) Resolve(ctx context.Context, professorName, courseName, status string) error {
	tracer := otel.Tracer("github.com/campusdesk/campusdesk-api/internal/service/request")
	ctx, span := tracer.Start(ctx, "request.resolve")
	span.SetAttributes(
		attribute.String("request.professor", professorName),
		attribute.String("request.course", courseName),
		attribute.String("request.decision", status),
	)
	defer span.End()

	decision := models.RequestStatus(status)
	if !decision.TerminalOutcome() {
		span.SetStatus(codes.Error, "invalid_decision")
		return ErrInvalidDecision
	}

	professorName = normalizeName(professorName)
	courseName = normalizeName(courseName)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if decision == models.RequestAccepted {
			course, err := s.courses.WithTx(tx).GetByName(ctx, courseName)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrCourseNotFound
				}
				return err
			}
			professorID, err := s.users.WithTx(tx).EnsureProfessorByName(ctx, professorName)
			if err != nil {
				return err
			}
			if err := s.assignments.WithTx(tx).Upsert(ctx, course.CourseID, professorID); err != nil {
				return err
			}
		}

		affected, err := s.requests.WithTx(tx).SetStatus(ctx, professorName, courseName, decision)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrRequestNotFound
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "resolve_failed")
		return err
	}

	s.logger.Info().Str("professor", professorName).Str("course", courseName).Str("decision", status).Msg("course request resolved")
	return nil
}

func (s *requestService) ListForProfessor(ctx context.Context, professorName string) ([]dto.CourseRequestResponse, error) {
	requests, err := s.requests.ListByProfessor(ctx, normalizeName(professorName))
	if err != nil {
		return nil, err
	}
	return toRequestResponses(requests), nil
}

func toRequestResponses(requests []models.CourseRequest) []dto.CourseRequestResponse {
	responses := make([]dto.CourseRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, dto.NewCourseRequestResponse(request))
	}
	return responses
}
