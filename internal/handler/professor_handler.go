package handler

import (
	"errors"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campusdesk/campusdesk-api/internal/dto"
	"github.com/campusdesk/campusdesk-api/internal/service"
	"github.com/campusdesk/campusdesk-api/internal/utils"
)

// ProfessorHandler wires the professor panel: assigned courses, enrolled
// students, grade upload and the course-request workflow.
type ProfessorHandler struct {
	assignments service.AssignmentService
	enrollments service.EnrollmentService
	grades      service.GradeService
	requests    service.RequestService
	validator   *validator.Validate
	logger      zerolog.Logger
}

// NewProfessorHandler constructs the handler.
func NewProfessorHandler(assignments service.AssignmentService, enrollments service.EnrollmentService, grades service.GradeService, requests service.RequestService, validator *validator.Validate, logger zerolog.Logger) *ProfessorHandler {
	return &ProfessorHandler{
		assignments: assignments,
		enrollments: enrollments,
		grades:      grades,
		requests:    requests,
		validator:   validator,
		logger:      logger.With().Str("component", "professor_handler").Logger(),
	}
}

// Register attaches the professor endpoints to the router group.
func (h *ProfessorHandler) Register(router fiber.Router) {
	router.Get("/courses", h.myCourses)
	router.Get("/courses/:name/students", h.courseStudents)
	router.Post("/grades", h.uploadGrade)
	router.Post("/requests", h.submitRequest)
	router.Get("/requests", h.myRequests)
}

func (h *ProfessorHandler) myCourses(c *fiber.Ctx) error {
	courses, err := h.assignments.ListForProfessor(c.Context(), userIDFromContext(c))
	if err != nil {
		return h.internalError(c, err)
	}
	return utils.SendSuccess(c, "assigned courses retrieved", courses)
}

func (h *ProfessorHandler) courseStudents(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil || name == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid course name")
	}

	students, err := h.enrollments.ListStudents(c.Context(), name)
	if err != nil {
		return h.internalError(c, err)
	}
	return utils.SendSuccess(c, "enrolled students retrieved", students)
}

func (h *ProfessorHandler) uploadGrade(c *fiber.Ctx) error {
	var payload dto.GradeUploadRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.grades.Upload(c.Context(), payload); err != nil {
		var validationErrors validator.ValidationErrors
		switch {
		case errors.Is(err, service.ErrCourseNotFound):
			return utils.SendError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNotEnrolled):
			return utils.SendError(c, fiber.StatusConflict, err.Error())
		case errors.As(err, &validationErrors):
			return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
		default:
			return h.internalError(c, err)
		}
	}

	return utils.SendSuccess(c, "grade saved", payload)
}

// submitRequest files a course request under the authenticated professor's
// display name, the key the request ledger uses.
func (h *ProfessorHandler) submitRequest(c *fiber.Ctx) error {
	var payload dto.CourseRequestCreate
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	professorName := userNameFromContext(c)
	if professorName == "" {
		return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
	}

	if err := h.requests.Submit(c.Context(), professorName, payload.CourseName); err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, err.Error())
		}
		return h.internalError(c, err)
	}

	return utils.SendCreated(c, "course request submitted", payload)
}

func (h *ProfessorHandler) myRequests(c *fiber.Ctx) error {
	professorName := userNameFromContext(c)
	if professorName == "" {
		return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
	}

	requests, err := h.requests.ListForProfessor(c.Context(), professorName)
	if err != nil {
		return h.internalError(c, err)
	}
	return utils.SendSuccess(c, "course requests retrieved", requests)
}

func (h *ProfessorHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
