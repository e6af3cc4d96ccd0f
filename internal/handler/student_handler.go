package handler

import (
	"errors"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campusdesk/campusdesk-api/internal/service"
	"github.com/campusdesk/campusdesk-api/internal/utils"
)

// StudentHandler wires the student panel: self-service enrollment, the
// enrolled course list and grade lookup.
type StudentHandler struct {
	enrollments service.EnrollmentService
	grades      service.GradeService
	validator   *validator.Validate
	logger      zerolog.Logger
}

// NewStudentHandler constructs the handler.
func NewStudentHandler(enrollments service.EnrollmentService, grades service.GradeService, validator *validator.Validate, logger zerolog.Logger) *StudentHandler {
	return &StudentHandler{
		enrollments: enrollments,
		grades:      grades,
		validator:   validator,
		logger:      logger.With().Str("component", "student_handler").Logger(),
	}
}

// Register attaches the student endpoints to the router group.
func (h *StudentHandler) Register(router fiber.Router) {
	router.Post("/enrollments", h.enroll)
	router.Get("/courses", h.myCourses)
	router.Get("/courses/:name/grade", h.myGrade)
}

type selfEnrollRequest struct {
	CourseName string `json:"course_name" validate:"required"`
}

// enroll enrolls the authenticated student; the student id comes from the
// token, never from the body.
func (h *StudentHandler) enroll(c *fiber.Ctx) error {
	var payload selfEnrollRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.enrollments.Enroll(c.Context(), payload.CourseName, userIDFromContext(c)); err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, err.Error())
		}
		return h.internalError(c, err)
	}

	return utils.SendCreated(c, "enrolled", payload)
}

func (h *StudentHandler) myCourses(c *fiber.Ctx) error {
	courses, err := h.enrollments.ListForStudent(c.Context(), userIDFromContext(c))
	if err != nil {
		return h.internalError(c, err)
	}
	return utils.SendSuccess(c, "enrolled courses retrieved", courses)
}

func (h *StudentHandler) myGrade(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil || name == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid course name")
	}

	grade, err := h.grades.View(c.Context(), userIDFromContext(c), name)
	if err != nil {
		if errors.Is(err, service.ErrGradeNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, err.Error())
		}
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "grade retrieved", grade)
}

func (h *StudentHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
