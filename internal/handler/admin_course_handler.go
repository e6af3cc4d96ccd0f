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

// AdminCourseHandler wires the admin catalog and ledger routes: course
// add/delete/list plus enroll-by-id and assign-by-id.
type AdminCourseHandler struct {
	courses     service.CourseService
	assignments service.AssignmentService
	enrollments service.EnrollmentService
	dashboard   service.DashboardService
	validator   *validator.Validate
	logger      zerolog.Logger
}

// NewAdminCourseHandler constructs the handler.
func NewAdminCourseHandler(courses service.CourseService, assignments service.AssignmentService, enrollments service.EnrollmentService, dashboard service.DashboardService, validator *validator.Validate, logger zerolog.Logger) *AdminCourseHandler {
	return &AdminCourseHandler{
		courses:     courses,
		assignments: assignments,
		enrollments: enrollments,
		dashboard:   dashboard,
		validator:   validator,
		logger:      logger.With().Str("component", "admin_course_handler").Logger(),
	}
}

// Register attaches the admin course endpoints to the router group.
func (h *AdminCourseHandler) Register(router fiber.Router) {
	router.Get("/courses", h.list)
	router.Post("/courses", h.create)
	router.Delete("/courses/:name", h.delete)
	router.Post("/assignments", h.assign)
	router.Post("/enrollments", h.enroll)
}

func (h *AdminCourseHandler) list(c *fiber.Ctx) error {
	courses, err := h.courses.List(c.Context())
	if err != nil {
		return h.internalError(c, err)
	}
	return utils.SendSuccess(c, "courses retrieved", courses)
}

func (h *AdminCourseHandler) create(c *fiber.Ctx) error {
	var payload dto.CourseCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	course, err := h.courses.Add(c.Context(), payload.Name)
	if err != nil {
		return h.handleError(c, err)
	}

	h.dashboard.Invalidate(c.Context())
	return utils.SendCreated(c, "course added", course)
}

func (h *AdminCourseHandler) delete(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil || name == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid course name")
	}

	if err := h.courses.Delete(c.Context(), name); err != nil {
		return h.handleError(c, err)
	}

	h.dashboard.Invalidate(c.Context())
	return utils.SendSuccess(c, "course deleted", fiber.Map{"name": name})
}

func (h *AdminCourseHandler) assign(c *fiber.Ctx) error {
	var payload dto.AssignRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.assignments.Assign(c.Context(), payload.CourseName, payload.ProfessorID); err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "professor assigned", payload)
}

func (h *AdminCourseHandler) enroll(c *fiber.Ctx) error {
	var payload dto.EnrollRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.enrollments.Enroll(c.Context(), payload.CourseName, payload.StudentID); err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "student enrolled", payload)
}

func (h *AdminCourseHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		return utils.SendError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrCourseExists):
		return utils.SendError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCourseName):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	default:
		return h.internalError(c, err)
	}
}

func (h *AdminCourseHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
