package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campusdesk/campusdesk-api/internal/dto"
	"github.com/campusdesk/campusdesk-api/internal/service"
	"github.com/campusdesk/campusdesk-api/internal/utils"
)

// AdminRequestHandler wires the admin side of the course-request workflow.
type AdminRequestHandler struct {
	requests  service.RequestService
	dashboard service.DashboardService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewAdminRequestHandler constructs the handler.
func NewAdminRequestHandler(requests service.RequestService, dashboard service.DashboardService, validator *validator.Validate, logger zerolog.Logger) *AdminRequestHandler {
	return &AdminRequestHandler{
		requests:  requests,
		dashboard: dashboard,
		validator: validator,
		logger:    logger.With().Str("component", "admin_request_handler").Logger(),
	}
}

// Register attaches the request-resolution endpoints to the router group.
func (h *AdminRequestHandler) Register(router fiber.Router) {
	router.Get("/requests/pending", h.listPending)
	router.Post("/requests/resolve", h.resolve)
}

func (h *AdminRequestHandler) listPending(c *fiber.Ctx) error {
	requests, err := h.requests.ListPending(c.Context())
	if err != nil {
		return h.internalError(c, err)
	}
	return utils.SendSuccess(c, "pending requests retrieved", requests)
}

func (h *AdminRequestHandler) resolve(c *fiber.Ctx) error {
	var payload dto.CourseRequestResolve
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.requests.Resolve(c.Context(), payload.ProfessorName, payload.CourseName, payload.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDecision):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrCourseNotFound), errors.Is(err, service.ErrRequestNotFound):
			return utils.SendError(c, fiber.StatusNotFound, err.Error())
		default:
			return h.internalError(c, err)
		}
	}

	h.dashboard.Invalidate(c.Context())
	return utils.SendSuccess(c, "request resolved", payload)
}

func (h *AdminRequestHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
