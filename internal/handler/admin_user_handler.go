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

// AdminUserHandler wires account listings and the professor approval queue.
type AdminUserHandler struct {
	auth      service.AuthService
	dashboard service.DashboardService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewAdminUserHandler constructs the handler.
func NewAdminUserHandler(auth service.AuthService, dashboard service.DashboardService, validator *validator.Validate, logger zerolog.Logger) *AdminUserHandler {
	return &AdminUserHandler{
		auth:      auth,
		dashboard: dashboard,
		validator: validator,
		logger:    logger.With().Str("component", "admin_user_handler").Logger(),
	}
}

// Register attaches the admin account endpoints to the router group.
func (h *AdminUserHandler) Register(router fiber.Router) {
	router.Get("/users/:role", h.listByRole)
	router.Get("/professors/:status", h.listProfessors)
	router.Patch("/professors/:id/status", h.setProfessorStatus)
}

// listByRole feeds the panel dropdowns; professors are restricted to
// approved accounts unless all=true is passed.
func (h *AdminUserHandler) listByRole(c *fiber.Ctx) error {
	onlyApproved := c.Query("all") != "true"
	users, err := h.auth.ListByRole(c.Context(), c.Params("role"), onlyApproved)
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendSuccess(c, "users retrieved", users)
}

func (h *AdminUserHandler) listProfessors(c *fiber.Ctx) error {
	accounts, err := h.auth.ListProfessorAccounts(c.Context(), c.Params("status"))
	if err != nil {
		return h.handleError(c, err)
	}
	return utils.SendSuccess(c, "professor accounts retrieved", accounts)
}

func (h *AdminUserHandler) setProfessorStatus(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid professor id")
	}

	var payload dto.ProfessorStatusRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.auth.SetProfessorStatus(c.Context(), id, payload.Status); err != nil {
		return h.handleError(c, err)
	}

	h.dashboard.Invalidate(c.Context())
	return utils.SendSuccess(c, "professor status updated", fiber.Map{"professor_id": id, "status": payload.Status})
}

func (h *AdminUserHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrProfessorNotFound):
		return utils.SendError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidRole), errors.Is(err, service.ErrInvalidStatus):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	default:
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
