package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campusdesk/campusdesk-api/internal/service"
	"github.com/campusdesk/campusdesk-api/internal/utils"
)

// AdminDashboardHandler serves the cached aggregate counters.
type AdminDashboardHandler struct {
	dashboard service.DashboardService
	logger    zerolog.Logger
}

// NewAdminDashboardHandler constructs the handler.
func NewAdminDashboardHandler(dashboard service.DashboardService, logger zerolog.Logger) *AdminDashboardHandler {
	return &AdminDashboardHandler{
		dashboard: dashboard,
		logger:    logger.With().Str("component", "admin_dashboard_handler").Logger(),
	}
}

// Register attaches the dashboard endpoint to the router group.
func (h *AdminDashboardHandler) Register(router fiber.Router) {
	router.Get("/dashboard", h.get)
}

func (h *AdminDashboardHandler) get(c *fiber.Ctx) error {
	snapshot, err := h.dashboard.GetDashboard(c.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
	return utils.SendSuccess(c, "dashboard retrieved", snapshot)
}
