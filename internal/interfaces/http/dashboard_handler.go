package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Teamwawa12/ProyectoBus/internal/application/analytics"
	"github.com/Teamwawa12/ProyectoBus/internal/application/dto"
	"github.com/Teamwawa12/ProyectoBus/pkg/logger"
)

// DashboardHandler estadísticas del panel administrativo.
type DashboardHandler struct {
	uc  *analytics.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(uc *analytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// Estadisticas godoc
// @Summary      Estadísticas del día
// @Description  Ventas de hoy, buses operativos, viajes programados y ranking
// @Description  de rutas más vendidas.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.EstadisticasDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/dashboard/estadisticas [get]
func (h *DashboardHandler) Estadisticas(c *fiber.Ctx) error {
	out, err := h.uc.Estadisticas(c.Context())
	if err != nil {
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("estadísticas del dashboard")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno del servidor"})
	}
	return c.JSON(out)
}
