package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Teamwawa12/ProyectoBus/internal/application/catalogo"
	"github.com/Teamwawa12/ProyectoBus/internal/application/dto"
	"github.com/Teamwawa12/ProyectoBus/internal/domain/entity"
	"github.com/Teamwawa12/ProyectoBus/pkg/logger"
)

// AdminHandler listados administrativos de viajes y flota.
type AdminHandler struct {
	uc  *catalogo.CatalogoUseCase
	log *logger.Logger
}

// NewAdminHandler construye el handler administrativo.
func NewAdminHandler(uc *catalogo.CatalogoUseCase, log *logger.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, log: log}
}

// ListarViajes godoc
// @Summary      Listar viajes (admin)
// @Tags         admin
// @Produce      json
// @Param        fecha   query  string  false  "fecha YYYY-MM-DD"
// @Param        estado  query  string  false  "estado del viaje"
// @Success      200  {array}   dto.ViajeDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/viajes [get]
func (h *AdminHandler) ListarViajes(c *fiber.Ctx) error {
	var fecha *time.Time
	if s := c.Query("fecha"); s != "" {
		f, err := time.Parse(fechaLayout, s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "fecha inválida, formato esperado YYYY-MM-DD"})
		}
		fecha = &f
	}
	var estado *string
	if s := c.Query("estado"); s != "" {
		if !entity.EstadoViajeValido(s) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "estado de viaje inválido"})
		}
		estado = &s
	}

	viajes, err := h.uc.ListarViajesAdmin(c.Context(), fecha, estado)
	if err != nil {
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("listar viajes admin")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno del servidor"})
	}
	return c.JSON(viajes)
}

// ListarBuses godoc
// @Summary      Listar flota (admin)
// @Tags         admin
// @Produce      json
// @Success      200  {array}   dto.BusDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/buses [get]
func (h *AdminHandler) ListarBuses(c *fiber.Ctx) error {
	buses, err := h.uc.ListarBuses(c.Context())
	if err != nil {
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("listar buses")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno del servidor"})
	}
	return c.JSON(buses)
}
