package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Teamwawa12/ProyectoBus/internal/application/dto"
	"github.com/Teamwawa12/ProyectoBus/internal/infrastructure/reniec"
	"github.com/Teamwawa12/ProyectoBus/pkg/logger"
)

// ReniecHandler consulta de datos de persona por DNI.
type ReniecHandler struct {
	client *reniec.Client
	log    *logger.Logger
}

// NewReniecHandler construye el handler de consultas RENIEC.
func NewReniecHandler(client *reniec.Client, log *logger.Logger) *ReniecHandler {
	return &ReniecHandler{client: client, log: log}
}

// ConsultarDNI godoc
// @Summary      Consultar datos de una persona por DNI
// @Tags         reniec
// @Produce      json
// @Param        dni  path  string  true  "DNI de 8 dígitos"
// @Success      200  {object}  dto.ReniecDataDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reniec/dni/{dni} [get]
func (h *ReniecHandler) ConsultarDNI(c *fiber.Ctx) error {
	dni := c.Params("dni")

	data, err := h.client.ConsultarDNI(c.Context(), dni)
	if err != nil {
		switch {
		case errors.Is(err, reniec.ErrDNIInvalido):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "dni debe tener 8 dígitos"})
		case errors.Is(err, reniec.ErrNoEncontrado):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "no se encontraron datos para el dni"})
		}
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("consulta RENIEC")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno del servidor"})
	}
	return c.JSON(data)
}
