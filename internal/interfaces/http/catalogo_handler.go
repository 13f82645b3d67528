package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Teamwawa12/ProyectoBus/internal/application/catalogo"
	"github.com/Teamwawa12/ProyectoBus/internal/application/dto"
	"github.com/Teamwawa12/ProyectoBus/pkg/logger"
)

const fechaLayout = "2006-01-02"

// CatalogoHandler lecturas públicas: rutas, búsqueda de viajes y asientos.
type CatalogoHandler struct {
	uc  *catalogo.CatalogoUseCase
	log *logger.Logger
}

// NewCatalogoHandler construye el handler del catálogo.
func NewCatalogoHandler(uc *catalogo.CatalogoUseCase, log *logger.Logger) *CatalogoHandler {
	return &CatalogoHandler{uc: uc, log: log}
}

// ListarRutas godoc
// @Summary      Listar rutas
// @Tags         catalogo
// @Produce      json
// @Success      200  {array}   dto.RutaDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/rutas [get]
func (h *CatalogoHandler) ListarRutas(c *fiber.Ctx) error {
	rutas, err := h.uc.ListarRutas(c.Context())
	if err != nil {
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("listar rutas")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno del servidor"})
	}
	return c.JSON(rutas)
}

// BuscarViajes godoc
// @Summary      Buscar viajes programados por origen, destino y fecha
// @Tags         catalogo
// @Produce      json
// @Param        origen   query  string  true  "ciudad de origen"
// @Param        destino  query  string  true  "ciudad de destino"
// @Param        fecha    query  string  true  "fecha YYYY-MM-DD"
// @Success      200  {array}   dto.ViajeDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/viajes/buscar [get]
func (h *CatalogoHandler) BuscarViajes(c *fiber.Ctx) error {
	origen := c.Query("origen")
	destino := c.Query("destino")
	fechaStr := c.Query("fecha")
	if origen == "" || destino == "" || fechaStr == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "origen, destino y fecha son requeridos"})
	}
	fecha, err := time.Parse(fechaLayout, fechaStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "fecha inválida, formato esperado YYYY-MM-DD"})
	}

	viajes, err := h.uc.BuscarViajes(c.Context(), origen, destino, fecha)
	if err != nil {
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("buscar viajes")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno del servidor"})
	}
	return c.JSON(viajes)
}

// AsientosOcupados godoc
// @Summary      Asientos ocupados de un viaje
// @Tags         catalogo
// @Produce      json
// @Param        viajeId  path  int  true  "código del viaje"
// @Success      200  {array}   int
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/viajes/{viajeId}/asientos [get]
func (h *CatalogoHandler) AsientosOcupados(c *fiber.Ctx) error {
	viajeCodigo, err := c.ParamsInt("viajeId")
	if err != nil || viajeCodigo <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "código de viaje inválido"})
	}
	asientos, err := h.uc.AsientosOcupados(c.Context(), int64(viajeCodigo))
	if err != nil {
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("asientos ocupados")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno del servidor"})
	}
	return c.JSON(asientos)
}
