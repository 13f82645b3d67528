package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Teamwawa12/ProyectoBus/internal/application/dto"
	"github.com/Teamwawa12/ProyectoBus/internal/application/venta"
	"github.com/Teamwawa12/ProyectoBus/internal/domain"
	"github.com/Teamwawa12/ProyectoBus/pkg/logger"
)

// VentaHandler compra completa y descarga del boleto.
type VentaHandler struct {
	comprarUC *venta.ComprarPasajesUseCase
	boletoUC  *venta.BoletoPDFUseCase
	log       *logger.Logger
}

// NewVentaHandler construye el handler de ventas.
func NewVentaHandler(comprarUC *venta.ComprarPasajesUseCase, boletoUC *venta.BoletoPDFUseCase, log *logger.Logger) *VentaHandler {
	return &VentaHandler{comprarUC: comprarUC, boletoUC: boletoUC, log: log}
}

// CompraCompleta godoc
// @Summary      Compra completa de pasajes
// @Description  Resuelve al comprador por DNI (lo crea como invitado si no
// @Description  existe), verifica disponibilidad asiento por asiento y emite
// @Description  los pasajes en una sola transacción, todo o nada.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CompraRequest  true  "viaje, cliente, asientos"
// @Success      201   {object}  dto.CompraResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pasajes/compra-completa [post]
func (h *VentaHandler) CompraCompleta(c *fiber.Ctx) error {
	var in dto.CompraRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}

	data, err := h.comprarUC.Comprar(c.Context(), in)
	if err != nil {
		var ocupado *domain.AsientoOcupadoError
		switch {
		case errors.Is(err, domain.ErrEntradaInvalida):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "viaje_codigo, cliente (dni, nombre) y asientos son requeridos"})
		case errors.As(err, &ocupado):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: ocupado.Error()})
		case errors.Is(err, domain.ErrViajeNoEncontrado):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "el viaje no existe"})
		}
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("compra completa")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno del servidor"})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CompraResponse{
		Success: true,
		Message: "Compra realizada exitosamente",
		Data:    *data,
	})
}

// DescargarBoleto godoc
// @Summary      Descargar boleto en PDF
// @Tags         ventas
// @Produce      application/pdf
// @Param        codigo  path  int  true  "código del pasaje"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/pasajes/{codigo}/pdf [get]
func (h *VentaHandler) DescargarBoleto(c *fiber.Ctx) error {
	codigo, err := c.ParamsInt("codigo")
	if err != nil || codigo <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "código de pasaje inválido"})
	}

	pdfBytes, filename, err := h.boletoUC.DescargarBoleto(c.Context(), int64(codigo))
	if err != nil {
		if errors.Is(err, domain.ErrNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "el pasaje no existe"})
		}
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("descargar boleto")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno del servidor"})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
