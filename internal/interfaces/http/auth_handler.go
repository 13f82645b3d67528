package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Teamwawa12/ProyectoBus/internal/application/auth"
	"github.com/Teamwawa12/ProyectoBus/internal/application/dto"
	"github.com/Teamwawa12/ProyectoBus/internal/domain"
	"github.com/Teamwawa12/ProyectoBus/pkg/logger"
)

// AuthHandler maneja login y registros.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Login godoc
// @Summary      Iniciar sesión (staff o cliente)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "usuario, password, type"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if in.Usuario == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "usuario y password son requeridos"})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrCredencialesInvalidas) {
			// El motivo exacto (cuenta inexistente vs contraseña) queda solo en logs.
			h.log.Warn().Err(err).Str("request_id", GetRequestID(c)).Msg("login rechazado")
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "credenciales inválidas"})
		}
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("login")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno del servidor"})
	}
	return c.JSON(out)
}

// RegisterCliente godoc
// @Summary      Registrar cliente
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterClienteRequest  true  "datos del cliente"
// @Success      201   {object}  dto.RegisterClienteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/register-cliente [post]
func (h *AuthHandler) RegisterCliente(c *fiber.Ctx) error {
	var in dto.RegisterClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if in.Nombre == "" || in.Apellidos == "" || in.DNI == "" || in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "nombre, apellidos, dni, email y password son requeridos"})
	}
	if len(in.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "password debe tener al menos 6 caracteres"})
	}
	out, err := h.uc.RegisterCliente(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDNIDuplicado):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "ya existe una persona con ese DNI"})
		case errors.Is(err, domain.ErrEmailDuplicado):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "el email ya está registrado"})
		}
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("registro de cliente")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno del servidor"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RegisterAdmin godoc
// @Summary      Registrar administrador
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterAdminRequest  true  "datos del administrador"
// @Success      201   {object}  dto.RegisterAdminResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/register-admin [post]
func (h *AuthHandler) RegisterAdmin(c *fiber.Ctx) error {
	var in dto.RegisterAdminRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if in.Nombre == "" || in.Apellidos == "" || in.DNI == "" || in.Email == "" ||
		in.Usuario == "" || in.Password == "" || in.CargoCodigo <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "nombre, apellidos, dni, email, usuario, password y cargo_codigo son requeridos"})
	}
	if len(in.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "password debe tener al menos 6 caracteres"})
	}
	out, err := h.uc.RegisterAdmin(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDNIDuplicado):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "ya existe una persona con ese DNI"})
		case errors.Is(err, domain.ErrEmailEmpleado):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "el email ya está registrado como empleado"})
		case errors.Is(err, domain.ErrUsuarioDuplicado):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "el nombre de usuario ya existe"})
		}
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("registro de administrador")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno del servidor"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
