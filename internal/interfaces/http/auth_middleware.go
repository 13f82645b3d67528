package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Teamwawa12/ProyectoBus/internal/application/dto"
	"github.com/Teamwawa12/ProyectoBus/pkg/jwt"
)

// Locals keys del principal autenticado en Fiber.
const (
	LocalCodigo  = "codigo"
	LocalUsuario = "usuario"
	LocalType    = "principal_type"
)

// AuthMiddleware valida el Bearer Token JWT y extrae el principal a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "token de autenticación requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "token de autenticación requerido"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "token inválido o expirado"})
		}
		c.Locals(LocalCodigo, claims.Codigo)
		c.Locals(LocalUsuario, claims.Usuario)
		c.Locals(LocalType, claims.Type)
		return c.Next()
	}
}

// RequireType exige que el principal autenticado sea de alguno de los tipos
// dados (jwt.TypeAdmin, jwt.TypeCustomer). Va después de AuthMiddleware.
func RequireType(types ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actual := GetType(c)
		if actual == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "token de autenticación requerido"})
		}
		for _, t := range types {
			if actual == t {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "acceso restringido"})
	}
}

// GetCodigo devuelve el código del principal (después del middleware de auth).
func GetCodigo(c *fiber.Ctx) int64 {
	v := c.Locals(LocalCodigo)
	if v == nil {
		return 0
	}
	codigo, _ := v.(int64)
	return codigo
}

// GetUsuario devuelve el login o email del principal.
func GetUsuario(c *fiber.Ctx) string {
	v := c.Locals(LocalUsuario)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetType devuelve el tipo de principal (admin o customer).
func GetType(c *fiber.Ctx) string {
	v := c.Locals(LocalType)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
