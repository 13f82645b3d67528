package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Teamwawa12/ProyectoBus/pkg/logger"
)

// LocalRequestID key del identificador de la petición en c.Locals.
const LocalRequestID = "request_id"

// RequestID asigna un identificador único a cada petición (o respeta el
// X-Request-ID entrante) y registra el access log al terminar.
func RequestID(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalRequestID, id)
		c.Set("X-Request-ID", id)

		start := time.Now()
		err := c.Next()

		log.Info().
			Str("request_id", id).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}

// GetRequestID devuelve el identificador de la petición en curso.
func GetRequestID(c *fiber.Ctx) string {
	v := c.Locals(LocalRequestID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
