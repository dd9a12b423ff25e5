package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// SlowRequestThreshold é o tempo a partir do qual a requisição é registrada como lenta
const SlowRequestThreshold = time.Second

// RequestLogger registra método, rota, status e duração de cada requisição
func RequestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()
		if err != nil {
			if ferr, ok := err.(*fiber.Error); ok {
				status = ferr.Code
			} else if status < fiber.StatusBadRequest {
				status = fiber.StatusInternalServerError
			}
		}

		event := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			event = log.Error()
		case duration > SlowRequestThreshold:
			event = log.Warn()
		case c.Path() == "/health":
			event = log.Debug()
		}

		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", duration).
			Interface("request_id", c.Locals("requestid")).
			Msg("[PERFORMANCE]")
		return err
	}
}
