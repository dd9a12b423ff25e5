package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func newLimiter(max int, expiration time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: expiration,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": message,
			})
		},
	})
}

// LoginRateLimiter limita tentativas de login por IP
func LoginRateLimiter() fiber.Handler {
	return newLimiter(10, time.Minute, "Muitas tentativas de login. Aguarde um minuto.")
}

// RecoverPasswordRateLimiter limita pedidos de recuperação de senha por IP
func RecoverPasswordRateLimiter() fiber.Handler {
	return newLimiter(3, 10*time.Minute, "Muitos pedidos de recuperação. Tente novamente em alguns minutos.")
}
