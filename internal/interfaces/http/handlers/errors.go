package handlers

import (
	"errors"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/application/usecases"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

const genericError = "Erro interno do servidor"

// ErrorHandler converte os erros devolvidos pelos handlers em respostas JSON.
// Erros inesperados viram 500 com mensagem genérica e são registrados no log.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := errorResponse(err)
		if status == fiber.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Interface("request_id", c.Locals("requestid")).
				Msg("❌ Erro ao processar requisição")
		}
		return c.Status(status).JSON(body)
	}
}

func errorResponse(err error) (int, fiber.Map) {
	var verr *usecases.ValidationError
	if errors.As(err, &verr) {
		body := fiber.Map{"error": verr.Message}
		if len(verr.Fields) > 0 {
			body["campos"] = verr.Fields
		}
		return fiber.StatusBadRequest, body
	}

	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		if ferr.Code >= fiber.StatusInternalServerError {
			return ferr.Code, fiber.Map{"error": genericError}
		}
		return ferr.Code, fiber.Map{"error": ferr.Message}
	}

	switch {
	case errors.Is(err, usecases.ErrNotFound):
		return fiber.StatusNotFound, fiber.Map{"error": "Registro não encontrado"}
	case errors.Is(err, usecases.ErrSessionNotFound):
		return fiber.StatusNotFound, fiber.Map{"error": err.Error()}
	case errors.Is(err, usecases.ErrInvalidCredentials),
		errors.Is(err, usecases.ErrUnauthorized):
		return fiber.StatusUnauthorized, fiber.Map{"error": err.Error()}
	case errors.Is(err, usecases.ErrInvalidKioskPassword):
		return fiber.StatusUnauthorized, fiber.Map{"success": false, "error": err.Error()}
	case errors.Is(err, usecases.ErrEmailTaken):
		return fiber.StatusBadRequest, fiber.Map{"error": err.Error()}
	case errors.Is(err, usecases.ErrWhatsAppUnavailable):
		return fiber.StatusServiceUnavailable, fiber.Map{"error": usecases.ErrWhatsAppUnavailable.Error()}
	default:
		return fiber.StatusInternalServerError, fiber.Map{"error": genericError}
	}
}
