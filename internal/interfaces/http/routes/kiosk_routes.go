package routes

import (
	"github.com/PavaniTiago/felice-endomarketing-api/internal/interfaces/http/handlers"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
)

// RegisterKioskRoutes registra as rotas abertas usadas pelo totem e pelo login
func RegisterKioskRoutes(api fiber.Router, h *handlers.Handlers) {
	// Formulário
	form := api.Group("/formulario")
	form.Get("/", h.Form.GetForm)
	form.Post("/", h.Form.SubmitForm)

	sessions := form.Group("/sessoes")
	sessions.Post("/", h.Form.CreateSession)
	sessions.Get("/:id", h.Form.GetSession)
	sessions.Post("/:id/iniciar", h.Form.Start)
	sessions.Post("/:id/selecionar", h.Form.Select)
	sessions.Post("/:id/texto", h.Form.SetText)
	sessions.Post("/:id/proxima", h.Form.Next)
	sessions.Post("/:id/anterior", h.Form.Prev)
	sessions.Put("/:id/contato", h.Form.SetContact)
	sessions.Post("/:id/enviar", h.Form.SubmitSession)
	sessions.Post("/:id/reiniciar", h.Form.Reset)
	sessions.Delete("/:id", h.Form.CloseSession)

	// Vitrine de especialidades e equipe
	api.Get("/vitrine", h.Kiosk.GetShowcase)

	// Totem
	kiosk := api.Group("/kiosk")
	kiosk.Get("/config", h.Kiosk.GetConfig)
	kiosk.Get("/whatsapp-qr", h.Kiosk.GetWhatsAppQR)
	kiosk.Post("/verify-password", h.Kiosk.VerifyPassword)
	kiosk.Post("/sessoes", h.Kiosk.CreateSession)
	kiosk.Get("/sessoes/:id", h.Kiosk.GetSession)
	kiosk.Post("/sessoes/:id/atividade", h.Kiosk.Activity)
	kiosk.Post("/sessoes/:id/dispensar", h.Kiosk.Dismiss)
	kiosk.Post("/sessoes/:id/logo", h.Kiosk.TapLogo)
	kiosk.Post("/sessoes/:id/fechar-dialogo", h.Kiosk.CloseExitDialog)
	kiosk.Delete("/sessoes/:id", h.Kiosk.CloseSession)

	// Login
	auth := api.Group("/auth")
	auth.Post("/login", middleware.LoginRateLimiter(), h.Auth.Login)
	auth.Post("/recuperar-senha", middleware.RecoverPasswordRateLimiter(), h.Auth.RecoverPassword)
}
