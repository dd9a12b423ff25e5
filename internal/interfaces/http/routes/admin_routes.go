package routes

import (
	"github.com/PavaniTiago/felice-endomarketing-api/internal/interfaces/http/handlers"
	"github.com/gofiber/fiber/v2"
)

// RegisterAdminRoutes registra as rotas do painel. O router já exige sessão.
func RegisterAdminRoutes(api fiber.Router, h *handlers.Handlers) {
	api.Get("/auth/me", h.Auth.Me)
	api.Post("/auth/logout", h.Auth.Logout)

	// Equipe
	api.Get("/usuarios", h.User.GetUsers)
	api.Post("/usuarios", h.User.CreateUser)
	api.Put("/usuarios/:id", h.User.UpdateUser)
	api.Delete("/usuarios/:id", h.User.DeleteUser)

	api.Post("/upload", h.Upload.Upload)

	// Núcleos
	api.Get("/nucleos", h.Specialty.GetSpecialties)
	api.Post("/nucleos", h.Specialty.CreateSpecialty)
	api.Put("/nucleos/:id", h.Specialty.UpdateSpecialty)
	api.Delete("/nucleos/:id", h.Specialty.DeleteSpecialty)

	// Profissionais
	api.Get("/profissionais", h.Professional.GetProfessionals)
	api.Post("/profissionais", h.Professional.CreateProfessional)
	api.Put("/profissionais/:id", h.Professional.UpdateProfessional)
	api.Patch("/profissionais/:id/ativo", h.Professional.SetActive)
	api.Delete("/profissionais/:id", h.Professional.DeleteProfessional)

	// Perguntas. /ordem antes de /:id
	api.Get("/perguntas", h.Question.GetQuestions)
	api.Post("/perguntas", h.Question.CreateQuestion)
	api.Put("/perguntas/ordem", h.Question.Reorder)
	api.Put("/perguntas/:id", h.Question.UpdateQuestion)
	api.Patch("/perguntas/:id/ativo", h.Question.SetActive)
	api.Delete("/perguntas/:id", h.Question.DeleteQuestion)

	// Templates de mensagem
	api.Get("/templates", h.Template.GetTemplates)
	api.Post("/templates", h.Template.CreateTemplate)
	api.Get("/templates/:id/preview", h.Template.Preview)
	api.Put("/templates/:id", h.Template.UpdateTemplate)
	api.Patch("/templates/:id/ativo", h.Template.SetActive)
	api.Delete("/templates/:id", h.Template.DeleteTemplate)

	// Leads. /export antes de /:id
	api.Get("/leads", h.Lead.GetLeads)
	api.Get("/leads/export", h.Lead.ExportLeads)
	api.Get("/leads/:id", h.Lead.GetLead)
	api.Delete("/leads/:id", h.Lead.DeleteLead)
	api.Post("/leads/:id/followups", h.Lead.AddFollowup)
	api.Post("/leads/:id/conversoes", h.Lead.AddConversion)

	api.Get("/dashboard", h.Dashboard.GetOverview)

	api.Get("/configuracoes", h.Setting.GetSettings)
	api.Put("/configuracoes", h.Setting.UpdateSettings)

	// Aparelho do WhatsApp
	api.Get("/whatsapp/status", h.WhatsApp.GetStatus)
	api.Post("/whatsapp/conectar", h.WhatsApp.Connect)
	api.Get("/whatsapp/qr", h.WhatsApp.GetQRCode)
}
