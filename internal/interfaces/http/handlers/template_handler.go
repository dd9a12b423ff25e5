package handlers

import (
	"github.com/PavaniTiago/felice-endomarketing-api/internal/application/usecases"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// TemplateHandler administra os modelos de mensagem de followup
type TemplateHandler struct {
	templateUseCase usecases.TemplateUseCase
}

func NewTemplateHandler(templateUseCase usecases.TemplateUseCase) *TemplateHandler {
	return &TemplateHandler{templateUseCase: templateUseCase}
}

type templateRequest struct {
	SpecialtyID *uuid.UUID            `json:"nucleo_id"`
	Title       string                `json:"titulo" validate:"required"`
	Content     string                `json:"conteudo" validate:"required"`
	Type        entities.TemplateType `json:"tipo"`
	FileURL     *string               `json:"arquivo_url"`
	SendDelay   *entities.SendDelay   `json:"tempo_envio"`
	Order       int                   `json:"ordem" validate:"gte=0"`
	Active      *bool                 `json:"ativo"`
}

func (r templateRequest) entity() *entities.Template {
	template := &entities.Template{
		SpecialtyID: r.SpecialtyID,
		Title:       r.Title,
		Content:     r.Content,
		Type:        r.Type,
		FileURL:     trimmedPtr(r.FileURL),
		Order:       r.Order,
		Active:      true,
	}
	if r.SendDelay != nil && *r.SendDelay != "" {
		template.SendDelay = r.SendDelay
	}
	if r.Active != nil {
		template.Active = *r.Active
	}
	return template
}

func (h *TemplateHandler) GetTemplates(c *fiber.Ctx) error {
	specialtyID, err := queryID(c, "nucleo_id")
	if err != nil {
		return err
	}

	templates, err := h.templateUseCase.List(c.UserContext(), specialtyID, c.QueryBool("ativos"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": templates})
}

func (h *TemplateHandler) CreateTemplate(c *fiber.Ctx) error {
	var req templateRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	template := req.entity()
	if err := h.templateUseCase.Create(c.UserContext(), template); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": template})
}

func (h *TemplateHandler) UpdateTemplate(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req templateRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	template := req.entity()
	if err := h.templateUseCase.Update(c.UserContext(), id, template); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": template})
}

func (h *TemplateHandler) SetActive(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req activeRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	template, err := h.templateUseCase.SetActive(c.UserContext(), id, *req.Active)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": template})
}

// Preview mostra a mensagem com {nome} substituído pelo primeiro nome do lead
func (h *TemplateHandler) Preview(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	leadID, err := queryID(c, "lead_id")
	if err != nil {
		return err
	}

	preview, err := h.templateUseCase.Preview(c.UserContext(), id, leadID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": preview})
}

func (h *TemplateHandler) DeleteTemplate(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.templateUseCase.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return message(c, "Template excluído com sucesso")
}
