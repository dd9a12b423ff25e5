package handlers

import (
	"github.com/PavaniTiago/felice-endomarketing-api/internal/application/usecases"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ProfessionalHandler administra os profissionais da vitrine
type ProfessionalHandler struct {
	professionalUseCase usecases.ProfessionalUseCase
}

func NewProfessionalHandler(professionalUseCase usecases.ProfessionalUseCase) *ProfessionalHandler {
	return &ProfessionalHandler{professionalUseCase: professionalUseCase}
}

type professionalRequest struct {
	Name        string               `json:"nome" validate:"required"`
	Title       *string              `json:"especialidade"`
	CRM         *string              `json:"crm"`
	Description *string              `json:"descricao"`
	PhotoURL    *string              `json:"foto_url"`
	SpecialtyID *uuid.UUID           `json:"nucleo_id"`
	Procedures  []entities.Procedure `json:"procedimentos"`
	Instagram   *string              `json:"instagram"`
	Active      *bool                `json:"ativo"`
	Order       int                  `json:"ordem" validate:"gte=0"`
}

func (r professionalRequest) entity() *entities.Professional {
	professional := &entities.Professional{
		Name:        r.Name,
		Title:       trimmedPtr(r.Title),
		CRM:         trimmedPtr(r.CRM),
		Description: trimmedPtr(r.Description),
		PhotoURL:    trimmedPtr(r.PhotoURL),
		SpecialtyID: r.SpecialtyID,
		Instagram:   trimmedPtr(r.Instagram),
		Active:      true,
		Order:       r.Order,
	}
	if r.Active != nil {
		professional.Active = *r.Active
	}
	return professional
}

func (h *ProfessionalHandler) GetProfessionals(c *fiber.Ctx) error {
	specialtyID, err := queryID(c, "nucleo_id")
	if err != nil {
		return err
	}

	professionals, err := h.professionalUseCase.List(c.UserContext(), c.QueryBool("ativos"), specialtyID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": professionals})
}

func (h *ProfessionalHandler) CreateProfessional(c *fiber.Ctx) error {
	var req professionalRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	professional := req.entity()
	if err := h.professionalUseCase.Create(c.UserContext(), professional, req.Procedures); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": professional})
}

func (h *ProfessionalHandler) UpdateProfessional(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req professionalRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	professional := req.entity()
	if err := h.professionalUseCase.Update(c.UserContext(), id, professional, req.Procedures); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": professional})
}

// SetActive ativa ou desativa o profissional na vitrine
func (h *ProfessionalHandler) SetActive(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req activeRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	professional, err := h.professionalUseCase.SetActive(c.UserContext(), id, *req.Active)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": professional})
}

func (h *ProfessionalHandler) DeleteProfessional(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.professionalUseCase.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return message(c, "Profissional excluído com sucesso")
}
