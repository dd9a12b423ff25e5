package handlers

import (
	"github.com/PavaniTiago/felice-endomarketing-api/internal/application/usecases"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/gofiber/fiber/v2"
)

// SpecialtyHandler administra os núcleos
type SpecialtyHandler struct {
	specialtyUseCase usecases.SpecialtyUseCase
}

func NewSpecialtyHandler(specialtyUseCase usecases.SpecialtyUseCase) *SpecialtyHandler {
	return &SpecialtyHandler{specialtyUseCase: specialtyUseCase}
}

type specialtyRequest struct {
	Name        string  `json:"nome" validate:"required"`
	Slug        string  `json:"slug"`
	Description *string `json:"descricao"`
	Icon        *string `json:"icone"`
	Color       *string `json:"cor"`
	Active      *bool   `json:"ativo"`
	Order       int     `json:"ordem" validate:"gte=0"`
}

func (r specialtyRequest) entity() *entities.Specialty {
	specialty := &entities.Specialty{
		Name:        r.Name,
		Slug:        r.Slug,
		Description: trimmedPtr(r.Description),
		Icon:        trimmedPtr(r.Icon),
		Color:       trimmedPtr(r.Color),
		Active:      true,
		Order:       r.Order,
	}
	if r.Active != nil {
		specialty.Active = *r.Active
	}
	return specialty
}

func (h *SpecialtyHandler) GetSpecialties(c *fiber.Ctx) error {
	specialties, err := h.specialtyUseCase.List(c.UserContext(), c.QueryBool("ativos"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": specialties})
}

func (h *SpecialtyHandler) CreateSpecialty(c *fiber.Ctx) error {
	var req specialtyRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	specialty := req.entity()
	if err := h.specialtyUseCase.Create(c.UserContext(), specialty); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": specialty})
}

func (h *SpecialtyHandler) UpdateSpecialty(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req specialtyRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	specialty := req.entity()
	if err := h.specialtyUseCase.Update(c.UserContext(), id, specialty); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": specialty})
}

func (h *SpecialtyHandler) DeleteSpecialty(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.specialtyUseCase.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return message(c, "Núcleo excluído com sucesso")
}
