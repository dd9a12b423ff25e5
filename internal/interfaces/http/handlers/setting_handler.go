package handlers

import (
	"github.com/PavaniTiago/felice-endomarketing-api/internal/application/usecases"
	"github.com/gofiber/fiber/v2"
)

type SettingHandler struct {
	settingUseCase usecases.SettingUseCase
}

func NewSettingHandler(settingUseCase usecases.SettingUseCase) *SettingHandler {
	return &SettingHandler{settingUseCase: settingUseCase}
}

func (h *SettingHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.settingUseCase.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": settings})
}

// UpdateSettings grava os pares chave/valor enviados. Valor null limpa a chave.
func (h *SettingHandler) UpdateSettings(c *fiber.Ctx) error {
	values := map[string]*string{}
	if err := c.BodyParser(&values); err != nil {
		return &usecases.ValidationError{Message: "Corpo da requisição inválido"}
	}

	settings, err := h.settingUseCase.Update(c.UserContext(), values)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Configurações atualizadas com sucesso", "data": settings})
}
