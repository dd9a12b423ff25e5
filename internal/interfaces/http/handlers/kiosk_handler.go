package handlers

import (
	"errors"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/application/usecases"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/kiosk"
	"github.com/gofiber/fiber/v2"
)

// KioskHandler atende as rotas do modo totem
type KioskHandler struct {
	kioskUseCase        usecases.KioskUseCase
	settingUseCase      usecases.SettingUseCase
	professionalUseCase usecases.ProfessionalUseCase
}

func NewKioskHandler(kioskUseCase usecases.KioskUseCase, settingUseCase usecases.SettingUseCase, professionalUseCase usecases.ProfessionalUseCase) *KioskHandler {
	return &KioskHandler{
		kioskUseCase:        kioskUseCase,
		settingUseCase:      settingUseCase,
		professionalUseCase: professionalUseCase,
	}
}

type verifyPasswordRequest struct {
	Password string `json:"password"`
}

type activityRequest struct {
	Event kiosk.Event `json:"evento" validate:"required"`
}

// GetConfig retorna o tempo de descanso e o nome da empresa
func (h *KioskHandler) GetConfig(c *fiber.Ctx) error {
	config, err := h.settingUseCase.KioskConfig(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(config)
}

// GetWhatsAppQR retorna o QR code (PNG) do link wa.me da empresa
func (h *KioskHandler) GetWhatsAppQR(c *fiber.Ctx) error {
	png, err := h.settingUseCase.KioskWhatsAppQR(c.UserContext())
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, "public, max-age=300")
	return c.Send(png)
}

// GetShowcase retorna núcleos e profissionais ativos para a vitrine
func (h *KioskHandler) GetShowcase(c *fiber.Ctx) error {
	showcase, err := h.professionalUseCase.Showcase(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": showcase})
}

// VerifyPassword confere a senha de saída do totem
func (h *KioskHandler) VerifyPassword(c *fiber.Ctx) error {
	var req verifyPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Corpo da requisição inválido"})
	}

	err := h.settingUseCase.VerifyKioskPassword(c.UserContext(), req.Password)
	var verr *usecases.ValidationError
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"success": true})
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": verr.Message})
	case errors.Is(err, usecases.ErrInvalidKioskPassword):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": err.Error()})
	default:
		return err
	}
}

func (h *KioskHandler) CreateSession(c *fiber.Ctx) error {
	status, err := h.kioskUseCase.NewSession(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": status})
}

func (h *KioskHandler) GetSession(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	status, err := h.kioskUseCase.Status(id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": status})
}

// Activity registra uma interação do tablet e adia a tela de descanso
func (h *KioskHandler) Activity(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req activityRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	status, err := h.kioskUseCase.Activity(id, req.Event)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": status})
}

// Dismiss fecha a tela de descanso
func (h *KioskHandler) Dismiss(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	status, err := h.kioskUseCase.Dismiss(id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": status})
}

// TapLogo conta os toques no logo; no quinto toque rápido abre o diálogo de senha
func (h *KioskHandler) TapLogo(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	result, err := h.kioskUseCase.TapLogo(id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": result})
}

func (h *KioskHandler) CloseExitDialog(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	status, err := h.kioskUseCase.CloseExitDialog(id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": status})
}

func (h *KioskHandler) CloseSession(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	h.kioskUseCase.Close(id)
	return c.SendStatus(fiber.StatusNoContent)
}
