package handlers

import (
	"github.com/PavaniTiago/felice-endomarketing-api/internal/application/usecases"
	"github.com/gofiber/fiber/v2"
)

// WhatsAppHandler expõe o vínculo do aparelho usado nos followups
type WhatsAppHandler struct {
	whatsAppUseCase usecases.WhatsAppUseCase
}

func NewWhatsAppHandler(whatsAppUseCase usecases.WhatsAppUseCase) *WhatsAppHandler {
	return &WhatsAppHandler{whatsAppUseCase: whatsAppUseCase}
}

func (h *WhatsAppHandler) GetStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.whatsAppUseCase.Status()})
}

// Connect inicia a conexão. Sem sessão salva, o QR fica disponível em /whatsapp/qr.
func (h *WhatsAppHandler) Connect(c *fiber.Ctx) error {
	status, err := h.whatsAppUseCase.Connect(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": status})
}

func (h *WhatsAppHandler) GetQRCode(c *fiber.Ctx) error {
	png, err := h.whatsAppUseCase.QRCode()
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderCacheControl, "no-store")
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
