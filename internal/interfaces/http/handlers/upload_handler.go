package handlers

import (
	"github.com/PavaniTiago/felice-endomarketing-api/internal/application/usecases"
	"github.com/gofiber/fiber/v2"
)

// UploadHandler recebe imagens e vídeos do painel
type UploadHandler struct {
	uploadUseCase usecases.UploadUseCase
}

func NewUploadHandler(uploadUseCase usecases.UploadUseCase) *UploadHandler {
	return &UploadHandler{uploadUseCase: uploadUseCase}
}

// Upload grava o arquivo multipart no bucket e devolve a URL pública
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return &usecases.ValidationError{
			Message: "Nenhum arquivo enviado",
			Fields:  map[string]string{"file": "campo obrigatório"},
		}
	}

	file, err := header.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	result, err := h.uploadUseCase.Upload(
		c.UserContext(),
		c.FormValue("folder", usecases.DefaultUploadFolder),
		header.Header.Get(fiber.HeaderContentType),
		header.Size,
		file,
	)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
