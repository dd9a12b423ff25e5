package handlers

import (
	"fmt"
	"strconv"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/application/usecases"
	"github.com/gofiber/fiber/v2"
)

// DashboardHandler lida com requisições relacionadas ao painel
type DashboardHandler struct {
	dashboardUseCase usecases.DashboardUseCase
}

// NewDashboardHandler cria uma nova instância de DashboardHandler
func NewDashboardHandler(dashboardUseCase usecases.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
	}
}

// GetOverview retorna os indicadores consolidados dos últimos ?dias=
func (h *DashboardHandler) GetOverview(c *fiber.Ctx) error {
	days := usecases.DefaultDashboardDays
	if raw := c.Query("dias"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return &usecases.ValidationError{
				Message: "Parâmetro 'dias' inválido",
				Fields:  map[string]string{"dias": "deve ser um número inteiro"},
			}
		}
		days = parsed
	}

	overview, err := h.dashboardUseCase.Overview(c.UserContext(), days)
	if err != nil {
		return err
	}

	// ETag baseado no conteúdo
	etag := fmt.Sprintf(`W/"%s"`, overview.ETag)
	if c.Get(fiber.HeaderIfNoneMatch) == etag {
		return c.SendStatus(fiber.StatusNotModified)
	}

	c.Set(fiber.HeaderETag, etag)
	return c.JSON(fiber.Map{"data": overview})
}
