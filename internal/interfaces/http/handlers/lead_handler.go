package handlers

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/application/usecases"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/interfaces/http/middleware"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// LeadHandler atende a listagem e o acompanhamento dos leads
type LeadHandler struct {
	leadUseCase usecases.LeadUseCase
}

func NewLeadHandler(leadUseCase usecases.LeadUseCase) *LeadHandler {
	return &LeadHandler{leadUseCase: leadUseCase}
}

type followupRequest struct {
	TemplateID   *uuid.UUID              `json:"template_id"`
	SpecialtyID  *uuid.UUID              `json:"nucleo_id"`
	Channel      entities.ContactChannel `json:"tipo_contato" validate:"omitempty,oneof=whatsapp telefone email"`
	Content      *string                 `json:"conteudo"`
	Notes        *string                 `json:"observacoes"`
	ScheduledFor *time.Time              `json:"data_agendada"`
	SendWhatsApp bool                    `json:"enviar_whatsapp"`
}

type conversionRequest struct {
	SpecialtyID *uuid.UUID `json:"nucleo_id" validate:"required"`
	Procedure   *string    `json:"procedimento"`
	Value       *float64   `json:"valor" validate:"omitempty,gte=0"`
	Notes       *string    `json:"observacoes"`
	ConvertedAt *time.Time `json:"data_conversao"`
}

// listParams lê os filtros da query string
func listParams(c *fiber.Ctx) (usecases.LeadListParams, error) {
	params := usecases.LeadListParams{
		Search: c.Query("busca"),
		Status: c.Query("status"),
	}

	var err error
	if params.SpecialtyID, err = queryID(c, "nucleo_id"); err != nil {
		return params, err
	}

	if raw := c.Query("page"); raw != "" {
		if params.Page, err = strconv.Atoi(raw); err != nil || params.Page < 1 {
			return params, &usecases.ValidationError{Message: "Parâmetro 'page' inválido", Fields: map[string]string{"page": "deve ser um número maior que zero"}}
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if params.Limit, err = strconv.Atoi(raw); err != nil || params.Limit < 1 {
			return params, &usecases.ValidationError{Message: "Parâmetro 'limit' inválido", Fields: map[string]string{"limit": "deve ser um número maior que zero"}}
		}
	}

	if raw := c.Query("de"); raw != "" {
		day, err := parseDay(raw)
		if err != nil {
			return params, &usecases.ValidationError{Message: "Data inicial inválida", Fields: map[string]string{"de": "use o formato AAAA-MM-DD"}}
		}
		params.From = day
	}
	if raw := c.Query("ate"); raw != "" {
		day, err := parseDay(raw)
		if err != nil {
			return params, &usecases.ValidationError{Message: "Data final inválida", Fields: map[string]string{"ate": "use o formato AAAA-MM-DD"}}
		}
		params.To = endOfDay(day)
	}
	return params, nil
}

// GetLeads lista os leads com status derivado e interesses
func (h *LeadHandler) GetLeads(c *fiber.Ctx) error {
	params, err := listParams(c)
	if err != nil {
		return err
	}

	leads, total, err := h.leadUseCase.List(c.UserContext(), params)
	if err != nil {
		return err
	}

	page := max(params.Page, 1)
	limit := params.Limit
	if limit < 1 {
		limit = usecases.DefaultLeadPageSize
	}
	limit = min(limit, usecases.MaxLeadPageSize)

	return c.JSON(fiber.Map{
		"data": leads,
		"meta": fiber.Map{
			"total":     total,
			"page":      page,
			"limit":     limit,
			"last_page": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

// ExportLeads gera o CSV com todos os leads do filtro
func (h *LeadHandler) ExportLeads(c *fiber.Ctx) error {
	params, err := listParams(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := h.leadUseCase.ExportCSV(c.UserContext(), params, &buf); err != nil {
		return err
	}

	filename := fmt.Sprintf("leads-%s.csv", time.Now().In(utils.GetBrasilLocation()).Format(DateLayout))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(buf.Bytes())
}

func (h *LeadHandler) GetLead(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	lead, err := h.leadUseCase.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": lead})
}

func (h *LeadHandler) DeleteLead(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.leadUseCase.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return message(c, "Lead excluído com sucesso")
}

// AddFollowup registra um contato com o lead e, se pedido, envia pelo WhatsApp
func (h *LeadHandler) AddFollowup(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req followupRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	input := usecases.FollowupInput{
		TemplateID:   req.TemplateID,
		SpecialtyID:  req.SpecialtyID,
		Channel:      req.Channel,
		Content:      req.Content,
		Notes:        trimmedPtr(req.Notes),
		ScheduledFor: req.ScheduledFor,
		SendWhatsApp: req.SendWhatsApp,
	}
	if user := middleware.CurrentUser(c); user != nil {
		input.SentBy = &user.ID
	}

	result, err := h.leadUseCase.AddFollowup(c.UserContext(), id, input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": result})
}

// AddConversion registra que o lead fechou um procedimento
func (h *LeadHandler) AddConversion(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req conversionRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	input := usecases.ConversionInput{
		SpecialtyID: req.SpecialtyID,
		Procedure:   req.Procedure,
		Value:       req.Value,
		Notes:       req.Notes,
		ConvertedAt: req.ConvertedAt,
	}
	if user := middleware.CurrentUser(c); user != nil {
		input.RegisteredBy = &user.ID
	}

	conversion, err := h.leadUseCase.AddConversion(c.UserContext(), id, input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": conversion})
}
