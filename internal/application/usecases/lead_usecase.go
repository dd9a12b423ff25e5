package usecases

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/repositories"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultLeadPageSize = 20
	MaxLeadPageSize     = 100
)

// LeadListParams são os filtros recebidos na listagem e na exportação
type LeadListParams struct {
	Search      string
	Status      string
	SpecialtyID *uuid.UUID
	From        time.Time
	To          time.Time
	Page        int
	Limit       int
}

// LeadItem é a linha da listagem de leads
type LeadItem struct {
	entities.LeadView
	Status      entities.LeadStatus `json:"status"`
	StatusLabel string              `json:"status_label"`
	Interests   []entities.Interest `json:"interesses"`
}

// LeadDetail reúne tudo o que a página do lead exibe
type LeadDetail struct {
	LeadItem
	Answers      []entities.Answer     `json:"respostas"`
	Followups    []entities.Followup   `json:"followups"`
	Conversions  []entities.Conversion `json:"conversoes"`
	WhatsAppLink string                `json:"whatsapp_link"`
}

// FollowupInput é um contato registrado para o lead
type FollowupInput struct {
	TemplateID   *uuid.UUID
	SpecialtyID  *uuid.UUID
	Channel      entities.ContactChannel
	Content      *string
	Notes        *string
	ScheduledFor *time.Time
	SendWhatsApp bool
	SentBy       *uuid.UUID
}

// FollowupResult traz o followup gravado e o link wa.me com a mensagem
type FollowupResult struct {
	Followup     *entities.Followup `json:"followup"`
	WhatsAppLink string             `json:"whatsapp_link"`
	Delivered    bool               `json:"enviado_whatsapp"`
}

// ConversionInput é uma conversão registrada para o lead
type ConversionInput struct {
	SpecialtyID  *uuid.UUID
	Procedure    *string
	Value        *float64
	Notes        *string
	ConvertedAt  *time.Time
	RegisteredBy *uuid.UUID
}

type LeadUseCase interface {
	List(ctx context.Context, params LeadListParams) ([]LeadItem, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*LeadDetail, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExportCSV(ctx context.Context, params LeadListParams, w io.Writer) error
	AddFollowup(ctx context.Context, leadID uuid.UUID, input FollowupInput) (*FollowupResult, error)
	AddConversion(ctx context.Context, leadID uuid.UUID, input ConversionInput) (*entities.Conversion, error)
}

type leadUseCase struct {
	leadRepo       repositories.LeadRepository
	followupRepo   repositories.FollowupRepository
	conversionRepo repositories.ConversionRepository
	templateRepo   repositories.TemplateRepository
	sender         MessageSender
	log            zerolog.Logger
}

func NewLeadUseCase(
	leadRepo repositories.LeadRepository,
	followupRepo repositories.FollowupRepository,
	conversionRepo repositories.ConversionRepository,
	templateRepo repositories.TemplateRepository,
	sender MessageSender,
	log zerolog.Logger,
) LeadUseCase {
	return &leadUseCase{
		leadRepo:       leadRepo,
		followupRepo:   followupRepo,
		conversionRepo: conversionRepo,
		templateRepo:   templateRepo,
		sender:         sender,
		log:            log.With().Str("usecase", "lead").Logger(),
	}
}

func (uc *leadUseCase) filter(params LeadListParams) (repositories.LeadFilter, error) {
	status := entities.LeadStatus(params.Status)
	if status != "" && !status.Valid() {
		return repositories.LeadFilter{}, invalidField("status", "status inválido")
	}
	if !params.From.IsZero() && !params.To.IsZero() && params.To.Before(params.From) {
		return repositories.LeadFilter{}, invalidField("ate", "a data final deve ser posterior à inicial")
	}

	return repositories.LeadFilter{
		Search:      strings.TrimSpace(params.Search),
		Status:      status,
		SpecialtyID: params.SpecialtyID,
		From:        params.From,
		To:          params.To,
		Page:        params.Page,
		Limit:       params.Limit,
	}, nil
}

func (uc *leadUseCase) List(ctx context.Context, params LeadListParams) ([]LeadItem, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = DefaultLeadPageSize
	}
	if params.Limit > MaxLeadPageSize {
		params.Limit = MaxLeadPageSize
	}

	filter, err := uc.filter(params)
	if err != nil {
		return nil, 0, err
	}

	leads, total, err := uc.leadRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	items, err := uc.withInterests(ctx, leads)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (uc *leadUseCase) withInterests(ctx context.Context, leads []entities.LeadView) ([]LeadItem, error) {
	ids := make([]uuid.UUID, len(leads))
	for i, lead := range leads {
		ids[i] = lead.ID
	}

	interests, err := uc.leadRepo.InterestsByLeads(ctx, ids)
	if err != nil {
		return nil, err
	}

	byLead := make(map[uuid.UUID][]entities.Interest, len(leads))
	for _, interest := range interests {
		byLead[interest.LeadID] = append(byLead[interest.LeadID], interest)
	}

	items := make([]LeadItem, len(leads))
	for i, lead := range leads {
		items[i] = newLeadItem(lead, byLead[lead.ID])
	}
	return items, nil
}

func newLeadItem(lead entities.LeadView, interests []entities.Interest) LeadItem {
	if interests == nil {
		interests = []entities.Interest{}
	}
	status := lead.Status()
	return LeadItem{
		LeadView:    lead,
		Status:      status,
		StatusLabel: status.Label(),
		Interests:   interests,
	}
}

func (uc *leadUseCase) Get(ctx context.Context, id uuid.UUID) (*LeadDetail, error) {
	lead, err := uc.leadRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &LeadDetail{WhatsAppLink: utils.WhatsAppLink(lead.WhatsApp, "")}
	var interests []entities.Interest

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		interests, err = uc.leadRepo.InterestsByLeads(gctx, []uuid.UUID{id})
		return err
	})
	g.Go(func() error {
		var err error
		detail.Answers, err = uc.leadRepo.AnswersByLead(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		detail.Followups, err = uc.followupRepo.ListByLead(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		detail.Conversions, err = uc.conversionRepo.ListByLead(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	detail.LeadItem = newLeadItem(*lead, interests)
	return detail, nil
}

func (uc *leadUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.leadRepo.Delete(ctx, id)
}

// ExportCSV escreve todos os leads do filtro, sem paginação
func (uc *leadUseCase) ExportCSV(ctx context.Context, params LeadListParams, w io.Writer) error {
	params.Page = 0
	params.Limit = 0

	filter, err := uc.filter(params)
	if err != nil {
		return err
	}

	leads, _, err := uc.leadRepo.List(ctx, filter)
	if err != nil {
		return err
	}

	items, err := uc.withInterests(ctx, leads)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"Nome", "WhatsApp", "Status", "Interesses", "Data"}); err != nil {
		return err
	}

	for _, item := range items {
		names := make([]string, 0, len(item.Interests))
		for _, interest := range item.Interests {
			if interest.Specialty != nil {
				names = append(names, interest.Specialty.Name)
			}
		}

		phone := item.WhatsAppFormatted
		if phone == "" {
			phone = utils.FormatPhone(item.WhatsApp)
		}

		record := []string{
			item.Name,
			phone,
			item.StatusLabel,
			strings.Join(names, ", "),
			utils.FormatDateTime(item.CreatedAt),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func (uc *leadUseCase) AddFollowup(ctx context.Context, leadID uuid.UUID, input FollowupInput) (*FollowupResult, error) {
	if input.Channel == "" {
		input.Channel = entities.ChannelWhatsApp
	}
	if !input.Channel.Valid() {
		return nil, invalidField("tipo_contato", "tipo de contato inválido")
	}
	if input.SendWhatsApp && input.Channel != entities.ChannelWhatsApp {
		return nil, invalidField("enviar_whatsapp", "apenas contatos por WhatsApp podem ser enviados")
	}

	lead, err := uc.leadRepo.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	firstName := utils.FirstName(lead.Name)

	followup := &entities.Followup{
		LeadID:      lead.ID,
		SpecialtyID: input.SpecialtyID,
		TemplateID:  input.TemplateID,
		Channel:     input.Channel,
		Notes:       input.Notes,
		SentAt:      time.Now(),
		Status:      entities.FollowupSent,
		SentBy:      input.SentBy,
	}

	content := ""
	if input.TemplateID != nil {
		template, err := uc.templateRepo.FindByID(ctx, *input.TemplateID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, invalidField("template_id", "template não encontrado")
			}
			return nil, err
		}
		content = template.Render(firstName)
		followup.FileURL = template.FileURL
		if followup.SpecialtyID == nil {
			followup.SpecialtyID = template.SpecialtyID
		}
	}
	if input.Content != nil && strings.TrimSpace(*input.Content) != "" {
		content = strings.ReplaceAll(strings.TrimSpace(*input.Content), entities.NamePlaceholder, firstName)
	}
	if content == "" {
		return nil, invalidField("conteudo", "informe a mensagem ou escolha um template")
	}
	followup.Content = &content

	if input.ScheduledFor != nil && input.ScheduledFor.After(time.Now()) {
		followup.ScheduledFor = input.ScheduledFor
		followup.Status = entities.FollowupScheduled
	}

	result := &FollowupResult{WhatsAppLink: utils.WhatsAppLink(lead.WhatsApp, content)}

	if input.SendWhatsApp && followup.Status == entities.FollowupSent {
		if err := uc.sender.SendText(ctx, lead.WhatsApp, content); err != nil {
			uc.log.Error().Err(err).Str("lead_id", lead.ID.String()).Msg("Erro ao enviar followup pelo WhatsApp")
			return nil, fmt.Errorf("envio pelo whatsapp: %w", err)
		}
		result.Delivered = true
	}

	if err := uc.followupRepo.Create(ctx, followup); err != nil {
		if result.Delivered {
			// a mensagem já saiu; o log é o único registro do envio
			uc.log.Error().
				Err(err).
				Str("lead_id", lead.ID.String()).
				Str("whatsapp", lead.WhatsApp).
				Str("conteudo", content).
				Msg("Followup enviado pelo WhatsApp mas não gravado")
		}
		return nil, err
	}

	result.Followup = followup
	return result, nil
}

func (uc *leadUseCase) AddConversion(ctx context.Context, leadID uuid.UUID, input ConversionInput) (*entities.Conversion, error) {
	if input.SpecialtyID == nil {
		return nil, invalidField("nucleo_id", "informe o núcleo da conversão")
	}
	if input.Value != nil && *input.Value < 0 {
		return nil, invalidField("valor", "o valor não pode ser negativo")
	}

	lead, err := uc.leadRepo.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	conversion := &entities.Conversion{
		LeadID:       lead.ID,
		SpecialtyID:  input.SpecialtyID,
		Procedure:    trimmed(input.Procedure),
		Value:        input.Value,
		ConvertedAt:  time.Now(),
		Notes:        trimmed(input.Notes),
		RegisteredBy: input.RegisteredBy,
	}
	if input.ConvertedAt != nil && !input.ConvertedAt.IsZero() {
		conversion.ConvertedAt = *input.ConvertedAt
	}

	if err := uc.conversionRepo.Create(ctx, conversion); err != nil {
		return nil, err
	}
	return conversion, nil
}

// trimmed devolve nil para textos opcionais vazios
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
