package usecases

import (
	"context"
	"strings"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/repositories"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/utils"
	"github.com/google/uuid"
)

// PreviewName é usado na pré-visualização quando nenhum lead é informado
const PreviewName = "Maria"

// TemplatePreview é o template renderizado para um lead
type TemplatePreview struct {
	Text      string  `json:"texto"`
	FileURL   *string `json:"arquivo_url"`
	SendDelay string  `json:"tempo_envio_label,omitempty"`
	Link      string  `json:"whatsapp_link,omitempty"`
}

type TemplateUseCase interface {
	List(ctx context.Context, specialtyID *uuid.UUID, onlyActive bool) ([]entities.Template, error)
	Create(ctx context.Context, template *entities.Template) error
	Update(ctx context.Context, id uuid.UUID, template *entities.Template) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*entities.Template, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Preview(ctx context.Context, id uuid.UUID, leadID *uuid.UUID) (*TemplatePreview, error)
}

type templateUseCase struct {
	templateRepo repositories.TemplateRepository
	leadRepo     repositories.LeadRepository
}

func NewTemplateUseCase(templateRepo repositories.TemplateRepository, leadRepo repositories.LeadRepository) TemplateUseCase {
	return &templateUseCase{templateRepo, leadRepo}
}

func (uc *templateUseCase) List(ctx context.Context, specialtyID *uuid.UUID, onlyActive bool) ([]entities.Template, error) {
	return uc.templateRepo.List(ctx, specialtyID, onlyActive)
}

func (uc *templateUseCase) Create(ctx context.Context, template *entities.Template) error {
	if err := validateTemplate(template); err != nil {
		return err
	}
	return uc.templateRepo.Create(ctx, template)
}

func (uc *templateUseCase) Update(ctx context.Context, id uuid.UUID, template *entities.Template) error {
	if err := validateTemplate(template); err != nil {
		return err
	}

	existing, err := uc.templateRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	template.ID = existing.ID
	template.CreatedAt = existing.CreatedAt
	return uc.templateRepo.Update(ctx, template)
}

func (uc *templateUseCase) SetActive(ctx context.Context, id uuid.UUID, active bool) (*entities.Template, error) {
	if err := uc.templateRepo.SetActive(ctx, id, active); err != nil {
		return nil, err
	}
	return uc.templateRepo.FindByID(ctx, id)
}

func (uc *templateUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.templateRepo.Delete(ctx, id)
}

// Preview renderiza {nome} com o primeiro nome do lead, ou com PreviewName
func (uc *templateUseCase) Preview(ctx context.Context, id uuid.UUID, leadID *uuid.UUID) (*TemplatePreview, error) {
	template, err := uc.templateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	preview := &TemplatePreview{FileURL: template.FileURL}
	if template.SendDelay != nil {
		preview.SendDelay = template.SendDelay.Label()
	}

	if leadID == nil {
		preview.Text = template.Render(PreviewName)
		return preview, nil
	}

	lead, err := uc.leadRepo.FindByID(ctx, *leadID)
	if err != nil {
		return nil, err
	}
	preview.Text = template.Render(utils.FirstName(lead.Name))
	preview.Link = utils.WhatsAppLink(lead.WhatsApp, preview.Text)
	return preview, nil
}

func validateTemplate(template *entities.Template) error {
	template.Title = strings.TrimSpace(template.Title)
	template.Content = strings.TrimSpace(template.Content)

	if template.Title == "" {
		return invalidField("titulo", "o título do template é obrigatório")
	}
	if template.Content == "" {
		return invalidField("conteudo", "o conteúdo do template é obrigatório")
	}
	if template.Type == "" {
		template.Type = entities.TemplateText
	}
	if !template.Type.Valid() {
		return invalidField("tipo", "tipo de template inválido")
	}
	if template.Type.NeedsMedia() && (template.FileURL == nil || *template.FileURL == "") {
		return invalidField("arquivo_url", "templates de imagem ou vídeo precisam de um arquivo")
	}
	if template.SendDelay != nil && !template.SendDelay.Valid() {
		return invalidField("tempo_envio", "tempo de envio inválido")
	}
	return nil
}
