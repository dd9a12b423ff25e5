package usecases

import (
	"context"
	"strings"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/repositories"
	"github.com/google/uuid"
)

type QuestionUseCase interface {
	List(ctx context.Context, onlyActive bool) ([]entities.Question, error)
	Create(ctx context.Context, question *entities.Question, options []entities.Option) error
	Update(ctx context.Context, id uuid.UUID, question *entities.Question, options []entities.Option) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*entities.Question, error)
	Reorder(ctx context.Context, ids []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type questionUseCase struct {
	questionRepo repositories.QuestionRepository
}

func NewQuestionUseCase(questionRepo repositories.QuestionRepository) QuestionUseCase {
	return &questionUseCase{questionRepo}
}

func (uc *questionUseCase) List(ctx context.Context, onlyActive bool) ([]entities.Question, error) {
	return uc.questionRepo.List(ctx, onlyActive)
}

func (uc *questionUseCase) Create(ctx context.Context, question *entities.Question, options []entities.Option) error {
	if question.ID == uuid.Nil {
		question.ID = uuid.New()
	}

	normalized, err := prepareQuestion(question, options)
	if err != nil {
		return err
	}
	question.Options = normalized

	return uc.questionRepo.Create(ctx, question)
}

// Update grava a pergunta e substitui todas as opções (apaga e recria)
func (uc *questionUseCase) Update(ctx context.Context, id uuid.UUID, question *entities.Question, options []entities.Option) error {
	existing, err := uc.questionRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	question.ID = existing.ID
	question.CreatedAt = existing.CreatedAt

	normalized, err := prepareQuestion(question, options)
	if err != nil {
		return err
	}

	if err := uc.questionRepo.Update(ctx, question); err != nil {
		return err
	}
	return uc.questionRepo.ReplaceOptions(ctx, question.ID, normalized)
}

func (uc *questionUseCase) SetActive(ctx context.Context, id uuid.UUID, active bool) (*entities.Question, error) {
	if err := uc.questionRepo.SetActive(ctx, id, active); err != nil {
		return nil, err
	}
	return uc.questionRepo.FindByID(ctx, id)
}

func (uc *questionUseCase) Reorder(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return invalidField("ids", "informe a nova ordem das perguntas")
	}

	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return invalidField("ids", "pergunta repetida na ordenação")
		}
		seen[id] = true
	}
	return uc.questionRepo.Reorder(ctx, ids)
}

func (uc *questionUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.questionRepo.Delete(ctx, id)
}

// prepareQuestion valida a pergunta e devolve as opções com letra e ordem
func prepareQuestion(question *entities.Question, options []entities.Option) ([]entities.Option, error) {
	question.Title = strings.TrimSpace(question.Title)
	if question.Title == "" {
		return nil, invalidField("titulo", "o título da pergunta é obrigatório")
	}

	if question.Type == "" {
		question.Type = entities.QuestionMultipleChoice
	}
	if !question.Type.Valid() {
		return nil, invalidField("tipo", "tipo de pergunta inválido")
	}

	if !question.Type.HasOptions() {
		question.Multiple = false
		return []entities.Option{}, nil
	}

	normalized, err := entities.NormalizeOptions(question.ID, options)
	if err != nil {
		return nil, invalidField("opcoes", err.Error())
	}
	if len(normalized) == 0 {
		return nil, invalidField("opcoes", "adicione pelo menos uma opção")
	}
	return normalized, nil
}
