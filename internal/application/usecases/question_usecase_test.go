package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/google/uuid"
)

func TestQuestionCreate_NormalizesOptions(t *testing.T) {
	repo := &fakeQuestionRepo{}
	uc := NewQuestionUseCase(repo)

	question := &entities.Question{Title: "  Qual seu objetivo? "}
	options := []entities.Option{{Text: "Rejuvenescer"}, {Text: "  "}, {Text: " Emagrecer "}}

	if err := uc.Create(context.Background(), question, options); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if question.ID == uuid.Nil || question.Title != "Qual seu objetivo?" || question.Type != entities.QuestionMultipleChoice {
		t.Errorf("unexpected question %+v", question)
	}
	if len(question.Options) != 2 {
		t.Fatalf("blank options should be dropped, got %d", len(question.Options))
	}
	second := question.Options[1]
	if second.Letter != "B" || second.Order != 1 || second.Text != "Emagrecer" || second.QuestionID != question.ID {
		t.Errorf("unexpected option %+v", second)
	}
}

func TestQuestionCreate_TextHasNoOptions(t *testing.T) {
	uc := NewQuestionUseCase(&fakeQuestionRepo{})

	question := &entities.Question{Title: "Algo mais?", Type: entities.QuestionText, Multiple: true}
	if err := uc.Create(context.Background(), question, []entities.Option{{Text: "ignorada"}}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(question.Options) != 0 || question.Multiple {
		t.Errorf("text question should not keep options: %+v", question)
	}
}

func TestQuestionCreate_Validation(t *testing.T) {
	uc := NewQuestionUseCase(&fakeQuestionRepo{})

	cases := map[string]*entities.Question{
		"empty title":  {Title: " "},
		"unknown type": {Title: "Pergunta", Type: "escala"},
		"no options":   {Title: "Pergunta"},
	}
	for name, q := range cases {
		var verr *ValidationError
		if err := uc.Create(context.Background(), q, nil); !errors.As(err, &verr) {
			t.Errorf("%s: expected ValidationError, got %v", name, err)
		}
	}
}

func TestQuestionUpdate_ReplacesOptions(t *testing.T) {
	existing := entities.Question{Title: "Antiga", Type: entities.QuestionMultipleChoice}
	existing.ID = uuid.New()
	repo := &fakeQuestionRepo{questions: []entities.Question{existing}}
	uc := NewQuestionUseCase(repo)

	err := uc.Update(context.Background(), existing.ID, &entities.Question{Title: "Nova"}, []entities.Option{{Text: "Sim"}, {Text: "Não"}})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(repo.replaced) != 2 || repo.replaced[0].QuestionID != existing.ID {
		t.Errorf("options not replaced: %+v", repo.replaced)
	}
	if repo.questions[0].Title != "Nova" {
		t.Errorf("question not updated")
	}

	if err := uc.Update(context.Background(), uuid.New(), &entities.Question{Title: "x"}, nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestQuestionReorder(t *testing.T) {
	repo := &fakeQuestionRepo{}
	uc := NewQuestionUseCase(repo)
	a, b := uuid.New(), uuid.New()

	if err := uc.Reorder(context.Background(), []uuid.UUID{b, a}); err != nil {
		t.Fatalf("Reorder: %v", err)
	}
	if len(repo.reordered) != 2 || repo.reordered[0] != b {
		t.Errorf("unexpected order %v", repo.reordered)
	}

	var verr *ValidationError
	if err := uc.Reorder(context.Background(), []uuid.UUID{a, b, a}); !errors.As(err, &verr) {
		t.Errorf("duplicated ids should be rejected, got %v", err)
	}
	if err := uc.Reorder(context.Background(), nil); !errors.As(err, &verr) {
		t.Errorf("empty order should be rejected, got %v", err)
	}
}
