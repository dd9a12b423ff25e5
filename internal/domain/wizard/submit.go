package wizard

import (
	"context"
	"sort"
	"strings"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/utils"
	"github.com/google/uuid"
)

// Store persiste o cadastro em três etapas independentes, sem transação
type Store interface {
	CreateLead(ctx context.Context, lead *entities.Lead) error
	CreateAnswers(ctx context.Context, answers []entities.Answer) error
	CreateInterests(ctx context.Context, interests []entities.Interest) error
}

// Receipt resume o que foi gravado em um envio bem-sucedido
type Receipt struct {
	LeadID    uuid.UUID
	Answers   int
	Interests int
}

// BeginSubmit valida o envio e marca o estado como enviando
func (f Form) BeginSubmit(s State) (State, error) {
	if s.Step != StepContact {
		return s, ErrInvalidTransition
	}
	if !f.CanSubmit(s) {
		return s, ErrCannotSubmit
	}
	next := s.clone()
	next.IsSubmitting = true
	next.Error = ""
	return next, nil
}

// Persist grava lead, respostas e interesses nessa ordem. Na primeira falha
// interrompe, volta para a etapa de contato com a mensagem de erro e mantém
// o que já foi gravado.
func (f Form) Persist(ctx context.Context, s State, store Store) (State, Receipt, error) {
	if s.Step != StepContact || !s.IsSubmitting {
		return s, Receipt{}, ErrInvalidTransition
	}

	fail := func(err error) (State, Receipt, error) {
		next := s.clone()
		next.Step = StepContact
		next.IsSubmitting = false
		next.Error = SubmitErrorMessage
		return next, Receipt{}, err
	}

	lead := entities.Lead{
		Name:              strings.TrimSpace(s.Name),
		WhatsApp:          utils.OnlyDigits(s.Phone),
		WhatsAppFormatted: utils.FormatWhatsApp(s.Phone),
	}
	if err := store.CreateLead(ctx, &lead); err != nil {
		return fail(err)
	}

	answers := f.FlattenAnswers(lead.ID, s)
	if len(answers) > 0 {
		if err := store.CreateAnswers(ctx, answers); err != nil {
			return fail(err)
		}
	}

	interests := f.Interests(lead.ID, s)
	if len(interests) > 0 {
		if err := store.CreateInterests(ctx, interests); err != nil {
			return fail(err)
		}
	}

	next := s.clone()
	next.Step = StepSuccess
	next.IsSubmitting = false
	next.Error = ""
	return next, Receipt{LeadID: lead.ID, Answers: len(answers), Interests: len(interests)}, nil
}

// Submit executa BeginSubmit e Persist em sequência
func (f Form) Submit(ctx context.Context, s State, store Store) (State, Receipt, error) {
	begun, err := f.BeginSubmit(s)
	if err != nil {
		return s, Receipt{}, err
	}
	return f.Persist(ctx, begun, store)
}

// FlattenAnswers gera uma linha por opção escolhida e uma por resposta livre,
// na ordem das perguntas
func (f Form) FlattenAnswers(leadID uuid.UUID, s State) []entities.Answer {
	var answers []entities.Answer
	for _, q := range f.questions {
		for _, optionID := range s.Answers[q.ID] {
			answers = append(answers, entities.Answer{
				LeadID:     leadID,
				QuestionID: q.ID,
				OptionID:   &optionID,
			})
		}
		if text, ok := s.Texts[q.ID]; ok && text != "" {
			answers = append(answers, entities.Answer{
				LeadID:     leadID,
				QuestionID: q.ID,
				Text:       &text,
			})
		}
	}
	return answers
}

// Interests converte a agregação em linhas de form_interesses, ordenadas pelo núcleo
func (f Form) Interests(leadID uuid.UUID, s State) []entities.Interest {
	counts := AggregateInterests(s.Answers, f.questions)
	ids := make([]uuid.UUID, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	interests := make([]entities.Interest, 0, len(ids))
	for _, id := range ids {
		interests = append(interests, entities.Interest{
			LeadID:      leadID,
			SpecialtyID: &id,
			Count:       counts[id],
		})
	}
	return interests
}

// AggregateInterests soma, por núcleo, a quantidade de opções escolhidas nas
// perguntas ligadas a ele. Perguntas sem núcleo não contam.
func AggregateInterests(answers map[uuid.UUID][]uuid.UUID, questions []entities.Question) map[uuid.UUID]int {
	counts := map[uuid.UUID]int{}
	for _, q := range questions {
		if q.SpecialtyID == nil {
			continue
		}
		if n := len(answers[q.ID]); n > 0 {
			counts[*q.SpecialtyID] += n
		}
	}
	return counts
}
