package wizard

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/utils"
	"github.com/google/uuid"
)

// MinNameLength e MinPhoneDigits são os mínimos para enviar o formulário
const (
	MinNameLength  = 3
	MinPhoneDigits = 10
)

// Form é o conjunto ordenado de perguntas ativas sobre o qual as transições operam
type Form struct {
	questions []entities.Question
	index     map[uuid.UUID]int
}

func NewForm(questions []entities.Question) Form {
	f := Form{
		questions: questions,
		index:     make(map[uuid.UUID]int, len(questions)),
	}
	for i, q := range questions {
		f.index[q.ID] = i
	}
	return f
}

func (f Form) Questions() []entities.Question {
	return f.questions
}

func (f Form) Len() int {
	return len(f.questions)
}

func (f Form) Question(id uuid.UUID) (entities.Question, bool) {
	i, ok := f.index[id]
	if !ok {
		return entities.Question{}, false
	}
	return f.questions[i], true
}

// Current devolve a pergunta exibida no estado informado
func (f Form) Current(s State) (entities.Question, bool) {
	if s.CurrentQuestion < 0 || s.CurrentQuestion >= len(f.questions) {
		return entities.Question{}, false
	}
	return f.questions[s.CurrentQuestion], true
}

// Start: welcome -> questions
func (f Form) Start(s State) (State, error) {
	if s.Step != StepWelcome {
		return s, ErrInvalidTransition
	}
	next := s.clone()
	next.Step = StepQuestions
	next.CurrentQuestion = 0
	return next, nil
}

// Select marca uma opção. Com multiple a opção alterna entre marcada e
// desmarcada; sem multiple substitui a resposta da pergunta. Não avança.
func (f Form) Select(s State, questionID, optionID uuid.UUID, multiple bool) (State, error) {
	if s.Step != StepQuestions {
		return s, ErrInvalidTransition
	}
	q, ok := f.Question(questionID)
	if !ok {
		return s, ErrUnknownQuestion
	}
	if !q.Type.HasOptions() || !q.HasOption(optionID) {
		return s, ErrUnknownOption
	}

	next := s.clone()
	current := next.Answers[questionID]
	switch {
	case !multiple:
		next.Answers[questionID] = []uuid.UUID{optionID}
	case slices.Contains(current, optionID):
		current = slices.DeleteFunc(current, func(id uuid.UUID) bool { return id == optionID })
		if len(current) == 0 {
			delete(next.Answers, questionID)
		} else {
			next.Answers[questionID] = current
		}
	default:
		next.Answers[questionID] = append(current, optionID)
	}
	return next, nil
}

// SetText registra a resposta de perguntas de texto ou telefone
func (f Form) SetText(s State, questionID uuid.UUID, text string) (State, error) {
	if s.Step != StepQuestions {
		return s, ErrInvalidTransition
	}
	q, ok := f.Question(questionID)
	if !ok {
		return s, ErrUnknownQuestion
	}

	switch q.Type {
	case entities.QuestionText:
		text = strings.TrimSpace(text)
	case entities.QuestionPhone:
		text = utils.OnlyDigits(text)
	default:
		return s, ErrInvalidTransition
	}

	next := s.clone()
	if text == "" {
		delete(next.Texts, questionID)
	} else {
		next.Texts[questionID] = text
	}
	return next, nil
}

// Next avança para a próxima pergunta ou para a etapa de contato.
// Bloqueia quando a pergunta atual é obrigatória e está sem resposta.
func (f Form) Next(s State) (State, error) {
	if s.Step != StepQuestions {
		return s, ErrInvalidTransition
	}
	if !f.CanGoNext(s) {
		return s, ErrAnswerRequired
	}
	next := s.clone()
	if next.CurrentQuestion < len(f.questions)-1 {
		next.CurrentQuestion++
	} else {
		next.Step = StepContact
	}
	return next, nil
}

// Prev volta uma pergunta; na primeira volta para as boas-vindas.
// Na etapa de contato volta para a última pergunta.
func (f Form) Prev(s State) (State, error) {
	next := s.clone()
	switch s.Step {
	case StepQuestions:
		if next.CurrentQuestion > 0 {
			next.CurrentQuestion--
		} else {
			next.Step = StepWelcome
		}
	case StepContact:
		if s.IsSubmitting {
			return s, ErrInvalidTransition
		}
		next.Step = StepQuestions
		next.CurrentQuestion = max(len(f.questions)-1, 0)
	default:
		return s, ErrInvalidTransition
	}
	return next, nil
}

func (f Form) SetName(s State, name string) (State, error) {
	if s.Step != StepContact || s.IsSubmitting {
		return s, ErrInvalidTransition
	}
	next := s.clone()
	next.Name = name
	return next, nil
}

// SetPhone guarda apenas os dígitos do telefone
func (f Form) SetPhone(s State, phone string) (State, error) {
	if s.Step != StepContact || s.IsSubmitting {
		return s, ErrInvalidTransition
	}
	next := s.clone()
	next.Phone = utils.OnlyDigits(phone)
	return next, nil
}

// Reset volta ao estado inicial
func (f Form) Reset(State) State {
	return Initial()
}

// Progress é o percentual de avanço nas perguntas (0 quando não há perguntas)
func (f Form) Progress(s State) float64 {
	if len(f.questions) == 0 {
		return 0
	}
	return float64(s.CurrentQuestion+1) / float64(len(f.questions)) * 100
}

// CanGoNext é falso apenas quando a pergunta atual é obrigatória e não tem resposta
func (f Form) CanGoNext(s State) bool {
	q, ok := f.Current(s)
	if !ok || !q.Required {
		return true
	}
	if q.Type.HasOptions() {
		return len(s.Answers[q.ID]) > 0
	}
	return strings.TrimSpace(s.Texts[q.ID]) != ""
}

func (f Form) CanSubmit(s State) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s.Name)) >= MinNameLength &&
		len(utils.OnlyDigits(s.Phone)) >= MinPhoneDigits &&
		!s.IsSubmitting
}

// Submission é um formulário completo recebido de uma só vez
type Submission struct {
	Name    string
	Phone   string
	Answers map[uuid.UUID][]uuid.UUID
	Texts   map[uuid.UUID]string
}

// Replay aplica a submissão pelas mesmas transições do passo a passo e devolve
// o estado pronto para envio na etapa de contato.
func (f Form) Replay(sub Submission) (State, error) {
	for qid := range sub.Answers {
		if _, ok := f.Question(qid); !ok {
			return State{}, ErrUnknownQuestion
		}
	}
	for qid := range sub.Texts {
		if _, ok := f.Question(qid); !ok {
			return State{}, ErrUnknownQuestion
		}
	}

	s, err := f.Start(Initial())
	if err != nil {
		return s, err
	}
	for s.Step == StepQuestions {
		if q, ok := f.Current(s); ok {
			if s, err = f.fill(s, q, sub); err != nil {
				return s, err
			}
		}
		next, err := f.Next(s)
		if err != nil {
			q, _ := f.Current(s)
			return s, fmt.Errorf("%w: %s", err, q.Title)
		}
		s = next
	}

	if s, err = f.SetName(s, sub.Name); err != nil {
		return s, err
	}
	return f.SetPhone(s, sub.Phone)
}

func (f Form) fill(s State, q entities.Question, sub Submission) (State, error) {
	var err error
	if !q.Type.HasOptions() {
		if text, ok := sub.Texts[q.ID]; ok {
			return f.SetText(s, q.ID, text)
		}
		return s, nil
	}

	selected := sub.Answers[q.ID]
	if len(selected) > 1 && !q.Multiple {
		return s, ErrTooManyOptions
	}
	for _, optionID := range selected {
		if slices.Contains(s.Answers[q.ID], optionID) {
			continue
		}
		if s, err = f.Select(s, q.ID, optionID, q.Multiple); err != nil {
			return s, err
		}
	}
	return s, nil
}
