// Package wizard implementa o formulário passo a passo do totem como uma
// máquina de estados pura. Cada transição recebe o estado atual e devolve o
// próximo, sem alterar o original.
package wizard

import (
	"errors"

	"github.com/google/uuid"
)

// Step é a etapa atual do formulário
type Step int

const (
	StepWelcome Step = iota
	StepQuestions
	StepContact
	StepSuccess
)

var stepNames = [...]string{"welcome", "questions", "contact", "success"}

func (s Step) String() string {
	if s < StepWelcome || s > StepSuccess {
		return "unknown"
	}
	return stepNames[s]
}

func (s Step) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

var (
	ErrInvalidTransition = errors.New("ação não permitida nesta etapa do formulário")
	ErrAnswerRequired    = errors.New("responda a pergunta para continuar")
	ErrUnknownQuestion   = errors.New("pergunta não encontrada no formulário")
	ErrUnknownOption     = errors.New("opção não pertence à pergunta")
	ErrTooManyOptions    = errors.New("esta pergunta aceita apenas uma opção")
	ErrCannotSubmit      = errors.New("informe seu nome e um WhatsApp válido")
)

// SubmitErrorMessage é a mensagem exibida ao paciente quando o envio falha
const SubmitErrorMessage = "Ocorreu um erro ao salvar suas informações. Tente novamente."

// State é o estado completo do formulário de um paciente
type State struct {
	Step            Step
	CurrentQuestion int
	// Answers guarda as opções escolhidas por pergunta, na ordem de seleção
	Answers map[uuid.UUID][]uuid.UUID
	// Texts guarda respostas livres de perguntas sem opções
	Texts        map[uuid.UUID]string
	Name         string
	Phone        string
	IsSubmitting bool
	Error        string
}

// Initial devolve o estado da tela de boas-vindas
func Initial() State {
	return State{
		Step:    StepWelcome,
		Answers: map[uuid.UUID][]uuid.UUID{},
		Texts:   map[uuid.UUID]string{},
	}
}

func (s State) clone() State {
	c := s
	c.Answers = make(map[uuid.UUID][]uuid.UUID, len(s.Answers))
	for k, v := range s.Answers {
		c.Answers[k] = append([]uuid.UUID(nil), v...)
	}
	c.Texts = make(map[uuid.UUID]string, len(s.Texts))
	for k, v := range s.Texts {
		c.Texts[k] = v
	}
	return c
}
