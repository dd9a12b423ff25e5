package entities

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// QuestionType é o tipo de resposta aceito por uma pergunta
type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multipla_escolha"
	QuestionText           QuestionType = "texto"
	QuestionPhone          QuestionType = "telefone"
)

// Valid informa se o tipo é um dos tipos conhecidos
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionMultipleChoice, QuestionText, QuestionPhone:
		return true
	default:
		return false
	}
}

// HasOptions indica se a pergunta é respondida escolhendo opções
func (t QuestionType) HasOptions() bool {
	switch t {
	case QuestionMultipleChoice:
		return true
	case QuestionText, QuestionPhone:
		return false
	default:
		return false
	}
}

// MaxOptions é o limite de alternativas por pergunta (letras A-J)
const MaxOptions = 10

// Question é uma pergunta do formulário do totem
type Question struct {
	Base
	Timestamps
	Title       string       `json:"titulo" gorm:"column:titulo;not null"`
	Subtitle    *string      `json:"subtitulo" gorm:"column:subtitulo"`
	SpecialtyID *uuid.UUID   `json:"nucleo_id" gorm:"type:uuid;column:nucleo_id;index"`
	Specialty   *Specialty   `json:"nucleo,omitempty" gorm:"foreignKey:SpecialtyID;constraint:OnDelete:SET NULL"`
	Type        QuestionType `json:"tipo" gorm:"column:tipo;not null;default:multipla_escolha"`
	ImageURL    *string      `json:"imagem_url" gorm:"column:imagem_url"`
	Multiple    bool         `json:"multipla_selecao" gorm:"column:multipla_selecao;default:false"`
	Required    bool         `json:"obrigatoria" gorm:"column:obrigatoria;not null"`
	Active      bool         `json:"ativo" gorm:"column:ativo;not null"`
	Order       int          `json:"ordem" gorm:"column:ordem;default:0"`
	Options     []Option     `json:"opcoes" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

func (Question) TableName() string {
	return "form_perguntas"
}

// HasOption verifica se a opção pertence à pergunta
func (q Question) HasOption(optionID uuid.UUID) bool {
	for _, o := range q.Options {
		if o.ID == optionID {
			return true
		}
	}
	return false
}

// Option é uma alternativa de uma pergunta de múltipla escolha
type Option struct {
	Base
	QuestionID uuid.UUID `json:"pergunta_id" gorm:"type:uuid;column:pergunta_id;not null;index"`
	Text       string    `json:"texto" gorm:"column:texto;not null"`
	Letter     string    `json:"letra" gorm:"column:letra;size:1;not null"`
	Order      int       `json:"ordem" gorm:"column:ordem;default:0"`
	Active     bool      `json:"ativo" gorm:"column:ativo;not null"`
}

func (Option) TableName() string {
	return "form_opcoes"
}

// OptionLetter devolve a letra da alternativa na posição i (0 => A)
func OptionLetter(i int) string {
	return string(rune('A' + i))
}

// NormalizeOptions descarta alternativas em branco e reatribui letras e ordem
// de forma contígua. Retorna erro quando sobram mais de MaxOptions.
func NormalizeOptions(questionID uuid.UUID, options []Option) ([]Option, error) {
	result := make([]Option, 0, len(options))
	for _, o := range options {
		text := strings.TrimSpace(o.Text)
		if text == "" {
			continue
		}
		o.Text = text
		result = append(result, o)
	}

	if len(result) > MaxOptions {
		return nil, fmt.Errorf("máximo de %d opções por pergunta", MaxOptions)
	}

	for i := range result {
		result[i].QuestionID = questionID
		result[i].Letter = OptionLetter(i)
		result[i].Order = i
		result[i].Active = true
	}
	return result, nil
}
