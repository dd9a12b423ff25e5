package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TemplateType é o formato da mensagem de followup
type TemplateType string

const (
	TemplateText  TemplateType = "texto"
	TemplateImage TemplateType = "imagem"
	TemplateVideo TemplateType = "video"
)

func (t TemplateType) Valid() bool {
	switch t {
	case TemplateText, TemplateImage, TemplateVideo:
		return true
	default:
		return false
	}
}

// NeedsMedia indica se o template exige arquivo_url
func (t TemplateType) NeedsMedia() bool {
	switch t {
	case TemplateImage, TemplateVideo:
		return true
	default:
		return false
	}
}

// SendDelay é o momento sugerido de envio após o cadastro do lead
type SendDelay string

const (
	SendImmediately SendDelay = "imediato"
	SendAfter24h    SendDelay = "24h"
	SendAfter48h    SendDelay = "48h"
	SendAfter3d     SendDelay = "3d"
	SendAfter7d     SendDelay = "7d"
	SendAfter15d    SendDelay = "15d"
	SendAfter30d    SendDelay = "30d"
)

func (d SendDelay) Valid() bool {
	_, ok := sendDelays[d]
	return ok
}

// Duration devolve o intervalo a partir do cadastro
func (d SendDelay) Duration() time.Duration {
	return sendDelays[d].after
}

// Label é o texto exibido no painel
func (d SendDelay) Label() string {
	if info, ok := sendDelays[d]; ok {
		return info.label
	}
	return string(d)
}

var sendDelays = map[SendDelay]struct {
	after time.Duration
	label string
}{
	SendImmediately: {0, "Imediato"},
	SendAfter24h:    {24 * time.Hour, "Após 24 horas"},
	SendAfter48h:    {48 * time.Hour, "Após 48 horas"},
	SendAfter3d:     {3 * 24 * time.Hour, "Após 3 dias"},
	SendAfter7d:     {7 * 24 * time.Hour, "Após 7 dias"},
	SendAfter15d:    {15 * 24 * time.Hour, "Após 15 dias"},
	SendAfter30d:    {30 * 24 * time.Hour, "Após 30 dias"},
}

// NamePlaceholder é substituído pelo primeiro nome do lead
const NamePlaceholder = "{nome}"

// Template é um modelo de mensagem de followup
type Template struct {
	Base
	Timestamps
	SpecialtyID *uuid.UUID   `json:"nucleo_id" gorm:"type:uuid;column:nucleo_id;index"`
	Specialty   *Specialty   `json:"nucleo,omitempty" gorm:"foreignKey:SpecialtyID;constraint:OnDelete:SET NULL"`
	Title       string       `json:"titulo" gorm:"column:titulo;not null"`
	Content     string       `json:"conteudo" gorm:"column:conteudo;not null"`
	Type        TemplateType `json:"tipo" gorm:"column:tipo;not null;default:texto"`
	FileURL     *string      `json:"arquivo_url" gorm:"column:arquivo_url"`
	SendDelay   *SendDelay   `json:"tempo_envio" gorm:"column:tempo_envio"`
	Order       int          `json:"ordem" gorm:"column:ordem;default:0"`
	Active      bool         `json:"ativo" gorm:"column:ativo;not null"`
}

func (Template) TableName() string {
	return "form_templates"
}

// Render substitui {nome} pelo primeiro nome informado
func (t Template) Render(firstName string) string {
	return strings.ReplaceAll(t.Content, NamePlaceholder, firstName)
}
