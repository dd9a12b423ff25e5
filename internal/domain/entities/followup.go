package entities

import (
	"time"

	"github.com/google/uuid"
)

// ContactChannel é o meio usado no contato com o lead
type ContactChannel string

const (
	ChannelWhatsApp ContactChannel = "whatsapp"
	ChannelPhone    ContactChannel = "telefone"
	ChannelEmail    ContactChannel = "email"
)

func (c ContactChannel) Valid() bool {
	switch c {
	case ChannelWhatsApp, ChannelPhone, ChannelEmail:
		return true
	default:
		return false
	}
}

// FollowupStatus é a situação do registro de contato
type FollowupStatus string

const (
	FollowupSent      FollowupStatus = "enviado"
	FollowupScheduled FollowupStatus = "agendado"
)

func (s FollowupStatus) Valid() bool {
	switch s {
	case FollowupSent, FollowupScheduled:
		return true
	default:
		return false
	}
}

// Followup registra uma tentativa de contato. Só é inserido, nunca editado.
type Followup struct {
	Base
	LeadID       uuid.UUID      `json:"paciente_id" gorm:"type:uuid;column:paciente_id;not null;index"`
	Lead         *Lead          `json:"-" gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`
	SpecialtyID  *uuid.UUID     `json:"nucleo_id" gorm:"type:uuid;column:nucleo_id"`
	Specialty    *Specialty     `json:"nucleo,omitempty" gorm:"foreignKey:SpecialtyID;constraint:OnDelete:SET NULL"`
	TemplateID   *uuid.UUID     `json:"template_id" gorm:"type:uuid;column:template_id"`
	Template     *Template      `json:"template,omitempty" gorm:"foreignKey:TemplateID;constraint:OnDelete:SET NULL"`
	Channel      ContactChannel `json:"tipo_contato" gorm:"column:tipo_contato;not null;default:whatsapp"`
	Content      *string        `json:"conteudo_enviado" gorm:"column:conteudo_enviado"`
	FileURL      *string        `json:"arquivo_url" gorm:"column:arquivo_url"`
	SentAt       time.Time      `json:"data_envio" gorm:"column:data_envio"`
	ScheduledFor *time.Time     `json:"data_agendada" gorm:"column:data_agendada"`
	Status       FollowupStatus `json:"status" gorm:"column:status;not null;default:enviado"`
	Notes        *string        `json:"observacoes" gorm:"column:observacoes"`
	SentBy       *uuid.UUID     `json:"enviado_por" gorm:"type:uuid;column:enviado_por"`
}

func (Followup) TableName() string {
	return "form_followups"
}

// Conversion registra que o lead fechou um procedimento. Só é inserido.
type Conversion struct {
	Base
	LeadID       uuid.UUID  `json:"paciente_id" gorm:"type:uuid;column:paciente_id;not null;index"`
	Lead         *Lead      `json:"-" gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`
	SpecialtyID  *uuid.UUID `json:"nucleo_id" gorm:"type:uuid;column:nucleo_id;index"`
	Specialty    *Specialty `json:"nucleo,omitempty" gorm:"foreignKey:SpecialtyID;constraint:OnDelete:SET NULL"`
	Procedure    *string    `json:"procedimento" gorm:"column:procedimento"`
	Value        *float64   `json:"valor" gorm:"column:valor;type:numeric(12,2)"`
	ConvertedAt  time.Time  `json:"data_conversao" gorm:"column:data_conversao"`
	Notes        *string    `json:"observacoes" gorm:"column:observacoes"`
	RegisteredBy *uuid.UUID `json:"registrado_por" gorm:"type:uuid;column:registrado_por"`
}

func (Conversion) TableName() string {
	return "form_conversoes"
}
