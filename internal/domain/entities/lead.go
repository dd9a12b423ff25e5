package entities

import (
	"time"

	"github.com/google/uuid"
)

// Lead é o paciente que preencheu o formulário no totem
type Lead struct {
	Base
	Timestamps
	Name              string `json:"nome" gorm:"column:nome;not null"`
	WhatsApp          string `json:"whatsapp" gorm:"column:whatsapp;not null;index"`
	WhatsAppFormatted string `json:"whatsapp_formatado" gorm:"column:whatsapp_formatado"`
}

func (Lead) TableName() string {
	return "form_pacientes"
}

// Answer registra uma resposta do lead (uma linha por opção escolhida)
type Answer struct {
	Base
	LeadID     uuid.UUID  `json:"paciente_id" gorm:"type:uuid;column:paciente_id;not null;index"`
	Lead       *Lead      `json:"-" gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`
	QuestionID uuid.UUID  `json:"pergunta_id" gorm:"type:uuid;column:pergunta_id;not null;index"`
	Question   *Question  `json:"pergunta,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
	OptionID   *uuid.UUID `json:"opcao_id" gorm:"type:uuid;column:opcao_id"`
	Option     *Option    `json:"opcao,omitempty" gorm:"foreignKey:OptionID;constraint:OnDelete:SET NULL"`
	Text       *string    `json:"resposta_texto" gorm:"column:resposta_texto"`
}

func (Answer) TableName() string {
	return "form_respostas"
}

// Interest é a contagem de respostas de um lead ligadas a um núcleo
type Interest struct {
	Base
	LeadID      uuid.UUID  `json:"paciente_id" gorm:"type:uuid;column:paciente_id;not null;index"`
	Lead        *Lead      `json:"-" gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`
	SpecialtyID *uuid.UUID `json:"nucleo_id" gorm:"type:uuid;column:nucleo_id;index"`
	Specialty   *Specialty `json:"nucleo,omitempty" gorm:"foreignKey:SpecialtyID;constraint:OnDelete:SET NULL"`
	Count       int        `json:"quantidade_respostas" gorm:"column:quantidade_respostas;default:1"`
}

func (Interest) TableName() string {
	return "form_interesses"
}

// LeadView é a linha da view form_leads_view com as contagens agregadas
type LeadView struct {
	ID                 uuid.UUID  `json:"id" gorm:"column:id"`
	Name               string     `json:"nome" gorm:"column:nome"`
	WhatsApp           string     `json:"whatsapp" gorm:"column:whatsapp"`
	WhatsAppFormatted  string     `json:"whatsapp_formatado" gorm:"column:whatsapp_formatado"`
	CreatedAt          time.Time  `json:"created_at" gorm:"column:created_at"`
	TotalFollowups     int64      `json:"total_followups" gorm:"column:total_followups"`
	TotalConversions   int64      `json:"total_conversoes" gorm:"column:total_conversoes"`
	ConvertedSpecialty *uuid.UUID `json:"nucleo_convertido" gorm:"column:nucleo_convertido"`
	ConvertedAt        *time.Time `json:"data_conversao" gorm:"column:data_conversao"`
}

func (LeadView) TableName() string {
	return "form_leads_view"
}

// Status deriva o estágio do lead a partir das contagens
func (v LeadView) Status() LeadStatus {
	return ClassifyLead(v.TotalFollowups, v.TotalConversions)
}
