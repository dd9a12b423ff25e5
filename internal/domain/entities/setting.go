package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Chaves conhecidas de form_configuracoes
const (
	SettingKioskPassword       = "kiosk_password"
	SettingKioskTimeoutMinutes = "kiosk_timeout_minutes"
	SettingCompanyName         = "empresa_nome"
	SettingCompanyWhatsApp     = "empresa_whatsapp"
)

// Valores usados quando a configuração não existe
const (
	DefaultKioskPassword       = "1234"
	DefaultKioskTimeoutMinutes = 5
)

// Setting é um par chave/valor de configuração
type Setting struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;column:id"`
	Key         string    `json:"chave" gorm:"column:chave;uniqueIndex;not null"`
	Value       *string   `json:"valor" gorm:"column:valor"`
	Type        string    `json:"tipo" gorm:"column:tipo;default:texto"`
	Description *string   `json:"descricao" gorm:"column:descricao"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (Setting) TableName() string {
	return "form_configuracoes"
}

func (s *Setting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// DefaultSettings são inseridas na migração quando ausentes
func DefaultSettings() []Setting {
	str := func(v string) *string { return &v }
	return []Setting{
		{Key: SettingKioskPassword, Value: str(DefaultKioskPassword), Type: "senha", Description: str("Senha para sair do modo totem")},
		{Key: SettingKioskTimeoutMinutes, Value: str("5"), Type: "numero", Description: str("Minutos de inatividade até a tela de descanso")},
		{Key: SettingCompanyName, Value: str("Felice"), Type: "texto", Description: str("Nome exibido no totem")},
		{Key: SettingCompanyWhatsApp, Value: str(""), Type: "telefone", Description: str("WhatsApp da clínica")},
	}
}
