package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base contém campos comuns para todas as entidades
type Base struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;column:id"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

// BeforeCreate gera o UUID quando o registro ainda não tem um
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Timestamps adiciona updated_at para as tabelas editáveis
type Timestamps struct {
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}
