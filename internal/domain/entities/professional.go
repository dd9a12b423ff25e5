package entities

import (
	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Procedure é um procedimento oferecido por um profissional
type Procedure struct {
	Name        string `json:"nome"`
	Description string `json:"descricao,omitempty"`
}

// Professional aparece na vitrine do totem
type Professional struct {
	Base
	Timestamps
	Name        string         `json:"nome" gorm:"column:nome;not null"`
	Title       *string        `json:"especialidade" gorm:"column:especialidade"`
	CRM         *string        `json:"crm" gorm:"column:crm"`
	Description *string        `json:"descricao" gorm:"column:descricao"`
	PhotoURL    *string        `json:"foto_url" gorm:"column:foto_url"`
	SpecialtyID *uuid.UUID     `json:"nucleo_id" gorm:"type:uuid;column:nucleo_id;index"`
	Specialty   *Specialty     `json:"nucleo,omitempty" gorm:"foreignKey:SpecialtyID;constraint:OnDelete:SET NULL"`
	Procedures  datatypes.JSON `json:"procedimentos" gorm:"column:procedimentos;type:jsonb;default:'[]'"`
	Instagram   *string        `json:"instagram" gorm:"column:instagram"`
	Active      bool           `json:"ativo" gorm:"column:ativo;not null"`
	Order       int            `json:"ordem" gorm:"column:ordem;default:0"`
}

func (Professional) TableName() string {
	return "form_profissionais"
}

// ProcedureList decodifica a coluna jsonb de procedimentos
func (p Professional) ProcedureList() ([]Procedure, error) {
	if len(p.Procedures) == 0 {
		return []Procedure{}, nil
	}
	var procedures []Procedure
	if err := sonic.Unmarshal(p.Procedures, &procedures); err != nil {
		return nil, err
	}
	return procedures, nil
}

// SetProcedures grava a lista descartando itens sem nome
func (p *Professional) SetProcedures(procedures []Procedure) error {
	clean := make([]Procedure, 0, len(procedures))
	for _, proc := range procedures {
		if proc.Name == "" {
			continue
		}
		clean = append(clean, proc)
	}
	raw, err := sonic.Marshal(clean)
	if err != nil {
		return err
	}
	p.Procedures = datatypes.JSON(raw)
	return nil
}
