package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// StaffRole é o papel do colaborador no painel
type StaffRole string

const (
	RoleAdmin     StaffRole = "admin"
	RoleManager   StaffRole = "gerente"
	RoleAttendant StaffRole = "atendente"
)

func (r StaffRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleAttendant:
		return true
	default:
		return false
	}
}

// Staff é o perfil de um usuário do painel. O ID é o mesmo do usuário no Supabase Auth.
type Staff struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;column:id"`
	Name        string     `json:"nome" gorm:"column:nome;not null"`
	Email       string     `json:"email" gorm:"column:email;not null"`
	Phone       *string    `json:"telefone" gorm:"column:telefone"`
	SpecialtyID *uuid.UUID `json:"nucleo_id" gorm:"type:uuid;column:nucleo_id"`
	Specialty   *Specialty `json:"nucleo,omitempty" gorm:"foreignKey:SpecialtyID;constraint:OnDelete:SET NULL"`
	Role        StaffRole  `json:"role" gorm:"column:role;not null;default:atendente"`
	AvatarURL   *string    `json:"avatar_url" gorm:"column:avatar_url"`
	Active      bool       `json:"ativo" gorm:"column:ativo;not null"`
	CreatedAt   time.Time  `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`

	// Missing marca perfis montados em memória para usuários sem linha em form_equipe
	Missing bool `json:"_missing,omitempty" gorm:"-"`
}

func (Staff) TableName() string {
	return "form_equipe"
}

// DefaultStaffProfile monta o perfil padrão de um usuário sem cadastro na equipe
func DefaultStaffProfile(id uuid.UUID, email string) Staff {
	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}
	return Staff{
		ID:      id,
		Name:    name,
		Email:   email,
		Role:    RoleAttendant,
		Active:  true,
		Missing: true,
	}
}
