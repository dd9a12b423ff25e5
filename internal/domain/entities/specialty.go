package entities

// Specialty é um núcleo de atendimento da clínica (dermatologia, nutrição...)
type Specialty struct {
	Base
	Timestamps
	Name        string  `json:"nome" gorm:"column:nome;not null"`
	Slug        string  `json:"slug" gorm:"column:slug;uniqueIndex;not null"`
	Description *string `json:"descricao" gorm:"column:descricao"`
	Icon        *string `json:"icone" gorm:"column:icone"`
	Color       *string `json:"cor" gorm:"column:cor"`
	Active      bool    `json:"ativo" gorm:"column:ativo;not null"`
	Order       int     `json:"ordem" gorm:"column:ordem;default:0"`
}

func (Specialty) TableName() string {
	return "form_nucleos"
}
