package models

import "time"

type Profissional struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	UnidadeID uint    `json:"unidade_id"`
	Unidade   Unidade `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"unidade"`

	Nome      string `gorm:"size:100;not null" json:"nome"`
	Email     string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	SenhaHash string `gorm:"size:255;not null" json:"-"`
	Telefone  string `gorm:"size:20" json:"telefone"`
	Papel     string `gorm:"size:20;default:'dono'" json:"papel"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
