package models

import "time"

type Servico struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	UnidadeID uint `json:"unidade_id"`

	Nome      string  `gorm:"size:100;not null" json:"nome"`
	Descricao string  `gorm:"size:255" json:"descricao"`
	DuracaoMin int    `json:"duracao_min"`
	Preco     float64 `json:"preco"`
	Ativo     bool    `gorm:"default:true" json:"ativo"`

	Categoria string `gorm:"size:50" json:"categoria"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
