package models

import "time"

type ListaEspera struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	UnidadeID uint `json:"unidade_id"`

	ServicoID uint    `json:"servico_id"`
	Servico   Servico `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"servico"`

	ProfissionalID *uint `json:"profissional_id"`

	ClienteNome     string `gorm:"size:100;not null" json:"cliente_nome"`
	ClienteTelefone string `gorm:"size:20;not null" json:"cliente_telefone"`
	ClienteEmail    string `gorm:"size:100" json:"cliente_email"`

	DataPreferida time.Time `json:"data_preferida"`

	Prioridade string `gorm:"size:10;default:'media'" json:"prioridade"`
	Status     string `gorm:"size:20;default:'aguardando'" json:"status"`

	AgendamentoID *uint `json:"agendamento_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
