package models

import "time"

// HistoricoAgendamento é um registro de auditoria append-only.
// Nunca é atualizado depois de criado.
type HistoricoAgendamento struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AgendamentoID uint `gorm:"index;not null" json:"agendamento_id"`

	Acao string `gorm:"size:20;not null" json:"acao"`

	InicioAnterior *time.Time `json:"inicio_anterior"`
	InicioNovo     *time.Time `json:"inicio_novo"`

	StatusAnterior string `gorm:"size:20" json:"status_anterior"`
	StatusNovo     string `gorm:"size:20" json:"status_novo"`

	Motivo string `gorm:"size:255" json:"motivo"`
	Autor  string `gorm:"size:100" json:"autor"`

	CreatedAt time.Time `json:"created_at"`
}
