package models

import "time"

// NotificacaoLog registra cada tentativa de envio. O reenvio é
// responsabilidade do worker externo que consome a fila.
type NotificacaoLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AgendamentoID uint `gorm:"index;not null" json:"agendamento_id"`

	Canal        string `gorm:"size:20;not null" json:"canal"`
	Destinatario string `gorm:"size:100" json:"destinatario"`

	Status     string `gorm:"size:20;default:'pendente'" json:"status"`
	Tentativas int    `gorm:"default:1" json:"tentativas"`

	RespostaProvedor string `gorm:"type:text" json:"resposta_provedor"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
