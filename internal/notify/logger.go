package notify

import (
	"gorm.io/gorm"

	"github.com/agendalivre/agenda-api/internal/models"
)

const (
	StatusEnviado  = "enviado"
	StatusFalha    = "falha"
	StatusPendente = "pendente"
)

// Logger registra uma linha por tentativa de envio. A contagem de
// tentativas alimenta o reenvio, que acontece fora deste serviço.
type Logger struct {
	db *gorm.DB
}

func NewLogger(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ev Evento, status, resposta string) error {
	registro := models.NotificacaoLog{
		AgendamentoID:    ev.AgendamentoID,
		Canal:            ev.Canal,
		Destinatario:     ev.Destinatario,
		Status:           status,
		Tentativas:       1,
		RespostaProvedor: resposta,
	}

	return l.db.Create(&registro).Error
}
