package agendamento

import (
	"github.com/agendalivre/agenda-api/internal/models"
	"github.com/agendalivre/agenda-api/internal/notify"
)

func notifyCanal(ap *models.Agendamento) (canal, destinatario string) {
	telefone := ap.ClienteTelefone
	email := ap.ClienteEmail

	if telefone == "" && email == "" && ap.Cliente.ID != 0 {
		telefone = ap.Cliente.Telefone
		email = ap.Cliente.Email
	}

	return notify.CanalPara(telefone, email)
}

func notifyEvento(
	agendamentoID uint,
	tipo string,
	canal string,
	destinatario string,
	contexto map[string]any,
) notify.Evento {
	return notify.Evento{
		AgendamentoID: agendamentoID,
		Tipo:          tipo,
		Canal:         canal,
		Destinatario:  destinatario,
		Contexto:      contexto,
	}
}
