package agendamento

import (
	"time"

	"github.com/agendalivre/agenda-api/internal/models"
	"github.com/agendalivre/agenda-api/internal/notify"
)

// Notifier é o contrato mínimo do despachante de notificações.
type Notifier interface {
	Dispatch(ev notify.Evento)
}

// parseHM projeta um "HH:mm" no dia e timezone de referência.
func parseHM(ref time.Time, hm string) time.Time {
	t, _ := time.Parse("15:04", hm)
	return time.Date(
		ref.Year(), ref.Month(), ref.Day(),
		t.Hour(), t.Minute(), 0, 0,
		ref.Location(),
	)
}

// dentroDoExpediente valida se [inicio, fim) cabe no expediente do dia,
// respeitando a pausa.
func dentroDoExpediente(
	h *models.HorarioFuncionamento,
	inicio time.Time,
	fim time.Time,
) bool {

	if h == nil || !h.Ativo || h.Inicio == "" || h.Fim == "" {
		return false
	}

	expedienteInicio := parseHM(inicio, h.Inicio)
	expedienteFim := parseHM(inicio, h.Fim)

	if inicio.Before(expedienteInicio) || fim.After(expedienteFim) {
		return false
	}

	if h.PausaInicio != "" && h.PausaFim != "" {
		pausaInicio := parseHM(inicio, h.PausaInicio)
		pausaFim := parseHM(inicio, h.PausaFim)

		if inicio.Before(pausaFim) && fim.After(pausaInicio) {
			return false
		}
	}

	return true
}

// sobrepoe verifica a sobreposição binária com algum agendamento
// não cancelado.
func sobrepoe(inicio, fim time.Time, aps []models.Agendamento) bool {
	for _, ap := range aps {
		if inicio.Before(ap.Fim()) && fim.After(ap.Inicio) {
			return true
		}
	}
	return false
}
