package agendamento

import (
	"time"

	"github.com/agendalivre/agenda-api/internal/httperr"
	"github.com/agendalivre/agenda-api/internal/models"
)

// Permissoes são flags consultivas calculadas a cada leitura do token.
// Nunca são persistidas nem cacheadas: "agora" é entrada do cálculo.
type Permissoes struct {
	PodeReagendar bool `json:"pode_reagendar"`
	PodeCancelar  bool `json:"pode_cancelar"`
}

// ComputePermissoes é função pura de (agendamento, configuração, now).
// Recalcular com as mesmas entradas produz o mesmo resultado.
func ComputePermissoes(
	ap *models.Agendamento,
	cfg *models.ConfiguracaoUnidade,
	now time.Time,
) Permissoes {
	return Permissoes{
		PodeReagendar: GuardReagendar(ap, cfg, now) == nil,
		PodeCancelar:  GuardCancelar(ap, cfg, now) == nil,
	}
}

// GuardReagendar valida a regra de reagendamento no autoatendimento.
// O erro identifica qual regra bloqueou a ação.
func GuardReagendar(
	ap *models.Agendamento,
	cfg *models.ConfiguracaoUnidade,
	now time.Time,
) error {
	if err := CanReschedule(Status(ap.Status)); err != nil {
		return err
	}

	if horasRestantes(ap, now) < float64(cfg.AntecedenciaMinimaHoras) {
		return httperr.ErrForbidden("fora_do_prazo_reagendamento")
	}

	if ap.ReagendamentosCount >= cfg.MaxReagendamentos {
		return httperr.ErrForbidden("limite_reagendamentos")
	}

	return nil
}

// GuardCancelar valida a regra de cancelamento no autoatendimento.
func GuardCancelar(
	ap *models.Agendamento,
	cfg *models.ConfiguracaoUnidade,
	now time.Time,
) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	if !cfg.PermiteCancelamento {
		return httperr.ErrForbidden("cancelamento_desabilitado")
	}

	if horasRestantes(ap, now) < float64(cfg.HorarioLimiteCancelamentoHoras) {
		return httperr.ErrForbidden("fora_do_prazo_cancelamento")
	}

	return nil
}

func horasRestantes(ap *models.Agendamento, now time.Time) float64 {
	return ap.Inicio.Sub(now).Hours()
}
