package agendamento

import (
	"context"

	domain "github.com/agendalivre/agenda-api/internal/domain/agendamento"
	"github.com/agendalivre/agenda-api/internal/models"
)

type ConfirmarAgendamento struct {
	repo   domain.Repository
	notify Notifier
}

func NewConfirmarAgendamento(
	repo domain.Repository,
	notify Notifier,
) *ConfirmarAgendamento {
	return &ConfirmarAgendamento{
		repo:   repo,
		notify: notify,
	}
}

func (uc *ConfirmarAgendamento) Execute(
	ctx context.Context,
	unidadeID uint,
	agendamentoID uint,
	autor string,
) (*models.Agendamento, error) {

	ap, err := uc.repo.GetAgendamentoDaUnidade(ctx, agendamentoID, unidadeID)
	if err != nil {
		return nil, err
	}

	statusAnterior := domain.Status(ap.Status)

	if err := domain.Confirmar(ap); err != nil {
		return nil, err
	}

	hist := &models.HistoricoAgendamento{
		AgendamentoID:  ap.ID,
		Acao:           domain.AcaoConfirmado,
		StatusAnterior: string(statusAnterior),
		StatusNovo:     ap.Status,
		Autor:          autor,
	}

	if err := uc.repo.UpdateStatusAgendamento(ctx, ap, statusAnterior, hist); err != nil {
		return nil, err
	}

	canal, destinatario := notifyCanal(ap)
	uc.notify.Dispatch(notifyEvento(
		ap.ID,
		domain.AcaoConfirmado,
		canal,
		destinatario,
		map[string]any{"inicio": ap.Inicio},
	))

	return ap, nil
}
