package agendamento

import (
	"context"
	"time"

	domain "github.com/agendalivre/agenda-api/internal/domain/agendamento"
	"github.com/agendalivre/agenda-api/internal/models"
)

type ConcluirAgendamento struct {
	repo   domain.Repository
	notify Notifier
}

func NewConcluirAgendamento(
	repo domain.Repository,
	notify Notifier,
) *ConcluirAgendamento {
	return &ConcluirAgendamento{
		repo:   repo,
		notify: notify,
	}
}

func (uc *ConcluirAgendamento) Execute(
	ctx context.Context,
	unidadeID uint,
	agendamentoID uint,
	autor string,
	now time.Time,
) (*models.Agendamento, error) {

	ap, err := uc.repo.GetAgendamentoDaUnidade(ctx, agendamentoID, unidadeID)
	if err != nil {
		return nil, err
	}

	statusAnterior := domain.Status(ap.Status)

	if err := domain.Concluir(ap, now); err != nil {
		return nil, err
	}

	hist := &models.HistoricoAgendamento{
		AgendamentoID:  ap.ID,
		Acao:           domain.AcaoConcluido,
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
		domain.AcaoConcluido,
		canal,
		destinatario,
		nil,
	))

	return ap, nil
}
