package agendamento

import (
	"context"
	"time"

	domain "github.com/agendalivre/agenda-api/internal/domain/agendamento"
	"github.com/agendalivre/agenda-api/internal/models"
)

type CancelarAgendamento struct {
	repo   domain.Repository
	notify Notifier
}

func NewCancelarAgendamento(
	repo domain.Repository,
	notify Notifier,
) *CancelarAgendamento {
	return &CancelarAgendamento{
		repo:   repo,
		notify: notify,
	}
}

// ExecutePorToken cancela via autoatendimento. A regra completa da
// configuração (janela + permite_cancelamento) é revalidada aqui com um
// "now" fresco; a flag calculada na resolução do token é só consultiva.
func (uc *CancelarAgendamento) ExecutePorToken(
	ctx context.Context,
	token string,
	motivo string,
	now time.Time,
) (*models.Agendamento, error) {

	ap, err := uc.repo.GetAgendamentoByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	cfg, err := uc.repo.GetConfiguracao(ctx, ap.UnidadeID)
	if err != nil {
		return nil, err
	}

	if err := domain.GuardCancelar(ap, cfg, now); err != nil {
		return nil, err
	}

	return uc.cancelar(ctx, ap, motivo, "cliente", now)
}

// ExecutePorID cancela pelo balcão. A janela de cancelamento não se
// aplica à equipe; só o guard de status vale.
func (uc *CancelarAgendamento) ExecutePorID(
	ctx context.Context,
	unidadeID uint,
	agendamentoID uint,
	motivo string,
	autor string,
	now time.Time,
) (*models.Agendamento, error) {

	ap, err := uc.repo.GetAgendamentoDaUnidade(ctx, agendamentoID, unidadeID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanCancel(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	return uc.cancelar(ctx, ap, motivo, autor, now)
}

func (uc *CancelarAgendamento) cancelar(
	ctx context.Context,
	ap *models.Agendamento,
	motivo string,
	autor string,
	now time.Time,
) (*models.Agendamento, error) {

	statusAnterior := domain.Status(ap.Status)

	if err := domain.Cancelar(ap, now); err != nil {
		return nil, err
	}

	hist := &models.HistoricoAgendamento{
		AgendamentoID:  ap.ID,
		Acao:           domain.AcaoCancelado,
		StatusAnterior: string(statusAnterior),
		StatusNovo:     ap.Status,
		Motivo:         motivo,
		Autor:          autor,
	}

	if err := uc.repo.UpdateStatusAgendamento(ctx, ap, statusAnterior, hist); err != nil {
		return nil, err
	}

	canal, destinatario := notifyCanal(ap)
	uc.notify.Dispatch(notifyEvento(
		ap.ID,
		domain.AcaoCancelado,
		canal,
		destinatario,
		map[string]any{"motivo": motivo},
	))

	return ap, nil
}
