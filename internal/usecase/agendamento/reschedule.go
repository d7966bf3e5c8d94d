package agendamento

import (
	"context"
	"time"

	domain "github.com/agendalivre/agenda-api/internal/domain/agendamento"
	"github.com/agendalivre/agenda-api/internal/httperr"
	"github.com/agendalivre/agenda-api/internal/models"
	"github.com/agendalivre/agenda-api/internal/timezone"
)

type ReagendarAgendamento struct {
	repo   domain.Repository
	notify Notifier
}

func NewReagendarAgendamento(
	repo domain.Repository,
	notify Notifier,
) *ReagendarAgendamento {
	return &ReagendarAgendamento{
		repo:   repo,
		notify: notify,
	}
}

// ExecutePorToken reagenda via autoatendimento. O guard completo da
// configuração é revalidado com um "now" fresco, fechando a janela entre
// a leitura do token e a escrita.
func (uc *ReagendarAgendamento) ExecutePorToken(
	ctx context.Context,
	token string,
	data string,
	hora string,
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

	if err := domain.GuardReagendar(ap, cfg, now); err != nil {
		return nil, err
	}

	return uc.reagendar(ctx, ap, cfg, data, hora, "cliente", true, now)
}

// ExecutePorID reagenda pelo balcão: status e limite de reagendamentos
// continuam valendo, mas a equipe pode mover dentro da janela de
// antecedência.
func (uc *ReagendarAgendamento) ExecutePorID(
	ctx context.Context,
	unidadeID uint,
	agendamentoID uint,
	data string,
	hora string,
	autor string,
	now time.Time,
) (*models.Agendamento, error) {

	ap, err := uc.repo.GetAgendamentoDaUnidade(ctx, agendamentoID, unidadeID)
	if err != nil {
		return nil, err
	}

	cfg, err := uc.repo.GetConfiguracao(ctx, ap.UnidadeID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanReschedule(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	if ap.ReagendamentosCount >= cfg.MaxReagendamentos {
		return nil, httperr.ErrForbidden("limite_reagendamentos")
	}

	return uc.reagendar(ctx, ap, cfg, data, hora, autor, false, now)
}

func (uc *ReagendarAgendamento) reagendar(
	ctx context.Context,
	ap *models.Agendamento,
	cfg *models.ConfiguracaoUnidade,
	data string,
	hora string,
	autor string,
	autoatendimento bool,
	now time.Time,
) (*models.Agendamento, error) {

	unidade, err := uc.repo.GetUnidadeByID(ctx, ap.UnidadeID)
	if err != nil {
		return nil, err
	}

	novoInicio, err := time.ParseInLocation(
		"2006-01-02 15:04",
		data+" "+hora,
		timezone.LocationDaUnidade(unidade),
	)
	if err != nil {
		return nil, httperr.ErrInvalidInput("data_invalida")
	}

	if novoInicio.Before(now) {
		return nil, httperr.ErrInvalidInput("data_passada")
	}

	if autoatendimento {
		minimo := now.Add(time.Duration(cfg.AntecedenciaMinimaHoras) * time.Hour)
		if novoInicio.Before(minimo) {
			return nil, httperr.ErrForbidden("antecedencia_minima")
		}
	}

	novoFim := novoInicio.Add(time.Duration(ap.DuracaoMin) * time.Minute)

	horario, err := uc.repo.GetHorarioFuncionamento(
		ctx,
		ap.ProfissionalID,
		int(novoInicio.Weekday()),
	)
	if err != nil {
		if !httperr.IsKind(err, httperr.KindNotFound) {
			return nil, err
		}
		horario = nil
	}
	if !dentroDoExpediente(horario, novoInicio, novoFim) {
		return nil, httperr.ErrInvalidInput("fora_do_horario")
	}

	statusAnterior := domain.Status(ap.Status)
	inicioAnterior := ap.Inicio

	hist := &models.HistoricoAgendamento{
		AgendamentoID:  ap.ID,
		Acao:           domain.AcaoReagendado,
		InicioAnterior: &inicioAnterior,
		InicioNovo:     &novoInicio,
		StatusAnterior: string(statusAnterior),
		StatusNovo:     string(domain.StatusPendente),
		Autor:          autor,
	}

	if err := uc.repo.ReagendarAgendamento(ctx, ap, statusAnterior, novoInicio, hist); err != nil {
		return nil, err
	}

	canal, destinatario := notifyCanal(ap)
	uc.notify.Dispatch(notifyEvento(
		ap.ID,
		domain.AcaoReagendado,
		canal,
		destinatario,
		map[string]any{
			"inicio_anterior": inicioAnterior,
			"inicio_novo":     novoInicio,
		},
	))

	return ap, nil
}
