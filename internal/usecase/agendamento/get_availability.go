package agendamento

import (
	"context"
	"time"

	domain "github.com/agendalivre/agenda-api/internal/domain/agendamento"
	"github.com/agendalivre/agenda-api/internal/httperr"
)

type GetAvailability struct {
	repo       domain.Repository
	graceHoras int
}

func NewGetAvailability(repo domain.Repository, graceHoras int) *GetAvailability {
	return &GetAvailability{repo: repo, graceHoras: graceHoras}
}

// Execute monta a grade completa do dia para o profissional, marcando cada
// horário como disponível ou não. A grade é consultiva: a reserva de fato
// só acontece na criação, que revalida o conflito dentro da transação.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
	now time.Time,
) ([]domain.TimeSlot, error) {

	servico, err := uc.repo.GetServico(ctx, in.UnidadeID, in.ServicoID)
	if err != nil {
		return nil, err
	}

	profissional, err := uc.repo.GetProfissional(ctx, in.UnidadeID, in.ProfissionalID)
	if err != nil {
		return nil, err
	}

	cfg, err := uc.repo.GetConfiguracao(ctx, in.UnidadeID)
	if err != nil {
		return nil, err
	}

	fimDoDia := time.Date(
		in.Data.Year(), in.Data.Month(), in.Data.Day(),
		23, 59, 59, 0,
		in.Data.Location(),
	)
	if fimDoDia.Before(now.Add(-time.Duration(uc.graceHoras) * time.Hour)) {
		return nil, httperr.ErrInvalidInput("data_passada")
	}

	horario, err := uc.repo.GetHorarioFuncionamento(
		ctx,
		profissional.ID,
		int(in.Data.Weekday()),
	)
	if err != nil {
		// Dia sem expediente cadastrado é grade vazia; falha de leitura
		// não pode se passar por dia fechado.
		if httperr.IsKind(err, httperr.KindNotFound) {
			return []domain.TimeSlot{}, nil
		}
		return nil, err
	}
	if !horario.Ativo || horario.Inicio == "" || horario.Fim == "" {
		return []domain.TimeSlot{}, nil
	}

	expedienteInicio := parseHM(in.Data, horario.Inicio)
	expedienteFim := parseHM(in.Data, horario.Fim)

	temPausa := horario.PausaInicio != "" && horario.PausaFim != ""
	var pausaInicio, pausaFim time.Time
	if temPausa {
		pausaInicio = parseHM(in.Data, horario.PausaInicio)
		pausaFim = parseHM(in.Data, horario.PausaFim)
	}

	ocupados, err := uc.repo.ListAgendamentosDoDia(
		ctx,
		profissional.ID,
		expedienteInicio,
		expedienteFim,
	)
	if err != nil {
		return nil, err
	}

	duracao := time.Duration(servico.DuracaoMin) * time.Minute
	minimoInicio := now.Add(time.Duration(cfg.AntecedenciaMinimaHoras) * time.Hour)

	var grade []domain.TimeSlot

	for cur := expedienteInicio; !cur.Add(duracao).After(expedienteFim); cur = cur.Add(duracao) {

		inicio := cur
		fim := cur.Add(duracao)

		disponivel := true

		if temPausa && inicio.Before(pausaFim) && fim.After(pausaInicio) {
			disponivel = false
		}

		if disponivel && sobrepoe(inicio, fim, ocupados) {
			disponivel = false
		}

		if disponivel && inicio.Before(minimoInicio) {
			disponivel = false
		}

		grade = append(grade, domain.TimeSlot{
			Inicio:         inicio,
			Fim:            fim,
			ProfissionalID: profissional.ID,
			Disponivel:     disponivel,
		})
	}

	return grade, nil
}
