package agendamento

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/agendalivre/agenda-api/internal/domain/agendamento"
	"github.com/agendalivre/agenda-api/internal/httperr"
	"github.com/agendalivre/agenda-api/internal/models"
	"github.com/agendalivre/agenda-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAgendamentoInput struct {
	UnidadeID      uint
	ProfissionalID uint
	ServicoID      uint

	ClienteNome     string
	ClienteTelefone string
	ClienteEmail    string

	Data        string
	Hora        string
	Observacoes string

	Origem string
	Autor  string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAgendamento struct {
	repo   domain.Repository
	notify Notifier
}

func NewCreateAgendamento(
	repo domain.Repository,
	notify Notifier,
) *CreateAgendamento {
	return &CreateAgendamento{
		repo:   repo,
		notify: notify,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAgendamento) Execute(
	ctx context.Context,
	in CreateAgendamentoInput,
	now time.Time,
) (*models.Agendamento, error) {

	unidade, err := uc.repo.GetUnidadeByID(ctx, in.UnidadeID)
	if err != nil {
		return nil, err
	}

	cfg, err := uc.repo.GetConfiguracao(ctx, in.UnidadeID)
	if err != nil {
		return nil, err
	}

	if in.Origem == domain.OrigemPublico && !cfg.AgendamentoOnline {
		return nil, httperr.ErrForbidden("agendamento_online_desabilitado")
	}

	profissional, err := uc.repo.GetProfissional(ctx, in.UnidadeID, in.ProfissionalID)
	if err != nil {
		return nil, err
	}

	servico, err := uc.repo.GetServico(ctx, in.UnidadeID, in.ServicoID)
	if err != nil {
		return nil, err
	}

	inicio, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Data+" "+in.Hora,
		timezone.LocationDaUnidade(unidade),
	)
	if err != nil {
		return nil, httperr.ErrInvalidInput("data_invalida")
	}

	if inicio.Before(now) {
		return nil, httperr.ErrInvalidInput("data_passada")
	}

	// Antecedência mínima só vale para o fluxo público; o balcão pode
	// encaixar dentro da janela.
	if in.Origem == domain.OrigemPublico {
		minimo := now.Add(time.Duration(cfg.AntecedenciaMinimaHoras) * time.Hour)
		if inicio.Before(minimo) {
			return nil, httperr.ErrForbidden("antecedencia_minima")
		}
	}

	fim := inicio.Add(time.Duration(servico.DuracaoMin) * time.Minute)

	horario, err := uc.repo.GetHorarioFuncionamento(
		ctx,
		profissional.ID,
		int(inicio.Weekday()),
	)
	if err != nil {
		if !httperr.IsKind(err, httperr.KindNotFound) {
			return nil, err
		}
		horario = nil
	}
	if !dentroDoExpediente(horario, inicio, fim) {
		return nil, httperr.ErrInvalidInput("fora_do_horario")
	}

	var clienteID *uint
	if in.ClienteTelefone != "" {
		cliente, err := uc.repo.GetOrCreateCliente(
			ctx,
			in.UnidadeID,
			in.ClienteNome,
			in.ClienteTelefone,
			in.ClienteEmail,
		)
		if err != nil {
			return nil, err
		}
		clienteID = &cliente.ID
	}

	ap := &models.Agendamento{
		UnidadeID:      in.UnidadeID,
		ProfissionalID: profissional.ID,
		ClienteID:      clienteID,

		ClienteNome:     in.ClienteNome,
		ClienteTelefone: in.ClienteTelefone,
		ClienteEmail:    in.ClienteEmail,

		ServicoID: servico.ID,

		Inicio: inicio,

		// Duração e preço congelados no momento da criação.
		DuracaoMin: servico.DuracaoMin,
		Preco:      servico.Preco,

		Status:      string(domain.InitialStatus()),
		Observacoes: in.Observacoes,
		TokenAcesso: uuid.NewString(),
		Origem:      in.Origem,
	}

	hist := &models.HistoricoAgendamento{
		Acao:       domain.AcaoCriado,
		InicioNovo: &inicio,
		StatusNovo: ap.Status,
		Autor:      in.Autor,
	}

	if err := uc.repo.CreateAgendamento(ctx, ap, hist); err != nil {
		return nil, err
	}

	uc.dispatchCriado(ap, servico)

	return ap, nil
}

func (uc *CreateAgendamento) dispatchCriado(ap *models.Agendamento, servico *models.Servico) {
	canal, destinatario := notifyCanal(ap)

	uc.notify.Dispatch(notifyEvento(
		ap.ID,
		domain.AcaoCriado,
		canal,
		destinatario,
		map[string]any{
			"servico": servico.Nome,
			"inicio":  ap.Inicio,
			"token":   ap.TokenAcesso,
		},
	))
}
