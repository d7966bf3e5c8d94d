package agendamento

import (
	"context"
	"time"

	domain "github.com/agendalivre/agenda-api/internal/domain/agendamento"
	"github.com/agendalivre/agenda-api/internal/httperr"
	"github.com/agendalivre/agenda-api/internal/models"
)

type PromocaoInput struct {
	ProfissionalID uint
	Data           string
	Hora           string
	Autor          string
}

// PromoverListaEspera converte uma entrada aguardando num agendamento
// confirmável, pelo mesmo caminho de criação do fluxo normal. Se o
// horário já foi tomado, a entrada fica intocada e o chamador decide o
// próximo candidato; não há retry automático aqui.
type PromoverListaEspera struct {
	repo  domain.Repository
	criar *CreateAgendamento
}

func NewPromoverListaEspera(
	repo domain.Repository,
	criar *CreateAgendamento,
) *PromoverListaEspera {
	return &PromoverListaEspera{
		repo:  repo,
		criar: criar,
	}
}

func (uc *PromoverListaEspera) Execute(
	ctx context.Context,
	unidadeID uint,
	listaEsperaID uint,
	in PromocaoInput,
	now time.Time,
) (*models.Agendamento, error) {

	entrada, err := uc.repo.GetListaEspera(ctx, listaEsperaID, unidadeID)
	if err != nil {
		return nil, err
	}

	if entrada.Status != "aguardando" {
		return nil, httperr.ErrConflict("lista_espera_ja_processada")
	}

	profissionalID := in.ProfissionalID
	if profissionalID == 0 && entrada.ProfissionalID != nil {
		profissionalID = *entrada.ProfissionalID
	}

	ap, err := uc.criar.Execute(ctx, CreateAgendamentoInput{
		UnidadeID:      unidadeID,
		ProfissionalID: profissionalID,
		ServicoID:      entrada.ServicoID,

		ClienteNome:     entrada.ClienteNome,
		ClienteTelefone: entrada.ClienteTelefone,
		ClienteEmail:    entrada.ClienteEmail,

		Data: in.Data,
		Hora: in.Hora,

		Origem: domain.OrigemAdmin,
		Autor:  in.Autor,
	}, now)
	if err != nil {
		// Horário perdido: a entrada permanece como estava.
		return nil, err
	}

	if err := uc.repo.MarcarListaEsperaAgendada(ctx, entrada, ap.ID); err != nil {
		return nil, err
	}

	return ap, nil
}
