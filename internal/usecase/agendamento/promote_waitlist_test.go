package agendamento

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/agendalivre/agenda-api/internal/domain/agendamento"
	"github.com/agendalivre/agenda-api/internal/httperr"
	"github.com/agendalivre/agenda-api/internal/models"
)

func seedListaEspera(repo *fakeRepo) *models.ListaEspera {
	profissionalID := uint(1)
	entrada := &models.ListaEspera{
		ID:              1,
		UnidadeID:       1,
		ServicoID:       1,
		ProfissionalID:  &profissionalID,
		ClienteNome:     "Maria Souza",
		ClienteTelefone: "11977770000",
		DataPreferida:   nowTeste.Add(48 * time.Hour),
		Prioridade:      "alta",
		Status:          "aguardando",
	}
	repo.listaEspera[entrada.ID] = entrada
	return entrada
}

func TestPromoverListaEspera(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotify{}

	criar := NewCreateAgendamento(repo, notifier)
	uc := NewPromoverListaEspera(repo, criar)

	entrada := seedListaEspera(repo)

	ap, err := uc.Execute(context.Background(), 1, entrada.ID, PromocaoInput{
		Data:  "2026-03-12",
		Hora:  "10:00",
		Autor: "carlos",
	}, nowTeste)
	require.NoError(t, err)

	// A promoção passa pelo mesmo fluxo de criação do balcão.
	assert.Equal(t, string(domain.StatusPendente), ap.Status)
	assert.Equal(t, domain.OrigemAdmin, ap.Origem)
	assert.Equal(t, "Maria Souza", ap.ClienteNome)
	assert.NotEmpty(t, ap.TokenAcesso)

	assert.Equal(t, "agendado", entrada.Status)
	require.NotNil(t, entrada.AgendamentoID)
	assert.Equal(t, ap.ID, *entrada.AgendamentoID)

	assert.Equal(t, []string{domain.AcaoCriado}, notifier.tipos())
}

func TestPromoverListaEsperaHorarioTomado(t *testing.T) {
	repo := newFakeRepo()
	criar := NewCreateAgendamento(repo, &fakeNotify{})
	uc := NewPromoverListaEspera(repo, criar)

	entrada := seedListaEspera(repo)
	repo.seed(time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC), domain.StatusConfirmado)

	_, err := uc.Execute(context.Background(), 1, entrada.ID, PromocaoInput{
		Data:  "2026-03-12",
		Hora:  "10:00",
		Autor: "carlos",
	}, nowTeste)
	assert.True(t, httperr.IsBusiness(err, "conflito_de_horario"))

	// A entrada fica intocada para o próximo candidato.
	assert.Equal(t, "aguardando", entrada.Status)
	assert.Nil(t, entrada.AgendamentoID)
}

func TestPromoverListaEsperaJaProcessada(t *testing.T) {
	repo := newFakeRepo()
	criar := NewCreateAgendamento(repo, &fakeNotify{})
	uc := NewPromoverListaEspera(repo, criar)

	entrada := seedListaEspera(repo)
	entrada.Status = "agendado"

	_, err := uc.Execute(context.Background(), 1, entrada.ID, PromocaoInput{
		Data:  "2026-03-12",
		Hora:  "10:00",
		Autor: "carlos",
	}, nowTeste)
	assert.True(t, httperr.IsBusiness(err, "lista_espera_ja_processada"))
}

func TestPromoverListaEsperaComProfissionalExplicito(t *testing.T) {
	repo := newFakeRepo()
	criar := NewCreateAgendamento(repo, &fakeNotify{})
	uc := NewPromoverListaEspera(repo, criar)

	entrada := seedListaEspera(repo)
	entrada.ProfissionalID = nil

	ap, err := uc.Execute(context.Background(), 1, entrada.ID, PromocaoInput{
		ProfissionalID: 1,
		Data:           "2026-03-12",
		Hora:           "14:00",
		Autor:          "carlos",
	}, nowTeste)
	require.NoError(t, err)
	assert.Equal(t, uint(1), ap.ProfissionalID)
}
