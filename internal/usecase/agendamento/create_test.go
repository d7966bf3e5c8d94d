package agendamento

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/agendalivre/agenda-api/internal/domain/agendamento"
	"github.com/agendalivre/agenda-api/internal/httperr"
)

var nowTeste = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func inputPublico() CreateAgendamentoInput {
	return CreateAgendamentoInput{
		UnidadeID:      1,
		ProfissionalID: 1,
		ServicoID:      1,

		ClienteNome:     "João Silva",
		ClienteTelefone: "11999990000",
		ClienteEmail:    "joao@example.com",

		Data: "2026-03-12",
		Hora: "10:00",

		Origem: domain.OrigemPublico,
		Autor:  "cliente",
	}
}

func TestCreateAgendamento(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotify{}
	uc := NewCreateAgendamento(repo, notifier)

	ap, err := uc.Execute(context.Background(), inputPublico(), nowTeste)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPendente), ap.Status)
	assert.NotEmpty(t, ap.TokenAcesso)
	assert.Equal(t, domain.OrigemPublico, ap.Origem)

	// Duração e preço congelados do serviço no momento da criação.
	assert.Equal(t, 30, ap.DuracaoMin)
	assert.Equal(t, 50.0, ap.Preco)

	// Cliente criado pelo telefone informado.
	require.NotNil(t, ap.ClienteID)
	require.Len(t, repo.clientes, 1)
	assert.Equal(t, "11999990000", repo.clientes[0].Telefone)

	// Histórico gravado junto com a criação.
	require.Len(t, repo.historicos, 1)
	hist := repo.historicos[0]
	assert.Equal(t, domain.AcaoCriado, hist.Acao)
	assert.Equal(t, ap.ID, hist.AgendamentoID)

	assert.Equal(t, []string{domain.AcaoCriado}, notifier.tipos())
}

func TestCreateAgendamentoTokensDistintos(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAgendamento(repo, &fakeNotify{})

	primeiro, err := uc.Execute(context.Background(), inputPublico(), nowTeste)
	require.NoError(t, err)

	segundoInput := inputPublico()
	segundoInput.Hora = "14:00"
	segundo, err := uc.Execute(context.Background(), segundoInput, nowTeste)
	require.NoError(t, err)

	assert.NotEqual(t, primeiro.TokenAcesso, segundo.TokenAcesso)
}

func TestCreateAgendamentoConflitoDeHorario(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotify{}
	uc := NewCreateAgendamento(repo, notifier)

	_, err := uc.Execute(context.Background(), inputPublico(), nowTeste)
	require.NoError(t, err)

	// Mesmo horário, outro cliente: o segundo perde.
	in := inputPublico()
	in.ClienteNome = "Pedro"
	in.ClienteTelefone = "11888880000"

	_, err = uc.Execute(context.Background(), in, nowTeste)
	assert.True(t, httperr.IsBusiness(err, "conflito_de_horario"))

	// Sobreposição parcial também conta.
	in.Hora = "10:15"
	_, err = uc.Execute(context.Background(), in, nowTeste)
	assert.True(t, httperr.IsBusiness(err, "conflito_de_horario"))

	// Encostado no fim do anterior não conflita.
	in.Hora = "10:30"
	_, err = uc.Execute(context.Background(), in, nowTeste)
	assert.NoError(t, err)

	assert.Equal(t, []string{domain.AcaoCriado, domain.AcaoCriado}, notifier.tipos())
}

func TestCreateAgendamentoAntecedenciaMinima(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAgendamento(repo, &fakeNotify{})

	// 2h à frente: dentro da janela de 24h do fluxo público.
	in := inputPublico()
	in.Data = "2026-03-10"
	in.Hora = "11:00"

	_, err := uc.Execute(context.Background(), in, nowTeste)
	assert.True(t, httperr.IsBusiness(err, "antecedencia_minima"))

	// O balcão pode encaixar dentro da janela.
	in.Origem = domain.OrigemAdmin
	in.Autor = "carlos"

	ap, err := uc.Execute(context.Background(), in, nowTeste)
	require.NoError(t, err)
	assert.Equal(t, domain.OrigemAdmin, ap.Origem)
}

func TestCreateAgendamentoOnlineDesabilitado(t *testing.T) {
	repo := newFakeRepo()
	repo.cfg.AgendamentoOnline = false
	uc := NewCreateAgendamento(repo, &fakeNotify{})

	_, err := uc.Execute(context.Background(), inputPublico(), nowTeste)
	assert.True(t, httperr.IsBusiness(err, "agendamento_online_desabilitado"))

	// A trava vale só para o público.
	in := inputPublico()
	in.Origem = domain.OrigemAdmin

	_, err = uc.Execute(context.Background(), in, nowTeste)
	assert.NoError(t, err)
}

func TestCreateAgendamentoForaDoExpediente(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAgendamento(repo, &fakeNotify{})

	casos := []string{
		"08:00", // antes da abertura
		"17:45", // termina depois do fechamento
		"12:00", // dentro da pausa
		"11:45", // invade a pausa
	}

	for _, hora := range casos {
		in := inputPublico()
		in.Hora = hora

		_, err := uc.Execute(context.Background(), in, nowTeste)
		assert.True(t, httperr.IsBusiness(err, "fora_do_horario"), "hora %s", hora)
	}
}

func TestCreateAgendamentoDataInvalida(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAgendamento(repo, &fakeNotify{})

	in := inputPublico()
	in.Data = "12/03/2026"

	_, err := uc.Execute(context.Background(), in, nowTeste)
	assert.True(t, httperr.IsBusiness(err, "data_invalida"))

	in = inputPublico()
	in.Data = "2026-03-01"

	_, err = uc.Execute(context.Background(), in, nowTeste)
	assert.True(t, httperr.IsBusiness(err, "data_passada"))
}

func TestCreateAgendamentoPropagaFalhaDeLeitura(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAgendamento(repo, &fakeNotify{})

	// Falha lendo o expediente não é o mesmo que fora do horário.
	repo.horarioErr = httperr.ErrDependency("banco_indisponivel")

	_, err := uc.Execute(context.Background(), inputPublico(), nowTeste)
	assert.True(t, httperr.IsBusiness(err, "banco_indisponivel"))

	// Falha lendo/criando o cliente também sobe como veio.
	repo.horarioErr = nil
	repo.clienteErr = httperr.ErrDependency("banco_indisponivel")

	_, err = uc.Execute(context.Background(), inputPublico(), nowTeste)
	assert.True(t, httperr.IsBusiness(err, "banco_indisponivel"))
	assert.Empty(t, repo.historicos)
}

func TestCreateAgendamentoSemTelefoneNaoCriaCliente(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAgendamento(repo, &fakeNotify{})

	in := inputPublico()
	in.ClienteTelefone = ""

	ap, err := uc.Execute(context.Background(), in, nowTeste)
	require.NoError(t, err)

	assert.Nil(t, ap.ClienteID)
	assert.Empty(t, repo.clientes)
	assert.Equal(t, "João Silva", ap.ClienteNome)
}
