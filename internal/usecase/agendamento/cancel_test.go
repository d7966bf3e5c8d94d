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

func TestCancelarPorToken(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotify{}
	uc := NewCancelarAgendamento(repo, notifier)

	seed := repo.seed(nowTeste.Add(36*time.Hour), domain.StatusConfirmado)

	ap, err := uc.ExecutePorToken(context.Background(), seed.TokenAcesso, "imprevisto", nowTeste)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelado), ap.Status)
	require.NotNil(t, ap.CanceladoEm)
	assert.Equal(t, nowTeste, *ap.CanceladoEm)

	// O armazenamento acompanha.
	assert.Equal(t, string(domain.StatusCancelado), repo.agendamentos[seed.ID].Status)

	require.Len(t, repo.historicos, 1)
	hist := repo.historicos[0]
	assert.Equal(t, domain.AcaoCancelado, hist.Acao)
	assert.Equal(t, string(domain.StatusConfirmado), hist.StatusAnterior)
	assert.Equal(t, "imprevisto", hist.Motivo)
	assert.Equal(t, "cliente", hist.Autor)

	assert.Equal(t, []string{domain.AcaoCancelado}, notifier.tipos())
}

func TestCancelarPorTokenForaDoPrazo(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCancelarAgendamento(repo, &fakeNotify{})

	// 1h de antecedência, limite é 2h.
	seed := repo.seed(nowTeste.Add(1*time.Hour), domain.StatusConfirmado)

	_, err := uc.ExecutePorToken(context.Background(), seed.TokenAcesso, "", nowTeste)
	assert.True(t, httperr.IsBusiness(err, "fora_do_prazo_cancelamento"))

	// Nada mudou nem foi registrado.
	assert.Equal(t, string(domain.StatusConfirmado), repo.agendamentos[seed.ID].Status)
	assert.Empty(t, repo.historicos)
}

func TestCancelarPorTokenDesabilitado(t *testing.T) {
	repo := newFakeRepo()
	repo.cfg.PermiteCancelamento = false
	uc := NewCancelarAgendamento(repo, &fakeNotify{})

	seed := repo.seed(nowTeste.Add(36*time.Hour), domain.StatusConfirmado)

	_, err := uc.ExecutePorToken(context.Background(), seed.TokenAcesso, "", nowTeste)
	assert.True(t, httperr.IsBusiness(err, "cancelamento_desabilitado"))
}

func TestCancelarPorTokenInvalido(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCancelarAgendamento(repo, &fakeNotify{})

	_, err := uc.ExecutePorToken(context.Background(), "nao-existe", "", nowTeste)
	assert.True(t, httperr.IsBusiness(err, "token_invalido"))
}

func TestCancelarPorIDIgnoraJanela(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotify{}
	uc := NewCancelarAgendamento(repo, notifier)

	// Fora da janela de cancelamento do autoatendimento: o balcão pode.
	seed := repo.seed(nowTeste.Add(30*time.Minute), domain.StatusPendente)

	ap, err := uc.ExecutePorID(context.Background(), 1, seed.ID, "cliente avisou por telefone", "carlos", nowTeste)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelado), ap.Status)
	assert.Equal(t, []string{domain.AcaoCancelado}, notifier.tipos())
}

func TestCancelarEstadoTerminal(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCancelarAgendamento(repo, &fakeNotify{})

	seed := repo.seed(nowTeste.Add(-2*time.Hour), domain.StatusConcluido)

	_, err := uc.ExecutePorID(context.Background(), 1, seed.ID, "", "carlos", nowTeste)
	assert.True(t, httperr.IsBusiness(err, "status_nao_permite"))

	_, err = uc.ExecutePorToken(context.Background(), seed.TokenAcesso, "", nowTeste)
	assert.True(t, httperr.IsBusiness(err, "status_nao_permite"))
}

func TestCancelarCorridaDeStatus(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCancelarAgendamento(repo, &fakeNotify{})

	seed := repo.seed(nowTeste.Add(36*time.Hour), domain.StatusConfirmado)

	// Outro processo cancela entre a leitura e a escrita.
	_, err := uc.ExecutePorID(context.Background(), 1, seed.ID, "", "carlos", nowTeste)
	require.NoError(t, err)

	// A segunda tentativa perde o compare-and-swap lá embaixo ou o guard
	// de status aqui em cima; nos dois casos ninguém escreve duas vezes.
	_, err = uc.ExecutePorID(context.Background(), 1, seed.ID, "", "ana", nowTeste)
	assert.Error(t, err)

	require.Len(t, repo.historicos, 1)
}

func TestConfirmarEConcluir(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotify{}

	confirmar := NewConfirmarAgendamento(repo, notifier)
	concluir := NewConcluirAgendamento(repo, notifier)

	seed := repo.seed(nowTeste.Add(-1*time.Hour), domain.StatusPendente)

	ap, err := confirmar.Execute(context.Background(), 1, seed.ID, "carlos")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmado), ap.Status)

	ap, err = concluir.Execute(context.Background(), 1, seed.ID, "carlos", nowTeste)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConcluido), ap.Status)
	require.NotNil(t, ap.ConcluidoEm)

	// pendente → confirmado → concluido, cada passo no histórico.
	require.Len(t, repo.historicos, 2)
	assert.Equal(t, domain.AcaoConfirmado, repo.historicos[0].Acao)
	assert.Equal(t, domain.AcaoConcluido, repo.historicos[1].Acao)
}

func TestConcluirAntesDoInicio(t *testing.T) {
	repo := newFakeRepo()
	concluir := NewConcluirAgendamento(repo, &fakeNotify{})

	seed := repo.seed(nowTeste.Add(3*time.Hour), domain.StatusConfirmado)

	_, err := concluir.Execute(context.Background(), 1, seed.ID, "carlos", nowTeste)
	assert.True(t, httperr.IsBusiness(err, "agendamento_nao_iniciado"))
}

func TestConcluirPendente(t *testing.T) {
	repo := newFakeRepo()
	concluir := NewConcluirAgendamento(repo, &fakeNotify{})

	seed := repo.seed(nowTeste.Add(-1*time.Hour), domain.StatusPendente)

	_, err := concluir.Execute(context.Background(), 1, seed.ID, "carlos", nowTeste)
	assert.True(t, httperr.IsBusiness(err, "status_nao_permite"))
}
