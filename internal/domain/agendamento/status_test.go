package agendamento

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendalivre/agenda-api/internal/httperr"
	"github.com/agendalivre/agenda-api/internal/models"
)

func TestTerminal(t *testing.T) {
	assert.False(t, StatusPendente.Terminal())
	assert.False(t, StatusConfirmado.Terminal())
	assert.True(t, StatusConcluido.Terminal())
	assert.True(t, StatusCancelado.Terminal())
}

func TestCanConfirm(t *testing.T) {
	assert.NoError(t, CanConfirm(StatusPendente))

	for _, s := range []Status{StatusConfirmado, StatusConcluido, StatusCancelado} {
		err := CanConfirm(s)
		assert.True(t, httperr.IsBusiness(err, "status_nao_permite"), "status %s", s)
	}
}

func TestCanComplete(t *testing.T) {
	assert.NoError(t, CanComplete(StatusConfirmado))

	// Pendente precisa ser confirmado antes de concluir.
	err := CanComplete(StatusPendente)
	assert.True(t, httperr.IsBusiness(err, "status_nao_permite"))

	for _, s := range []Status{StatusConcluido, StatusCancelado} {
		assert.Error(t, CanComplete(s), "status %s", s)
	}
}

func TestCanCancelECanReschedule(t *testing.T) {
	for _, s := range []Status{StatusPendente, StatusConfirmado} {
		assert.NoError(t, CanCancel(s), "status %s", s)
		assert.NoError(t, CanReschedule(s), "status %s", s)
	}

	for _, s := range []Status{StatusConcluido, StatusCancelado} {
		assert.True(t, httperr.IsBusiness(CanCancel(s), "status_nao_permite"), "status %s", s)
		assert.True(t, httperr.IsBusiness(CanReschedule(s), "status_nao_permite"), "status %s", s)
	}
}

func TestConfirmar(t *testing.T) {
	ap := &models.Agendamento{Status: string(StatusPendente)}

	require.NoError(t, Confirmar(ap))
	assert.Equal(t, string(StatusConfirmado), ap.Status)

	// Confirmar duas vezes não é idempotente: a segunda falha.
	err := Confirmar(ap)
	assert.True(t, httperr.IsBusiness(err, "status_nao_permite"))
}

func TestCancelar(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	ap := &models.Agendamento{Status: string(StatusConfirmado)}
	require.NoError(t, Cancelar(ap, now))

	assert.Equal(t, string(StatusCancelado), ap.Status)
	require.NotNil(t, ap.CanceladoEm)
	assert.Equal(t, now, *ap.CanceladoEm)

	// Estado terminal: nenhuma transição sai dele.
	assert.Error(t, Cancelar(ap, now))
	assert.Error(t, Confirmar(ap))
}

func TestConcluir(t *testing.T) {
	inicio := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	ap := &models.Agendamento{
		Status: string(StatusConfirmado),
		Inicio: inicio,
	}

	// Antes do horário de início a conclusão é bloqueada.
	err := Concluir(ap, inicio.Add(-10*time.Minute))
	assert.True(t, httperr.IsBusiness(err, "agendamento_nao_iniciado"))
	assert.Equal(t, string(StatusConfirmado), ap.Status)

	depois := inicio.Add(45 * time.Minute)
	require.NoError(t, Concluir(ap, depois))

	assert.Equal(t, string(StatusConcluido), ap.Status)
	require.NotNil(t, ap.ConcluidoEm)
	assert.Equal(t, depois, *ap.ConcluidoEm)
}
