package agendamento

import (
	"time"

	"github.com/agendalivre/agenda-api/internal/httperr"
	"github.com/agendalivre/agenda-api/internal/models"
)

// ===============================
// Ações de domínio
// ===============================

func Confirmar(ap *models.Agendamento) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmado)
	return nil
}

func Cancelar(ap *models.Agendamento, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelado)
	ap.CanceladoEm = &now
	return nil
}

func Concluir(ap *models.Agendamento, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	if now.Before(ap.Inicio) {
		return httperr.ErrForbidden("agendamento_nao_iniciado")
	}

	ap.Status = string(StatusConcluido)
	ap.ConcluidoEm = &now
	return nil
}
