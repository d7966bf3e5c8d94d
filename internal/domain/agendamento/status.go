package agendamento

import "github.com/agendalivre/agenda-api/internal/httperr"

// ===============================
// Status do Agendamento
// ===============================

type Status string

const (
	StatusPendente   Status = "pendente"
	StatusConfirmado Status = "confirmado"
	StatusConcluido  Status = "concluido"
	StatusCancelado  Status = "cancelado"
)

// Origem do agendamento
const (
	OrigemAdmin    = "admin"
	OrigemPublico  = "publico"
	OrigemWhatsapp = "whatsapp"
)

// Ações registradas no histórico
const (
	AcaoCriado     = "criado"
	AcaoConfirmado = "confirmado"
	AcaoReagendado = "reagendado"
	AcaoCancelado  = "cancelado"
	AcaoConcluido  = "concluido"
	AcaoNotificado = "notificado"
)

// Terminal indica um estado sem transições de saída.
func (s Status) Terminal() bool {
	return s == StatusConcluido || s == StatusCancelado
}

// ===============================
// Validações de transição
// ===============================

// CanConfirm: pendente → confirmado
func CanConfirm(current Status) error {
	if current != StatusPendente {
		return httperr.ErrForbidden("status_nao_permite")
	}
	return nil
}

// CanComplete: confirmado → concluido
func CanComplete(current Status) error {
	if current != StatusConfirmado {
		return httperr.ErrForbidden("status_nao_permite")
	}
	return nil
}

// CanCancel: pendente|confirmado → cancelado
func CanCancel(current Status) error {
	if current.Terminal() {
		return httperr.ErrForbidden("status_nao_permite")
	}
	return nil
}

// CanReschedule: pendente|confirmado → pendente
func CanReschedule(current Status) error {
	if current.Terminal() {
		return httperr.ErrForbidden("status_nao_permite")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPendente
}
