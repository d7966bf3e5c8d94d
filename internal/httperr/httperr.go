package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// FromError mapeia um BusinessError para o status HTTP correspondente.
func FromError(c *gin.Context, err error, fallbackCode, fallbackMessage string) {
	kind, ok := KindOf(err)
	if !ok {
		Internal(c, fallbackCode, fallbackMessage)
		return
	}

	code := err.Error()
	switch kind {
	case KindNotFound:
		NotFound(c, code, Describe(code))
	case KindInvalidInput:
		BadRequest(c, code, Describe(code))
	case KindForbidden:
		Forbidden(c, code, Describe(code))
	case KindConflict:
		Conflict(c, code, Describe(code))
	default:
		Internal(c, code, Describe(code))
	}
}

var messages = map[string]string{
	"unidade_nao_encontrada":          "Unidade não encontrada.",
	"profissional_nao_encontrado":     "Profissional não encontrado.",
	"servico_nao_encontrado":          "Serviço não encontrado.",
	"agendamento_nao_encontrado":      "Agendamento não encontrado.",
	"token_invalido":                  "Link de agendamento inválido.",
	"data_invalida":                   "Data ou hora inválida.",
	"data_passada":                    "Data no passado.",
	"agendamento_online_desabilitado": "Agendamento online desabilitado para esta unidade.",
	"fora_do_horario":                 "Fora do horário de atendimento.",
	"horario_indisponivel":            "Horário indisponível.",
	"conflito_de_horario":             "Conflito de horário.",
	"conflito_de_status":              "O agendamento foi alterado por outra operação. Recarregue e tente novamente.",
	"fora_do_prazo_reagendamento":     "O prazo para reagendar já passou.",
	"limite_reagendamentos":           "Limite de reagendamentos atingido.",
	"cancelamento_desabilitado":       "Esta unidade não permite cancelamento online.",
	"fora_do_prazo_cancelamento":      "O prazo para cancelar já passou.",
	"status_nao_permite":              "O status atual do agendamento não permite esta ação.",
	"agendamento_nao_iniciado":        "O horário do agendamento ainda não chegou.",
	"lista_espera_nao_encontrada":     "Entrada da lista de espera não encontrada.",
	"lista_espera_ja_processada":      "Esta entrada da lista de espera já foi processada.",
}

func Describe(code string) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return "Não foi possível completar a operação."
}
