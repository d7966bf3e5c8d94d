package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agendalivre/agenda-api/internal/httperr"
	"github.com/agendalivre/agenda-api/internal/models"
	"github.com/agendalivre/agenda-api/internal/timezone"
	ucAgendamento "github.com/agendalivre/agenda-api/internal/usecase/agendamento"
)

// TokenHandler serve o autoatendimento: o cliente só tem o link com o
// token, sem sessão. As permissões são recalculadas a cada leitura.
type TokenHandler struct {
	resolveUC   *ucAgendamento.ResolveToken
	reagendarUC *ucAgendamento.ReagendarAgendamento
	cancelarUC  *ucAgendamento.CancelarAgendamento
}

func NewTokenHandler(
	resolveUC *ucAgendamento.ResolveToken,
	reagendarUC *ucAgendamento.ReagendarAgendamento,
	cancelarUC *ucAgendamento.CancelarAgendamento,
) *TokenHandler {
	return &TokenHandler{
		resolveUC:   resolveUC,
		reagendarUC: reagendarUC,
		cancelarUC:  cancelarUC,
	}
}

type TokenRequest struct {
	Token string `json:"token" binding:"required"`
}

type TokenReagendarRequest struct {
	Token string `json:"token" binding:"required"`
	Data  string `json:"data" binding:"required"`
	Hora  string `json:"hora" binding:"required"`
}

type TokenCancelarRequest struct {
	Token  string `json:"token" binding:"required"`
	Motivo string `json:"motivo"`
}

// Resolve responde exatamente o contrato consumido pela página do
// cliente: 200 com agendamento + flags, ou 400 com {"error": ...}.
func (h *TokenHandler) Resolve(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token_obrigatorio"})
		return
	}

	res, err := h.resolveUC.Execute(
		c.Request.Context(),
		req.Token,
		timezone.Now(),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"agendamento":    res.Agendamento,
		"pode_reagendar": res.Permissoes.PodeReagendar,
		"pode_cancelar":  res.Permissoes.PodeCancelar,
	})
}

func (h *TokenHandler) Reagendar(c *gin.Context) {
	var req TokenReagendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "dados_invalidos", "Dados inválidos.")
		return
	}

	ap, err := h.reagendarUC.ExecutePorToken(
		c.Request.Context(),
		req.Token,
		req.Data,
		req.Hora,
		timezone.Now(),
	)
	if err != nil {
		httperr.FromError(c, err, "falha_ao_reagendar", "Erro ao reagendar.")
		return
	}

	h.respondComPermissoes(c, ap)
}

func (h *TokenHandler) Cancelar(c *gin.Context) {
	var req TokenCancelarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "dados_invalidos", "Dados inválidos.")
		return
	}

	ap, err := h.cancelarUC.ExecutePorToken(
		c.Request.Context(),
		req.Token,
		req.Motivo,
		timezone.Now(),
	)
	if err != nil {
		httperr.FromError(c, err, "falha_ao_cancelar", "Erro ao cancelar.")
		return
	}

	h.respondComPermissoes(c, ap)
}

func (h *TokenHandler) respondComPermissoes(c *gin.Context, ap *models.Agendamento) {
	res, err := h.resolveUC.Execute(
		c.Request.Context(),
		ap.TokenAcesso,
		timezone.Now(),
	)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"agendamento": ap})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"agendamento":    res.Agendamento,
		"pode_reagendar": res.Permissoes.PodeReagendar,
		"pode_cancelar":  res.Permissoes.PodeCancelar,
	})
}
