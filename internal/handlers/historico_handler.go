package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendalivre/agenda-api/internal/httperr"
	"github.com/agendalivre/agenda-api/internal/middleware"
	"github.com/agendalivre/agenda-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type HistoricoHandler struct {
	db *gorm.DB
}

func NewHistoricoHandler(db *gorm.DB) *HistoricoHandler {
	return &HistoricoHandler{db: db}
}

// List devolve a trilha completa de um agendamento da unidade, na ordem
// em que aconteceu.
func (h *HistoricoHandler) List(c *gin.Context) {
	unidadeID := c.MustGet(middleware.ContextUnidadeID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	// Sempre protegido por unidade.
	var ap models.Agendamento
	if err := h.db.
		Where("id = ? AND unidade_id = ?", id, unidadeID).
		First(&ap).Error; err != nil {
		httperr.NotFound(c, "agendamento_nao_encontrado", "Agendamento não encontrado.")
		return
	}

	var historico []models.HistoricoAgendamento
	if err := h.db.
		Where("agendamento_id = ?", ap.ID).
		Order("created_at ASC").
		Find(&historico).Error; err != nil {
		httperr.Internal(c, "falha_ao_listar_historico", "Erro ao listar histórico.")
		return
	}

	var notificacoes []models.NotificacaoLog
	if err := h.db.
		Where("agendamento_id = ?", ap.ID).
		Order("created_at ASC").
		Find(&notificacoes).Error; err != nil {
		httperr.Internal(c, "falha_ao_listar_notificacoes", "Erro ao listar notificações.")
		return
	}

	c.JSON(200, gin.H{
		"agendamento_id": ap.ID,
		"historico":      historico,
		"notificacoes":   notificacoes,
	})
}
