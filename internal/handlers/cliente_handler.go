package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendalivre/agenda-api/internal/httpresp"
	"github.com/agendalivre/agenda-api/internal/middleware"
	"github.com/agendalivre/agenda-api/internal/models"
)

type ClienteHandler struct {
	db *gorm.DB
}

func NewClienteHandler(db *gorm.DB) *ClienteHandler {
	return &ClienteHandler{db: db}
}

func (h *ClienteHandler) List(c *gin.Context) {
	unidadeID := c.MustGet(middleware.ContextUnidadeID).(uint)

	busca := strings.ToLower(strings.TrimSpace(c.Query("busca")))

	q := h.db.Where("unidade_id = ?", unidadeID)

	if busca != "" {
		like := "%" + busca + "%"
		q = q.Where(
			"LOWER(nome) LIKE ? OR telefone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var clientes []models.Cliente
	if err := q.
		Order("created_at DESC").
		Find(&clientes).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "falha_ao_listar_clientes",
		})
		return
	}

	httpresp.List(c, clientes)
}
