package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendalivre/agenda-api/internal/middleware"
	"github.com/agendalivre/agenda-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	idVal, exists := c.Get(middleware.ContextProfissionalID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "usuario_fora_do_contexto"})
		return
	}

	profissionalID, ok := idVal.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "identificador_invalido"})
		return
	}

	var prof models.Profissional
	if err := h.db.Preload("Unidade").First(&prof, profissionalID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profissional_nao_encontrado"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profissional": gin.H{
			"id":         prof.ID,
			"nome":       prof.Nome,
			"email":      prof.Email,
			"telefone":   prof.Telefone,
			"papel":      prof.Papel,
			"unidade_id": prof.UnidadeID,
		},
		"unidade": gin.H{
			"id":       prof.Unidade.ID,
			"nome":     prof.Unidade.Nome,
			"slug":     prof.Unidade.Slug,
			"telefone": prof.Unidade.Telefone,
			"endereco": prof.Unidade.Endereco,
		},
	})
}
