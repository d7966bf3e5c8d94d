package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendalivre/agenda-api/internal/middleware"
	"github.com/agendalivre/agenda-api/internal/models"
)

type HorarioFuncionamentoHandler struct {
	db *gorm.DB
}

func NewHorarioFuncionamentoHandler(db *gorm.DB) *HorarioFuncionamentoHandler {
	return &HorarioFuncionamentoHandler{db: db}
}

type DiaFuncionamentoConfig struct {
	DiaSemana   int    `json:"dia_semana" binding:"min=0,max=6"`
	Ativo       bool   `json:"ativo"`
	Inicio      string `json:"inicio"`
	Fim         string `json:"fim"`
	PausaInicio string `json:"pausa_inicio"`
	PausaFim    string `json:"pausa_fim"`
}

type HorarioUpdateRequest struct {
	Dias []DiaFuncionamentoConfig `json:"dias" binding:"required"`
}

func (h *HorarioFuncionamentoHandler) Get(c *gin.Context) {
	profissionalID := c.MustGet(middleware.ContextProfissionalID).(uint)

	var horarios []models.HorarioFuncionamento
	if err := h.db.
		Where("profissional_id = ?", profissionalID).
		Order("dia_semana ASC").
		Find(&horarios).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "falha_ao_buscar_horarios"})
		return
	}

	c.JSON(http.StatusOK, horarios)
}

func (h *HorarioFuncionamentoHandler) Update(c *gin.Context) {
	profissionalID := c.MustGet(middleware.ContextProfissionalID).(uint)

	var req HorarioUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "dados_invalidos",
			"details": err.Error(),
		})
		return
	}

	if err := h.db.Where("profissional_id = ?", profissionalID).Delete(&models.HorarioFuncionamento{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "falha_ao_limpar_horarios"})
		return
	}

	var novos []models.HorarioFuncionamento
	for _, d := range req.Dias {
		novos = append(novos, models.HorarioFuncionamento{
			ProfissionalID: profissionalID,
			DiaSemana:      d.DiaSemana,
			Ativo:          d.Ativo,
			Inicio:         d.Inicio,
			Fim:            d.Fim,
			PausaInicio:    d.PausaInicio,
			PausaFim:       d.PausaFim,
		})
	}

	if len(novos) > 0 {
		if err := h.db.Create(&novos).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "falha_ao_salvar_horarios"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
