package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendalivre/agenda-api/internal/httperr"
	"github.com/agendalivre/agenda-api/internal/middleware"
	"github.com/agendalivre/agenda-api/internal/models"
	"github.com/agendalivre/agenda-api/internal/timezone"
	ucAgendamento "github.com/agendalivre/agenda-api/internal/usecase/agendamento"
)

type ListaEsperaHandler struct {
	db         *gorm.DB
	promoverUC *ucAgendamento.PromoverListaEspera
}

func NewListaEsperaHandler(
	db *gorm.DB,
	promoverUC *ucAgendamento.PromoverListaEspera,
) *ListaEsperaHandler {
	return &ListaEsperaHandler{
		db:         db,
		promoverUC: promoverUC,
	}
}

// --------- Requests ---------

type CreateListaEsperaRequest struct {
	ServicoID       uint   `json:"servico_id" binding:"required"`
	ProfissionalID  *uint  `json:"profissional_id"`
	ClienteNome     string `json:"cliente_nome" binding:"required"`
	ClienteTelefone string `json:"cliente_telefone" binding:"required"`
	ClienteEmail    string `json:"cliente_email"`
	DataPreferida   string `json:"data_preferida" binding:"required"` // YYYY-MM-DD HH:mm
	Prioridade      string `json:"prioridade"`
}

type PromoverRequest struct {
	ProfissionalID uint   `json:"profissional_id"`
	Data           string `json:"data" binding:"required"`
	Hora           string `json:"hora" binding:"required"`
}

// --------- Handlers ---------

func (h *ListaEsperaHandler) List(c *gin.Context) {
	unidadeID := c.MustGet(middleware.ContextUnidadeID).(uint)

	q := h.db.Preload("Servico").Where("unidade_id = ?", unidadeID)

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var entradas []models.ListaEspera
	if err := q.
		Order("CASE prioridade WHEN 'alta' THEN 0 WHEN 'media' THEN 1 ELSE 2 END, created_at ASC").
		Find(&entradas).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "falha_ao_listar_espera"})
		return
	}

	c.JSON(http.StatusOK, entradas)
}

func (h *ListaEsperaHandler) Create(c *gin.Context) {
	unidadeID := c.MustGet(middleware.ContextUnidadeID).(uint)

	var req CreateListaEsperaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "dados_invalidos", "Dados inválidos.")
		return
	}

	var unidade models.Unidade
	if err := h.db.First(&unidade, unidadeID).Error; err != nil {
		httperr.Internal(c, "unidade_nao_encontrada", "Unidade não encontrada.")
		return
	}

	dataPreferida, err := time.ParseInLocation(
		"2006-01-02 15:04",
		req.DataPreferida,
		timezone.LocationDaUnidade(&unidade),
	)
	if err != nil {
		httperr.BadRequest(c, "data_invalida", "Data preferida inválida.")
		return
	}

	prioridade := req.Prioridade
	switch prioridade {
	case "baixa", "media", "alta":
	default:
		prioridade = "media"
	}

	entrada := models.ListaEspera{
		UnidadeID:       unidadeID,
		ServicoID:       req.ServicoID,
		ProfissionalID:  req.ProfissionalID,
		ClienteNome:     req.ClienteNome,
		ClienteTelefone: req.ClienteTelefone,
		ClienteEmail:    req.ClienteEmail,
		DataPreferida:   dataPreferida,
		Prioridade:      prioridade,
		Status:          "aguardando",
	}

	if err := h.db.Create(&entrada).Error; err != nil {
		httperr.Internal(c, "falha_ao_criar_espera", "Erro ao criar entrada na lista de espera.")
		return
	}

	c.JSON(http.StatusCreated, entrada)
}

// Promover cria o agendamento pelo caminho normal de criação. Se o
// horário escolhido já foi tomado, a entrada continua aguardando e o
// atendente escolhe outro horário ou outro candidato.
func (h *ListaEsperaHandler) Promover(c *gin.Context) {
	unidadeID := c.MustGet(middleware.ContextUnidadeID).(uint)
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req PromoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "dados_invalidos", "Dados inválidos.")
		return
	}

	var unidade models.Unidade
	if err := h.db.First(&unidade, unidadeID).Error; err != nil {
		httperr.Internal(c, "unidade_nao_encontrada", "Unidade não encontrada.")
		return
	}

	ap, err := h.promoverUC.Execute(
		c.Request.Context(),
		unidadeID,
		id,
		ucAgendamento.PromocaoInput{
			ProfissionalID: req.ProfissionalID,
			Data:           req.Data,
			Hora:           req.Hora,
			Autor:          autorDoContexto(c),
		},
		nowNaUnidade(&unidade),
	)
	if err != nil {
		httperr.FromError(c, err, "falha_ao_promover", "Erro ao promover entrada da lista de espera.")
		return
	}

	c.JSON(http.StatusCreated, ap)
}

func (h *ListaEsperaHandler) Cancelar(c *gin.Context) {
	unidadeID := c.MustGet(middleware.ContextUnidadeID).(uint)
	id, ok := paramID(c)
	if !ok {
		return
	}

	res := h.db.Model(&models.ListaEspera{}).
		Where("id = ? AND unidade_id = ? AND status IN ('aguardando', 'contatado')", id, unidadeID).
		Update("status", "cancelado")

	if res.Error != nil {
		httperr.Internal(c, "falha_ao_cancelar_espera", "Erro ao cancelar entrada.")
		return
	}

	if res.RowsAffected == 0 {
		httperr.Conflict(c, "lista_espera_ja_processada", httperr.Describe("lista_espera_ja_processada"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
