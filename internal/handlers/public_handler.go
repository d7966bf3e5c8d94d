package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/agendalivre/agenda-api/internal/domain/agendamento"
	"github.com/agendalivre/agenda-api/internal/httperr"
	"github.com/agendalivre/agenda-api/internal/models"
	ucAgendamento "github.com/agendalivre/agenda-api/internal/usecase/agendamento"
	"github.com/agendalivre/agenda-api/internal/validators"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db             *gorm.DB
	availabilityUC *ucAgendamento.GetAvailability
	createUC       *ucAgendamento.CreateAgendamento
}

func NewPublicHandler(
	db *gorm.DB,
	availabilityUC *ucAgendamento.GetAvailability,
	createUC *ucAgendamento.CreateAgendamento,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		availabilityUC: availabilityUC,
		createUC:       createUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAgendamentoRequest struct {
	ClienteNome     string `json:"cliente_nome" binding:"required"`
	ClienteTelefone string `json:"cliente_telefone" binding:"required"`
	ClienteEmail    string `json:"cliente_email"`
	ProfissionalID  uint   `json:"profissional_id" binding:"required"`
	ServicoID       uint   `json:"servico_id" binding:"required"`
	Data            string `json:"data" binding:"required"` // YYYY-MM-DD
	Hora            string `json:"hora" binding:"required"` // HH:mm
	Observacoes     string `json:"observacoes"`
}

////////////////////////////////////////////////////////
// CATÁLOGO
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServicos(c *gin.Context) {
	slug := c.Param("slug")

	var unidade models.Unidade
	if err := h.db.Where("slug = ?", slug).First(&unidade).Error; err != nil {
		httperr.NotFound(c, "unidade_nao_encontrada", "Unidade não encontrada.")
		return
	}

	var cfg models.ConfiguracaoUnidade
	if err := h.db.Where("unidade_id = ?", unidade.ID).First(&cfg).Error; err != nil {
		httperr.NotFound(c, "unidade_nao_encontrada", "Unidade não encontrada.")
		return
	}

	categoria := strings.TrimSpace(strings.ToLower(c.Query("categoria")))

	q := h.db.Where("unidade_id = ? AND ativo = true", unidade.ID)
	if categoria != "" {
		q = q.Where("LOWER(categoria) = ?", categoria)
	}

	var servicos []models.Servico
	if err := q.Order("id ASC").Find(&servicos).Error; err != nil {
		httperr.Internal(c, "falha_ao_listar_servicos", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"unidade": gin.H{
			"id":                   unidade.ID,
			"nome":                 unidade.Nome,
			"slug":                 unidade.Slug,
			"nome_exibicao":        cfg.NomeExibicao,
			"mensagem_boas_vindas": cfg.MensagemBoasVindas,
			"cor_tema":             cfg.CorTema,
			"agendamento_online":   cfg.AgendamentoOnline,
		},
		"servicos": servicos,
	})
}

////////////////////////////////////////////////////////
// DISPONIBILIDADE
////////////////////////////////////////////////////////

func (h *PublicHandler) Disponibilidade(c *gin.Context) {
	slug := c.Param("slug")
	dataStr := c.Query("data")
	servicoIDStr := c.Query("servico_id")
	profissionalIDStr := c.Query("profissional_id")

	if dataStr == "" || servicoIDStr == "" || profissionalIDStr == "" {
		httperr.BadRequest(c, "parametros_obrigatorios", "Data, serviço e profissional obrigatórios.")
		return
	}

	servicoID, err := strconv.ParseUint(servicoIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "servico_invalido", "Serviço inválido.")
		return
	}

	profissionalID, err := strconv.ParseUint(profissionalIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "profissional_invalido", "Profissional inválido.")
		return
	}

	var unidade models.Unidade
	if err := h.db.Where("slug = ?", slug).First(&unidade).Error; err != nil {
		httperr.NotFound(c, "unidade_nao_encontrada", "Unidade não encontrada.")
		return
	}

	data, err := parseDataNaUnidade(&unidade, dataStr)
	if err != nil {
		httperr.BadRequest(c, "data_invalida", "Data inválida.")
		return
	}

	slots, err := h.availabilityUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			UnidadeID:      unidade.ID,
			ProfissionalID: uint(profissionalID),
			ServicoID:      uint(servicoID),
			Data:           data,
		},
		nowNaUnidade(&unidade),
	)
	if err != nil {
		httperr.FromError(c, err, "disponibilidade_falhou", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  dataStr,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// CRIAÇÃO (PÚBLICO)
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAgendamento(c *gin.Context) {
	slug := c.Param("slug")

	var unidade models.Unidade
	if err := h.db.Where("slug = ?", slug).First(&unidade).Error; err != nil {
		httperr.NotFound(c, "unidade_nao_encontrada", "Unidade não encontrada.")
		return
	}

	var req PublicCreateAgendamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "dados_invalidos", "Dados inválidos.")
		return
	}

	if !validators.IsTelefoneValid(req.ClienteTelefone) {
		httperr.BadRequest(c, "telefone_invalido", "Telefone inválido.")
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		ucAgendamento.CreateAgendamentoInput{
			UnidadeID:      unidade.ID,
			ProfissionalID: req.ProfissionalID,
			ServicoID:      req.ServicoID,

			ClienteNome:     req.ClienteNome,
			ClienteTelefone: req.ClienteTelefone,
			ClienteEmail:    req.ClienteEmail,

			Data:        req.Data,
			Hora:        req.Hora,
			Observacoes: req.Observacoes,

			Origem: domain.OrigemPublico,
			Autor:  "cliente",
		},
		nowNaUnidade(&unidade),
	)
	if err != nil {
		httperr.FromError(c, err, "falha_ao_criar_agendamento", "Erro ao criar agendamento.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"agendamento": ap,
		"token":       ap.TokenAcesso,
	})
}
