package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/agendalivre/agenda-api/internal/domain/agendamento"
	"github.com/agendalivre/agenda-api/internal/dto"
	"github.com/agendalivre/agenda-api/internal/httperr"
	"github.com/agendalivre/agenda-api/internal/middleware"
	"github.com/agendalivre/agenda-api/internal/models"
	"github.com/agendalivre/agenda-api/internal/timezone"
	ucAgendamento "github.com/agendalivre/agenda-api/internal/usecase/agendamento"
)

// ======================================================
// HANDLER
// ======================================================

type AgendamentoHandler struct {
	db          *gorm.DB
	createUC    *ucAgendamento.CreateAgendamento
	confirmarUC *ucAgendamento.ConfirmarAgendamento
	concluirUC  *ucAgendamento.ConcluirAgendamento
	cancelarUC  *ucAgendamento.CancelarAgendamento
	reagendarUC *ucAgendamento.ReagendarAgendamento
}

func NewAgendamentoHandler(
	db *gorm.DB,
	createUC *ucAgendamento.CreateAgendamento,
	confirmarUC *ucAgendamento.ConfirmarAgendamento,
	concluirUC *ucAgendamento.ConcluirAgendamento,
	cancelarUC *ucAgendamento.CancelarAgendamento,
	reagendarUC *ucAgendamento.ReagendarAgendamento,
) *AgendamentoHandler {
	return &AgendamentoHandler{
		db:          db,
		createUC:    createUC,
		confirmarUC: confirmarUC,
		concluirUC:  concluirUC,
		cancelarUC:  cancelarUC,
		reagendarUC: reagendarUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAgendamentoRequest struct {
	ClienteNome     string `json:"cliente_nome" binding:"required"`
	ClienteTelefone string `json:"cliente_telefone" binding:"required"`
	ClienteEmail    string `json:"cliente_email"`
	ServicoID       uint   `json:"servico_id" binding:"required"`
	Data            string `json:"data" binding:"required"`
	Hora            string `json:"hora" binding:"required"`
	Observacoes     string `json:"observacoes"`
}

type ReagendarRequest struct {
	Data string `json:"data" binding:"required"`
	Hora string `json:"hora" binding:"required"`
}

type CancelarRequest struct {
	Motivo string `json:"motivo"`
}

// ======================================================
// CREATE (BALCÃO)
// ======================================================

func (h *AgendamentoHandler) Create(c *gin.Context) {
	profissionalID := c.MustGet(middleware.ContextProfissionalID).(uint)
	unidadeID := c.MustGet(middleware.ContextUnidadeID).(uint)

	var req CreateAgendamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "dados_invalidos", "Dados inválidos.")
		return
	}

	var unidade models.Unidade
	if err := h.db.First(&unidade, unidadeID).Error; err != nil {
		httperr.Internal(c, "unidade_nao_encontrada", "Unidade não encontrada.")
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		ucAgendamento.CreateAgendamentoInput{
			UnidadeID:      unidadeID,
			ProfissionalID: profissionalID,
			ServicoID:      req.ServicoID,

			ClienteNome:     req.ClienteNome,
			ClienteTelefone: req.ClienteTelefone,
			ClienteEmail:    req.ClienteEmail,

			Data:        req.Data,
			Hora:        req.Hora,
			Observacoes: req.Observacoes,

			Origem: domain.OrigemAdmin,
			Autor:  autorDoContexto(c),
		},
		nowNaUnidade(&unidade),
	)
	if err != nil {
		httperr.FromError(c, err, "falha_ao_criar_agendamento", "Erro ao criar agendamento.")
		return
	}

	c.JSON(201, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AgendamentoHandler) ListByDate(c *gin.Context) {
	profissionalID := c.MustGet(middleware.ContextProfissionalID).(uint)
	unidadeID := c.MustGet(middleware.ContextUnidadeID).(uint)

	dataStr := c.Query("data")
	if dataStr == "" {
		httperr.BadRequest(c, "data_obrigatoria", "Data obrigatória.")
		return
	}

	var unidade models.Unidade
	if err := h.db.First(&unidade, unidadeID).Error; err != nil {
		httperr.Internal(c, "unidade_nao_encontrada", "Unidade não encontrada.")
		return
	}

	data, err := parseDataNaUnidade(&unidade, dataStr)
	if err != nil {
		httperr.BadRequest(c, "data_invalida", "Data inválida.")
		return
	}

	inicio := time.Date(data.Year(), data.Month(), data.Day(), 0, 0, 0, 0, data.Location())
	fim := inicio.Add(24 * time.Hour)

	h.listPeriodo(c, profissionalID, inicio, fim)
}

func (h *AgendamentoHandler) ListByMonth(c *gin.Context) {
	profissionalID := c.MustGet(middleware.ContextProfissionalID).(uint)
	unidadeID := c.MustGet(middleware.ContextUnidadeID).(uint)

	ano, err := strconv.Atoi(c.Query("ano"))
	if err != nil || ano < 2000 || ano > 2100 {
		httperr.BadRequest(c, "ano_invalido", "Ano inválido.")
		return
	}

	mes, err := strconv.Atoi(c.Query("mes"))
	if err != nil || mes < 1 || mes > 12 {
		httperr.BadRequest(c, "mes_invalido", "Mês inválido.")
		return
	}

	var unidade models.Unidade
	if err := h.db.First(&unidade, unidadeID).Error; err != nil {
		httperr.Internal(c, "unidade_nao_encontrada", "Unidade não encontrada.")
		return
	}

	loc := timezone.LocationDaUnidade(&unidade)
	inicio := time.Date(ano, time.Month(mes), 1, 0, 0, 0, 0, loc)
	fim := inicio.AddDate(0, 1, 0)

	h.listPeriodo(c, profissionalID, inicio, fim)
}

func (h *AgendamentoHandler) listPeriodo(
	c *gin.Context,
	profissionalID uint,
	inicio time.Time,
	fim time.Time,
) {
	var aps []models.Agendamento
	if err := h.db.
		Preload("Cliente").
		Preload("Servico").
		Where(
			"profissional_id = ? AND inicio >= ? AND inicio < ?",
			profissionalID, inicio, fim,
		).
		Order("inicio ASC").
		Find(&aps).Error; err != nil {
		httperr.Internal(c, "falha_ao_listar", "Erro ao listar agendamentos.")
		return
	}

	out := make([]dto.AgendamentoListDTO, 0, len(aps))
	for _, ap := range aps {
		nome := ap.ClienteNome
		if nome == "" {
			nome = ap.Cliente.Nome
		}
		out = append(out, dto.AgendamentoListDTO{
			ID:                  ap.ID,
			Inicio:              ap.Inicio,
			Fim:                 ap.Fim(),
			Status:              ap.Status,
			Origem:              ap.Origem,
			ClienteNome:         nome,
			ServicoNome:         ap.Servico.Nome,
			Preco:               ap.Preco,
			ReagendamentosCount: ap.ReagendamentosCount,
		})
	}

	c.JSON(200, out)
}

// ======================================================
// TRANSIÇÕES
// ======================================================

func (h *AgendamentoHandler) Confirmar(c *gin.Context) {
	unidadeID := c.MustGet(middleware.ContextUnidadeID).(uint)
	id, ok := paramID(c)
	if !ok {
		return
	}

	ap, err := h.confirmarUC.Execute(
		c.Request.Context(),
		unidadeID,
		id,
		autorDoContexto(c),
	)
	if err != nil {
		httperr.FromError(c, err, "falha_ao_confirmar", "Erro ao confirmar agendamento.")
		return
	}

	c.JSON(200, ap)
}

func (h *AgendamentoHandler) Concluir(c *gin.Context) {
	unidadeID := c.MustGet(middleware.ContextUnidadeID).(uint)
	id, ok := paramID(c)
	if !ok {
		return
	}

	ap, err := h.concluirUC.Execute(
		c.Request.Context(),
		unidadeID,
		id,
		autorDoContexto(c),
		timezone.Now(),
	)
	if err != nil {
		httperr.FromError(c, err, "falha_ao_concluir", "Erro ao concluir agendamento.")
		return
	}

	c.JSON(200, ap)
}

func (h *AgendamentoHandler) Cancelar(c *gin.Context) {
	unidadeID := c.MustGet(middleware.ContextUnidadeID).(uint)
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req CancelarRequest
	_ = c.ShouldBindJSON(&req)

	ap, err := h.cancelarUC.ExecutePorID(
		c.Request.Context(),
		unidadeID,
		id,
		req.Motivo,
		autorDoContexto(c),
		timezone.Now(),
	)
	if err != nil {
		httperr.FromError(c, err, "falha_ao_cancelar", "Erro ao cancelar agendamento.")
		return
	}

	c.JSON(200, ap)
}

func (h *AgendamentoHandler) Reagendar(c *gin.Context) {
	unidadeID := c.MustGet(middleware.ContextUnidadeID).(uint)
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req ReagendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "dados_invalidos", "Dados inválidos.")
		return
	}

	ap, err := h.reagendarUC.ExecutePorID(
		c.Request.Context(),
		unidadeID,
		id,
		req.Data,
		req.Hora,
		autorDoContexto(c),
		timezone.Now(),
	)
	if err != nil {
		httperr.FromError(c, err, "falha_ao_reagendar", "Erro ao reagendar agendamento.")
		return
	}

	c.JSON(200, ap)
}

// ======================================================
// HELPERS
// ======================================================

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "id_invalido", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

func autorDoContexto(c *gin.Context) string {
	if papel, ok := c.Get(middleware.ContextPapel); ok {
		if s, ok := papel.(string); ok && s != "" {
			return s
		}
	}
	return "equipe"
}
