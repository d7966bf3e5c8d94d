package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendalivre/agenda-api/internal/httperr"
	"github.com/agendalivre/agenda-api/internal/middleware"
	"github.com/agendalivre/agenda-api/internal/models"
)

type UnidadeHandler struct {
	db *gorm.DB
}

func NewUnidadeHandler(db *gorm.DB) *UnidadeHandler {
	return &UnidadeHandler{db: db}
}

type UpdateConfiguracaoRequest struct {
	AntecedenciaMinimaHoras        *int  `json:"antecedencia_minima_horas"`
	MaxReagendamentos              *int  `json:"max_reagendamentos"`
	PermiteCancelamento            *bool `json:"permite_cancelamento"`
	HorarioLimiteCancelamentoHoras *int  `json:"horario_limite_cancelamento_horas"`
	AgendamentoOnline              *bool `json:"agendamento_online"`

	NomeExibicao       *string `json:"nome_exibicao"`
	MensagemBoasVindas *string `json:"mensagem_boas_vindas"`
	CorTema            *string `json:"cor_tema"`
}

func (h *UnidadeHandler) GetMinhaUnidade(c *gin.Context) {
	unidadeID := c.MustGet(middleware.ContextUnidadeID).(uint)

	var unidade models.Unidade
	if err := h.db.First(&unidade, unidadeID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "unidade_nao_encontrada", "Unidade não encontrada.")
			return
		}
		httperr.Internal(c, "falha_ao_buscar_unidade", "Erro ao buscar dados da unidade.")
		return
	}

	var cfg models.ConfiguracaoUnidade
	if err := h.db.Where("unidade_id = ?", unidadeID).First(&cfg).Error; err != nil {
		httperr.Internal(c, "falha_ao_buscar_configuracao", "Erro ao buscar configuração.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"unidade":      unidade,
		"configuracao": cfg,
	})
}

func (h *UnidadeHandler) UpdateConfiguracao(c *gin.Context) {
	unidadeID := c.MustGet(middleware.ContextUnidadeID).(uint)

	var cfg models.ConfiguracaoUnidade
	if err := h.db.Where("unidade_id = ?", unidadeID).First(&cfg).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "unidade_nao_encontrada", "Unidade não encontrada.")
			return
		}
		httperr.Internal(c, "falha_ao_buscar_configuracao", "Erro ao buscar configuração.")
		return
	}

	var req UpdateConfiguracaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "dados_invalidos", "Dados inválidos na requisição.")
		return
	}

	if req.AntecedenciaMinimaHoras != nil {
		if *req.AntecedenciaMinimaHoras < 0 {
			httperr.BadRequest(c, "antecedencia_invalida", "Antecedência mínima deve ser zero ou positiva (em horas).")
			return
		}
		cfg.AntecedenciaMinimaHoras = *req.AntecedenciaMinimaHoras
	}

	if req.MaxReagendamentos != nil {
		if *req.MaxReagendamentos < 0 {
			httperr.BadRequest(c, "limite_invalido", "Limite de reagendamentos deve ser zero ou positivo.")
			return
		}
		cfg.MaxReagendamentos = *req.MaxReagendamentos
	}

	if req.PermiteCancelamento != nil {
		cfg.PermiteCancelamento = *req.PermiteCancelamento
	}

	if req.HorarioLimiteCancelamentoHoras != nil {
		if *req.HorarioLimiteCancelamentoHoras < 0 {
			httperr.BadRequest(c, "limite_invalido", "Janela de cancelamento deve ser zero ou positiva (em horas).")
			return
		}
		cfg.HorarioLimiteCancelamentoHoras = *req.HorarioLimiteCancelamentoHoras
	}

	if req.AgendamentoOnline != nil {
		cfg.AgendamentoOnline = *req.AgendamentoOnline
	}

	if req.NomeExibicao != nil {
		cfg.NomeExibicao = *req.NomeExibicao
	}
	if req.MensagemBoasVindas != nil {
		cfg.MensagemBoasVindas = *req.MensagemBoasVindas
	}
	if req.CorTema != nil {
		cfg.CorTema = *req.CorTema
	}

	if err := h.db.Save(&cfg).Error; err != nil {
		httperr.Internal(c, "falha_ao_salvar_configuracao", "Erro ao salvar a configuração da unidade.")
		return
	}

	c.JSON(http.StatusOK, cfg)
}
