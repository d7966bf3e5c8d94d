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

type ServicoHandler struct {
	db *gorm.DB
}

func NewServicoHandler(db *gorm.DB) *ServicoHandler {
	return &ServicoHandler{db: db}
}

// --------- Requests ---------

type CreateServicoRequest struct {
	Nome       string  `json:"nome" binding:"required"`
	Descricao  string  `json:"descricao"`
	DuracaoMin int     `json:"duracao_min" binding:"required,min=1"`
	Preco      float64 `json:"preco" binding:"required"`
	Categoria  string  `json:"categoria"`
}

type UpdateServicoRequest struct {
	Nome       *string  `json:"nome,omitempty"`
	Descricao  *string  `json:"descricao,omitempty"`
	DuracaoMin *int     `json:"duracao_min,omitempty"`
	Preco      *float64 `json:"preco,omitempty"`
	Ativo      *bool    `json:"ativo,omitempty"`
}

// --------- Handlers ---------

func (h *ServicoHandler) List(c *gin.Context) {
	unidadeID := c.MustGet(middleware.ContextUnidadeID).(uint)

	categoria := strings.ToLower(strings.TrimSpace(c.Query("categoria")))
	ativoStr := strings.TrimSpace(c.Query("ativo"))
	busca := strings.ToLower(strings.TrimSpace(c.Query("busca")))

	q := h.db.Where("unidade_id = ?", unidadeID)

	if categoria != "" {
		q = q.Where("LOWER(categoria) = ?", categoria)
	}

	if ativoStr == "true" {
		q = q.Where("ativo = ?", true)
	} else if ativoStr == "false" {
		q = q.Where("ativo = ?", false)
	}

	if busca != "" {
		like := "%" + busca + "%"
		q = q.Where("LOWER(nome) LIKE ? OR LOWER(descricao) LIKE ?", like, like)
	}

	var servicos []models.Servico
	if err := q.Order("id ASC").Find(&servicos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "falha_ao_listar_servicos"})
		return
	}

	httpresp.List(c, servicos)
}

func (h *ServicoHandler) Create(c *gin.Context) {
	unidadeID := c.MustGet(middleware.ContextUnidadeID).(uint)

	var req CreateServicoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "dados_invalidos",
			"details": err.Error(),
		})
		return
	}

	servico := models.Servico{
		UnidadeID:  unidadeID,
		Nome:       req.Nome,
		Descricao:  req.Descricao,
		DuracaoMin: req.DuracaoMin,
		Preco:      req.Preco,
		Ativo:      true,
		Categoria:  strings.ToLower(req.Categoria),
	}

	if err := h.db.Create(&servico).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "falha_ao_criar_servico"})
		return
	}

	httpresp.Created(c, servico)
}

// Update altera o catálogo daqui em diante: agendamentos existentes
// mantêm a duração e o preço copiados na criação.
func (h *ServicoHandler) Update(c *gin.Context) {
	unidadeID := c.MustGet(middleware.ContextUnidadeID).(uint)

	id := c.Param("id")

	var servico models.Servico
	if err := h.db.
		Where("id = ? AND unidade_id = ?", id, unidadeID).
		First(&servico).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "servico_nao_encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "falha_ao_buscar_servico"})
		return
	}

	var req UpdateServicoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "dados_invalidos",
			"details": err.Error(),
		})
		return
	}

	if req.Nome != nil {
		servico.Nome = *req.Nome
	}
	if req.Descricao != nil {
		servico.Descricao = *req.Descricao
	}
	if req.DuracaoMin != nil {
		servico.DuracaoMin = *req.DuracaoMin
	}
	if req.Preco != nil {
		servico.Preco = *req.Preco
	}
	if req.Ativo != nil {
		servico.Ativo = *req.Ativo
	}

	if err := h.db.Save(&servico).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "falha_ao_atualizar_servico"})
		return
	}

	httpresp.OK(c, servico)
}
