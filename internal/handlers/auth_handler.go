package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/agendalivre/agenda-api/internal/config"
	"github.com/agendalivre/agenda-api/internal/models"
	"github.com/agendalivre/agenda-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	UnidadeNome     string `json:"unidade_nome" binding:"required"`
	UnidadeSlug     string `json:"unidade_slug" binding:"required"`
	UnidadeTelefone string `json:"unidade_telefone"`
	UnidadeEndereco string `json:"unidade_endereco"`

	Nome     string `json:"nome" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Senha    string `json:"senha" binding:"required,min=6"`
	Telefone string `json:"telefone"`
}

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "dados_invalidos",
			"details": err.Error(),
		})
		return
	}

	slug := strings.ToLower(strings.TrimSpace(req.UnidadeSlug))

	var count int64
	h.db.Model(&models.Unidade{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slug_ja_existe"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "dominio_de_email_invalido",
			"message": "O domínio do e-mail informado não parece ser válido.",
		})
		return
	}

	unidade := models.Unidade{
		Nome:     req.UnidadeNome,
		Slug:     slug,
		Telefone: req.UnidadeTelefone,
		Endereco: req.UnidadeEndereco,
	}

	if err := h.db.Create(&unidade).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "falha_ao_criar_unidade"})
		return
	}

	// Toda unidade nasce com a configuração padrão de autoatendimento.
	cfg := models.ConfiguracaoUnidade{
		UnidadeID:                      unidade.ID,
		AntecedenciaMinimaHoras:        24,
		MaxReagendamentos:              2,
		PermiteCancelamento:            true,
		HorarioLimiteCancelamentoHoras: 2,
		AgendamentoOnline:              true,
		NomeExibicao:                   unidade.Nome,
	}

	if err := h.db.Create(&cfg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "falha_ao_criar_configuracao"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "falha_ao_gerar_hash"})
		return
	}

	prof := models.Profissional{
		UnidadeID: unidade.ID,
		Nome:      req.Nome,
		Email:     email,
		SenhaHash: string(hashed),
		Telefone:  req.Telefone,
		Papel:     "dono",
	}

	if err := h.db.Create(&prof).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "falha_ao_criar_profissional"})
		return
	}

	token, err := h.generateToken(&prof)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "falha_ao_gerar_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"profissional": gin.H{
			"id":         prof.ID,
			"nome":       prof.Nome,
			"email":      prof.Email,
			"telefone":   prof.Telefone,
			"unidade_id": prof.UnidadeID,
		},
		"unidade": gin.H{
			"id":       unidade.ID,
			"nome":     unidade.Nome,
			"slug":     unidade.Slug,
			"telefone": unidade.Telefone,
			"endereco": unidade.Endereco,
		},
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "dados_invalidos",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var prof models.Profissional
	if err := h.db.Preload("Unidade").
		Where("email = ?", email).
		First(&prof).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "credenciais_invalidas"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erro_interno"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(prof.SenhaHash), []byte(req.Senha)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "credenciais_invalidas"})
		return
	}

	token, err := h.generateToken(&prof)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "falha_ao_gerar_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profissional": gin.H{
			"id":         prof.ID,
			"nome":       prof.Nome,
			"email":      prof.Email,
			"telefone":   prof.Telefone,
			"unidade_id": prof.UnidadeID,
		},
		"unidade": gin.H{
			"id":       prof.Unidade.ID,
			"nome":     prof.Unidade.Nome,
			"slug":     prof.Unidade.Slug,
			"telefone": prof.Unidade.Telefone,
			"endereco": prof.Unidade.Endereco,
		},
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(prof *models.Profissional) (string, error) {
	claims := jwt.MapClaims{
		"sub":       prof.ID,
		"unidadeId": prof.UnidadeID,
		"papel":     prof.Papel,
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
		"iat":       time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
