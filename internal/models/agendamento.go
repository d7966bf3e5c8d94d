package models

import "time"

type Agendamento struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UnidadeID uint    `json:"unidade_id"`
	Unidade   Unidade `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"unidade"`

	ProfissionalID uint         `json:"profissional_id"`
	Profissional   Profissional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"profissional"`

	ClienteID *uint   `json:"cliente_id"`
	Cliente   Cliente `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"cliente"`

	// Contato livre usado quando não há Cliente cadastrado (ex.: origem whatsapp)
	ClienteNome     string `gorm:"size:100" json:"cliente_nome"`
	ClienteTelefone string `gorm:"size:20" json:"cliente_telefone"`
	ClienteEmail    string `gorm:"size:100" json:"cliente_email"`

	ServicoID uint    `json:"servico_id"`
	Servico   Servico `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"servico"`

	Inicio time.Time `json:"inicio"`

	// Copiados do serviço no momento da criação; edições posteriores do
	// catálogo não alteram agendamentos existentes.
	DuracaoMin int     `json:"duracao_min"`
	Preco      float64 `json:"preco"`

	Status string `gorm:"size:20;default:'pendente'" json:"status"`

	Observacoes string `gorm:"size:255" json:"observacoes"`

	// Token opaco de autoatendimento; um por agendamento, imutável.
	TokenAcesso string `gorm:"size:64;uniqueIndex;not null" json:"-"`

	ReagendamentosCount int    `gorm:"default:0" json:"reagendamentos_count"`
	Origem              string `gorm:"size:20;default:'publico'" json:"origem"`

	CanceladoEm  *time.Time `json:"cancelado_em"`
	ConcluidoEm  *time.Time `json:"concluido_em"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Agendamento) Fim() time.Time {
	return a.Inicio.Add(time.Duration(a.DuracaoMin) * time.Minute)
}
