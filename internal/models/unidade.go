package models

import "time"

type Unidade struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Nome     string `gorm:"size:100;not null" json:"nome"`
	Slug     string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Telefone string `gorm:"size:20" json:"telefone"`
	Endereco string `gorm:"size:255" json:"endereco"`
	Timezone string `gorm:"size:50;default:'America/Sao_Paulo'" json:"timezone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ConfiguracaoUnidade guarda a política de autoatendimento da unidade.
// Existe exatamente uma linha por unidade; o fluxo público só lê.
type ConfiguracaoUnidade struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	UnidadeID uint    `gorm:"uniqueIndex;not null" json:"unidade_id"`
	Unidade   Unidade `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	AntecedenciaMinimaHoras        int  `gorm:"default:24" json:"antecedencia_minima_horas"`
	MaxReagendamentos              int  `gorm:"default:2" json:"max_reagendamentos"`
	PermiteCancelamento            bool `gorm:"default:true" json:"permite_cancelamento"`
	HorarioLimiteCancelamentoHoras int  `gorm:"default:2" json:"horario_limite_cancelamento_horas"`
	AgendamentoOnline              bool `gorm:"default:true" json:"agendamento_online"`

	NomeExibicao      string `gorm:"size:100" json:"nome_exibicao"`
	MensagemBoasVindas string `gorm:"size:255" json:"mensagem_boas_vindas"`
	CorTema           string `gorm:"size:20" json:"cor_tema"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
