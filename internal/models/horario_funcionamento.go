package models

import "time"

type HorarioFuncionamento struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	ProfissionalID uint `json:"profissional_id"`

	DiaSemana int `json:"dia_semana"`

	Inicio      string `json:"inicio"`
	Fim         string `json:"fim"`
	PausaInicio string `json:"pausa_inicio"`
	PausaFim    string `json:"pausa_fim"`
	Ativo       bool   `json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
