package dto

import "time"

type AgendamentoListDTO struct {
	ID                  uint      `json:"id"`
	Inicio              time.Time `json:"inicio"`
	Fim                 time.Time `json:"fim"`
	Status              string    `json:"status"`
	Origem              string    `json:"origem"`
	ClienteNome         string    `json:"cliente_nome"`
	ServicoNome         string    `json:"servico_nome"`
	Preco               float64   `json:"preco"`
	ReagendamentosCount int       `json:"reagendamentos_count"`
}
