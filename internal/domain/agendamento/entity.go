package agendamento

import "time"

type AvailabilityInput struct {
	UnidadeID      uint
	ProfissionalID uint
	ServicoID      uint
	Data           time.Time
}

// TimeSlot é um horário da grade do dia. A grade inteira é retornada,
// inclusive horários ocupados, com a flag Disponivel calculada no momento
// da consulta. A grade é consultiva: a reserva só acontece na criação.
type TimeSlot struct {
	Inicio         time.Time `json:"inicio"`
	Fim            time.Time `json:"fim"`
	ProfissionalID uint      `json:"profissional_id"`
	Disponivel     bool      `json:"disponivel"`
}
