package notify

import (
	"context"
	"encoding/json"
	"log"
	"time"
)

// Evento descreve uma notificação a disparar depois de uma transição
// comitada. O disparo é fire-and-forget: falha aqui nunca desfaz nem
// bloqueia a transição que o originou.
type Evento struct {
	AgendamentoID uint           `json:"agendamento_id"`
	Tipo          string         `json:"tipo"`
	Canal         string         `json:"canal"`
	Destinatario  string         `json:"destinatario"`
	Contexto      map[string]any `json:"contexto,omitempty"`
}

type Dispatcher struct {
	sender Sender
	logs   *Logger
	queue  chan Evento
}

func NewDispatcher(sender Sender, logs *Logger) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		logs:   logs,
		queue:  make(chan Evento, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		d.enviar(ev)
	}
}

func (d *Dispatcher) enviar(ev Evento) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	payload, err := json.Marshal(ev)
	if err != nil {
		log.Println("notify: payload inválido:", err)
		return
	}

	resposta, err := d.sender.Send(ctx, payload)
	status := StatusPendente
	if err != nil {
		status = StatusFalha
		resposta = err.Error()
		log.Println("notify: envio falhou:", err)
	}

	if err := d.logs.Log(ev, status, resposta); err != nil {
		log.Println("notify: log falhou:", err)
	}
}

func (d *Dispatcher) Dispatch(ev Evento) {
	if ev.Destinatario == "" {
		return
	}

	select {
	case d.queue <- ev:
		// enfileirado
	default:
		// fila cheia → descartamos a notificação (nunca quebrar a API)
		log.Println("notify: fila cheia, descartando evento")
	}
}

// CanalPara escolhe o canal a partir do contato disponível.
func CanalPara(telefone, email string) (canal, destinatario string) {
	if telefone != "" {
		return CanalWhatsapp, telefone
	}
	if email != "" {
		return CanalEmail, email
	}
	return "", ""
}
