package notify

import (
	"context"

	"github.com/go-redis/redis/v8"
)

const (
	CanalWhatsapp = "whatsapp"
	CanalEmail    = "email"
	CanalSMS      = "sms"
)

// Sender aceita ou rejeita o payload imediatamente; a entrega final é
// responsabilidade do worker que consome a fila.
type Sender interface {
	Send(ctx context.Context, payload []byte) (resposta string, err error)
}

// RedisOutbox publica o payload numa lista do Redis consumida pelo
// worker externo de WhatsApp/email/SMS.
type RedisOutbox struct {
	client *redis.Client
	queue  string
}

func NewRedisOutbox(addr, queue string) *RedisOutbox {
	return &RedisOutbox{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		queue:  queue,
	}
}

func (o *RedisOutbox) Send(ctx context.Context, payload []byte) (string, error) {
	if err := o.client.LPush(ctx, o.queue, payload).Err(); err != nil {
		return "", err
	}
	return "queued:" + o.queue, nil
}
