package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// FollowUpPayload: evento que consume el CRM cuando se contactó un lead.
type FollowUpPayload struct {
	LeadID string `json:"lead_id"`
	Email  string `json:"email"`
	IMEI   string `json:"imei"`

	RunID  string    `json:"run_id"`
	SentAt time.Time `json:"sent_at"`
}

type FollowUpProducerInterface interface {
	PublishFollowUp(ctx context.Context, payload FollowUpPayload) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishFollowUp(ctx context.Context, payload FollowUpPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error al convertir payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName, // ex.leads
		RoutingKey,   // k.followup
		false,        // Mandatory
		false,        // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Mensaje persistido a disco
		},
	)

	if err != nil {
		return fmt.Errorf("falla al publicar en RabbitMQ: %v", err)
	}

	return nil
}
