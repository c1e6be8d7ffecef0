package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Tipos de evento publicados pelos loops de automação.
const (
	EventInitialSent      = "lead.initial_sent"
	EventReplyIngested    = "lead.reply_ingested"
	EventFollowUpSent     = "lead.followup_sent"
	EventCampaignFinished = "campaign.finished"
)

type OutreachEvent struct {
	Type         string    `json:"type"`
	LeadID       string    `json:"lead_id,omitempty"`
	LeadEmail    string    `json:"lead_email,omitempty"`
	BusinessName string    `json:"business_name,omitempty"`
	Sentiment    string    `json:"sentiment,omitempty"`
	Snippet      string    `json:"snippet,omitempty"`
	SentCount    int       `json:"sent_count,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type EventPublisherInterface interface {
	PublishEvent(ctx context.Context, event OutreachEvent) error
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

func (p *RabbitMQProducer) PublishEvent(ctx context.Context, event OutreachEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("erro ao converter evento: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %v", err)
	}

	return nil
}
