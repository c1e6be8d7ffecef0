package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/prospecta/internal/entity"
)

// OperatorNotifier avisa o dono da conta sobre eventos que pedem ação
// humana. A implementação real é o sender SMTP em infra/mail.
type OperatorNotifier interface {
	SendPositiveReplyAlert(businessName, leadEmail, snippet string) error
	SendCampaignReport(sentCount int) error
}

type Worker struct {
	Channel  *amqp.Channel
	Notifier OperatorNotifier
}

func NewWorker(ch *amqp.Channel, notifier OperatorNotifier) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual é mais seguro)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var event OutreachEvent
			if err := json.Unmarshal(d.Body, &event); err != nil {
				log.Printf("❌ [EVENTS] JSON inválido: %s", err)
				// Mensagem podre, rejeita sem requeue para não travar a fila
				d.Nack(false, false)
				continue
			}

			if err := w.processEvent(event); err != nil {
				log.Printf("❌ [EVENTS] Erro ao processar %s: %s", event.Type, err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker de eventos aguardando na fila '%s'", queueName)
	<-forever
}

func (w *Worker) processEvent(event OutreachEvent) error {
	switch event.Type {
	case EventReplyIngested:
		log.Printf("📥 [EVENTS] Resposta de %s (%s)", event.LeadEmail, event.Sentiment)
		if event.Sentiment == entity.SentimentPositive && w.Notifier != nil {
			return w.Notifier.SendPositiveReplyAlert(event.BusinessName, event.LeadEmail, event.Snippet)
		}
		return nil

	case EventCampaignFinished:
		log.Printf("🏁 [EVENTS] Campanha finalizada: %d emails", event.SentCount)
		if w.Notifier != nil {
			return w.Notifier.SendCampaignReport(event.SentCount)
		}
		return nil

	case EventInitialSent, EventFollowUpSent:
		log.Printf("✉️ [EVENTS] %s -> %s", event.Type, event.LeadEmail)
		return nil

	default:
		log.Printf("⚠️ [EVENTS] Tipo desconhecido: %s. Apenas logando.", event.Type)
		// Ack mesmo assim, não sabemos tratar e requeue não resolve
		return nil
	}
}
