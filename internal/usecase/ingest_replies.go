package usecase

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"time"

	"github.com/xavierca1/prospecta/internal/entity"
	"github.com/xavierca1/prospecta/internal/infra/queue"
)

var angleAddressRe = regexp.MustCompile(`<(.+)>`)

// ExtractAddress tira o endereço do header From.
// "Jane Doe <jane@acme.com>" -> "jane@acme.com".
// Sem angle brackets o header cru já é o endereço.
func ExtractAddress(fromHeader string) string {
	if m := angleAddressRe.FindStringSubmatch(fromHeader); m != nil {
		return m[1]
	}
	return fromHeader
}

type IngestRepliesUseCase struct {
	LeadRepo     entity.LeadRepositoryInterface
	ResponseRepo entity.ResponseRepositoryInterface
	Generator    DraftGenerator
	Transport    MailTransport
	Events       EventPublisherInterface // opcional, best-effort
}

func NewIngestRepliesUseCase(
	leadRepo entity.LeadRepositoryInterface,
	responseRepo entity.ResponseRepositoryInterface,
	generator DraftGenerator,
	transport MailTransport,
	events EventPublisherInterface,
) *IngestRepliesUseCase {
	return &IngestRepliesUseCase{
		LeadRepo:     leadRepo,
		ResponseRepo: responseRepo,
		Generator:    generator,
		Transport:    transport,
		Events:       events,
	}
}

// Execute processa as mensagens não lidas recebidas desde o corte.
// Falha em uma mensagem não derruba o lote: loga, deixa não lida e
// segue para a próxima (o próximo ciclo é o retry).
func (uc *IngestRepliesUseCase) Execute(ctx context.Context, since time.Time) (int, error) {
	messages, err := uc.Transport.ListUnreadSince(ctx, since)
	if err != nil {
		return 0, fmt.Errorf("listar mensagens não lidas: %w", err)
	}

	ingested := 0
	for _, msg := range messages {
		address := ExtractAddress(msg.From)

		lead, err := uc.LeadRepo.FindByEmail(ctx, address)
		if err != nil {
			log.Printf("❌ [INBOX] Erro ao buscar lead de %s: %v", address, err)
			continue
		}
		if lead == nil {
			// Mensagem de desconhecido: não é erro. Fica não lida e
			// vai continuar não batendo nos próximos ciclos.
			log.Printf("📭 [INBOX] Sem lead para %s, ignorando", address)
			continue
		}

		sentiment, err := uc.Generator.ClassifySentiment(ctx, msg.Snippet)
		if err != nil {
			log.Printf("❌ [INBOX] Erro ao classificar resposta de %s: %v", address, err)
			continue
		}

		response := entity.NewResponse(lead.ID, msg.Snippet, sentiment)
		if err := uc.ResponseRepo.Create(ctx, response); err != nil {
			log.Printf("❌ [INBOX] Erro ao gravar resposta de %s: %v", address, err)
			continue
		}

		if lead.ApplyReplySentiment(sentiment) {
			if err := uc.LeadRepo.UpdateStatus(ctx, lead.ID, lead.Status); err != nil {
				log.Printf("❌ [INBOX] Erro ao atualizar status do lead %s: %v", lead.ID, err)
				continue
			}
		}

		// Marca como lida SÓ depois da Response persistida. Crash no
		// meio reprocessa a mensagem, nunca perde o dado.
		if err := uc.Transport.MarkRead(ctx, msg.ID); err != nil {
			log.Printf("⚠️ [INBOX] Resposta gravada mas falhou o mark-read de %s: %v", msg.ID, err)
		}

		ingested++
		log.Printf("📥 [INBOX] Resposta de %s classificada como %s", address, sentiment)

		uc.publish(ctx, queue.OutreachEvent{
			Type:         queue.EventReplyIngested,
			LeadID:       lead.ID,
			LeadEmail:    lead.Email,
			BusinessName: lead.BusinessName,
			Sentiment:    sentiment,
			Snippet:      msg.Snippet,
			OccurredAt:   time.Now(),
		})
	}

	return ingested, nil
}

func (uc *IngestRepliesUseCase) publish(ctx context.Context, event queue.OutreachEvent) {
	if uc.Events == nil {
		return
	}
	if err := uc.Events.PublishEvent(ctx, event); err != nil {
		log.Printf("⚠️ Falha ao publicar evento %s: %v", event.Type, err)
	}
}
