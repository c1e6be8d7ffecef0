package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/xavierca1/prospecta/internal/entity"
	"github.com/xavierca1/prospecta/internal/infra/queue"
)

type RunCampaignUseCase struct {
	LeadRepo  entity.LeadRepositoryInterface
	EmailRepo entity.EmailRepositoryInterface
	Generator DraftGenerator
	Transport MailTransport
	Events    EventPublisherInterface // opcional, best-effort
}

func NewRunCampaignUseCase(
	leadRepo entity.LeadRepositoryInterface,
	emailRepo entity.EmailRepositoryInterface,
	generator DraftGenerator,
	transport MailTransport,
	events EventPublisherInterface,
) *RunCampaignUseCase {
	return &RunCampaignUseCase{
		LeadRepo:  leadRepo,
		EmailRepo: emailRepo,
		Generator: generator,
		Transport: transport,
		Events:    events,
	}
}

// Execute dispara o primeiro contato para todos os leads Pending, em
// ordem, um por vez (rate limit do Gmail e da OpenAI). Primeiro erro
// aborta a chamada inteira; o que já foi enviado fica enviado, então
// reinvocar depois de um erro pode reenviar o lead que falhou no meio.
func (uc *RunCampaignUseCase) Execute(ctx context.Context) (int, error) {
	leads, err := uc.LeadRepo.FindByStatus(ctx, entity.StatusPending)
	if err != nil {
		return 0, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "falha ao buscar leads pendentes: " + err.Error(),
		}
	}

	sent := 0
	for _, lead := range leads {
		draft, err := uc.Generator.GenerateInitial(ctx, lead)
		if err != nil {
			return sent, fmt.Errorf("gerar email para %s: %w", lead.Email, err)
		}

		if _, err := uc.Transport.Send(ctx, lead.Email, draft.Subject, draft.Body); err != nil {
			return sent, fmt.Errorf("enviar email para %s: %w", lead.Email, err)
		}

		// Revalida o lead antes de gravar o Email filho (sem órfãos)
		fresh, err := uc.LeadRepo.FindByID(ctx, lead.ID)
		if err != nil {
			return sent, fmt.Errorf("revalidar lead %s: %w", lead.ID, err)
		}
		if fresh == nil {
			log.Printf("⚠️ Lead %s sumiu durante o disparo, pulando registro", lead.ID)
			continue
		}

		email := entity.NewEmail(lead.ID, draft.Subject, draft.Body, entity.EmailTypeInitial)
		if err := uc.EmailRepo.Create(ctx, email); err != nil {
			return sent, fmt.Errorf("registrar email do lead %s: %w", lead.ID, err)
		}

		if err := uc.LeadRepo.UpdateStatus(ctx, lead.ID, entity.StatusSent); err != nil {
			return sent, fmt.Errorf("atualizar status do lead %s: %w", lead.ID, err)
		}

		sent++
		uc.publish(ctx, queue.OutreachEvent{
			Type:         queue.EventInitialSent,
			LeadID:       lead.ID,
			LeadEmail:    lead.Email,
			BusinessName: lead.BusinessName,
			OccurredAt:   time.Now(),
		})
	}

	uc.publish(ctx, queue.OutreachEvent{
		Type:       queue.EventCampaignFinished,
		SentCount:  sent,
		OccurredAt: time.Now(),
	})

	log.Printf("🚀 Campanha concluída: %d emails enviados", sent)
	return sent, nil
}

// publish é best-effort: fila fora do ar não pode derrubar o disparo.
func (uc *RunCampaignUseCase) publish(ctx context.Context, event queue.OutreachEvent) {
	if uc.Events == nil {
		return
	}
	if err := uc.Events.PublishEvent(ctx, event); err != nil {
		log.Printf("⚠️ Falha ao publicar evento %s: %v", event.Type, err)
	}
}
