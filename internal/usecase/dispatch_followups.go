package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/xavierca1/prospecta/internal/entity"
	"github.com/xavierca1/prospecta/internal/infra/queue"
)

// FollowUpWindow: lead Sent sem resposta há mais de 48h vira follow-up.
// O corte é sobre created_at do lead, não sobre o último email — quem
// já recebeu follow-up está em Follow-up Sent e sai do filtro sozinho.
const FollowUpWindow = 48 * time.Hour

type DispatchFollowUpsUseCase struct {
	LeadRepo  entity.LeadRepositoryInterface
	EmailRepo entity.EmailRepositoryInterface
	Generator DraftGenerator
	Transport MailTransport
	Events    EventPublisherInterface // opcional, best-effort
}

func NewDispatchFollowUpsUseCase(
	leadRepo entity.LeadRepositoryInterface,
	emailRepo entity.EmailRepositoryInterface,
	generator DraftGenerator,
	transport MailTransport,
	events EventPublisherInterface,
) *DispatchFollowUpsUseCase {
	return &DispatchFollowUpsUseCase{
		LeadRepo:  leadRepo,
		EmailRepo: emailRepo,
		Generator: generator,
		Transport: transport,
		Events:    events,
	}
}

// Execute envia follow-up para cada lead Sent mais velho que a janela.
// Isolamento por lead: erro em um não bloqueia os demais.
func (uc *DispatchFollowUpsUseCase) Execute(ctx context.Context, now time.Time) (int, error) {
	cutoff := now.Add(-FollowUpWindow)

	leads, err := uc.LeadRepo.FindStale(ctx, entity.StatusSent, cutoff)
	if err != nil {
		return 0, fmt.Errorf("buscar leads sem resposta: %w", err)
	}

	dispatched := 0
	for _, lead := range leads {
		// Histórico de emails entra como contexto do rascunho
		history, err := uc.EmailRepo.FindByLeadID(ctx, lead.ID)
		if err != nil {
			log.Printf("❌ [FOLLOWUP] Erro ao buscar histórico do lead %s: %v", lead.ID, err)
			continue
		}

		draft, err := uc.Generator.GenerateFollowUp(ctx, lead, history)
		if err != nil {
			log.Printf("❌ [FOLLOWUP] Erro ao gerar follow-up para %s: %v", lead.Email, err)
			continue
		}

		if _, err := uc.Transport.Send(ctx, lead.Email, draft.Subject, draft.Body); err != nil {
			log.Printf("❌ [FOLLOWUP] Erro ao enviar para %s: %v", lead.Email, err)
			continue
		}

		// Revalida antes de gravar o Email filho
		fresh, err := uc.LeadRepo.FindByID(ctx, lead.ID)
		if err != nil || fresh == nil {
			log.Printf("⚠️ [FOLLOWUP] Lead %s indisponível após envio (err=%v), pulando registro", lead.ID, err)
			continue
		}

		email := entity.NewEmail(lead.ID, draft.Subject, draft.Body, entity.EmailTypeFollowUp)
		if err := uc.EmailRepo.Create(ctx, email); err != nil {
			log.Printf("❌ [FOLLOWUP] Erro ao registrar email do lead %s: %v", lead.ID, err)
			continue
		}

		if err := uc.LeadRepo.UpdateStatus(ctx, lead.ID, entity.StatusFollowUpSent); err != nil {
			log.Printf("❌ [FOLLOWUP] Erro ao atualizar status do lead %s: %v", lead.ID, err)
			continue
		}

		dispatched++
		uc.publish(ctx, queue.OutreachEvent{
			Type:         queue.EventFollowUpSent,
			LeadID:       lead.ID,
			LeadEmail:    lead.Email,
			BusinessName: lead.BusinessName,
			OccurredAt:   time.Now(),
		})
	}

	return dispatched, nil
}

func (uc *DispatchFollowUpsUseCase) publish(ctx context.Context, event queue.OutreachEvent) {
	if uc.Events == nil {
		return
	}
	if err := uc.Events.PublishEvent(ctx, event); err != nil {
		log.Printf("⚠️ Falha ao publicar evento %s: %v", event.Type, err)
	}
}
