package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/prospecta/internal/entity"
	"github.com/xavierca1/prospecta/internal/infra/integration/gmail"
	"github.com/xavierca1/prospecta/internal/infra/queue"
)

// Draft é o rascunho produzido pelo gerador (IA ou template local).
type Draft struct {
	Subject string
	Body    string
}

// DraftGenerator é a capability de geração de texto. Backend escolhido
// na construção (OpenAI com chave, template local sem), nunca em runtime.
type DraftGenerator interface {
	GenerateInitial(ctx context.Context, lead *entity.Lead) (*Draft, error)
	GenerateFollowUp(ctx context.Context, lead *entity.Lead, priorEmails []*entity.Email) (*Draft, error)
	ClassifySentiment(ctx context.Context, text string) (string, error)
}

// MailTransport é a caixa de saída/entrada: enviar, listar não lidas
// desde um corte e marcar como lida.
type MailTransport interface {
	Send(ctx context.Context, to, subject, bodyHTML string) (string, error)
	ListUnreadSince(ctx context.Context, since time.Time) ([]gmail.Message, error)
	MarkRead(ctx context.Context, messageID string) error
}

type EventPublisherInterface interface {
	PublishEvent(ctx context.Context, event queue.OutreachEvent) error
}
