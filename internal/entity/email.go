package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	EmailTypeInitial  = "initial"
	EmailTypeFollowUp = "follow-up"
	EmailTypeReply    = "reply"
)

// Email enviado para um Lead. Criado uma vez por envio, imutável depois.
type Email struct {
	ID          string    `json:"id"`
	LeadID      string    `json:"lead_id"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	SentAt      time.Time `json:"sent_at"`
	AIGenerated bool      `json:"ai_generated"`
	EmailType   string    `json:"email_type"` // initial, follow-up, reply
}

type EmailRepositoryInterface interface {
	Create(ctx context.Context, email *Email) error
	FindByLeadID(ctx context.Context, leadID string) ([]*Email, error)
	Count(ctx context.Context) (int, error)
}

func NewEmail(leadID, subject, body, emailType string) *Email {
	return &Email{
		ID:          uuid.New().String(),
		LeadID:      leadID,
		Subject:     subject,
		Body:        body,
		SentAt:      time.Now(),
		AIGenerated: true,
		EmailType:   emailType,
	}
}
