package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Status do Lead dentro do funil de outreach.
// Os valores são gravados como texto no banco, não mude as strings.
const (
	StatusPending          = "Pending"
	StatusSent             = "Sent"
	StatusReplied          = "Replied"
	StatusMeetingScheduled = "Meeting Scheduled"
	StatusNoResponse       = "No Response"
	StatusNotInterested    = "Not Interested"
	StatusFollowUpSent     = "Follow-up Sent"
	StatusCampaignEnded    = "Campaign Ended"
)

type Lead struct {
	ID                string    `json:"id"`
	BusinessName      string    `json:"business_name"`
	DecisionMakerName string    `json:"decision_maker_name"`
	Email             string    `json:"email"`
	Website           string    `json:"website,omitempty"`
	Industry          string    `json:"industry,omitempty"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type LeadRepositoryInterface interface {
	FindAll(ctx context.Context) ([]*Lead, error)
	FindByStatus(ctx context.Context, status string) ([]*Lead, error)
	FindByEmail(ctx context.Context, email string) (*Lead, error)
	FindByID(ctx context.Context, id string) (*Lead, error)

	// FindStale busca leads no status informado criados antes do corte.
	// É o filtro do follow-up: status = Sent e created_at < now - 48h.
	FindStale(ctx context.Context, status string, before time.Time) ([]*Lead, error)

	UpdateStatus(ctx context.Context, id, status string) error
	BulkCreate(ctx context.Context, leads []*Lead) error
	CountByStatus(ctx context.Context) (map[string]int, error)
}

// Factory
func NewLead(businessName, decisionMakerName, email, website, industry string) *Lead {
	return &Lead{
		ID:                uuid.New().String(),
		BusinessName:      businessName,
		DecisionMakerName: decisionMakerName,
		Email:             email,
		Website:           website,
		Industry:          industry,
		Status:            StatusPending,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
}

// ApplyReplySentiment aplica a tabela de transição de respostas.
// Roda em qualquer status atual: resposta positiva atrasada ainda
// reativa o lead (comportamento herdado do fluxo original).
// Retorna false quando o sentimento não muda nada (neutral).
func (l *Lead) ApplyReplySentiment(sentiment string) bool {
	switch sentiment {
	case SentimentPositive:
		l.Status = StatusReplied
	case SentimentNegative:
		l.Status = StatusNotInterested
	default:
		return false
	}

	l.UpdatedAt = time.Now()
	return true
}
