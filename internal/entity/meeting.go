package entity

import (
	"context"
	"time"
)

// Meeting é registro lateral: a automação não agenda nada aqui,
// só expomos leitura para o dashboard.
type Meeting struct {
	ID            string    `json:"id"`
	LeadID        string    `json:"lead_id"`
	ScheduledTime time.Time `json:"scheduled_time"`
	MeetingLink   string    `json:"meeting_link,omitempty"`
	Status        string    `json:"status"` // Pending, Confirmed, Cancelled
}

type MeetingRepositoryInterface interface {
	FindByLeadID(ctx context.Context, leadID string) ([]*Meeting, error)
}
