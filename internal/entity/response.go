package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Sentimento classificado de uma resposta recebida.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

type Response struct {
	ID           string    `json:"id"`
	LeadID       string    `json:"lead_id"`
	ResponseText string    `json:"response_text"`
	ReceivedAt   time.Time `json:"received_at"`
	Sentiment    string    `json:"sentiment"`
}

type ResponseRepositoryInterface interface {
	Create(ctx context.Context, response *Response) error
	Count(ctx context.Context) (int, error)
}

func NewResponse(leadID, text, sentiment string) *Response {
	return &Response{
		ID:           uuid.New().String(),
		LeadID:       leadID,
		ResponseText: text,
		ReceivedAt:   time.Now(),
		Sentiment:    sentiment,
	}
}
