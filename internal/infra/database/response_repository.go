package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/prospecta/internal/entity"
)

type ResponseRepository struct {
	DB *sql.DB
}

func NewResponseRepository(db *sql.DB) *ResponseRepository {
	return &ResponseRepository{DB: db}
}

func (r *ResponseRepository) Create(ctx context.Context, response *entity.Response) error {
	query := `
		INSERT INTO responses (id, lead_id, response_text, received_at, sentiment)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.DB.ExecContext(ctx, query,
		response.ID,
		response.LeadID,
		response.ResponseText,
		response.ReceivedAt,
		response.Sentiment,
	)
	return err
}

func (r *ResponseRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM responses`).Scan(&count)
	return count, err
}
