package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/prospecta/internal/entity"
)

type EmailRepository struct {
	DB *sql.DB
}

func NewEmailRepository(db *sql.DB) *EmailRepository {
	return &EmailRepository{DB: db}
}

func (r *EmailRepository) Create(ctx context.Context, email *entity.Email) error {
	query := `
		INSERT INTO emails (id, lead_id, subject, body, sent_at, ai_generated, email_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.DB.ExecContext(ctx, query,
		email.ID,
		email.LeadID,
		email.Subject,
		email.Body,
		email.SentAt,
		email.AIGenerated,
		email.EmailType,
	)
	return err
}

func (r *EmailRepository) FindByLeadID(ctx context.Context, leadID string) ([]*entity.Email, error) {
	query := `
		SELECT id, lead_id, subject, body, sent_at, ai_generated, email_type
		FROM emails
		WHERE lead_id = $1
		ORDER BY sent_at ASC
	`

	rows, err := r.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var emails []*entity.Email
	for rows.Next() {
		var email entity.Email
		err := rows.Scan(
			&email.ID,
			&email.LeadID,
			&email.Subject,
			&email.Body,
			&email.SentAt,
			&email.AIGenerated,
			&email.EmailType,
		)
		if err != nil {
			return nil, err
		}
		emails = append(emails, &email)
	}

	return emails, rows.Err()
}

func (r *EmailRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM emails`).Scan(&count)
	return count, err
}
