package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/xavierca1/prospecta/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `id, business_name, decision_maker_name, email, website, industry, status, created_at, updated_at`

func (r *LeadRepository) FindAll(ctx context.Context) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeads(rows)
}

func (r *LeadRepository) FindByStatus(ctx context.Context, status string) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE status = $1 ORDER BY created_at ASC`

	rows, err := r.DB.QueryContext(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeads(rows)
}

// FindByEmail retorna (nil, nil) quando nenhum lead bate com o endereço.
// O email é a chave de match das respostas, mas não é unique no banco:
// em caso de duplicata fica o mais antigo (mesmo comportamento do findOne).
func (r *LeadRepository) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE email = $1 ORDER BY created_at ASC LIMIT 1`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, email))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return lead, nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return lead, nil
}

func (r *LeadRepository) FindStale(ctx context.Context, status string, before time.Time) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE status = $1 AND created_at < $2 ORDER BY created_at ASC`

	rows, err := r.DB.QueryContext(ctx, query, status, before)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeads(rows)
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE leads SET status = $1, updated_at = NOW() WHERE id = $2`

	_, err := r.DB.ExecContext(ctx, query, status, id)
	return err
}

func (r *LeadRepository) BulkCreate(ctx context.Context, leads []*entity.Lead) error {
	query := `
		INSERT INTO leads (id, business_name, decision_maker_name, email, website, industry, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	for _, lead := range leads {
		_, err := r.DB.ExecContext(ctx, query,
			lead.ID,
			lead.BusinessName,
			lead.DecisionMakerName,
			lead.Email,
			nullString(lead.Website),
			nullString(lead.Industry),
			lead.Status,
			lead.CreatedAt,
			lead.UpdatedAt,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *LeadRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	query := `SELECT status, COUNT(*) FROM leads GROUP BY status`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	return counts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	var website, industry sql.NullString

	err := row.Scan(
		&lead.ID,
		&lead.BusinessName,
		&lead.DecisionMakerName,
		&lead.Email,
		&website,
		&industry,
		&lead.Status,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	lead.Website = website.String
	lead.Industry = industry.String
	return &lead, nil
}

func scanLeads(rows *sql.Rows) ([]*entity.Lead, error) {
	var leads []*entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
