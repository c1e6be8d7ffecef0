package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xavierca1/prospecta/internal/entity"
)

type ImportLeadsUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
}

func NewImportLeadsUseCase(leadRepo entity.LeadRepositoryInterface) *ImportLeadsUseCase {
	return &ImportLeadsUseCase{LeadRepo: leadRepo}
}

type PreviewOutput struct {
	Headers           []string                     `json:"headers"`
	SuggestedMappings map[string]MappingSuggestion `json:"suggested_mappings"`
	UnmappedColumns   []string                     `json:"unmapped_columns"`
	SampleRows        []map[string]string          `json:"sample_rows"`
}

// Preview analisa os headers do CSV e devolve o de-para sugerido com
// as 3 primeiras linhas de amostra, sem gravar nada.
func (uc *ImportLeadsUseCase) Preview(file io.Reader) (*PreviewOutput, error) {
	headers, rows, err := parseCSV(file)
	if err != nil {
		return nil, err
	}

	analysis := AnalyzeCSVHeaders(headers)

	sample := rows
	if len(sample) > 3 {
		sample = sample[:3]
	}

	return &PreviewOutput{
		Headers:           headers,
		SuggestedMappings: analysis.Mappings,
		UnmappedColumns:   analysis.Unmapped,
		SampleRows:        sample,
	}, nil
}

// Execute importa os leads do CSV como Pending. Com mappings custom
// usa o de-para do usuário; sem, cai no match exato de nome de coluna.
func (uc *ImportLeadsUseCase) Execute(ctx context.Context, file io.Reader, customMappings map[string]string) (int, error) {
	_, rows, err := parseCSV(file)
	if err != nil {
		return 0, err
	}

	var leads []*entity.Lead
	for _, row := range rows {
		var fields map[string]string
		if customMappings != nil {
			fields = ApplyMappings(row, customMappings)
		} else {
			fields = map[string]string{
				"business_name":       row["Business Name"],
				"decision_maker_name": row["Decision Maker Name"],
				"email":               row["Email"],
				"website":             row["Website"],
				"industry":            row["Industry"],
			}
		}

		// Linha sem email não serve para outreach
		if fields["email"] == "" {
			continue
		}

		leads = append(leads, entity.NewLead(
			fields["business_name"],
			fields["decision_maker_name"],
			fields["email"],
			fields["website"],
			fields["industry"],
		))
	}

	if len(leads) == 0 {
		return 0, &DomainError{
			Code:    "EMPTY_IMPORT",
			Message: "nenhum lead válido no arquivo",
		}
	}

	if err := uc.LeadRepo.BulkCreate(ctx, leads); err != nil {
		return 0, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "falha ao importar leads: " + err.Error(),
		}
	}

	return len(leads), nil
}

func parseCSV(file io.Reader) ([]string, []map[string]string, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao ler CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, &DomainError{Code: "EMPTY_FILE", Message: "arquivo CSV vazio"}
	}

	headers := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[header] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return headers, rows, nil
}
