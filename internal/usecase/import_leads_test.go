package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/prospecta/internal/entity"
	"github.com/xavierca1/prospecta/internal/usecase"
)

const sampleCSV = `Business Name,Decision Maker Name,Email,Website,Industry
Acme,Jane Doe,jane@acme.com,acme.com,plumbing
Bolt,John Roe,john@bolt.com,,legal
NoMail,Nobody,,,retail
`

func TestImportLeadsWithExactHeaders(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockLeadRepo.On("BulkCreate", ctx, mock.MatchedBy(func(leads []*entity.Lead) bool {
		if len(leads) != 2 {
			return false
		}
		first := leads[0]
		return first.BusinessName == "Acme" &&
			first.DecisionMakerName == "Jane Doe" &&
			first.Email == "jane@acme.com" &&
			first.Status == entity.StatusPending
	})).Return(nil).Once()

	uc := usecase.NewImportLeadsUseCase(mockLeadRepo)

	imported, err := uc.Execute(ctx, strings.NewReader(sampleCSV), nil)

	assert.NoError(t, err)
	// A linha sem email é descartada
	assert.Equal(t, 2, imported)
	mockLeadRepo.AssertExpectations(t)
}

func TestImportLeadsWithCustomMappings(t *testing.T) {
	ctx := context.Background()

	csv := "Company,Contact,Mail\nAcme,Jane,jane@acme.com\n"
	mappings := map[string]string{
		"Company": "business_name",
		"Contact": "decision_maker_name",
		"Mail":    "email",
	}

	mockLeadRepo := new(MockLeadRepository)
	mockLeadRepo.On("BulkCreate", ctx, mock.MatchedBy(func(leads []*entity.Lead) bool {
		return len(leads) == 1 && leads[0].BusinessName == "Acme" && leads[0].Email == "jane@acme.com"
	})).Return(nil)

	uc := usecase.NewImportLeadsUseCase(mockLeadRepo)

	imported, err := uc.Execute(ctx, strings.NewReader(csv), mappings)

	assert.NoError(t, err)
	assert.Equal(t, 1, imported)
}

func TestImportLeadsEmptyFileIsDomainError(t *testing.T) {
	ctx := context.Background()

	uc := usecase.NewImportLeadsUseCase(new(MockLeadRepository))

	_, err := uc.Execute(ctx, strings.NewReader(""), nil)

	assert.True(t, usecase.IsDomainError(err))
}

func TestImportLeadsNoValidRowsIsDomainError(t *testing.T) {
	ctx := context.Background()

	csv := "Business Name,Email\nGhost,\n"
	uc := usecase.NewImportLeadsUseCase(new(MockLeadRepository))

	_, err := uc.Execute(ctx, strings.NewReader(csv), nil)

	assert.True(t, usecase.IsDomainError(err))
}

func TestPreviewSuggestsMappingsAndSamples(t *testing.T) {
	uc := usecase.NewImportLeadsUseCase(new(MockLeadRepository))

	preview, err := uc.Preview(strings.NewReader(sampleCSV))

	assert.NoError(t, err)
	assert.Equal(t, []string{"Business Name", "Decision Maker Name", "Email", "Website", "Industry"}, preview.Headers)
	assert.Equal(t, "business_name", preview.SuggestedMappings["Business Name"].MapsTo)
	assert.Equal(t, "email", preview.SuggestedMappings["Email"].MapsTo)
	assert.Len(t, preview.SampleRows, 3)
	assert.Equal(t, "Acme", preview.SampleRows[0]["Business Name"])
}
