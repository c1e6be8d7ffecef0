package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/prospecta/internal/entity"
	"github.com/xavierca1/prospecta/internal/infra/http/handlers"
	"github.com/xavierca1/prospecta/internal/usecase"
)

func TestCampaignStartWithNoPendingLeads(t *testing.T) {
	mockLeadRepo := new(MockLeadRepository)
	mockLeadRepo.On("FindByStatus", mock.Anything, entity.StatusPending).Return([]*entity.Lead{}, nil)

	uc := usecase.NewRunCampaignUseCase(mockLeadRepo, nil, nil, nil, nil)
	handler := handlers.NewCampaignHandler(uc)

	req := httptest.NewRequest("POST", "/api/campaign/start", nil)
	rec := httptest.NewRecorder()

	handler.HandleStart(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body handlers.StartCampaignResponse
	json.NewDecoder(rec.Body).Decode(&body)
	assert.Equal(t, 0, body.SentCount)
	assert.Equal(t, "Campaign started. 0 emails sent.", body.Message)
}

func TestCampaignStartRepositoryFailure(t *testing.T) {
	mockLeadRepo := new(MockLeadRepository)
	mockLeadRepo.On("FindByStatus", mock.Anything, entity.StatusPending).Return(nil, errors.New("db down"))

	uc := usecase.NewRunCampaignUseCase(mockLeadRepo, nil, nil, nil, nil)
	handler := handlers.NewCampaignHandler(uc)

	req := httptest.NewRequest("POST", "/api/campaign/start", nil)
	rec := httptest.NewRecorder()

	handler.HandleStart(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
