package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/prospecta/internal/entity"
	"github.com/xavierca1/prospecta/internal/infra/http/handlers"
	"github.com/xavierca1/prospecta/internal/usecase"
)

func multipartCSV(t *testing.T, csv string, extraFields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", "leads.csv")
	assert.NoError(t, err)
	part.Write([]byte(csv))

	for key, value := range extraFields {
		writer.WriteField(key, value)
	}
	writer.Close()

	return &buf, writer.FormDataContentType()
}

func TestLeadUploadImportsPendingLeads(t *testing.T) {
	csv := "Business Name,Decision Maker Name,Email\nAcme,Jane,jane@acme.com\n"

	mockLeadRepo := new(MockLeadRepository)
	mockLeadRepo.On("BulkCreate", mock.Anything, mock.MatchedBy(func(leads []*entity.Lead) bool {
		return len(leads) == 1 && leads[0].Status == entity.StatusPending
	})).Return(nil)

	handler := handlers.NewLeadHandler(mockLeadRepo, usecase.NewImportLeadsUseCase(mockLeadRepo))

	body, contentType := multipartCSV(t, csv, nil)
	req := httptest.NewRequest("POST", "/api/leads/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.HandleUpload(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	json.NewDecoder(rec.Body).Decode(&resp)
	assert.Equal(t, "1 leads imported successfully.", resp["message"])
	mockLeadRepo.AssertExpectations(t)
}

func TestLeadUploadWithCustomMappings(t *testing.T) {
	csv := "Company,Contact,Mail\nAcme,Jane,jane@acme.com\n"
	mappings := `{"Company":"business_name","Contact":"decision_maker_name","Mail":"email"}`

	mockLeadRepo := new(MockLeadRepository)
	mockLeadRepo.On("BulkCreate", mock.Anything, mock.MatchedBy(func(leads []*entity.Lead) bool {
		return len(leads) == 1 && leads[0].BusinessName == "Acme" && leads[0].Email == "jane@acme.com"
	})).Return(nil)

	handler := handlers.NewLeadHandler(mockLeadRepo, usecase.NewImportLeadsUseCase(mockLeadRepo))

	body, contentType := multipartCSV(t, csv, map[string]string{"mappings": mappings})
	req := httptest.NewRequest("POST", "/api/leads/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.HandleUpload(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockLeadRepo.AssertExpectations(t)
}

func TestLeadPreviewSuggestsMappings(t *testing.T) {
	csv := "Company Name,E-Mail\nAcme,jane@acme.com\n"

	mockLeadRepo := new(MockLeadRepository)
	handler := handlers.NewLeadHandler(mockLeadRepo, usecase.NewImportLeadsUseCase(mockLeadRepo))

	body, contentType := multipartCSV(t, csv, nil)
	req := httptest.NewRequest("POST", "/api/leads/preview", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.HandlePreview(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var preview usecase.PreviewOutput
	json.NewDecoder(rec.Body).Decode(&preview)
	assert.Equal(t, "business_name", preview.SuggestedMappings["Company Name"].MapsTo)
	assert.Equal(t, "email", preview.SuggestedMappings["E-Mail"].MapsTo)
	// Preview não grava nada
	mockLeadRepo.AssertNotCalled(t, "BulkCreate", mock.Anything, mock.Anything)
}

func TestLeadUploadMissingFile(t *testing.T) {
	mockLeadRepo := new(MockLeadRepository)
	handler := handlers.NewLeadHandler(mockLeadRepo, usecase.NewImportLeadsUseCase(mockLeadRepo))

	req := httptest.NewRequest("POST", "/api/leads/upload", nil)
	rec := httptest.NewRecorder()

	handler.HandleUpload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
