package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/xavierca1/prospecta/internal/infra/http/middleware"
	"github.com/xavierca1/prospecta/internal/usecase"
)

type CampaignHandler struct {
	RunCampaign *usecase.RunCampaignUseCase
}

func NewCampaignHandler(runCampaign *usecase.RunCampaignUseCase) *CampaignHandler {
	return &CampaignHandler{RunCampaign: runCampaign}
}

type StartCampaignResponse struct {
	Message   string `json:"message"`
	SentCount int    `json:"sent_count"`
}

// HandleStart dispara a campanha para todos os leads Pending.
// Erro no meio aborta com 500; o que já foi enviado fica enviado.
func (h *CampaignHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	sent, err := h.RunCampaign.Execute(r.Context())
	if err != nil {
		log.Printf("❌ Erro na campanha (após %d envios): %v", sent, err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":      "Failed to start campaign.",
			"sent_count": sent,
		})
		return
	}

	middleware.RecordEmailsSent("initial", sent)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(StartCampaignResponse{
		Message:   fmt.Sprintf("Campaign started. %d emails sent.", sent),
		SentCount: sent,
	})
}
