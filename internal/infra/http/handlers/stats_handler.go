package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/prospecta/internal/entity"
)

type StatsHandler struct {
	leadRepo     entity.LeadRepositoryInterface
	emailRepo    entity.EmailRepositoryInterface
	responseRepo entity.ResponseRepositoryInterface
}

func NewStatsHandler(
	leadRepo entity.LeadRepositoryInterface,
	emailRepo entity.EmailRepositoryInterface,
	responseRepo entity.ResponseRepositoryInterface,
) *StatsHandler {
	return &StatsHandler{
		leadRepo:     leadRepo,
		emailRepo:    emailRepo,
		responseRepo: responseRepo,
	}
}

type StatsResponse struct {
	LeadsByStatus  map[string]int `json:"leads_by_status"`
	EmailsSent     int            `json:"emails_sent"`
	RepliesTracked int            `json:"replies_tracked"`
}

// Handle alimenta os cards do dashboard.
func (h *StatsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	byStatus, err := h.leadRepo.CountByStatus(ctx)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to compute stats.")
		return
	}

	emails, err := h.emailRepo.Count(ctx)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to compute stats.")
		return
	}

	replies, err := h.responseRepo.Count(ctx)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to compute stats.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(StatsResponse{
		LeadsByStatus:  byStatus,
		EmailsSent:     emails,
		RepliesTracked: replies,
	})
}
