package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/prospecta/internal/entity"
)

type MeetingHandler struct {
	meetingRepo entity.MeetingRepositoryInterface
}

func NewMeetingHandler(meetingRepo entity.MeetingRepositoryInterface) *MeetingHandler {
	return &MeetingHandler{meetingRepo: meetingRepo}
}

// HandleListByLead lista as reuniões de um lead. Leitura pura, o
// agendamento acontece fora da automação.
func (h *MeetingHandler) HandleListByLead(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "leadId")

	meetings, err := h.meetingRepo.FindByLeadID(r.Context(), leadID)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to fetch meetings.")
		return
	}
	if meetings == nil {
		meetings = []*entity.Meeting{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(meetings)
}
