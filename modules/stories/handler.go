package stories

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleFind - POST /api/stories/find
func (h *Handler) HandleFind(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req FindRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [Stories] Invalid request: %v", err)
		json.NewEncoder(w).Encode(FindResponse{Success: false, ErrorMessage: "Invalid request format"})
		return
	}

	if strings.TrimSpace(req.Topic) == "" {
		json.NewEncoder(w).Encode(FindResponse{Success: false, ErrorMessage: "Topic is required"})
		return
	}

	log.Printf("🔍 [Stories] Searching for topic: %s", req.Topic)

	results, err := h.service.FindStories(r.Context(), req.Topic)
	if err != nil {
		log.Printf("❌ [Stories] Discovery failed: %v", err)
		json.NewEncoder(w).Encode(FindResponse{Success: false, ErrorMessage: "Error fetching stories. Please try again."})
		return
	}

	json.NewEncoder(w).Encode(FindResponse{Success: true, Results: results})
}

// HandleSelect - POST /api/stories/select
func (h *Handler) HandleSelect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		json.NewEncoder(w).Encode(SelectResponse{Success: false, ErrorMessage: "Invalid request format"})
		return
	}

	if strings.TrimSpace(req.Results) == "" {
		json.NewEncoder(w).Encode(SelectResponse{Success: false, ErrorMessage: "Results are required"})
		return
	}

	story := BuildStory(req.Topic, req.Results)
	log.Printf("📌 [Stories] Selected story %s for topic %q", story.ID, req.Topic)

	json.NewEncoder(w).Encode(SelectResponse{Success: true, Story: story})
}
