package voiceover

import (
	"encoding/json"
	"errors"
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

// HandleGenerate - POST /api/voiceover/generate
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [Voiceover] Invalid request: %v", err)
		json.NewEncoder(w).Encode(GenerateResponse{Success: false, ErrorMessage: "Invalid request format"})
		return
	}

	if strings.TrimSpace(req.Text) == "" || req.SessionID == "" {
		json.NewEncoder(w).Encode(GenerateResponse{Success: false, ErrorMessage: "sessionId and text are required"})
		return
	}

	log.Printf("🎙️  [Voiceover] Generating voiceover for session %s (%d chars)", req.SessionID, len(req.Text))

	asset, err := h.service.GenerateVoiceover(r.Context(), req.SessionID, req.Text)
	if err != nil {
		log.Printf("❌ [Voiceover] Generation failed: %v", err)
		msg := "Voiceover generation failed"
		if errors.Is(err, ErrNoAudio) {
			msg = ErrNoAudio.Error()
		}
		json.NewEncoder(w).Encode(GenerateResponse{Success: false, ErrorMessage: msg})
		return
	}

	json.NewEncoder(w).Encode(GenerateResponse{Success: true, AudioURL: asset.URL})
}
