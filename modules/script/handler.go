package script

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"storystream-pipeline-server/modules/common/model"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleWrite - POST /api/script/write
func (h *Handler) HandleWrite(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req WriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [Script] Invalid request: %v", err)
		json.NewEncoder(w).Encode(WriteResponse{Success: false, ErrorMessage: "Invalid request format"})
		return
	}

	if strings.TrimSpace(req.Content) == "" {
		json.NewEncoder(w).Encode(WriteResponse{Success: false, ErrorMessage: "Content is required"})
		return
	}

	tone, err := model.ParseTone(req.Tone)
	if err != nil {
		json.NewEncoder(w).Encode(WriteResponse{Success: false, ErrorMessage: err.Error()})
		return
	}

	log.Printf("✍️  [Script] Rewriting %d chars with tone %s", len(req.Content), tone)

	result, err := h.service.WriteScript(r.Context(), req.Content, tone, req.Title)
	if err != nil {
		log.Printf("❌ [Script] Rewrite failed: %v", err)
		json.NewEncoder(w).Encode(WriteResponse{Success: false, ErrorMessage: "Script generation failed"})
		return
	}

	json.NewEncoder(w).Encode(WriteResponse{Success: true, Script: result})
}
