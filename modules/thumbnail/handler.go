package thumbnail

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

// HandleGenerate - POST /api/thumbnail/generate
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [Thumbnail] Invalid request: %v", err)
		json.NewEncoder(w).Encode(GenerateResponse{Success: false, ErrorMessage: "Invalid request format"})
		return
	}

	if strings.TrimSpace(req.Topic) == "" || req.SessionID == "" {
		json.NewEncoder(w).Encode(GenerateResponse{Success: false, ErrorMessage: "sessionId and topic are required"})
		return
	}

	asset, dataURL, err := h.service.GenerateThumbnail(r.Context(), req.SessionID, req.Topic)
	if err != nil {
		log.Printf("❌ [Thumbnail] Generation failed: %v", err)
		msg := "Thumbnail generation failed"
		if errors.Is(err, ErrNoImage) {
			msg = ErrNoImage.Error()
		}
		json.NewEncoder(w).Encode(GenerateResponse{Success: false, ErrorMessage: msg})
		return
	}

	json.NewEncoder(w).Encode(GenerateResponse{Success: true, DataURL: dataURL, ImageURL: asset.URL})
}
