package video

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleGenerate - POST /api/video/generate
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [Video] Invalid request: %v", err)
		json.NewEncoder(w).Encode(GenerateResponse{Success: false, ErrorMessage: "Invalid request format"})
		return
	}

	if strings.TrimSpace(req.Snippet) == "" || req.SessionID == "" {
		json.NewEncoder(w).Encode(GenerateResponse{Success: false, ErrorMessage: "sessionId and snippet are required"})
		return
	}

	job, err := h.service.SubmitJob(r.Context(), req.SessionID, req.Snippet)
	if err != nil {
		log.Printf("❌ [Video] Failed to queue job: %v", err)
		json.NewEncoder(w).Encode(GenerateResponse{Success: false, ErrorMessage: "Failed to queue video job"})
		return
	}

	json.NewEncoder(w).Encode(GenerateResponse{Success: true, JobID: job.JobID, Status: job.Status})
}

// HandleStatus - GET /api/video/status/{jobId}
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	jobID := mux.Vars(r)["jobId"]
	job, err := h.service.Status(r.Context(), jobID)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(StatusResponse{Success: false, ErrorMessage: "Job not found"})
		return
	}

	json.NewEncoder(w).Encode(StatusResponse{Success: true, Job: job})
}

// HandleCancel - POST /api/video/cancel/{jobId}
func (h *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	jobID := mux.Vars(r)["jobId"]
	if err := h.service.Cancel(r.Context(), jobID); err != nil {
		json.NewEncoder(w).Encode(GenerateResponse{Success: false, ErrorMessage: "Failed to cancel job"})
		return
	}

	json.NewEncoder(w).Encode(GenerateResponse{Success: true, JobID: jobID, Status: StatusUserCancelled})
}
