package publish

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"storystream-pipeline-server/modules/assets"
)

// Handler simulates the final upload step. The real upload action is a
// collaborator outside this service; it is stubbed here behind the
// bundle-readiness check.
type Handler struct {
	store *assets.Store
	delay time.Duration
}

func NewHandler(store *assets.Store, delay time.Duration) *Handler {
	return &Handler{store: store, delay: delay}
}

// PublishRequest names the session whose bundle should be published.
type PublishRequest struct {
	SessionID string `json:"sessionId"`
}

// PublishResponse reports the simulated upload outcome.
type PublishResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// HandlePublish - POST /api/publish
func (h *Handler) HandlePublish(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req PublishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		json.NewEncoder(w).Encode(PublishResponse{Success: false, ErrorMessage: "Invalid request format"})
		return
	}

	if req.SessionID == "" {
		json.NewEncoder(w).Encode(PublishResponse{Success: false, ErrorMessage: "sessionId is required"})
		return
	}

	if !h.store.Ready(req.SessionID) {
		json.NewEncoder(w).Encode(PublishResponse{Success: false, ErrorMessage: "Asset bundle is not complete"})
		return
	}

	log.Printf("📤 [Publish] Simulating upload for session %s", req.SessionID)
	time.Sleep(h.delay)

	json.NewEncoder(w).Encode(PublishResponse{
		Success: true,
		Message: "Your video has been compiled and uploaded to the StoryStream channel.",
	})
}
