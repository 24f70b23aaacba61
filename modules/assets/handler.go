package assets

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"storystream-pipeline-server/modules/common/model"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// BundleResponse summarizes the session's bundle.
type BundleResponse struct {
	SessionID string            `json:"sessionId"`
	Ready     bool              `json:"ready"`
	Assets    []model.AssetKind `json:"assets"`
}

// HandleBundle - GET /api/assets/{sessionId}
func (h *Handler) HandleBundle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(BundleResponse{
		SessionID: sessionID,
		Ready:     h.store.Ready(sessionID),
		Assets:    h.store.Kinds(sessionID),
	})
}

// HandleAsset - GET /api/assets/{sessionId}/{kind}
// Serves the raw bytes of one generated artifact.
func (h *Handler) HandleAsset(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	kind, err := model.ParseAssetKind(vars["kind"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	asset, ok := h.store.Get(sessionID, kind)
	if !ok || len(asset.Data) == 0 {
		http.Error(w, "Asset not found", http.StatusNotFound)
		return
	}

	log.Printf("📤 [Assets] Serving %s asset for session %s (%d bytes)", kind, sessionID, len(asset.Data))

	w.Header().Set("Content-Type", asset.MimeType)
	w.WriteHeader(http.StatusOK)
	w.Write(asset.Data)
}
