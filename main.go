package main

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"storystream-pipeline-server/modules/assets"
	"storystream-pipeline-server/modules/common/config"
	"storystream-pipeline-server/modules/common/credential"
	"storystream-pipeline-server/modules/common/gemini"
	redisClient "storystream-pipeline-server/modules/common/redis"
	"storystream-pipeline-server/modules/progress"
	"storystream-pipeline-server/modules/publish"
	"storystream-pipeline-server/modules/script"
	"storystream-pipeline-server/modules/stories"
	"storystream-pipeline-server/modules/thumbnail"
	"storystream-pipeline-server/modules/video"
	"storystream-pipeline-server/modules/voiceover"
	"storystream-pipeline-server/modules/worker"
)

// enableCORS mirrors the permissive development policy; production
// deployments should pin allowed origins.
func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "storystream-pipeline",
	})
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	// No interactive key selector on the server; the gate assumes the
	// key is configured out of band and reselection degrades to a no-op.
	gate := credential.NewGate(nil, func() string {
		return config.GetConfig().GeminiAPIKey
	})
	executor := gemini.NewExecutor(gate)

	assetStore := assets.NewStore()
	hub := progress.NewHub()

	rdb := redisClient.Connect(cfg)
	if rdb == nil {
		log.Fatal("❌ Failed to connect to Redis")
	}
	videoStore := video.NewStore(rdb)

	storiesHandler := stories.NewHandler(stories.NewService(executor, cfg))
	scriptHandler := script.NewHandler(script.NewService(executor, cfg))
	voiceoverHandler := voiceover.NewHandler(voiceover.NewService(executor, cfg, assetStore))
	thumbnailHandler := thumbnail.NewHandler(thumbnail.NewService(executor, cfg, assetStore))
	videoService := video.NewService(executor, cfg, videoStore, assetStore, hub)
	videoHandler := video.NewHandler(videoService)
	assetsHandler := assets.NewHandler(assetStore)
	publishHandler := publish.NewHandler(assetStore, cfg.PublishDelay)

	go worker.StartWorker(videoStore, videoService)

	r := mux.NewRouter()
	r.Use(enableCORS)

	r.HandleFunc("/", healthCheck).Methods("GET")
	r.HandleFunc("/health", healthCheck).Methods("GET")
	r.HandleFunc("/ws", hub.HandleWS)

	// The paid video path checks credential readiness up front; other
	// operations discover auth problems lazily through the executor.
	r.HandleFunc("/api/credential/status", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{"ready": gate.IsReady()})
	}).Methods("GET")

	r.HandleFunc("/api/stories/find", storiesHandler.HandleFind).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/stories/select", storiesHandler.HandleSelect).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/script/write", scriptHandler.HandleWrite).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/voiceover/generate", voiceoverHandler.HandleGenerate).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/thumbnail/generate", thumbnailHandler.HandleGenerate).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/video/generate", videoHandler.HandleGenerate).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/video/status/{jobId}", videoHandler.HandleStatus).Methods("GET")
	r.HandleFunc("/api/video/cancel/{jobId}", videoHandler.HandleCancel).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/assets/{sessionId}", assetsHandler.HandleBundle).Methods("GET")
	r.HandleFunc("/api/assets/{sessionId}/{kind}", assetsHandler.HandleAsset).Methods("GET")
	r.HandleFunc("/api/publish", publishHandler.HandlePublish).Methods("POST", "OPTIONS")

	log.Printf("🚀 StoryStream Pipeline Server starting on port %s", cfg.Port)
	log.Printf("❤️  Health check: http://localhost:%s/health", cfg.Port)
	log.Printf("📡 Progress updates: ws://localhost:%s/ws?session=<id>", cfg.Port)

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
