package worker

import (
	"context"
	"log"
	"time"

	"storystream-pipeline-server/modules/video"
)

// StartWorker watches the video job queue and processes jobs as they
// arrive. Each job runs in its own goroutine; jobs are causally
// independent and carry their own state.
func StartWorker(store *video.Store, service *video.Service) {
	log.Println("🔄 Video queue worker starting...")
	log.Println("👀 Watching queue: jobs:video:queue")

	ctx := context.Background()

	for {
		jobID, err := store.DequeueBlocking(ctx)
		if err != nil {
			log.Printf("❌ Queue BRPOP error: %v", err)
			time.Sleep(5 * time.Second)
			continue
		}

		log.Printf("🎯 Received video job: %s", jobID)
		go service.ProcessJob(ctx, jobID)
	}
}
