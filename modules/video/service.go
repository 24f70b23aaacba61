package video

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"storystream-pipeline-server/modules/assets"
	"storystream-pipeline-server/modules/common/config"
	"storystream-pipeline-server/modules/common/gemini"
	"storystream-pipeline-server/modules/common/model"
	"storystream-pipeline-server/modules/progress"
)

// ErrVideoFailed signals a completed job handle without a download
// reference. Never retried.
var ErrVideoFailed = errors.New("video generation failed")

type Service struct {
	executor *gemini.Executor
	cfg      *config.Config
	store    *Store
	assets   *assets.Store
	hub      *progress.Hub
	httpc    *http.Client
}

func NewService(executor *gemini.Executor, cfg *config.Config, store *Store, assetStore *assets.Store, hub *progress.Hub) *Service {
	return &Service{
		executor: executor,
		cfg:      cfg,
		store:    store,
		assets:   assetStore,
		hub:      hub,
		httpc: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// TruncateSnippet bounds the snippet used in the video prompt.
func TruncateSnippet(snippet string, limit int) string {
	runes := []rune(snippet)
	if len(runes) <= limit {
		return snippet
	}
	return string(runes[:limit])
}

// BuildVideoPrompt builds the cinematic-mood prompt from a truncated
// script snippet.
func BuildVideoPrompt(snippet string, limit int) string {
	return fmt.Sprintf("Create a cinematic, atmospheric 5-second video loop that represents the mood of this story snippet: %q... No text overlay. High quality.",
		TruncateSnippet(snippet, limit))
}

// SubmitJob queues a background-video generation for the worker.
func (s *Service) SubmitJob(ctx context.Context, sessionID, snippet string) (*VideoJob, error) {
	now := time.Now().Format(time.RFC3339)
	job := &VideoJob{
		JobID:     uuid.New().String(),
		SessionID: sessionID,
		Snippet:   snippet,
		Prompt:    BuildVideoPrompt(snippet, s.cfg.VideoSnippetLimit),
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.SaveJob(ctx, job); err != nil {
		return nil, err
	}
	if err := s.store.Enqueue(ctx, job.JobID); err != nil {
		return nil, err
	}

	log.Printf("🎬 [Video] Queued job %s for session %s", job.JobID, sessionID)
	return job, nil
}

// ProcessJob runs one queued job end to end: initiate the remote video
// operation, poll it to completion on the creation client, download the
// result and attach it to the session's bundle.
func (s *Service) ProcessJob(ctx context.Context, jobID string) {
	job, err := s.store.GetJob(ctx, jobID)
	if err != nil {
		log.Printf("❌ [Video] Failed to fetch job %s: %v", jobID, err)
		return
	}

	s.updateStatus(ctx, job, StatusProcessing, "")

	operation, client, err := gemini.Execute(ctx, s.executor, func(ctx context.Context, client *genai.Client) (*genai.GenerateVideosOperation, error) {
		return client.Models.GenerateVideos(ctx, s.cfg.VideoModel, job.Prompt, nil,
			&genai.GenerateVideosConfig{
				NumberOfVideos: 1,
				Resolution:     s.cfg.VideoResolution,
				AspectRatio:    s.cfg.VideoAspectRatio,
			})
	})
	if err != nil {
		log.Printf("❌ [Video] Job %s initiation failed: %v", jobID, err)
		s.updateStatus(ctx, job, StatusFailed, err.Error())
		return
	}

	// Job handles are only valid on the client that created them, so
	// all status queries reuse that client.
	poller := &Poller{
		Interval:    s.cfg.VideoPollInterval,
		MaxAttempts: s.cfg.VideoPollMaxAttempts,
	}
	fetch := func(ctx context.Context, op *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error) {
		return client.Operations.GetVideosOperation(ctx, op, nil)
	}
	cancelled := func() bool {
		return s.store.IsCancelled(ctx, jobID)
	}

	operation, err = poller.Wait(ctx, operation, fetch, cancelled)
	if err != nil {
		if errors.Is(err, ErrJobCancelled) {
			log.Printf("🛑 [Video] Job %s cancelled by user, discarding result", jobID)
			s.updateStatus(ctx, job, StatusUserCancelled, "")
			return
		}
		log.Printf("❌ [Video] Job %s polling failed: %v", jobID, err)
		s.updateStatus(ctx, job, StatusFailed, err.Error())
		return
	}

	downloadLink, err := resolveVideoURI(operation)
	if err != nil {
		log.Printf("❌ [Video] Job %s completed without a download link", jobID)
		s.updateStatus(ctx, job, StatusFailed, err.Error())
		return
	}

	data, err := s.download(ctx, downloadLink)
	if err != nil {
		log.Printf("❌ [Video] Job %s download failed: %v", jobID, err)
		s.updateStatus(ctx, job, StatusFailed, err.Error())
		return
	}

	// A cancel that raced the final poll still discards the result;
	// nothing is written to the bundle after cancellation.
	if s.store.IsCancelled(ctx, jobID) {
		log.Printf("🛑 [Video] Job %s cancelled after completion, discarding %d bytes", jobID, len(data))
		s.updateStatus(ctx, job, StatusUserCancelled, "")
		return
	}

	asset := &model.Asset{
		Kind:     model.AssetVideo,
		URL:      fmt.Sprintf("/api/assets/%s/video", job.SessionID),
		MimeType: "video/mp4",
		Data:     data,
	}
	s.assets.Set(job.SessionID, asset)

	job.VideoURL = asset.URL
	s.updateStatus(ctx, job, StatusCompleted, "")
	log.Printf("✅ [Video] Job %s completed (%d bytes)", jobID, len(data))
}

// resolveVideoURI extracts the first generated-video reference from a
// completed handle.
func resolveVideoURI(op *genai.GenerateVideosOperation) (string, error) {
	if op.Response == nil || len(op.Response.GeneratedVideos) == 0 {
		return "", ErrVideoFailed
	}
	generated := op.Response.GeneratedVideos[0]
	if generated.Video == nil || generated.Video.URI == "" {
		return "", ErrVideoFailed
	}
	return generated.Video.URI, nil
}

// download fetches the signed media link with the active credential
// appended as a query parameter.
func (s *Service) download(ctx context.Context, link string) ([]byte, error) {
	sep := "?"
	if strings.Contains(link, "?") {
		sep = "&"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link+sep+"key="+s.executor.APIKey(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create download request: %w", err)
	}

	resp, err := s.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download video: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("video download error (%d): %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}

// Cancel flags the job so the poll loop stops and the result is
// discarded.
func (s *Service) Cancel(ctx context.Context, jobID string) error {
	if err := s.store.MarkCancelled(ctx, jobID); err != nil {
		return err
	}
	log.Printf("🛑 [Video] Cancel requested for job %s", jobID)
	return nil
}

// Status returns the job's current state.
func (s *Service) Status(ctx context.Context, jobID string) (*VideoJob, error) {
	return s.store.GetJob(ctx, jobID)
}

func (s *Service) updateStatus(ctx context.Context, job *VideoJob, status, errorMessage string) {
	job.Status = status
	job.ErrorMessage = errorMessage
	job.UpdatedAt = time.Now().Format(time.RFC3339)

	if err := s.store.SaveJob(ctx, job); err != nil {
		log.Printf("⚠️  [Video] Failed to persist job %s status %s: %v", job.JobID, status, err)
	}
	if s.hub != nil {
		s.hub.Broadcast(job.SessionID, job)
	}
}
