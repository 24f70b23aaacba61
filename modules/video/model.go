package video

// Job statuses.
const (
	StatusPending       = "pending"
	StatusProcessing    = "processing"
	StatusCompleted     = "completed"
	StatusFailed        = "failed"
	StatusUserCancelled = "user_cancelled"
)

// VideoJob is one queued background-video generation.
type VideoJob struct {
	JobID        string `json:"jobId"`
	SessionID    string `json:"sessionId"`
	Snippet      string `json:"snippet"`
	Prompt       string `json:"prompt"`
	Status       string `json:"status"`
	VideoURL     string `json:"videoUrl,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// GenerateRequest submits a video job for a script snippet.
type GenerateRequest struct {
	SessionID string `json:"sessionId"`
	Snippet   string `json:"snippet"`
}

// GenerateResponse acknowledges the queued job.
type GenerateResponse struct {
	Success      bool   `json:"success"`
	JobID        string `json:"jobId,omitempty"`
	Status       string `json:"status,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// StatusResponse reports the job's current state.
type StatusResponse struct {
	Success      bool     `json:"success"`
	Job          *VideoJob `json:"job,omitempty"`
	ErrorMessage string   `json:"error_message,omitempty"`
}
