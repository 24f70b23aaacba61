package video

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	queueKey  = "jobs:video:queue"
	jobKeyFmt = "jobs:video:%s"
	jobTTL    = 24 * time.Hour
)

// Store keeps video job state, the work queue and cancel flags in
// Redis.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func jobKey(jobID string) string {
	return fmt.Sprintf(jobKeyFmt, jobID)
}

// SaveJob writes the job state.
func (s *Store) SaveJob(ctx context.Context, job *VideoJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}
	if err := s.rdb.Set(ctx, jobKey(job.JobID), payload, jobTTL).Err(); err != nil {
		return fmt.Errorf("failed to store job: %w", err)
	}
	return nil
}

// GetJob reads the job state.
func (s *Store) GetJob(ctx context.Context, jobID string) (*VideoJob, error) {
	payload, err := s.rdb.Get(ctx, jobKey(jobID)).Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch job %s: %w", jobID, err)
	}
	var job VideoJob
	if err := json.Unmarshal(payload, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job %s: %w", jobID, err)
	}
	return &job, nil
}

// Enqueue pushes the job id onto the work queue.
func (s *Store) Enqueue(ctx context.Context, jobID string) error {
	return s.rdb.LPush(ctx, queueKey, jobID).Err()
}

// DequeueBlocking pops the next job id, blocking until one arrives.
func (s *Store) DequeueBlocking(ctx context.Context) (string, error) {
	result, err := s.rdb.BRPop(ctx, 0, queueKey).Result()
	if err != nil {
		return "", err
	}
	// result[0] is the queue name, result[1] the job id
	return result[1], nil
}

// MarkCancelled sets the job's cancel flag.
func (s *Store) MarkCancelled(ctx context.Context, jobID string) error {
	return s.rdb.Set(ctx, jobKey(jobID)+":cancelled", "1", jobTTL).Err()
}

// IsCancelled checks the job's cancel flag.
func (s *Store) IsCancelled(ctx context.Context, jobID string) bool {
	exists, err := s.rdb.Exists(ctx, jobKey(jobID)+":cancelled").Result()
	if err != nil {
		return false
	}
	return exists > 0
}
