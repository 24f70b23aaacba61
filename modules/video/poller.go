package video

import (
	"context"
	"errors"
	"time"

	"google.golang.org/genai"
)

// ErrPollTimeout signals that the job did not finish within the
// configured attempt ceiling.
var ErrPollTimeout = errors.New("video generation timed out")

// ErrJobCancelled signals that the user cancelled the job while it was
// still polling.
var ErrJobCancelled = errors.New("video generation cancelled")

// FetchFunc re-queries a job handle. It must run against the same
// client instance that created the operation; handles are not portable
// across clients.
type FetchFunc func(ctx context.Context, op *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error)

// Poller drives a long-running video operation to completion on a
// fixed interval with a bounded attempt count.
type Poller struct {
	Interval    time.Duration
	MaxAttempts int
	Sleep       func(time.Duration)
}

// Wait polls until the operation reports done, replacing the handle
// with the refreshed one each round. Fetch errors abort the sequence.
func (p *Poller) Wait(ctx context.Context, op *genai.GenerateVideosOperation, fetch FetchFunc, cancelled func() bool) (*genai.GenerateVideosOperation, error) {
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	attempts := 0
	for !op.Done {
		if cancelled != nil && cancelled() {
			return nil, ErrJobCancelled
		}
		if attempts >= p.MaxAttempts {
			return nil, ErrPollTimeout
		}

		sleep(p.Interval)
		attempts++

		refreshed, err := fetch(ctx, op)
		if err != nil {
			return nil, err
		}
		op = refreshed
	}
	return op, nil
}
