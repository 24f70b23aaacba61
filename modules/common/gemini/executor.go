package gemini

import (
	"context"
	"errors"
	"log"
	"strings"

	"google.golang.org/genai"

	"storystream-pipeline-server/modules/common/credential"
)

// ClientFactory builds a Gemini client bound to an API key.
type ClientFactory func(ctx context.Context, apiKey string) (*genai.Client, error)

// DefaultClientFactory creates a client against the Gemini API backend.
func DefaultClientFactory(ctx context.Context, apiKey string) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

// Executor is the sole path to the remote generative service. It builds
// a client from the currently selected credential for every call and
// recovers exactly once from an auth/entity-not-found failure by
// running the credential gate's reselection flow and retrying with a
// rebuilt client.
type Executor struct {
	gate    *credential.Gate
	factory ClientFactory
}

// NewExecutor builds an executor with the default client factory.
func NewExecutor(gate *credential.Gate) *Executor {
	return NewExecutorWithFactory(gate, DefaultClientFactory)
}

// NewExecutorWithFactory allows injecting the client factory.
func NewExecutorWithFactory(gate *credential.Gate, factory ClientFactory) *Executor {
	return &Executor{gate: gate, factory: factory}
}

// Gate exposes the executor's credential gate.
func (e *Executor) Gate() *credential.Gate {
	return e.gate
}

// APIKey returns the credential currently bound to new clients.
func (e *Executor) APIKey() string {
	return e.gate.APIKey()
}

// Execute runs op against a freshly built client. On a 404-classified
// failure, and only when an interactive selector is available, it
// triggers reselection and retries once with a rebuilt client; the
// retried failure propagates as-is. The client that produced the
// successful result is returned alongside it because long-running job
// handles are not portable across client instances.
func Execute[T any](ctx context.Context, e *Executor, op func(ctx context.Context, client *genai.Client) (T, error)) (T, *genai.Client, error) {
	var zero T

	client, err := e.factory(ctx, e.gate.APIKey())
	if err != nil {
		return zero, nil, err
	}

	result, err := op(ctx, client)
	if err == nil {
		return result, client, nil
	}

	if !IsNotFoundError(err) || !e.gate.CanSelect() {
		return zero, nil, err
	}

	log.Printf("🔑 Entity not found (404), re-selecting API key and retrying once: %v", err)
	if selErr := e.gate.RequestSelection(); selErr != nil {
		log.Printf("⚠️  Key re-selection failed: %v", selErr)
		return zero, nil, err
	}

	client, err = e.factory(ctx, e.gate.APIKey())
	if err != nil {
		return zero, nil, err
	}

	result, err = op(ctx, client)
	if err != nil {
		return zero, nil, err
	}
	return result, client, nil
}

// IsNotFoundError classifies auth/entity-not-found failures: a 404
// status or the Gemini "Requested entity was not found" signature,
// which surfaces when the selected key does not match the project.
func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code == 404 {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "Requested entity was not found") ||
		strings.Contains(errStr, "404")
}
