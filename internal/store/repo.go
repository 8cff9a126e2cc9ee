package store

import (
	"context"
	"time"

	"github.com/adamlaw669/Curio/internal/catalog"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int   // max results (0 = unlimited)
	After int64 // sequence > After
}

// StateRepo stores keyed JSON blobs. It satisfies appstate.Repo.
type StateRepo interface {
	// Get returns the blob for key; ok is false when none is stored.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Put stores data under key, replacing any previous blob.
	Put(ctx context.Context, key string, data []byte) error

	// Delete removes the blob for key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEvent is a stored LLMRequestEventData.
type LLMRequestEvent struct {
	Seq        int64
	RecordedAt time.Time
	LLMRequestEventData
}

// EventRepo provides append and query access to recorded facts.
type EventRepo interface {
	// AppendAssessment records an assessment taken after startup.
	AppendAssessment(ctx context.Context, a catalog.Assessment) error

	// AppendEngagement records time-on-task logged after startup.
	AppendEngagement(ctx context.Context, e catalog.Engagement) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// Assessments returns recorded assessments in sequence order.
	Assessments(ctx context.Context, opts QueryOpts) ([]catalog.Assessment, error)

	// Engagements returns recorded engagement in sequence order.
	Engagements(ctx context.Context, opts QueryOpts) ([]catalog.Engagement, error)

	// LLMRequests returns recorded LLM calls in sequence order.
	LLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)
}
