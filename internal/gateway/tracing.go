package gateway

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"krishimitra/internal/logging"
)

// Trace captures one model interaction for later inspection.
type Trace struct {
	ID        string        `json:"id"`
	SessionID string        `json:"session_id,omitempty"`
	Model     string        `json:"model"`
	Prompt    string        `json:"prompt"`
	Response  string        `json:"response"`
	Error     string        `json:"error,omitempty"`
	Duration  time.Duration `json:"duration"`
	CreatedAt time.Time     `json:"created_at"`
}

// TraceStore persists traces. store.LocalStore implements it.
type TraceStore interface {
	SaveTrace(ctx context.Context, t Trace) error
}

type sessionKey struct{}

// WithSession attributes model calls made with ctx to a chat session.
func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey{}, sessionID)
}

func sessionFrom(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}

const traceWriteTimeout = 5 * time.Second

// TracingGateway wraps a gateway and records every call. Traces are written
// asynchronously; Close waits for pending writes.
type TracingGateway struct {
	underlying Gateway
	store      TraceStore
	model      string

	wg sync.WaitGroup
}

// NewTracingGateway creates a tracing wrapper around underlying.
func NewTracingGateway(underlying Gateway, store TraceStore, model string) *TracingGateway {
	return &TracingGateway{
		underlying: underlying,
		store:      store,
		model:      model,
	}
}

// Generate implements Gateway with tracing.
func (tg *TracingGateway) Generate(ctx context.Context, prompt string) (string, error) {
	sessionID := sessionFrom(ctx)

	start := time.Now()
	logging.Gateway("Model call started: session=%s prompt_len=%d", sessionID, len(prompt))

	response, err := tg.underlying.Generate(ctx, prompt)

	duration := time.Since(start)
	if err != nil {
		logging.Gateway("Model call failed: session=%s duration=%v error=%s", sessionID, duration, err.Error())
	} else {
		logging.Gateway("Model call completed: session=%s duration=%v response_len=%d", sessionID, duration, len(response))
	}
	logging.AuditWithSession(sessionID).ModelCall(tg.model, duration, err)

	trace := Trace{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Model:     tg.model,
		Prompt:    prompt,
		Response:  response,
		Duration:  duration,
		CreatedAt: start,
	}
	if err != nil {
		trace.Error = err.Error()
	}

	tg.wg.Add(1)
	go func() {
		defer tg.wg.Done()
		wctx, cancel := context.WithTimeout(context.Background(), traceWriteTimeout)
		defer cancel()
		if storeErr := tg.store.SaveTrace(wctx, trace); storeErr != nil {
			logging.GatewayDebug("Failed to store model trace: %v", storeErr)
		}
	}()

	return response, err
}

// Flush blocks until every pending trace has been written.
func (tg *TracingGateway) Flush() {
	tg.wg.Wait()
}

// Close flushes pending traces and closes the wrapped gateway.
func (tg *TracingGateway) Close() error {
	tg.Flush()
	return Close(tg.underlying)
}
