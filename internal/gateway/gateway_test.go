package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"krishimitra/internal/config"
)

type stubGateway struct {
	calls atomic.Int32
	reply string
	err   error
	delay time.Duration
}

func (s *stubGateway) Generate(ctx context.Context, prompt string) (string, error) {
	s.calls.Add(1)
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.reply + prompt, s.err
}

type memTraceStore struct {
	mu     sync.Mutex
	traces []Trace
}

func (m *memTraceStore) SaveTrace(_ context.Context, t Trace) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.traces = append(m.traces, t)
	return nil
}

func (m *memTraceStore) all() []Trace {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Trace(nil), m.traces...)
}

// =============================================================================
// FACTORY
// =============================================================================

func TestNew_Unavailable(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LLM.APIKey = ""
	_, err := New(cfg, nil)
	assert.ErrorIs(t, err, ErrUnavailable)

	cfg.LLM.Provider = ProviderNone
	cfg.LLM.APIKey = "key"
	_, err = New(cfg, nil)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestNew_OpenAIWithWrappers(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LLM.Provider = ProviderOpenAI
	cfg.LLM.APIKey = "sk-test"
	cfg.LLM.CacheSize = 8
	cfg.LLM.Trace = true

	gw, err := New(cfg, &memTraceStore{})
	require.NoError(t, err)

	cached, ok := gw.(*CachingGateway)
	require.True(t, ok, "outermost wrapper is the cache")
	traced, ok := cached.next.(*TracingGateway)
	require.True(t, ok, "cache wraps the tracer")
	inner, ok := traced.underlying.(*OpenAIGateway)
	require.True(t, ok)
	assert.Equal(t, DefaultOpenAIModel, inner.Model(), "gemini default model is replaced for openai")
	assert.NoError(t, Close(gw))
}

func TestNew_NoCacheNoTrace(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LLM.Provider = ProviderOpenAI
	cfg.LLM.APIKey = "sk-test"
	cfg.LLM.Model = "gpt-4.1-mini"
	cfg.LLM.CacheSize = 0
	cfg.LLM.Trace = true

	gw, err := New(cfg, nil)
	require.NoError(t, err)
	inner, ok := gw.(*OpenAIGateway)
	require.True(t, ok, "tracing needs a store")
	assert.Equal(t, "gpt-4.1-mini", inner.Model())
}

func TestModelFor(t *testing.T) {
	assert.Equal(t, DefaultGeminiModel, modelFor(ProviderGemini, ""))
	assert.Equal(t, DefaultGeminiModel, modelFor(ProviderGemini, "gpt-4o"))
	assert.Equal(t, "gemini-2.5-pro", modelFor(ProviderGemini, "gemini-2.5-pro"))
	assert.Equal(t, DefaultOpenAIModel, modelFor(ProviderOpenAI, "gemini-2.5-flash"))
	assert.Equal(t, "llama-3.1-8b", modelFor(ProviderOpenAI, "llama-3.1-8b"))
}

// =============================================================================
// OPENAI
// =============================================================================

func newTestOpenAI(t *testing.T, handler http.HandlerFunc) *OpenAIGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	gw := NewOpenAIGateway(OpenAIConfig{APIKey: "sk-test", BaseURL: srv.URL + "/", Model: "test-model", Timeout: 5 * time.Second})
	gw.backoff = func(int) time.Duration { return time.Millisecond }
	return gw
}

func TestOpenAIGateway_Generate(t *testing.T) {
	var got openAIRequest
	gw := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  {\"title\":\"Buy seeds\"}\n"}}]}`))
	})

	reply, err := gw.Generate(context.Background(), "add buy seeds")
	require.NoError(t, err)
	assert.Equal(t, `{"title":"Buy seeds"}`, reply)

	assert.Equal(t, "test-model", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "add buy seeds", got.Messages[1].Content)
	require.NotNil(t, got.ResponseFormat)
	assert.Equal(t, "json_object", got.ResponseFormat.Type)
}

func TestOpenAIGateway_RetriesRateLimit(t *testing.T) {
	var calls atomic.Int32
	gw := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"null"}}]}`))
	})

	reply, err := gw.Generate(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "null", reply)
	assert.Equal(t, int32(3), calls.Load())
}

func TestOpenAIGateway_ClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	gw := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, `{"error":{"message":"bad model"}}`, http.StatusBadRequest)
	})

	_, err := gw.Generate(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Equal(t, int32(1), calls.Load())
}

func TestOpenAIGateway_GivesUp(t *testing.T) {
	var calls atomic.Int32
	gw := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := gw.Generate(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max retries exceeded")
	assert.Equal(t, int32(openAIMaxRetries+1), calls.Load())
}

func TestOpenAIGateway_NoKey(t *testing.T) {
	gw := NewOpenAIGateway(OpenAIConfig{})
	_, err := gw.Generate(context.Background(), "x")
	assert.ErrorIs(t, err, ErrUnavailable)
}

// =============================================================================
// CACHE
// =============================================================================

func TestCachingGateway(t *testing.T) {
	stub := &stubGateway{reply: "r:"}
	gw, err := NewCachingGateway(stub, 2)
	require.NoError(t, err)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		reply, err := gw.Generate(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "r:a", reply)
	}
	assert.Equal(t, int32(1), stub.calls.Load())

	_, _ = gw.Generate(ctx, "b")
	_, _ = gw.Generate(ctx, "c")
	assert.Equal(t, 2, gw.Len(), "oldest entry evicted")
	_, _ = gw.Generate(ctx, "a")
	assert.Equal(t, int32(4), stub.calls.Load())
}

func TestCachingGateway_ErrorsNotCached(t *testing.T) {
	stub := &stubGateway{err: errors.New("boom")}
	gw, err := NewCachingGateway(stub, 4)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := gw.Generate(context.Background(), "a")
		assert.EqualError(t, err, "boom")
	}
	assert.Equal(t, int32(2), stub.calls.Load())
	assert.Equal(t, 0, gw.Len())
}

func TestCachingGateway_CollapsesConcurrentCalls(t *testing.T) {
	stub := &stubGateway{reply: "r:", delay: 50 * time.Millisecond}
	gw, err := NewCachingGateway(stub, 4)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reply, err := gw.Generate(context.Background(), "same")
			assert.NoError(t, err)
			assert.Equal(t, "r:same", reply)
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, stub.calls.Load(), int32(2))
}

// =============================================================================
// TRACING
// =============================================================================

func TestTracingGateway(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := &memTraceStore{}
	stub := &stubGateway{reply: "r:"}
	gw := NewTracingGateway(stub, store, "test-model")

	ctx := WithSession(context.Background(), "sess-1")
	reply, err := gw.Generate(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, "r:hello", reply)

	stub.err = errors.New("quota")
	_, err = gw.Generate(context.Background(), "again")
	require.Error(t, err)

	require.NoError(t, gw.Close())
	traces := store.all()
	require.Len(t, traces, 2)

	bySession := map[string]Trace{}
	for _, tr := range traces {
		bySession[tr.SessionID] = tr
		assert.NotEmpty(t, tr.ID)
		assert.Equal(t, "test-model", tr.Model)
	}
	assert.Equal(t, "hello", bySession["sess-1"].Prompt)
	assert.Equal(t, "r:hello", bySession["sess-1"].Response)
	assert.Empty(t, bySession["sess-1"].Error)
	assert.Equal(t, "quota", bySession[""].Error)
}

// blockingGateway holds every call until release is closed, and fails calls
// whose ctx is already done.
type blockingGateway struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
}

func (b *blockingGateway) Generate(ctx context.Context, prompt string) (string, error) {
	if b.calls.Add(1) == 1 {
		close(b.started)
	}
	<-b.release
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "r:" + prompt, nil
}

func TestCachingGateway_CancelledCallerDoesNotFailOthers(t *testing.T) {
	defer goleak.VerifyNone(t)

	stub := &blockingGateway{started: make(chan struct{}), release: make(chan struct{})}
	gw, err := NewCachingGateway(stub, 4)
	require.NoError(t, err)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := gw.Generate(firstCtx, "same")
		firstErr <- err
	}()
	<-stub.started

	second := make(chan string, 1)
	go func() {
		reply, err := gw.Generate(context.Background(), "same")
		assert.NoError(t, err)
		second <- reply
	}()

	cancelFirst()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(stub.release)
	assert.Equal(t, "r:same", <-second)
	assert.Equal(t, 1, gw.Len(), "reply cached despite the first caller leaving")
}
