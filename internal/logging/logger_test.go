package logging

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T, enabled map[string]bool) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	SetBase(zap.New(core), enabled)
	t.Cleanup(func() { SetBase(nil, nil) })
	return logs
}

func TestGet_NamedByCategory(t *testing.T) {
	logs := observe(t, nil)

	Get(CategoryPerception).Info("resolved %d decisions", 2)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "perception", entries[0].LoggerName)
	assert.Equal(t, "resolved 2 decisions", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
}

func TestGet_ReturnsCachedLogger(t *testing.T) {
	observe(t, nil)
	assert.Same(t, Get(CategoryStore), Get(CategoryStore))
}

func TestDisabledCategoryIsSilent(t *testing.T) {
	logs := observe(t, map[string]bool{"store": false})

	StoreDebug("hidden")
	Store("hidden too")
	Session("visible")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "visible", entries[0].Message)
}

func TestNoopBeforeInitialize(t *testing.T) {
	SetBase(nil, nil)
	// Must not panic.
	Get(CategoryGateway).Error("nothing to see: %v", "ok")
	Audit().Decision("unhandled", "english", "no intent recognized")
}

func TestWithRequestID_AddsField(t *testing.T) {
	logs := observe(t, nil)

	WithRequestID(CategoryServer, "req-123").Warn("slow turn")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-123", entries[0].ContextMap()["req"])
}

func TestAudit_SessionAttribution(t *testing.T) {
	logs := observe(t, nil)

	AuditWithSession("s-1").Decision("create_task", "hindi", "पौधों को पानी")

	entries := logs.FilterField(zap.String("event", string(AuditDecision))).All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "s-1", ctx["session"])
	assert.Equal(t, "create_task", ctx["kind"])
}

func TestTimer_StopWithThreshold(t *testing.T) {
	logs := observe(t, nil)

	timer := StartTimer(CategoryGateway, "generate")
	timer.start = time.Now().Add(-2 * time.Second)
	timer.StopWithThreshold(time.Second)

	require.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestInitialize_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "krishi.log")
	require.NoError(t, Initialize(Config{Level: "debug", Format: "json", File: path}))
	t.Cleanup(func() { SetBase(nil, nil) })

	Boot("hello")
	Sync()

	assert.FileExists(t, path)
}

func TestInitialize_BadLevel(t *testing.T) {
	err := Initialize(Config{Level: "loud"})
	assert.Error(t, err)
}
