package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishimitra/internal/gateway"
	"krishimitra/internal/types"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	s, err := NewLocalStore(filepath.Join(t.TempDir(), "krishi.db"), time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// steppingClock returns a clock that advances one second per call.
func steppingClock(start time.Time) func() time.Time {
	cur := start
	return func() time.Time {
		cur = cur.Add(time.Second)
		return cur
	}
}

func TestNewLocalStore(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Ping())

	stats, err := s.GetStats()
	require.NoError(t, err)
	for _, table := range []string{"tasks", "exchanges", "model_traces"} {
		assert.Contains(t, stats, table)
	}
	assert.Equal(t, CurrentSchemaVersion, GetSchemaVersion(s.db))
	assert.True(t, columnExists(s.db, "tasks", "source"))
}

func TestNewLocalStore_InMemory(t *testing.T) {
	s, err := NewLocalStore(":memory:", 0)
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, ":memory:", s.Path())
}

func TestNewLocalStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "krishi.db")
	ctx := context.Background()

	s, err := NewLocalStore(path, 0)
	require.NoError(t, err)
	added, err := s.AddTask(ctx, types.Task{Title: "Water the field"}, "local")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = NewLocalStore(path, 0)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.GetTask(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, "Water the field", got.Title)

	var versions int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM schema_versions").Scan(&versions))
	assert.Equal(t, len(migrations), versions, "migrations are not re-applied")
}

// =============================================================================
// TASKS
// =============================================================================

func TestAddTask(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	got, err := s.AddTask(ctx, types.Task{
		Title:    "  Buy seeds ",
		Priority: types.PriorityHigh,
		Category: types.CategoryFarming,
		DueDate:  "2026-10-17",
		DueTime:  "09:00",
	}, "model")
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "Buy seeds", got.Title)

	stored, err := s.GetTask(ctx, got.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(got, stored); diff != "" {
		t.Errorf("GetTask mismatch (-added +stored):\n%s", diff)
	}

	var source string
	require.NoError(t, s.db.QueryRow("SELECT source FROM tasks WHERE id = ?", got.ID).Scan(&source))
	assert.Equal(t, "model", source)
}

func TestAddTask_Defaults(t *testing.T) {
	s := newTestStore(t)
	got, err := s.AddTask(context.Background(), types.Task{Title: "Call the vet", Priority: "urgent"}, "")
	require.NoError(t, err)
	assert.Equal(t, types.PriorityMedium, got.Priority)
	assert.Equal(t, types.CategoryGeneral, got.Category)

	_, err = s.AddTask(context.Background(), types.Task{Title: "   "}, "")
	assert.Error(t, err)
}

func TestCompleteTask(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	task, err := s.AddTask(ctx, types.Task{Title: "Spray pesticide"}, "")
	require.NoError(t, err)

	require.NoError(t, s.CompleteTask(ctx, task.ID))
	require.NoError(t, s.CompleteTask(ctx, task.ID), "completing twice is fine")

	got, err := s.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)

	assert.ErrorIs(t, s.CompleteTask(ctx, "missing"), ErrTaskNotFound)
	_, err = s.GetTask(ctx, "missing")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestListTasks(t *testing.T) {
	s := newTestStore(t)
	s.now = steppingClock(time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	add := func(title, date, tm string) types.Task {
		task, err := s.AddTask(ctx, types.Task{Title: title, DueDate: date, DueTime: tm}, "")
		require.NoError(t, err)
		return task
	}
	undated := add("Undated", "", "")
	later := add("Later", "2026-10-18", "11:00")
	soon := add("Soon", "2026-10-17", "09:00")
	sooner := add("Sooner", "2026-10-17", "08:00")
	done := add("Done", "2026-10-16", "11:00")
	require.NoError(t, s.CompleteTask(ctx, done.ID))

	titles := func(tasks []types.Task) []string {
		var out []string
		for _, task := range tasks {
			out = append(out, task.Title)
		}
		return out
	}

	open, err := s.ListTasks(ctx, ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{sooner.Title, soon.Title, later.Title, undated.Title}, titles(open))

	all, err := s.ListTasks(ctx, ListOptions{IncludeCompleted: true})
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "Done", all[4].Title)
	assert.True(t, all[4].Completed)

	limited, err := s.ListTasks(ctx, ListOptions{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestResolveTaskID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a, err := s.AddTask(ctx, types.Task{ID: "abc123", Title: "A"}, "")
	require.NoError(t, err)
	_, err = s.AddTask(ctx, types.Task{ID: "abd456", Title: "B"}, "")
	require.NoError(t, err)

	id, err := s.ResolveTaskID(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, a.ID, id)

	id, err = s.ResolveTaskID(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, a.ID, id)

	_, err = s.ResolveTaskID(ctx, "ab")
	assert.ErrorIs(t, err, ErrAmbiguousID)
	_, err = s.ResolveTaskID(ctx, "zz")
	assert.ErrorIs(t, err, ErrTaskNotFound)
	_, err = s.ResolveTaskID(ctx, " ")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestDeleteTask(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	task, err := s.AddTask(ctx, types.Task{Title: "A"}, "")
	require.NoError(t, err)

	require.NoError(t, s.DeleteTask(ctx, task.ID))
	assert.ErrorIs(t, s.DeleteTask(ctx, task.ID), ErrTaskNotFound)
}

// =============================================================================
// SESSION HISTORY
// =============================================================================

func TestExchanges(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AppendExchanges(ctx, "s1",
		types.UserSaid("tell me about kcc"),
		types.AssistantSaid(`About "Kisan Credit Card" scheme`),
	))
	require.NoError(t, s.AppendExchanges(ctx, "s1", types.UserSaid("yes")))
	require.NoError(t, s.AppendExchanges(ctx, "s2", types.UserSaid("other session")))
	require.NoError(t, s.AppendExchanges(ctx, "s1"))

	all, err := s.RecentExchanges(ctx, "s1", 0)
	require.NoError(t, err)
	want := []types.Exchange{
		{Role: types.RoleUser, Text: "tell me about kcc"},
		{Role: types.RoleAssistant, Text: `About "Kisan Credit Card" scheme`},
		{Role: types.RoleUser, Text: "yes"},
	}
	if diff := cmp.Diff(want, all); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}

	recent, err := s.RecentExchanges(ctx, "s1", 2)
	require.NoError(t, err)
	assert.Equal(t, want[1:], recent, "the newest exchanges, oldest first")

	n, err := s.ClearSession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	empty, err := s.RecentExchanges(ctx, "s1", 4)
	require.NoError(t, err)
	assert.Empty(t, empty)

	other, err := s.RecentExchanges(ctx, "s2", 4)
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

// =============================================================================
// MODEL TRACES
// =============================================================================

func TestTraces(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)

	var _ gateway.TraceStore = s

	require.NoError(t, s.SaveTrace(ctx, gateway.Trace{
		ID: "t1", SessionID: "s1", Model: "m", Prompt: "p1", Response: "r1",
		Duration: 1500 * time.Millisecond, CreatedAt: base,
	}))
	require.NoError(t, s.SaveTrace(ctx, gateway.Trace{
		ID: "t2", SessionID: "s1", Model: "m", Prompt: "p2", Error: "quota",
		Duration: 500 * time.Millisecond, CreatedAt: base.Add(time.Minute),
	}))
	require.NoError(t, s.SaveTrace(ctx, gateway.Trace{
		ID: "t3", Model: "m", Prompt: "p3", Response: "r3",
		Duration: time.Second, CreatedAt: base.Add(-48 * time.Hour),
	}))

	traces, err := s.ListTraces(ctx, TraceFilter{SessionID: "s1"})
	require.NoError(t, err)
	require.Len(t, traces, 2)
	assert.Equal(t, "t2", traces[0].ID, "newest first")
	assert.Equal(t, "t1", traces[1].ID)
	assert.Equal(t, 1500*time.Millisecond, traces[1].Duration)
	assert.True(t, traces[1].CreatedAt.Equal(base))

	failed, err := s.ListTraces(ctx, TraceFilter{FailedOnly: true})
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, "quota", failed[0].Error)

	stats, err := s.GetTraceStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(1), stats.Failed)
	assert.Equal(t, time.Second, stats.AvgDuration)

	s.now = func() time.Time { return base.Add(time.Hour) }
	n, err := s.CleanupOldTraces(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	rest, err := s.ListTraces(ctx, TraceFilter{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, rest, 2)
}
