package store

import (
	"context"
	"fmt"
	"time"

	"krishimitra/internal/gateway"
	"krishimitra/internal/logging"
)

// =============================================================================
// MODEL TRACES
// =============================================================================

// TraceFilter selects traces for ListTraces.
type TraceFilter struct {
	SessionID  string
	FailedOnly bool
	Limit      int
}

// TraceStats summarises stored traces.
type TraceStats struct {
	Total       int64
	Failed      int64
	AvgDuration time.Duration
}

// SaveTrace persists one model call. It implements gateway.TraceStore.
func (s *LocalStore) SaveTrace(ctx context.Context, t gateway.Trace) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := t.CreatedAt
	if created.IsZero() {
		created = s.now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO model_traces
		 (id, session_id, model, prompt, response, error_message, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.SessionID, t.Model, t.Prompt, t.Response, t.Error, t.Duration.Milliseconds(),
		created.UTC().Format(timestampLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to store trace: %w", err)
	}
	logging.StoreDebug("Stored model trace %s (session=%s)", t.ID, t.SessionID)
	return nil
}

// ListTraces returns traces newest first.
func (s *LocalStore) ListTraces(ctx context.Context, f TraceFilter) ([]gateway.Trace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, session_id, model, prompt, response, error_message, duration_ms, created_at
		FROM model_traces WHERE 1=1`
	var args []interface{}
	if f.SessionID != "" {
		query += " AND session_id = ?"
		args = append(args, f.SessionID)
	}
	if f.FailedOnly {
		query += " AND error_message != ''"
	}
	query += " ORDER BY created_at DESC"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query traces: %w", err)
	}
	defer rows.Close()

	var traces []gateway.Trace
	for rows.Next() {
		var (
			t          gateway.Trace
			durationMs int64
			created    string
		)
		if err := rows.Scan(&t.ID, &t.SessionID, &t.Model, &t.Prompt, &t.Response, &t.Error, &durationMs, &created); err != nil {
			return nil, err
		}
		t.Duration = time.Duration(durationMs) * time.Millisecond
		t.CreatedAt = parseTimestamp(created)
		traces = append(traces, t)
	}
	return traces, rows.Err()
}

// GetTraceStats aggregates the trace table.
func (s *LocalStore) GetTraceStats(ctx context.Context) (TraceStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		stats TraceStats
		avgMs float64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN error_message != '' THEN 1 ELSE 0 END), 0),
		        COALESCE(AVG(duration_ms), 0)
		 FROM model_traces`,
	).Scan(&stats.Total, &stats.Failed, &avgMs)
	if err != nil {
		return TraceStats{}, fmt.Errorf("failed to compute trace stats: %w", err)
	}
	stats.AvgDuration = time.Duration(avgMs * float64(time.Millisecond))
	return stats, nil
}

// CleanupOldTraces deletes traces older than retention.
func (s *LocalStore) CleanupOldTraces(ctx context.Context, retention time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-retention).UTC().Format(timestampLayout)
	res, err := s.db.ExecContext(ctx, "DELETE FROM model_traces WHERE created_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up traces: %w", err)
	}
	n, _ := res.RowsAffected()
	if n > 0 {
		logging.Store("Cleaned up %d model traces older than %v", n, retention)
	}
	return n, nil
}
