package store

import (
	"context"
	"fmt"

	"krishimitra/internal/logging"
	"krishimitra/internal/types"
)

// =============================================================================
// SESSION HISTORY
// =============================================================================

// AppendExchanges records exchanges for a session in one transaction.
func (s *LocalStore) AppendExchanges(ctx context.Context, sessionID string, exchanges ...types.Exchange) error {
	if len(exchanges) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := s.timestamp()
	for _, ex := range exchanges {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO exchanges (session_id, role, text, created_at) VALUES (?, ?, ?, ?)",
			sessionID, string(ex.Role), ex.Text, now,
		); err != nil {
			logging.Get(logging.CategoryStore).Error("Failed to store exchange for session %s: %v", sessionID, err)
			return fmt.Errorf("failed to store exchange: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit exchanges: %w", err)
	}

	logging.StoreDebug("Stored %d exchanges for session %s", len(exchanges), sessionID)
	return nil
}

// RecentExchanges returns the last limit exchanges of a session, oldest first.
// limit <= 0 returns the whole session.
func (s *LocalStore) RecentExchanges(ctx context.Context, sessionID string, limit int) ([]types.Exchange, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT role, text FROM (
			SELECT id, role, text FROM exchanges WHERE session_id = ? ORDER BY id DESC LIMIT ?
		 ) ORDER BY id ASC`,
		sessionID, limit,
	)
	if err != nil {
		logging.Get(logging.CategoryStore).Error("Failed to query history for session %s: %v", sessionID, err)
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	defer rows.Close()

	var history []types.Exchange
	for rows.Next() {
		var role, text string
		if err := rows.Scan(&role, &text); err != nil {
			return nil, err
		}
		history = append(history, types.Exchange{Role: types.Role(role), Text: text})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	logging.StoreDebug("Retrieved %d exchanges for session %s", len(history), sessionID)
	return history, nil
}

// ClearSession deletes a session's history and reports how many rows went.
func (s *LocalStore) ClearSession(ctx context.Context, sessionID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM exchanges WHERE session_id = ?", sessionID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear session %s: %w", sessionID, err)
	}
	return res.RowsAffected()
}
