package perception

import (
	"slices"

	"krishimitra/internal/types"
)

// DefaultHistoryWindow is how many recent exchanges are inspected when
// resolving an affirmative reply.
const DefaultHistoryWindow = 4

// AppendExchange returns a new history with ex appended. The input slice is
// never modified or aliased.
func AppendExchange(history []types.Exchange, ex types.Exchange) []types.Exchange {
	out := make([]types.Exchange, len(history), len(history)+1)
	copy(out, history)
	return append(out, ex)
}

// RecentWindow returns a copy of the last n exchanges, oldest first.
// n <= 0 selects DefaultHistoryWindow.
func RecentWindow(history []types.Exchange, n int) []types.Exchange {
	if n <= 0 {
		n = DefaultHistoryWindow
	}
	if len(history) > n {
		history = history[len(history)-n:]
	}
	return slices.Clone(history)
}
