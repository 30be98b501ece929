package perception

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"krishimitra/internal/types"
)

func TestAppendExchange_DoesNotAlias(t *testing.T) {
	base := make([]types.Exchange, 1, 8)
	base[0] = types.UserSaid("hello")

	a := AppendExchange(base, types.AssistantSaid("a"))
	b := AppendExchange(base, types.AssistantSaid("b"))

	assert.Len(t, base, 1)
	assert.Equal(t, "a", a[1].Text)
	assert.Equal(t, "b", b[1].Text)
}

func TestRecentWindow(t *testing.T) {
	var history []types.Exchange
	for _, s := range []string{"1", "2", "3", "4", "5", "6"} {
		history = AppendExchange(history, types.UserSaid(s))
	}

	got := RecentWindow(history, 0)
	assert.Len(t, got, DefaultHistoryWindow)
	assert.Equal(t, "3", got[0].Text)
	assert.Equal(t, "6", got[3].Text)

	assert.Len(t, RecentWindow(history, 2), 2)
	assert.Len(t, RecentWindow(history, 10), 6)
	assert.Empty(t, RecentWindow(nil, 4))

	got[0].Text = "changed"
	assert.Equal(t, "3", history[2].Text, "window is a copy")
}
