package perception

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishimitra/internal/types"
)

func TestStripCodeFences(t *testing.T) {
	body := `{"title": "Spray neem oil"}`
	for _, raw := range []string{
		body,
		"```json\n" + body + "\n```",
		"```\n" + body + "\n```",
		"  ```JSON\n" + body + "```  ",
	} {
		assert.Equal(t, body, stripCodeFences(raw))
	}
}

func TestParseModelJSON_FenceEquivalence(t *testing.T) {
	bodies := []string{
		`{"title": "Spray neem oil", "priority": "high"}`,
		`["Harvest wheat", "Sell wheat"]`,
		`"Fix the pump"`,
		`{title: 'Spray neem oil',}`,
	}
	for _, body := range bodies {
		plain, err := parseModelJSON(body)
		require.NoError(t, err, body)
		fenced, err := parseModelJSON("```json\n" + body + "\n```")
		require.NoError(t, err, body)
		if diff := cmp.Diff(plain, fenced); diff != "" {
			t.Errorf("fenced parse differs for %s (-plain +fenced):\n%s", body, diff)
		}
	}
}

func TestParseModelJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want any
	}{
		{"object", `{"title":"Water the plants"}`, map[string]any{"title": "Water the plants"}},
		{"empty", "  ", nil},
		{"null", "null", nil},
		{"fenced null", "```json\nnull\n```", nil},
		{"single quoted string", `'Water the plants'`, []any{"Water the plants"}},
		{"bare comma list", `"Harvest wheat", "Sell wheat"`, []any{"Harvest wheat", "Sell wheat"}},
		{"trailing comma", `{"title": "Buy seeds",}`, map[string]any{"title": "Buy seeds"}},
		{"unquoted keys", `{title: "Buy seeds", priority: "low"}`, map[string]any{"title": "Buy seeds", "priority": "low"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseModelJSON(tt.raw)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("parseModelJSON(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestTaskFromModel(t *testing.T) {
	t.Run("fields validated", func(t *testing.T) {
		v := map[string]any{
			"title":    "spray neem oil",
			"priority": "URGENT",
			"category": "Farming",
			"dueDate":  "2026-10-20",
			"dueTime":  "07:30",
		}
		got, err := taskFromModel(v, "spray neem oil urgently", types.LanguageEnglish, testNow, DefaultDueOffset)
		require.NoError(t, err)
		require.NotNil(t, got)
		want := types.Task{Title: "Spray neem oil", Priority: types.PriorityHigh, Category: types.CategoryFarming, DueDate: "2026-10-20", DueTime: "07:30"}
		if diff := cmp.Diff(want, *got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("invalid values fall back", func(t *testing.T) {
		v := map[string]any{"title": "Visit the clinic", "category": "health", "due_date": "someday", "time": "25:99"}
		got, err := taskFromModel(v, "visit the clinic asap", types.LanguageEnglish, testNow, DefaultDueOffset)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, types.PriorityHigh, got.Priority)
		assert.Equal(t, types.CategoryPersonal, got.Category)
		assert.Equal(t, "2026-10-16", got.DueDate)
		assert.Equal(t, "11:00", got.DueTime)
	})

	t.Run("string list", func(t *testing.T) {
		got, err := taskFromModel([]any{"harvest wheat", "sell wheat"}, "x", types.LanguageEnglish, testNow, DefaultDueOffset)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Harvest wheat", got.Title)
	})

	t.Run("not a task", func(t *testing.T) {
		for _, v := range []any{nil, []any{}, map[string]any{"title": ""}, map[string]any{"title": "?"}} {
			got, err := taskFromModel(v, "hello", types.LanguageEnglish, testNow, DefaultDueOffset)
			assert.NoError(t, err)
			assert.Nil(t, got)
		}
	})

	t.Run("unexpected shape", func(t *testing.T) {
		_, err := taskFromModel(42.0, "x", types.LanguageEnglish, testNow, DefaultDueOffset)
		assert.ErrorIs(t, err, ErrParseFailure)
	})
}

func TestExtractViaModel(t *testing.T) {
	ctx := context.Background()

	t.Run("nil gateway", func(t *testing.T) {
		_, err := extractViaModel(ctx, "x", types.LanguageEnglish, nil, testNow, DefaultDueOffset)
		assert.ErrorIs(t, err, ErrGatewayUnavailable)
	})

	t.Run("gateway error keeps cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		gw := &fakeGateway{err: cause}
		_, err := extractViaModel(ctx, "x", types.LanguageEnglish, gw, testNow, DefaultDueOffset)
		assert.ErrorIs(t, err, ErrGatewayUnavailable)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("fenced object", func(t *testing.T) {
		gw := &fakeGateway{response: "```json\n{\"title\": \"Check the drip lines\", \"priority\": \"low\"}\n```"}
		got, err := extractViaModel(ctx, "drip lines need a look", types.LanguageEnglish, gw, testNow, DefaultDueOffset)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Check the drip lines", got.Title)
		assert.Equal(t, types.PriorityLow, got.Priority)
		assert.Equal(t, types.CategoryGeneral, got.Category)

		require.Equal(t, 1, gw.calls())
		assert.Contains(t, gw.prompts[0], `"drip lines need a look"`)
		assert.Contains(t, gw.prompts[0], "2026-10-16")
	})

	t.Run("null reply", func(t *testing.T) {
		gw := &fakeGateway{response: "null"}
		got, err := extractViaModel(ctx, "thanks", types.LanguageEnglish, gw, testNow, DefaultDueOffset)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestBuildTaskPrompt(t *testing.T) {
	p := buildTaskPrompt("कल खेत जाना", types.LanguageHindi, testNow)
	assert.Contains(t, p, "hindi")
	assert.Contains(t, p, "2026-10-16")
	assert.Contains(t, p, "Friday")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(p), `"कल खेत जाना"`))
}

func TestBuildTaskPrompt_StableWithinDay(t *testing.T) {
	later := testNow.Add(7*time.Hour + 13*time.Minute)
	assert.Equal(t,
		buildTaskPrompt("buy seeds", types.LanguageEnglish, testNow),
		buildTaskPrompt("buy seeds", types.LanguageEnglish, later))
	assert.NotEqual(t,
		buildTaskPrompt("buy seeds", types.LanguageEnglish, testNow),
		buildTaskPrompt("buy seeds", types.LanguageEnglish, testNow.AddDate(0, 0, 1)))
}
