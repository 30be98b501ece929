package perception

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishimitra/internal/types"
)

func TestTitleTokens(t *testing.T) {
	assert.Equal(t, []string{"water", "the", "wheat", "field"}, titleTokens("Water the wheat field, the WHEAT field!"))
	assert.Empty(t, titleTokens("a to of"))
}

func TestTokensCommon(t *testing.T) {
	assert.True(t, tokensCommon("seed", "seed"))
	assert.True(t, tokensCommon("fertilizer", "fertilizers"))
	assert.True(t, tokensCommon("plants", "plant"))
	assert.False(t, tokensCommon("the", "then"), "short tokens only match exactly")
	assert.False(t, tokensCommon("wheat", "field"))
}

func TestFindSimilar(t *testing.T) {
	tasks := []types.Task{
		{ID: "t1", Title: "Water the wheat field"},
		{ID: "t2", Title: "Buy seeds"},
		{ID: "t3", Title: "Call the doctor", Completed: true},
		{ID: "t4", Title: "Seeds"},
	}

	tests := []struct {
		title  string
		wantID string
	}{
		{"Water the wheat farm", "t1"},
		{"water the WHEAT field", "t1"},
		{"Buy seeds", "t2"},
		{"Call the doctor", ""},   // only similar task is completed
		{"Seeds", ""},             // single-token titles never count
		{"Spray the cotton", ""},  // unrelated
		{"Water the plants", ""},  // 2 of 4 is not above 0.6
		{"Buy fertilizer", ""},    // one common token
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := findSimilar(tt.title, tasks, DefaultDuplicateThresholds())
			if tt.wantID == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestFindSimilar_Symmetric(t *testing.T) {
	titles := []string{
		"Water the wheat field",
		"Water the wheat farm",
		"Water the plants",
		"Spray pesticide on cotton",
		"Spray pesticides on the cotton field",
		"Buy seeds",
		"Buy seeds and fertilizer",
		"Call the doctor",
		"Seeds",
		"खेत में पानी देना",
		"खेत में पानी",
	}
	th := DefaultDuplicateThresholds()
	for _, a := range titles {
		for _, b := range titles {
			ab := findSimilar(a, []types.Task{{ID: "b", Title: b}}, th) != nil
			ba := findSimilar(b, []types.Task{{ID: "a", Title: a}}, th) != nil
			assert.Equal(t, ab, ba, "findSimilar(%q, %q) not symmetric", a, b)
		}
	}
}

func TestFindSimilar_CustomThresholds(t *testing.T) {
	tasks := []types.Task{{ID: "t1", Title: "Water the plants"}}
	loose := DuplicateThresholds{Ratio: 0.4, MinCommon: 2}

	assert.Nil(t, findSimilar("Water the wheat field", tasks, DefaultDuplicateThresholds()))
	got := findSimilar("Water the wheat field", tasks, loose)
	require.NotNil(t, got)
	assert.Equal(t, "t1", got.ID)
}

func TestFindCompletionMatch(t *testing.T) {
	stop := stopwordSet(types.LanguageEnglish)
	tasks := []types.Task{
		{ID: "t1", Title: "Water the plants"},
		{ID: "t2", Title: "Spray pesticide on cotton"},
		{ID: "t3", Title: "Harvest wheat", Completed: true},
	}

	got := findCompletionMatch("watered the plants", tasks, stop)
	require.NotNil(t, got)
	assert.Equal(t, "t1", got.ID)

	got = findCompletionMatch("sprayed the cotton", tasks, stop)
	require.NotNil(t, got)
	assert.Equal(t, "t2", got.ID)

	assert.Nil(t, findCompletionMatch("harvested the wheat", tasks, stop), "completed tasks are skipped")
	assert.Nil(t, findCompletionMatch("the", tasks, stop), "stopwords alone never match")
	assert.Nil(t, findCompletionMatch("fixed the tractor", tasks, stop))
}

func TestFindCompletionMatch_ObjectOutranksVerb(t *testing.T) {
	stop := stopwordSet(types.LanguageEnglish)
	tasks := []types.Task{
		{ID: "t1", Title: "Water the plants"},
		{ID: "t2", Title: "Buy tomatoes"},
	}

	got := findCompletionMatch("watered the tomatoes", tasks, stop)
	require.NotNil(t, got)
	assert.Equal(t, "t2", got.ID)

	got = findCompletionMatch("watered the plants", tasks, stop)
	require.NotNil(t, got)
	assert.Equal(t, "t1", got.ID)

	got = findCompletionMatch("watered", tasks, stop)
	require.NotNil(t, got, "a verb alone still matches")
	assert.Equal(t, "t1", got.ID)
}
