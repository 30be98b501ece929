package perception

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishimitra/internal/types"
)

func TestAcronym(t *testing.T) {
	assert.Equal(t, "kcc", acronym("Kisan Credit Card"))
	assert.Equal(t, "pmfb", acronym("Pradhan Mantri Fasal Bima Yojana"))
	assert.Equal(t, "shc", acronym("Soil Health Card"))
	assert.Equal(t, "", acronym("e-NAM"), "two letters is too short")
	assert.Equal(t, "", acronym("किसान क्रेडिट कार्ड"), "non-Latin titles have no acronym")
}

func TestDetectScheme(t *testing.T) {
	catalog := newTestCatalog()

	tests := []struct {
		name      string
		utterance string
		lang      types.Language
		wantID    string
	}{
		{"full title", "tell me about kisan credit card", types.LanguageEnglish, "kcc"},
		{"title with punctuation", "Kisan Credit Card?", types.LanguageEnglish, "kcc"},
		{"acronym", "what is KCC", types.LanguageEnglish, "kcc"},
		{"alias", "how do I register for pm-kisan", types.LanguageEnglish, "pm-kisan"},
		{"derived acronym", "is shc free", types.LanguageEnglish, "soil-health-card"},
		{"longest title wins", "pradhan mantri fasal bima yojana details", types.LanguageEnglish, "pmfby"},
		{"english synonym", "i want crop insurance", types.LanguageEnglish, "pmfby"},
		{"hindi synonym", "फसल बीमा के बारे में बताओ", types.LanguageHindi, "pmfby"},
		{"english synonym under hindi", "pm kisan ka paisa kab aayega", types.LanguageHindi, "pm-kisan"},
		{"word group", "credit for kisan", types.LanguageEnglish, "kcc"},
		{"kannada synonym", "ಬೆಳೆ ವಿಮೆ ಬಗ್ಗೆ ಹೇಳಿ", types.LanguageKannada, "pmfby"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := detectScheme(tt.utterance, tt.lang, catalog)
			require.True(t, ok, "expected a scheme for %q", tt.utterance)
			assert.Equal(t, tt.wantID, s.ID)
		})
	}
}

func TestDetectScheme_NoMatch(t *testing.T) {
	catalog := newTestCatalog()
	for _, u := range []string{"water the plants", "weather today", "kisan", "credit card bill", ""} {
		_, ok := detectScheme(u, types.LanguageEnglish, catalog)
		assert.False(t, ok, "unexpected scheme for %q", u)
	}

	_, ok := detectScheme("kisan credit card", types.LanguageEnglish, nil)
	assert.False(t, ok, "nil catalog never matches")
}

func TestDetectScheme_SynonymNeedsCatalogEntry(t *testing.T) {
	// "solar pump" maps to pm-kusum, which this catalog does not carry.
	_, ok := detectScheme("solar pump subsidy", types.LanguageEnglish, newTestCatalog())
	assert.False(t, ok)
}

func TestResolvePendingScheme(t *testing.T) {
	catalog := newTestCatalog()
	offer := types.AssistantSaid(`About "Kisan Credit Card" scheme: short-term credit for farmers. Want to apply?`)

	t.Run("latest offer", func(t *testing.T) {
		history := []types.Exchange{types.UserSaid("tell me about kcc"), offer}
		s, ok := resolvePendingScheme(history, 4, types.LanguageEnglish, catalog)
		require.True(t, ok)
		assert.Equal(t, "kcc", s.ID)
	})

	t.Run("most recent offer wins", func(t *testing.T) {
		history := []types.Exchange{
			offer,
			types.AssistantSaid(`The “Soil Health Card” scheme tests your soil.`),
		}
		s, ok := resolvePendingScheme(history, 4, types.LanguageEnglish, catalog)
		require.True(t, ok)
		assert.Equal(t, "soil-health-card", s.ID)
	})

	t.Run("outside window", func(t *testing.T) {
		history := []types.Exchange{
			offer,
			types.UserSaid("one"), types.AssistantSaid("two"),
			types.UserSaid("three"), types.AssistantSaid("four"),
		}
		_, ok := resolvePendingScheme(history, 4, types.LanguageEnglish, catalog)
		assert.False(t, ok)
	})

	t.Run("user turns ignored", func(t *testing.T) {
		history := []types.Exchange{types.UserSaid(`what about the "Kisan Credit Card" scheme`)}
		_, ok := resolvePendingScheme(history, 4, types.LanguageEnglish, catalog)
		assert.False(t, ok)
	})

	t.Run("needs scheme vocabulary", func(t *testing.T) {
		history := []types.Exchange{types.AssistantSaid(`Added "Kisan Credit Card" to your list.`)}
		_, ok := resolvePendingScheme(history, 4, types.LanguageEnglish, catalog)
		assert.False(t, ok)
	})

	t.Run("hindi offer", func(t *testing.T) {
		history := []types.Exchange{types.AssistantSaid(`"Pradhan Mantri Fasal Bima Yojana" योजना के बारे में: फसल बीमा।`)}
		s, ok := resolvePendingScheme(history, 4, types.LanguageHindi, catalog)
		require.True(t, ok)
		assert.Equal(t, "pmfby", s.ID)
	})
}

func TestQuotedSubstrings(t *testing.T) {
	got := quotedSubstrings(`a "one" b “two” c «three» d ‘four’ e 'five'`)
	assert.Equal(t, []string{"one", "two", "three", "four", "five"}, got)
	assert.Empty(t, quotedSubstrings("nothing quoted here"))
}
