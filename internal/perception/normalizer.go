package perception

import (
	"strings"

	"krishimitra/internal/types"
)

// normalize lowercases text, collapses whitespace and strips task markers,
// date and time phrases and filler words for lang (plus English). The strip
// pass repeats until nothing changes, which makes normalize idempotent.
// Text with nothing to strip comes back trimmed and lowercased.
func normalize(text string, lang types.Language) string {
	tables := tablesFor(lang)
	s := text
	for {
		next := normalizeOnce(s, tables)
		if next == s {
			return next
		}
		s = next
	}
}

func normalizeOnce(s string, tables []*languageTable) string {
	s = strings.Join(strings.Fields(fold(s)), " ")
	for _, t := range tables {
		for _, re := range t.stripRes {
			s = re.ReplaceAllString(s, " ")
		}
	}
	tokens := strings.Fields(s)
	for _, t := range tables {
		for _, phrase := range t.stripPhrases {
			tokens = removePhrase(tokens, phrase)
		}
	}
	return strings.Join(tokens, " ")
}

// removePhrase drops every run of tokens whose punctuation-trimmed forms
// equal phrase.
func removePhrase(tokens, phrase []string) []string {
	if len(phrase) == 0 || len(tokens) < len(phrase) {
		return tokens
	}
	out := tokens[:0:0]
	for i := 0; i < len(tokens); {
		if i+len(phrase) <= len(tokens) && phraseAt(tokens, i, phrase) {
			i += len(phrase)
			continue
		}
		out = append(out, tokens[i])
		i++
	}
	return out
}

func phraseAt(tokens []string, i int, phrase []string) bool {
	for j, p := range phrase {
		if strings.TrimFunc(tokens[i+j], isBreak) != p {
			return false
		}
	}
	return true
}
