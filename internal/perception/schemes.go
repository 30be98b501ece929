package perception

import (
	"regexp"
	"strings"
	"unicode"

	"krishimitra/internal/types"
)

// SchemeCatalog is the read-only scheme dataset the resolver matches against.
type SchemeCatalog interface {
	// Lookup finds a scheme by id, title or alias (case-insensitive).
	Lookup(text string) (types.SchemeRecord, bool)
	// All returns every scheme in a stable order.
	All() []types.SchemeRecord
}

// acronymSkip lists title words that do not contribute to an acronym.
var acronymSkip = map[string]bool{"of": true, "the": true, "and": true, "for": true, "scheme": true, "yojana": true}

// quotedRe captures text between straight, curly, guillemet or single quotes.
var quotedRe = regexp.MustCompile(`"([^"]+)"|“([^”]+)”|«([^»]+)»|‘([^’]+)’|'([^']+)'`)

// acronym builds a lowercase acronym from a title's Latin-script words
// ("Kisan Credit Card" -> "kcc"). Titles yielding fewer than three letters
// have no usable acronym.
func acronym(title string) string {
	var b strings.Builder
	for _, w := range strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == '(' || r == ')'
	}) {
		if acronymSkip[w] {
			continue
		}
		r := []rune(w)[0]
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	if b.Len() < 3 {
		return ""
	}
	return b.String()
}

// schemeNeedles lists the strings whose presence identifies s: its title,
// dataset aliases and the acronym of its title.
func schemeNeedles(s types.SchemeRecord) []string {
	needles := []string{s.Title}
	needles = append(needles, s.Aliases...)
	if a := acronym(s.Title); a != "" {
		needles = append(needles, a)
	}
	return needles
}

// matchTitleOrShortForm finds the scheme whose title, alias or acronym occurs
// in text on word boundaries. The longest needle wins; ties keep catalog order.
func matchTitleOrShortForm(text string, catalog SchemeCatalog) (types.SchemeRecord, bool) {
	mt := matchText(text)
	var (
		best    types.SchemeRecord
		bestLen int
	)
	for _, s := range catalog.All() {
		for _, n := range schemeNeedles(s) {
			p := matchText(n)
			if p == " " || len(p) <= bestLen {
				continue
			}
			if strings.Contains(mt, p) {
				best, bestLen = s, len(p)
			}
		}
	}
	return best, bestLen > 0
}

// detectScheme runs the three detection passes in precision order: title or
// short form, per-language synonym, then word group.
func detectScheme(utterance string, lang types.Language, catalog SchemeCatalog) (types.SchemeRecord, bool) {
	if catalog == nil {
		return types.SchemeRecord{}, false
	}
	if s, ok := matchTitleOrShortForm(utterance, catalog); ok {
		return s, true
	}

	mt := matchText(utterance)
	tables := tablesFor(lang)
	for _, t := range tables {
		for _, syn := range t.synonyms {
			if hasWordPrefix(mt, syn.phrase) {
				if s, ok := catalog.Lookup(syn.schemeID); ok {
					return s, true
				}
			}
		}
	}

	for _, t := range tables {
		for _, g := range t.wordGroups {
			if allWordsPresent(mt, g.words) {
				if s, ok := catalog.Lookup(g.schemeID); ok {
					return s, true
				}
			}
		}
	}
	return types.SchemeRecord{}, false
}

func allWordsPresent(mt string, words []string) bool {
	for _, w := range words {
		if !hasWordPrefix(mt, w) {
			return false
		}
	}
	return len(words) > 0
}

// resolvePendingScheme looks back through the recent window for the last
// assistant turn that talked about a scheme and quoted its title.
func resolvePendingScheme(history []types.Exchange, window int, lang types.Language, catalog SchemeCatalog) (types.SchemeRecord, bool) {
	if catalog == nil {
		return types.SchemeRecord{}, false
	}
	recent := RecentWindow(history, window)
	for i := len(recent) - 1; i >= 0; i-- {
		ex := recent[i]
		if ex.Role != types.RoleAssistant || !mentionsSchemeVocabulary(ex.Text, lang) {
			continue
		}
		for _, q := range quotedSubstrings(ex.Text) {
			if s, ok := matchTitleOrShortForm(q, catalog); ok {
				return s, true
			}
		}
	}
	return types.SchemeRecord{}, false
}

func quotedSubstrings(text string) []string {
	var out []string
	for _, m := range quotedRe.FindAllStringSubmatch(text, -1) {
		for _, g := range m[1:] {
			if g = strings.TrimSpace(g); g != "" {
				out = append(out, g)
				break
			}
		}
	}
	return out
}
