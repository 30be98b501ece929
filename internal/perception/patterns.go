package perception

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"krishimitra/internal/types"
)

// =============================================================================
// PATTERN TABLES - per-language vocabulary
// =============================================================================
// Every language gets one languageTable. Lookups always consult the
// language's own table first and the English table second, so romanised
// words ("pm kisan", "urgent") work regardless of the active language.

type priorityWord struct {
	phrase   string
	priority types.Priority
}

type categoryWord struct {
	phrase   string
	category types.Category
}

// dateWord moves the due date by days and months from today.
type dateWord struct {
	phrase string
	days   int
	months int
}

type partOfDay struct {
	phrase string
	hour   int
}

// unitWord maps the prefix of a relative-date unit to its length.
type unitWord struct {
	prefix string
	days   int
	months int
}

type schemeSynonym struct {
	phrase   string
	schemeID string
}

// wordGroup matches when every word appears somewhere in the utterance.
type wordGroup struct {
	words    []string
	schemeID string
}

type languageTable struct {
	lang types.Language

	// completion patterns capture the finished activity in group "activity"
	completion   []*regexp.Regexp
	conjunctions []string
	both         []string
	stopwords    []string

	redirect    []string
	affirmative []string

	priority []priorityWord
	category []categoryWord

	schemeWords []string
	synonyms    []schemeSynonym
	wordGroups  []wordGroup

	taskMarkers []string
	fillers     []string
	nonTask     []string
	questions   []string

	dates      []dateWord
	units      []unitWord
	numbers    map[string]int
	weekdays   [7]string // Sunday first; empty when the language has none
	weekdayPre []string
	weekdayAft []string
	partsOfDay []partOfDay

	// relative captures "n" and "unit"; clock captures "hour", "min", "ampm"
	relative []*regexp.Regexp
	clock    []*regexp.Regexp
	extra    []*regexp.Regexp // additional strip-only patterns

	// derived by compile
	stripRes     []*regexp.Regexp
	stripPhrases [][]string
	weekdayRe    *regexp.Regexp
}

var languageTables = map[types.Language]*languageTable{}

func register(t *languageTable) {
	t.compile()
	languageTables[t.lang] = t
}

// tablesFor returns the tables to consult for lang, most specific first.
// Unknown languages get the English table only.
func tablesFor(lang types.Language) []*languageTable {
	en := languageTables[types.LanguageEnglish]
	if t, ok := languageTables[lang]; ok && lang != types.LanguageEnglish {
		return []*languageTable{t, en}
	}
	return []*languageTable{en}
}

// mustCompile compiles an NFC-normalised pattern so it agrees with
// normalised input for scripts that use nukta forms.
func mustCompile(expr string) *regexp.Regexp {
	return regexp.MustCompile(norm.NFC.String(expr))
}

func (t *languageTable) compile() {
	if t.weekdays[0] != "" {
		names := make([]string, 0, 7)
		for _, w := range t.weekdays {
			names = append(names, regexp.QuoteMeta(norm.NFC.String(w)))
		}
		expr := `(?:^|\s)`
		if len(t.weekdayPre) > 0 {
			expr += `(?:(?:` + strings.Join(t.weekdayPre, "|") + `)\s+)?`
		}
		expr += `(?:` + strings.Join(names, "|") + `)\S*`
		if len(t.weekdayAft) > 0 {
			expr += `(?:\s+(?:` + strings.Join(t.weekdayAft, "|") + `))?`
		}
		expr += `(?:\s|$)`
		t.weekdayRe = mustCompile(expr)
	}

	t.stripRes = append(t.stripRes, t.extra...)
	t.stripRes = append(t.stripRes, t.relative...)
	t.stripRes = append(t.stripRes, t.clock...)
	if t.weekdayRe != nil {
		t.stripRes = append(t.stripRes, t.weekdayRe)
	}

	var phrases []string
	phrases = append(phrases, t.taskMarkers...)
	for _, d := range t.dates {
		phrases = append(phrases, d.phrase)
	}
	for _, p := range t.partsOfDay {
		phrases = append(phrases, p.phrase)
	}
	phrases = append(phrases, t.fillers...)
	for _, p := range phrases {
		if keys := tokenKeys(p); len(keys) > 0 {
			t.stripPhrases = append(t.stripPhrases, keys)
		}
	}
	// Longer phrases first so "remind me to" wins over "remind".
	sort.SliceStable(t.stripPhrases, func(i, j int) bool {
		return len(t.stripPhrases[i]) > len(t.stripPhrases[j])
	})
}

// =============================================================================
// MATCHING HELPERS
// =============================================================================

func isBreak(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

func fold(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

// tokenKeys splits on whitespace and trims punctuation from each token.
func tokenKeys(s string) []string {
	raw := strings.Fields(fold(s))
	keys := make([]string, 0, len(raw))
	for _, tok := range raw {
		if k := strings.TrimFunc(tok, isBreak); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// matchText renders s as " w1 w2 ... " with punctuation treated as a word
// break, so phrase lookups land on token boundaries.
func matchText(s string) string {
	words := strings.FieldsFunc(fold(s), func(r rune) bool {
		return unicode.IsSpace(r) || isBreak(r)
	})
	if len(words) == 0 {
		return " "
	}
	return " " + strings.Join(words, " ") + " "
}

// hasPhrase reports whether phrase occurs as whole words in text (a matchText).
func hasPhrase(text, phrase string) bool {
	p := matchText(phrase)
	return p != " " && strings.Contains(text, p)
}

// hasWordPrefix reports whether phrase occurs in text starting on a word
// boundary; the last word may continue ("plant" matches "plants").
func hasWordPrefix(text, phrase string) bool {
	p := matchText(phrase)
	return p != " " && strings.Contains(text, p[:len(p)-1])
}

func anyPhrase(text string, phrases []string) bool {
	for _, p := range phrases {
		if hasPhrase(text, p) {
			return true
		}
	}
	return false
}

func anyWordPrefix(text string, phrases []string) bool {
	for _, p := range phrases {
		if hasWordPrefix(text, p) {
			return true
		}
	}
	return false
}

// foldDigits maps Indic digits (Devanagari through Kannada) to ASCII.
func foldDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 0x0900 && r < 0x0D80 && unicode.IsDigit(r) {
			if d := (r-0x0900)%0x80 - 0x66; d >= 0 && d <= 9 {
				return '0' + d
			}
		}
		return r
	}, s)
}

// prepare produces the canonical form the regex tables are written against.
func prepare(s string) string {
	s = strings.Join(strings.Fields(foldDigits(fold(s))), " ")
	return strings.TrimRightFunc(s, func(r rune) bool {
		return r == '.' || r == '!' || r == '?' || r == '।' || r == '॥' || unicode.IsSpace(r)
	})
}

// =============================================================================
// TABLE LOOKUPS
// =============================================================================

func matchesRedirect(text string, lang types.Language) bool {
	mt := matchText(text)
	for _, t := range tablesFor(lang) {
		if anyWordPrefix(mt, t.redirect) {
			return true
		}
	}
	return false
}

// leadingOrTrailingAffirmative reports whether the utterance opens or closes
// with an agreement phrase. Affirmatives buried mid-sentence are ignored.
func leadingOrTrailingAffirmative(text string, lang types.Language) bool {
	mt := matchText(text)
	for _, t := range tablesFor(lang) {
		for _, a := range t.affirmative {
			p := matchText(a)
			if p == " " {
				continue
			}
			if strings.HasPrefix(mt, p) || strings.HasSuffix(mt, p) {
				return true
			}
		}
	}
	return false
}

func mentionsSchemeVocabulary(text string, lang types.Language) bool {
	mt := matchText(text)
	for _, t := range tablesFor(lang) {
		if anyWordPrefix(mt, t.schemeWords) {
			return true
		}
	}
	return false
}

func inferPriority(text string, lang types.Language) types.Priority {
	mt := matchText(text)
	for _, t := range tablesFor(lang) {
		for _, w := range t.priority {
			if hasWordPrefix(mt, w.phrase) {
				return w.priority
			}
		}
	}
	return types.PriorityMedium
}

func inferCategory(text string, lang types.Language) types.Category {
	mt := matchText(text)
	// Farming rules across all tables run before any personal rule.
	for _, want := range []types.Category{types.CategoryFarming, types.CategoryPersonal} {
		for _, t := range tablesFor(lang) {
			for _, w := range t.category {
				if w.category == want && hasWordPrefix(mt, w.phrase) {
					return want
				}
			}
		}
	}
	return types.CategoryGeneral
}

// isChatter reports greetings, acknowledgements and questions, which are
// never task titles. A trailing "?" on a polite request that opens with a
// task marker ("can you remind me to ...?") does not make it a question.
func isChatter(text string, lang types.Language) bool {
	trimmed := strings.TrimSpace(text)
	tables := tablesFor(lang)
	mt := trimLeadingFillers(matchText(trimmed), tables)
	if strings.HasSuffix(trimmed, "?") && !opensWithTaskMarker(mt, tables) {
		return true
	}
	for _, t := range tables {
		for _, q := range t.questions {
			if p := matchText(q); p != " " && strings.HasPrefix(mt, p) {
				return true
			}
		}
	}
	if isRedirectOnly(trimmed, lang) {
		return true
	}

	// Whatever is left after removing social phrases must carry content.
	rest := tokenKeys(trimmed)
	for _, t := range tables {
		for _, group := range [][]string{t.nonTask, t.affirmative, t.redirect, t.fillers} {
			for _, p := range group {
				rest = removePhrase(rest, tokenKeys(p))
			}
		}
	}
	return len(rest) == 0
}

// trimLeadingFillers drops politeness phrases from the front of a match text.
func trimLeadingFillers(mt string, tables []*languageTable) string {
	for changed := true; changed; {
		changed = false
		for _, t := range tables {
			for _, f := range t.fillers {
				if p := matchText(f); p != " " && strings.HasPrefix(mt, p) {
					mt = mt[len(p)-1:]
					changed = true
				}
			}
		}
	}
	return mt
}

func opensWithTaskMarker(mt string, tables []*languageTable) bool {
	for _, t := range tables {
		for _, m := range t.taskMarkers {
			if p := matchText(m); p != " " && strings.HasPrefix(mt, p) {
				return true
			}
		}
	}
	return false
}

// redirectObjects are the words a bare redirect reply points with.
var redirectObjects = []string{
	"it", "there", "that", "this", "the", "me", "us", "now", "link", "page", "site",
	"वहाँ", "वहां", "उसे", "इसे", "वो", "यह",
}

// isRedirectOnly reports an utterance that asks to be taken somewhere and
// says nothing else, such as "show me" or "take me there".
func isRedirectOnly(text string, lang types.Language) bool {
	if !matchesRedirect(text, lang) {
		return false
	}
	rest := tokenKeys(text)
	for _, t := range tablesFor(lang) {
		for _, group := range [][]string{t.redirect, t.fillers, t.affirmative} {
			for _, p := range group {
				rest = removePhrase(rest, tokenKeys(p))
			}
		}
	}
	for _, w := range redirectObjects {
		rest = removePhrase(rest, []string{fold(w)})
	}
	return len(rest) == 0
}

func stopwordSet(lang types.Language) map[string]bool {
	set := make(map[string]bool)
	for _, t := range tablesFor(lang) {
		for _, w := range t.stopwords {
			set[fold(w)] = true
		}
	}
	return set
}
