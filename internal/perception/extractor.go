package perception

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"krishimitra/internal/types"
)

// DefaultDueOffset is added to the current time when an utterance names no time.
const DefaultDueOffset = time.Hour

// maxRelativeCount caps "in N days" style offsets.
const maxRelativeCount = 3650

var listSepRe = regexp.MustCompile(`\s*[,;&+/،]\s*`)

// =============================================================================
// LOCAL EXTRACTION
// =============================================================================

// extractLocal builds a task from the utterance using only the pattern
// tables. It returns nil for chatter and when no title survives
// normalisation.
func extractLocal(utterance string, lang types.Language, now time.Time, dueOffset time.Duration) *types.Task {
	prepared := prepare(utterance)
	if prepared == "" || isChatter(utterance, lang) {
		return nil
	}

	title := cleanTitle(normalize(prepared, lang), lang)
	if !meaningfulTitle(title) {
		return nil
	}

	date, hasDate := parseDueDate(prepared, lang, now)
	hour, minute, hasTime := parseDueTime(prepared, lang)

	task := &types.Task{
		Title:    title,
		Priority: inferPriority(prepared, lang),
		Category: inferCategory(prepared, lang),
	}
	task.DueDate, task.DueTime = resolveDue(now, date, hasDate, hour, minute, hasTime, dueOffset)
	return task
}

// cleanTitle removes priority vocabulary and edge punctuation from a
// normalised title and capitalises it.
func cleanTitle(title string, lang types.Language) string {
	tokens := strings.Fields(title)
	for _, t := range tablesFor(lang) {
		for _, w := range t.priority {
			tokens = removePhrase(tokens, tokenKeys(w.phrase))
		}
	}
	title = strings.TrimFunc(strings.Join(tokens, " "), func(r rune) bool {
		return unicode.IsSpace(r) || isBreak(r)
	})
	return capitalizeFirst(title)
}

func meaningfulTitle(title string) bool {
	if utf8.RuneCountInString(title) < 2 {
		return false
	}
	for _, r := range title {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// =============================================================================
// DATES AND TIMES
// =============================================================================

func parseDueDate(text string, lang types.Language, now time.Time) (time.Time, bool) {
	tables := tablesFor(lang)

	for _, t := range tables {
		for _, re := range t.relative {
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			n := parseCount(group(re, m, "n"), t)
			unit := group(re, m, "unit")
			for _, u := range t.units {
				if strings.HasPrefix(unit, fold(u.prefix)) {
					return now.AddDate(0, u.months*n, u.days*n), true
				}
			}
		}
	}

	mt := matchText(text)
	for _, t := range tables {
		for _, d := range t.dates {
			if hasPhrase(mt, d.phrase) {
				return now.AddDate(0, d.months, d.days), true
			}
		}
	}

	for _, t := range tables {
		for i, name := range t.weekdays {
			if name != "" && hasWordPrefix(mt, name) {
				return nextWeekday(now, time.Weekday(i)), true
			}
		}
	}
	return time.Time{}, false
}

func parseCount(s string, t *languageTable) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		var ok bool
		if n, ok = t.numbers[s]; !ok {
			n = 1
		}
	}
	return min(max(n, 0), maxRelativeCount)
}

// nextWeekday returns the next date falling on wd, never today.
func nextWeekday(now time.Time, wd time.Weekday) time.Time {
	days := (int(wd) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return now.AddDate(0, 0, days)
}

// parseDueTime reads a clock time, adjusted by am/pm or a part-of-day word,
// falling back to the part of day alone.
func parseDueTime(text string, lang types.Language) (hour, minute int, ok bool) {
	tables := tablesFor(lang)
	mt := matchText(text)

	pod := -1
podSearch:
	for _, t := range tables {
		for _, p := range t.partsOfDay {
			if hasPhrase(mt, p.phrase) {
				pod = p.hour
				break podSearch
			}
		}
	}

	for _, t := range tables {
		for _, re := range t.clock {
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			h, err := strconv.Atoi(group(re, m, "hour"))
			if err != nil {
				continue
			}
			mi := 0
			if g := group(re, m, "min"); g != "" {
				mi, _ = strconv.Atoi(g)
			}
			ampm := group(re, m, "ampm")
			switch {
			case strings.HasPrefix(ampm, "p"):
				if h < 12 {
					h += 12
				}
			case strings.HasPrefix(ampm, "a"):
				if h == 12 {
					h = 0
				}
			case pod >= 12 && h < 12:
				h += 12
			}
			if h <= 23 && mi <= 59 {
				return h, mi, true
			}
		}
	}

	if pod >= 0 {
		return pod, 0, true
	}
	return 0, 0, false
}

func group(re *regexp.Regexp, m []string, name string) string {
	if i := re.SubexpIndex(name); i >= 0 && i < len(m) {
		return m[i]
	}
	return ""
}

// resolveDue formats the due date and time, defaulting to today and
// now+offset. A default time that crosses midnight moves the default date.
func resolveDue(now, date time.Time, hasDate bool, hour, minute int, hasTime bool, offset time.Duration) (string, string) {
	if offset <= 0 {
		offset = DefaultDueOffset
	}
	day := now
	if hasDate {
		day = date
	}
	if !hasTime {
		due := now.Add(offset)
		hour, minute = due.Hour(), due.Minute()
		if !hasDate {
			day = due
		}
	}
	return day.Format(types.DateLayout), fmt.Sprintf("%02d:%02d", hour, minute)
}

// =============================================================================
// COMPLETION DETECTION
// =============================================================================

// detectCompletion returns the activity captured by the first completion
// pattern that matches.
func detectCompletion(utterance string, lang types.Language) (string, bool) {
	prepared := prepare(utterance)
	for _, t := range tablesFor(lang) {
		for _, re := range t.completion {
			m := re.FindStringSubmatch(prepared)
			if m == nil {
				continue
			}
			if a := strings.TrimSpace(group(re, m, "activity")); a != "" {
				return a, true
			}
		}
	}
	return "", false
}

// splitActivities breaks "both X and Y", "X, Y" and "X & Y" into parts.
func splitActivities(activity string, lang types.Language) []string {
	tables := tablesFor(lang)
	conj := make(map[string]bool)
	both := make(map[string]bool)
	for _, t := range tables {
		for _, c := range t.conjunctions {
			conj[fold(c)] = true
		}
		for _, b := range t.both {
			both[fold(b)] = true
		}
	}

	var parts []string
	for _, chunk := range listSepRe.Split(activity, -1) {
		var cur []string
		flush := func() {
			if len(cur) > 0 {
				parts = append(parts, strings.Join(cur, " "))
				cur = nil
			}
		}
		for _, tok := range strings.Fields(chunk) {
			key := strings.TrimFunc(tok, isBreak)
			switch {
			case conj[key]:
				flush()
			case both[key]:
				// dropped
			default:
				cur = append(cur, tok)
			}
		}
		flush()
	}
	return parts
}
