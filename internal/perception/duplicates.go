package perception

import (
	"strings"
	"unicode/utf8"

	"krishimitra/internal/types"
)

// Duplicate detection defaults.
const (
	DefaultDuplicateRatio     = 0.6
	DefaultDuplicateMinCommon = 2
)

// DuplicateThresholds controls when a new title counts as a near-duplicate.
type DuplicateThresholds struct {
	// Ratio is the exclusive lower bound on |common| / max(|A|, |B|).
	Ratio float64
	// MinCommon is the minimum number of common tokens.
	MinCommon int
}

// DefaultDuplicateThresholds returns the stock thresholds.
func DefaultDuplicateThresholds() DuplicateThresholds {
	return DuplicateThresholds{Ratio: DefaultDuplicateRatio, MinCommon: DefaultDuplicateMinCommon}
}

func (d DuplicateThresholds) orDefault() DuplicateThresholds {
	if d.Ratio <= 0 {
		d.Ratio = DefaultDuplicateRatio
	}
	if d.MinCommon <= 0 {
		d.MinCommon = DefaultDuplicateMinCommon
	}
	return d
}

// titleTokens lowercases, splits on whitespace, trims punctuation, keeps
// tokens longer than two runes and drops repeats.
func titleTokens(title string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, k := range tokenKeys(title) {
		if utf8.RuneCountInString(k) <= 2 || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// tokensCommon: identical, or both longer than three runes with one
// containing the other.
func tokensCommon(a, b string) bool {
	if a == b {
		return true
	}
	if utf8.RuneCountInString(a) <= 3 || utf8.RuneCountInString(b) <= 3 {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func matchedCount(from, to []string) int {
	n := 0
	for _, a := range from {
		for _, b := range to {
			if tokensCommon(a, b) {
				n++
				break
			}
		}
	}
	return n
}

// similarity returns the common-token count and overlap ratio of two token
// sets. The count is the smaller of the matches seen from either side, which
// keeps the measure symmetric.
func similarity(a, b []string) (common int, ratio float64) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0
	}
	common = min(matchedCount(a, b), matchedCount(b, a))
	return common, float64(common) / float64(max(len(a), len(b)))
}

func (d DuplicateThresholds) isDuplicate(a, b []string) bool {
	common, ratio := similarity(a, b)
	return ratio > d.Ratio && len(a) > 1 && len(b) > 1 && common >= d.MinCommon
}

// findSimilar returns the incomplete task most similar to newTitle when it
// crosses the duplicate thresholds. Ties keep list order.
func findSimilar(newTitle string, tasks []types.Task, th DuplicateThresholds) *types.Task {
	th = th.orDefault()
	want := titleTokens(newTitle)
	var (
		best      *types.Task
		bestRatio float64
	)
	for i := range tasks {
		if tasks[i].Completed {
			continue
		}
		have := titleTokens(tasks[i].Title)
		if !th.isDuplicate(want, have) {
			continue
		}
		if _, ratio := similarity(want, have); best == nil || ratio > bestRatio {
			best, bestRatio = &tasks[i], ratio
		}
	}
	return best
}

func contentTokens(text string, stop map[string]bool) []string {
	var out []string
	for _, t := range titleTokens(text) {
		if !stop[t] {
			out = append(out, t)
		}
	}
	return out
}

// findCompletionMatch returns the incomplete task whose title best matches
// the content tokens of description, by containment in either direction.
// An exact token outweighs an inflected one, and a token matching only the
// title's leading word (usually its verb) weighs least, so "watered the
// tomatoes" picks "Buy tomatoes" over "Water the plants". Ties keep list
// order; no shared token means no match.
func findCompletionMatch(description string, tasks []types.Task, stop map[string]bool) *types.Task {
	want := contentTokens(description, stop)
	if len(want) == 0 {
		return nil
	}
	var (
		best      *types.Task
		bestScore int
	)
	for i := range tasks {
		if tasks[i].Completed {
			continue
		}
		have := contentTokens(tasks[i].Title, stop)
		score := 0
		for _, a := range want {
			score += tokenWeight(a, have)
		}
		if score > bestScore {
			best, bestScore = &tasks[i], score
		}
	}
	return best
}

// tokenWeight scores a against the best matching token of have.
func tokenWeight(a string, have []string) int {
	w := 0
	for j, b := range have {
		switch {
		case a == b:
			return 3
		case strings.Contains(a, b) || strings.Contains(b, a):
			if j > 0 {
				w = max(w, 2)
			} else {
				w = max(w, 1)
			}
		}
	}
	return w
}
