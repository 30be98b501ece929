// Package articulation turns resolver decisions into the reply a farmer
// sees, in the language they spoke.
package articulation

import (
	"fmt"
	"strings"

	"krishimitra/internal/types"
)

// Reasons the resolver attaches to Unhandled decisions, matched by prefix.
const (
	reasonDuplicate = "duplicate: "
	reasonNoMatch   = "no matching task: "
)

func bookFor(lang types.Language) phrasebook {
	if pb, ok := phrasebooks[lang.OrDefault()]; ok {
		return pb
	}
	return phrasebooks[types.LanguageEnglish]
}

// Render builds the reply for one turn. tasks is the list the decisions
// were resolved against and is used to name completed tasks.
func Render(decisions []types.Decision, lang types.Language, tasks []types.Task) string {
	pb := bookFor(lang)
	if len(decisions) == 0 {
		return pb.nothing
	}
	lines := make([]string, 0, len(decisions))
	for _, d := range decisions {
		lines = append(lines, renderDecision(pb, d, tasks))
	}
	return strings.Join(lines, "\n")
}

// RenderDecision builds the reply line for a single decision.
func RenderDecision(d types.Decision, lang types.Language, tasks []types.Task) string {
	return renderDecision(bookFor(lang), d, tasks)
}

func renderDecision(pb phrasebook, d types.Decision, tasks []types.Task) string {
	switch d.Kind {
	case types.DecisionCreateTask:
		if d.Task == nil {
			return pb.notUnderstood
		}
		if due := renderDue(pb, *d.Task); due != "" {
			return fmt.Sprintf(pb.created, d.Task.Title, due)
		}
		return fmt.Sprintf(pb.createdNoDue, d.Task.Title)

	case types.DecisionCompleteTask:
		for _, t := range tasks {
			if t.ID == d.TaskID {
				return fmt.Sprintf(pb.completed, t.Title)
			}
		}
		return fmt.Sprintf(pb.completedID, d.TaskID)

	case types.DecisionSchemeInfo:
		if d.Scheme == nil {
			return pb.notUnderstood
		}
		s := *d.Scheme
		desc := sentence(s.Description)
		if desc == "" {
			desc = sentence(s.Title)
		}
		switch {
		case d.WantsRedirect && s.URL != "":
			return fmt.Sprintf(pb.schemeOpen, s.Title, s.URL)
		case s.URL == "":
			return fmt.Sprintf(pb.schemeNoURL, s.Title, desc)
		default:
			return fmt.Sprintf(pb.schemeInfo, s.Title, desc, pb.yes)
		}

	case types.DecisionUnhandled:
		switch {
		case strings.HasPrefix(d.Reason, reasonDuplicate):
			return fmt.Sprintf(pb.duplicate, strings.TrimPrefix(d.Reason, reasonDuplicate))
		case strings.HasPrefix(d.Reason, reasonNoMatch):
			return fmt.Sprintf(pb.noMatch, strings.TrimPrefix(d.Reason, reasonNoMatch))
		}
	}
	return pb.notUnderstood
}

func renderDue(pb phrasebook, t types.Task) string {
	switch {
	case t.DueDate != "" && t.DueTime != "":
		return fmt.Sprintf(pb.due, t.DueDate, t.DueTime)
	case t.DueDate != "":
		return fmt.Sprintf(pb.dueDateOnly, t.DueDate)
	}
	return ""
}

// sentence trims s and makes sure it ends with terminal punctuation.
func sentence(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	switch {
	case strings.HasSuffix(s, "."), strings.HasSuffix(s, "!"), strings.HasSuffix(s, "?"), strings.HasSuffix(s, "।"):
		return s
	}
	return s + "."
}

// Redirect returns the URL the client should open, if any decision of the
// turn asked to be taken to a scheme page.
func Redirect(decisions []types.Decision) (string, bool) {
	for _, d := range decisions {
		if d.Kind == types.DecisionSchemeInfo && d.WantsRedirect && d.Scheme != nil && d.Scheme.URL != "" {
			return d.Scheme.URL, true
		}
	}
	return "", false
}
