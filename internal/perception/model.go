package perception

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/kaptinlin/jsonrepair"

	"krishimitra/internal/logging"
	"krishimitra/internal/types"
)

// ModelGateway sends a prompt to a language model and returns its raw text.
type ModelGateway interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

var (
	// ErrParseFailure means the model reply was neither valid nor repairable JSON.
	ErrParseFailure = errors.New("model response parse failure")
	// ErrGatewayUnavailable means no gateway is configured or the call failed.
	ErrGatewayUnavailable = errors.New("model gateway unavailable")
)

var (
	fenceRe        = regexp.MustCompile("(?s)^```[a-zA-Z0-9_-]*\\s*\n?(.*?)\\s*```$")
	singleQuotedRe = regexp.MustCompile(`^'([^']*)'$`)
)

// buildTaskPrompt asks for exactly the Task fields as one JSON object. The
// prompt carries the date but not the clock time, so the same request on the
// same day yields the same prompt and the reply cache can serve it.
func buildTaskPrompt(utterance string, lang types.Language, now time.Time) string {
	var sb strings.Builder
	sb.WriteString("You turn a farmer's spoken request into one entry for their to-do list.\n")
	sb.WriteString(fmt.Sprintf("Language of the request: %s\n", lang))
	sb.WriteString(fmt.Sprintf("Today's date: %s (%s).\n\n", now.Format(types.DateLayout), now.Weekday()))
	sb.WriteString("Reply with ONLY a JSON object with exactly these fields:\n")
	sb.WriteString(`{"title": string, "priority": "high"|"medium"|"low", "category": "farming"|"personal"|"general", "dueDate": "YYYY-MM-DD", "dueTime": "HH:MM"}`)
	sb.WriteString("\n\nRules:\n")
	sb.WriteString("- Write the title in the language of the request, without dates, times or words like \"add\" or \"remind\".\n")
	sb.WriteString("- Use \"farming\" for irrigation, crops, soil, harvest, pesticide, seeds and plants; \"personal\" for appointments, family, health and errands; otherwise \"general\".\n")
	sb.WriteString("- Omit fields the request does not mention. Give dueTime only for a clock time or a part of the day, never for a delay such as \"in two hours\".\n")
	sb.WriteString("- If the request does not ask to create a new task (it reports finished work, greets, or asks a question), reply with null.\n\n")
	sb.WriteString(fmt.Sprintf("Request: %q\n", utterance))
	return sb.String()
}

// stripCodeFences removes a surrounding Markdown code fence, if any.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if m := fenceRe.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return s
}

// parseModelJSON decodes a model reply. It returns (nil, nil) for an empty
// reply or a literal null. Invalid JSON goes through the repair chain:
// single quoted string, bare comma list, then a general JSON repair.
func parseModelJSON(raw string) (any, error) {
	s := stripCodeFences(raw)
	if s == "" || strings.EqualFold(s, "null") {
		return nil, nil
	}

	var v any
	if err := json.Unmarshal([]byte(s), &v); err == nil {
		return v, nil
	}

	if m := singleQuotedRe.FindStringSubmatch(s); m != nil {
		wrapped, _ := json.Marshal([]string{m[1]})
		if err := json.Unmarshal(wrapped, &v); err == nil {
			return v, nil
		}
	}

	if strings.Contains(s, ",") && !strings.HasPrefix(s, "[") && !strings.HasPrefix(s, "{") {
		if err := json.Unmarshal([]byte("["+s+"]"), &v); err == nil {
			return v, nil
		}
	}

	if repaired, err := jsonrepair.JSONRepair(s); err == nil {
		if err := json.Unmarshal([]byte(repaired), &v); err == nil {
			return v, nil
		}
	}

	return nil, fmt.Errorf("%w: %.80q", ErrParseFailure, s)
}

// taskFromModel converts a decoded reply into a task. Objects supply fields,
// string lists supply the title, and nil means "not a new task".
func taskFromModel(v any, utterance string, lang types.Language, now time.Time, dueOffset time.Duration) (*types.Task, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return taskFromFields(val, utterance, lang, now, dueOffset), nil
	case string:
		return taskFromFields(map[string]any{"title": val}, utterance, lang, now, dueOffset), nil
	case []any:
		if len(val) == 0 {
			return nil, nil
		}
		switch first := val[0].(type) {
		case map[string]any:
			return taskFromFields(first, utterance, lang, now, dueOffset), nil
		case string:
			return taskFromFields(map[string]any{"title": first}, utterance, lang, now, dueOffset), nil
		case nil:
			return nil, nil
		}
	}
	return nil, fmt.Errorf("%w: unexpected JSON shape %T", ErrParseFailure, v)
}

// taskFromFields validates model-supplied fields; anything missing or
// invalid falls back to the local inference and defaults.
func taskFromFields(fields map[string]any, utterance string, lang types.Language, now time.Time, dueOffset time.Duration) *types.Task {
	title := capitalizeFirst(strings.TrimSpace(stringField(fields, "title")))
	if !meaningfulTitle(title) {
		return nil
	}

	prepared := prepare(utterance)
	task := &types.Task{Title: title}

	task.Priority = types.Priority(strings.ToLower(stringField(fields, "priority")))
	if !task.Priority.Valid() {
		task.Priority = inferPriority(prepared, lang)
	}
	task.Category = types.Category(strings.ToLower(stringField(fields, "category")))
	if !task.Category.Valid() {
		task.Category = inferCategory(prepared+" "+title, lang)
	}

	date, dateErr := time.ParseInLocation(types.DateLayout, stringField(fields, "dueDate", "due_date", "date"), now.Location())
	clock, timeErr := time.Parse(types.TimeLayout, stringField(fields, "dueTime", "due_time", "time"))
	task.DueDate, task.DueTime = resolveDue(now, date, dateErr == nil, clock.Hour(), clock.Minute(), timeErr == nil, dueOffset)
	return task
}

func stringField(fields map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := fields[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// extractViaModel asks the gateway for a task. A nil task with a nil error
// means the model judged the utterance not to be a new task.
func extractViaModel(ctx context.Context, utterance string, lang types.Language, gw ModelGateway, now time.Time, dueOffset time.Duration) (*types.Task, error) {
	if gw == nil {
		return nil, fmt.Errorf("%w: no model gateway configured", ErrGatewayUnavailable)
	}

	timer := logging.StartTimer(logging.CategoryPerception, "extractViaModel")
	raw, err := gw.Generate(ctx, buildTaskPrompt(utterance, lang, now))
	timer.Stop()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGatewayUnavailable, err)
	}

	v, err := parseModelJSON(raw)
	if err != nil {
		return nil, err
	}
	return taskFromModel(v, utterance, lang, now, dueOffset)
}
