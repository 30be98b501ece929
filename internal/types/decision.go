package types

import (
	"errors"
	"fmt"
)

// DecisionKind tags the populated variant of a Decision.
type DecisionKind string

const (
	DecisionCreateTask   DecisionKind = "create_task"
	DecisionCompleteTask DecisionKind = "complete_task"
	DecisionSchemeInfo   DecisionKind = "scheme_info"
	DecisionUnhandled    DecisionKind = "unhandled"
)

// ExtractionSource records which extractor produced a CreateTask decision.
type ExtractionSource string

const (
	SourceLocal ExtractionSource = "local"
	SourceModel ExtractionSource = "model"
)

// Decision is the engine output. Exactly one variant is populated, selected
// by Kind; use the constructors rather than building the struct by hand.
type Decision struct {
	Kind DecisionKind `json:"kind"`

	// CreateTask
	Task   *Task            `json:"task,omitempty"`
	Source ExtractionSource `json:"source,omitempty"`

	// CompleteTask
	TaskID string `json:"taskId,omitempty"`

	// SchemeInfo
	Scheme        *SchemeRecord `json:"scheme,omitempty"`
	WantsRedirect bool          `json:"wantsRedirect,omitempty"`

	// Unhandled
	Reason string `json:"reason,omitempty"`
}

// CreateTask proposes a new task.
func CreateTask(t Task, source ExtractionSource) Decision {
	return Decision{Kind: DecisionCreateTask, Task: &t, Source: source}
}

// CompleteTask marks the existing task with the given id as done.
func CompleteTask(taskID string) Decision {
	return Decision{Kind: DecisionCompleteTask, TaskID: taskID}
}

// SchemeInfo answers a scheme query, optionally asking the host to navigate.
func SchemeInfo(s SchemeRecord, wantsRedirect bool) Decision {
	return Decision{Kind: DecisionSchemeInfo, Scheme: &s, WantsRedirect: wantsRedirect}
}

// Unhandled is the terminal state when no actionable intent was found.
func Unhandled(reason string) Decision {
	if reason == "" {
		reason = "unspecified"
	}
	return Decision{Kind: DecisionUnhandled, Reason: reason}
}

// ErrInvalidDecision is returned by Validate.
var ErrInvalidDecision = errors.New("invalid decision")

// Validate checks that exactly the fields of Kind are populated.
func (d Decision) Validate() error {
	hasTask := d.Task != nil
	hasID := d.TaskID != ""
	hasScheme := d.Scheme != nil
	hasReason := d.Reason != ""

	var ok bool
	switch d.Kind {
	case DecisionCreateTask:
		ok = hasTask && !hasID && !hasScheme && !hasReason && d.Task.Title != ""
	case DecisionCompleteTask:
		ok = hasID && !hasTask && !hasScheme && !hasReason
	case DecisionSchemeInfo:
		ok = hasScheme && !hasTask && !hasID && !hasReason
	case DecisionUnhandled:
		ok = hasReason && !hasTask && !hasID && !hasScheme
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidDecision, d.Kind)
	}
	if !ok {
		return fmt.Errorf("%w: fields do not match kind %s", ErrInvalidDecision, d.Kind)
	}
	return nil
}

func (d Decision) String() string {
	switch d.Kind {
	case DecisionCreateTask:
		return fmt.Sprintf("CreateTask(%q, %s, %s, %s %s)", d.Task.Title, d.Task.Priority, d.Task.Category, d.Task.DueDate, d.Task.DueTime)
	case DecisionCompleteTask:
		return fmt.Sprintf("CompleteTask(%s)", d.TaskID)
	case DecisionSchemeInfo:
		return fmt.Sprintf("SchemeInfo(%s, redirect=%v)", d.Scheme.ID, d.WantsRedirect)
	case DecisionUnhandled:
		return fmt.Sprintf("Unhandled(%s)", d.Reason)
	}
	return fmt.Sprintf("Decision(%s)", d.Kind)
}
