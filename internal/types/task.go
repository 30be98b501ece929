package types

// Priority of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is one of the enumerated priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Category of a task.
type Category string

const (
	CategoryFarming  Category = "farming"
	CategoryPersonal Category = "personal"
	CategoryGeneral  Category = "general"
)

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryFarming, CategoryPersonal, CategoryGeneral:
		return true
	}
	return false
}

// Layouts used for Task.DueDate and Task.DueTime.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Task is a to-do item as consumed from and proposed to the task store.
// ID is empty on tasks proposed by the engine; the store assigns it.
type Task struct {
	ID        string   `json:"id,omitempty" yaml:"id,omitempty"`
	Title     string   `json:"title" yaml:"title"`
	Priority  Priority `json:"priority" yaml:"priority"`
	Category  Category `json:"category" yaml:"category"`
	DueDate   string   `json:"dueDate" yaml:"due_date"`
	DueTime   string   `json:"dueTime" yaml:"due_time"`
	Completed bool     `json:"completed" yaml:"completed"`
}

// SchemeRecord is a government scheme as exposed by the scheme catalog.
type SchemeRecord struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Category    string   `json:"category" yaml:"category"`
	Aliases     []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	URL         string   `json:"url,omitempty" yaml:"url,omitempty"`
}
