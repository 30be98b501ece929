package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"krishimitra/internal/types"
)

// Semantic colors
var (
	Success     = lipgloss.Color("#8BC34A") // Lime Green
	Warning     = lipgloss.Color("#FFC107") // Yellow
	Info        = lipgloss.Color("#2196F3") // Blue
	Destructive = lipgloss.Color("#e53935") // Red
	Muted       = lipgloss.Color("#8a94a6")
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(Success)
	replyStyle   = lipgloss.NewStyle().Foreground(Success)
	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(Info)
	mutedStyle   = lipgloss.NewStyle().Foreground(Muted)
	warnStyle    = lipgloss.NewStyle().Foreground(Warning)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(Destructive)
	promptStyle  = lipgloss.NewStyle().Bold(true).Foreground(Info)
	linkStyle    = lipgloss.NewStyle().Underline(true).Foreground(Info)
	doneStyle    = lipgloss.NewStyle().Strikethrough(true).Foreground(Muted)
	highStyle    = lipgloss.NewStyle().Bold(true).Foreground(Destructive)
	mediumStyle  = lipgloss.NewStyle().Foreground(Warning)
	lowStyle     = lipgloss.NewStyle().Foreground(Muted)
	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted).
			Padding(0, 1)
)

// formatDecision renders one decision as a single styled line.
func formatDecision(d types.Decision) string {
	kind := labelStyle.Render(fmt.Sprintf("%-13s", d.Kind))
	switch d.Kind {
	case types.DecisionCreateTask:
		line := fmt.Sprintf("%s %s [%s/%s]", kind, d.Task.Title, d.Task.Priority, d.Task.Category)
		if d.Task.DueDate != "" {
			line += " " + mutedStyle.Render("due "+strings.TrimSpace(d.Task.DueDate+" "+d.Task.DueTime))
		}
		if d.Source != "" {
			line += " " + mutedStyle.Render("("+string(d.Source)+")")
		}
		return line
	case types.DecisionCompleteTask:
		return fmt.Sprintf("%s %s", kind, shortID(d.TaskID))
	case types.DecisionSchemeInfo:
		line := fmt.Sprintf("%s %s", kind, d.Scheme.Title)
		if d.WantsRedirect && d.Scheme.URL != "" {
			line += " -> " + linkStyle.Render(d.Scheme.URL)
		}
		return line
	default:
		return fmt.Sprintf("%s %s", kind, warnStyle.Render(d.Reason))
	}
}

// formatTask renders one task row.
func formatTask(t types.Task) string {
	title := t.Title
	if t.Completed {
		title = doneStyle.Render(title)
	}
	due := strings.TrimSpace(t.DueDate + " " + t.DueTime)
	if due == "" {
		due = "-"
	}
	return fmt.Sprintf("%s  %s  %-9s %s  %s",
		mutedStyle.Render(shortID(t.ID)), priorityStyle(t.Priority).Render(fmt.Sprintf("%-6s", t.Priority)),
		t.Category, mutedStyle.Render(fmt.Sprintf("%-16s", due)), title)
}

func priorityStyle(p types.Priority) lipgloss.Style {
	switch p {
	case types.PriorityHigh:
		return highStyle
	case types.PriorityLow:
		return lowStyle
	default:
		return mediumStyle
	}
}

// shortID is the prefix `tasks done` accepts.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
