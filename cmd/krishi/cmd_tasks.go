package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"krishimitra/internal/store"
)

var (
	tasksAll   bool
	tasksLimit int
	tracesAll  bool
	tracesN    int
	pruneAge   time.Duration
)

// tasksCmd groups task list commands
var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Inspect and update the task list",
}

var tasksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks, open first, by due date",
	RunE:  listTasks,
}

var tasksDoneCmd = &cobra.Command{
	Use:   "done [id-prefix]",
	Short: "Mark a task completed",
	Long: `Marks a task completed. Any unique prefix of the id shown by
"tasks list" is accepted.`,
	Args: cobra.ExactArgs(1),
	RunE: completeTask,
}

var tasksRemoveCmd = &cobra.Command{
	Use:   "rm [id-prefix]",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE:  removeTask,
}

// tracesCmd inspects recorded model calls
var tracesCmd = &cobra.Command{
	Use:   "traces",
	Short: "Inspect recorded model calls (llm.trace)",
	RunE:  listTraces,
}

var tracesPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete traces older than --older-than",
	RunE:  pruneTraces,
}

// statusCmd shows store and catalog status
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show store, catalog and model status",
	RunE:  showStatus,
}

func init() {
	tasksListCmd.Flags().BoolVarP(&tasksAll, "all", "a", false, "Include completed tasks")
	tasksListCmd.Flags().IntVarP(&tasksLimit, "limit", "n", 0, "Maximum tasks to show (0 = all)")
	tasksCmd.AddCommand(tasksListCmd, tasksDoneCmd, tasksRemoveCmd)

	tracesCmd.Flags().BoolVar(&tracesAll, "all", false, "Include successful calls")
	tracesCmd.Flags().IntVarP(&tracesN, "limit", "n", 20, "Maximum traces to show")
	tracesPruneCmd.Flags().DurationVar(&pruneAge, "older-than", 30*24*time.Hour, "Retention")
	tracesCmd.AddCommand(tracesPruneCmd)
}

func listTasks(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	tasks, err := st.ListTasks(cmd.Context(), store.ListOptions{IncludeCompleted: tasksAll, Limit: tasksLimit})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(tasks) == 0 {
		fmt.Fprintln(out, mutedStyle.Render("No tasks."))
		return nil
	}
	for _, t := range tasks {
		fmt.Fprintln(out, formatTask(t))
	}
	return nil
}

func completeTask(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()
	id, err := st.ResolveTaskID(ctx, args[0])
	if err != nil {
		return err
	}
	if err := st.CompleteTask(ctx, id); err != nil {
		return err
	}
	t, err := st.GetTask(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), replyStyle.Render("Done: ")+t.Title)
	return nil
}

func removeTask(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()
	id, err := st.ResolveTaskID(ctx, args[0])
	if err != nil {
		return err
	}
	if err := st.DeleteTask(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("Deleted "+shortID(id)))
	return nil
}

func listTraces(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()
	stats, err := st.GetTraceStats(ctx)
	if err != nil {
		return err
	}
	traces, err := st.ListTraces(ctx, store.TraceFilter{FailedOnly: !tracesAll, Limit: tracesN})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %d calls, %d failed, avg %v\n",
		labelStyle.Render("Model traces:"), stats.Total, stats.Failed, stats.AvgDuration.Round(time.Millisecond))
	for _, t := range traces {
		status := replyStyle.Render("ok")
		if t.Error != "" {
			status = errorStyle.Render(t.Error)
		}
		fmt.Fprintf(out, "%s  %s  %-6v %s  %s\n",
			mutedStyle.Render(t.CreatedAt.Format(time.DateTime)), t.Model, t.Duration.Round(time.Millisecond),
			status, firstLine(t.Prompt, 60))
	}
	return nil
}

func pruneTraces(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	n, err := st.CleanupOldTraces(cmd.Context(), pruneAge)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d traces older than %v\n", n, pruneAge)
	return nil
}

func showStatus(cmd *cobra.Command, args []string) error {
	a, err := openApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()

	stats, err := a.store.GetStats()
	if err != nil {
		return err
	}

	model := "none (local rules only)"
	if a.gateway != nil {
		model = cfg.LLM.Provider + "/" + cfg.LLM.Model
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Store:   "), a.store.Path())
	fmt.Fprintf(&b, "          %d tasks, %d exchanges, %d traces\n", stats["tasks"], stats["exchanges"], stats["model_traces"])
	fmt.Fprintf(&b, "%s %d schemes (%s)\n", labelStyle.Render("Catalog: "), a.catalog.Len(), catalogSource(a.catalog))
	fmt.Fprintf(&b, "          categories: %s\n", strings.Join(a.catalog.Categories(), ", "))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Model:   "), model)
	fmt.Fprintf(&b, "%s %s", labelStyle.Render("Language:"), cfg.GetLanguage())
	fmt.Fprintln(cmd.OutOrStdout(), sectionStyle.Render(b.String()))
	return nil
}

func firstLine(s string, n int) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if r := []rune(s); len(r) > n {
		return string(r[:n]) + "..."
	}
	return s
}
