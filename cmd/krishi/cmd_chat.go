package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"krishimitra/internal/articulation"
	"krishimitra/internal/perception"
	"krishimitra/internal/session"
	"krishimitra/internal/store"
	"krishimitra/internal/types"
)

var (
	resolveJSON bool
	chatSession string
)

// resolveCmd resolves one utterance without touching the store
var resolveCmd = &cobra.Command{
	Use:   "resolve [utterance]",
	Short: "Resolve one utterance and print the decisions",
	Long: `Resolves a single utterance against the current task list and prints
the decisions and the reply. Nothing is written: use chat or the HTTP
host to apply decisions.

Example:
  krishi resolve "remind me to water the field tomorrow at 6am"
  krishi --lang hi resolve "कल बीज खरीदना है"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

// chatCmd runs the REPL
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat interactively; decisions are applied to the task list",
	Long: `Reads utterances from stdin, one per line. Each turn is resolved,
applied to the task list and recorded, so a later "yes" can accept a
scheme offered earlier, also across restarts with the same --session.

Commands:
  /lang <language>   switch language
  /tasks             show open tasks
  /quit              exit`,
	RunE: runChat,
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "Print decisions as JSON")
	chatCmd.Flags().StringVarP(&chatSession, "session", "s", "cli", "Session id; history is kept per session")
}

func runResolve(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	a, err := openApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()

	tasks, err := a.store.ListTasks(ctx, store.ListOptions{IncludeCompleted: true})
	if err != nil {
		return err
	}

	lang := cfg.GetLanguage()
	decisions := a.resolver.Resolve(ctx, perception.Request{
		Utterance: strings.Join(args, " "),
		Language:  lang,
		Tasks:     tasks,
	})

	out := cmd.OutOrStdout()
	if resolveJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(decisions)
	}
	for _, d := range decisions {
		fmt.Fprintln(out, formatDecision(d))
	}
	fmt.Fprintln(out, replyStyle.Render(articulation.Render(decisions, lang, tasks)))
	return nil
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	a, err := openApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()

	sess := session.New(a.resolver, a.store, session.Config{
		ID:       chatSession,
		Language: cfg.GetLanguage(),
	})
	return chatLoop(ctx, sess, a.store, cmd.InOrStdin(), cmd.OutOrStdout())
}

// chatLoop reads lines from in until EOF, /quit or ctx is done.
func chatLoop(ctx context.Context, sess *session.Session, st session.Store, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, titleStyle.Render("krishimitra")+mutedStyle.Render(fmt.Sprintf("  session %s, %s. /quit to exit.", sess.ID(), sess.Language())))

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, promptStyle.Render("> "))
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "/quit" || line == "/exit":
			return nil
		case strings.HasPrefix(line, "/lang"):
			arg := strings.TrimSpace(strings.TrimPrefix(line, "/lang"))
			lang, ok := types.LookupLanguage(arg)
			if !ok {
				fmt.Fprintln(out, warnStyle.Render(fmt.Sprintf("unknown language %q", arg)))
				continue
			}
			sess.SetLanguage(lang)
			fmt.Fprintln(out, mutedStyle.Render("language: "+lang.String()))
			continue
		case line == "/tasks":
			tasks, err := st.ListTasks(ctx, store.ListOptions{})
			if err != nil {
				fmt.Fprintln(out, errorStyle.Render(err.Error()))
				continue
			}
			for _, t := range tasks {
				fmt.Fprintln(out, formatTask(t))
			}
			continue
		}

		turn, err := sess.Handle(ctx, line)
		if err != nil {
			fmt.Fprintln(out, errorStyle.Render(err.Error()))
			continue
		}
		printTurn(out, turn)
	}
}

func printTurn(out io.Writer, turn *session.Turn) {
	fmt.Fprintln(out, replyStyle.Render(turn.Reply))
	if turn.Redirect != "" {
		fmt.Fprintln(out, "  "+linkStyle.Render(turn.Redirect))
	}
	for _, err := range turn.Errors {
		fmt.Fprintln(out, "  "+warnStyle.Render(err.Error()))
	}
}
