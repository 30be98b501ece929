package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"krishimitra/internal/catalog"
	"krishimitra/internal/config"
	"krishimitra/internal/gateway"
	"krishimitra/internal/logging"
	"krishimitra/internal/perception"
	"krishimitra/internal/store"
	"krishimitra/internal/types"
)

var (
	// Global flags
	configPath string
	langFlag   string
	verbose    bool

	// Loaded in PersistentPreRunE
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "krishi",
	Short: "krishimitra - multilingual farm assistant",
	Long: `krishimitra turns short farmer utterances into task-list actions and
government scheme answers, in English and six Indian languages.

Local rules handle most utterances; a configured model is consulted only
when they find nothing.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if langFlag != "" {
			lang, ok := types.LookupLanguage(langFlag)
			if !ok {
				return fmt.Errorf("unknown language %q", langFlag)
			}
			cfg.Engine.DefaultLanguage = string(lang)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		lc := cfg.Logging.ToLogging(verbose)
		// Interactive commands keep stderr quiet unless asked.
		if cmd.Name() != "serve" && !verbose {
			lc.Level = "warn"
		}
		if err := logging.Initialize(lc); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logging.Boot("krishi %s starting: command=%s config=%s", cfg.Version, cmd.Name(), configPath)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "Config file path")
	rootCmd.PersistentFlags().StringVarP(&langFlag, "lang", "l", "", "Language (english, hindi, kannada, punjabi, marathi, gujarati, bengali or a tag like hi)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(schemesCmd)
	rootCmd.AddCommand(tracesCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

// =============================================================================
// COMPONENT WIRING
// =============================================================================

// app holds the components shared by the commands.
type app struct {
	store    *store.LocalStore
	catalog  *catalog.Catalog
	gateway  gateway.Gateway // nil when no model is configured
	resolver *perception.Resolver
}

// openStore opens the configured SQLite store.
func openStore() (*store.LocalStore, error) {
	st, err := store.NewLocalStore(cfg.Store.DatabasePath, cfg.GetBusyTimeout())
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return st, nil
}

// openApp wires store, catalog, gateway and resolver. observer may be nil.
func openApp(observer perception.Observer) (*app, error) {
	st, err := openStore()
	if err != nil {
		return nil, err
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		_ = st.Close()
		return nil, err
	}
	logging.Boot("Scheme catalog loaded: %d schemes (%s)", cat.Len(), catalogSource(cat))

	a := &app{store: st, catalog: cat}

	gw, err := gateway.New(cfg, st)
	switch {
	case errors.Is(err, gateway.ErrUnavailable):
		logging.Boot("No model configured, using local rules only: %v", err)
	case err != nil:
		_ = st.Close()
		return nil, fmt.Errorf("failed to create model gateway: %w", err)
	default:
		a.gateway = gw
	}

	opts := perception.Options{
		Catalog:  cat,
		Observer: observer,
		Duplicates: perception.DuplicateThresholds{
			Ratio:     cfg.Engine.DuplicateRatio,
			MinCommon: cfg.Engine.DuplicateMinCommon,
		},
		HistoryWindow:    cfg.Engine.HistoryWindow,
		DefaultDueOffset: cfg.GetDefaultDueOffset(),
	}
	if a.gateway != nil {
		opts.Gateway = a.gateway
	}
	a.resolver = perception.NewResolver(opts)
	return a, nil
}

// Close flushes pending traces and closes the store.
func (a *app) Close() error {
	var errs []error
	if a.gateway != nil {
		errs = append(errs, gateway.Close(a.gateway))
	}
	errs = append(errs, a.store.Close())
	return errors.Join(errs...)
}

func catalogSource(c *catalog.Catalog) string {
	if c.Path() == "" {
		return "built-in"
	}
	return c.Path()
}
