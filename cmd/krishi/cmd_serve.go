package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"krishimitra/internal/catalog"
	"krishimitra/internal/logging"
	"krishimitra/internal/metrics"
	"krishimitra/internal/server"
	"krishimitra/internal/session"
)

var (
	serveAddr    string
	serveNoWatch bool
)

// serveCmd runs the HTTP host
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP host",
	Long: `Serves the JSON API:
  POST /v1/resolve              one chat turn {session_id, utterance, language}
  GET  /v1/tasks                task list (?all=true includes completed)
  POST /v1/tasks/:id/complete   mark a task done
  GET  /v1/schemes[/:id]        scheme catalog
  GET  /healthz, /metrics

When catalog.path is set and catalog.watch is on, edits to the file are
picked up without a restart.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides server.addr)")
	serveCmd.Flags().BoolVar(&serveNoWatch, "no-watch", false, "Do not watch the catalog file")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.MustNewMetrics(reg)

	a, err := openApp(m)
	if err != nil {
		return err
	}
	defer a.Close()
	m.SetCatalogSize(a.catalog.Len())

	sessions, err := session.NewManager(a.resolver, a.store, session.ManagerConfig{Observer: m})
	if err != nil {
		return err
	}

	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}
	srv := server.New(server.Options{
		Addr:            addr,
		ReadTimeout:     cfg.GetReadTimeout(),
		ShutdownTimeout: cfg.GetShutdownTimeout(),
		DefaultLanguage: cfg.GetLanguage(),
		Sessions:        sessions,
		Store:           a.store,
		Catalog:         a.catalog,
		Metrics:         m,
		Gatherer:        reg,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })

	if cfg.Catalog.Watch && !serveNoWatch && a.catalog.Path() != "" {
		w, err := startCatalogWatcher(gctx, a.catalog, m)
		if err != nil {
			cancel()
			_ = g.Wait()
			return err
		}
		g.Go(func() error { return w.Wait(gctx) })
	}

	fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render("krishimitra")+" serving on "+labelStyle.Render(addr))
	return g.Wait()
}

// startCatalogWatcher reloads the catalog on file edits and reports each
// reload to the metrics.
func startCatalogWatcher(ctx context.Context, c *catalog.Catalog, m *metrics.Metrics) (*catalog.Watcher, error) {
	w, err := catalog.NewWatcher(c, cfg.GetCatalogDebounce())
	if err != nil {
		return nil, err
	}
	w.OnReload(func(schemes int, err error) {
		m.ObserveCatalogReload(schemes, err)
		if err != nil {
			logging.Get(logging.CategoryCatalog).Warn("Catalog reload failed, keeping %d schemes: %v", c.Len(), err)
		}
	})
	if err := w.Start(ctx); err != nil {
		w.Stop()
		return nil, err
	}
	return w, nil
}
