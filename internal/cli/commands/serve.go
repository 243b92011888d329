package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnuletik/datocms-client-go/internal/metrics"
	"github.com/gnuletik/datocms-client-go/internal/preview"
	"github.com/gnuletik/datocms-client-go/internal/web/handlers"
	"github.com/gnuletik/datocms-client-go/internal/web/server"
)

type serveOptions struct {
	addr  string
	pprof bool
}

func newServeCommand(a *app) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tag preview endpoint",
		Long: `Start an HTTP server that builds head tags for posted documents.

Endpoints:
  POST /tags?item=<id>&locale=<code>   build the tags of an item
  GET  /healthz                        liveness
  GET  /metrics                        Prometheus metrics
  GET  /debug/pprof/*                  pprof, with --pprof or server.pprof`,
		Example: `  # Listen on the configured address
  seotags serve

  # Listen on port 9000 and post a document
  seotags serve --addr :9000
  curl -X POST --data @export.json 'localhost:9000/tags?item=24038'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, a, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address (overrides server.addr)")
	cmd.Flags().BoolVar(&opts.pprof, "pprof", false, "Serve pprof endpoints under /debug/pprof")

	return cmd
}

func runServe(cmd *cobra.Command, a *app, opts *serveOptions) error {
	if err := a.setup(); err != nil {
		return err
	}
	defer func() { _ = a.logger.Sync() }()

	h := handlers.New(handlers.Config{
		Builder:   preview.NewBuilder(a.cfg.Env(), a.logger),
		Metrics:   metrics.New(),
		Logger:    a.logger,
		Profiling: a.cfg.Server.Pprof || opts.pprof,
	})
	r := h.Router()

	config := server.DefaultConfig(r)
	config.Address = a.cfg.Server.Addr
	if opts.addr != "" {
		config.Address = opts.addr
	}
	config.Logger = a.logger

	srv, err := server.New(config)
	if err != nil {
		return err
	}

	for _, route := range r.Routes() {
		a.logger.Debug("route registered", zap.String("route", route.String()), zap.String("name", route.Name))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}
