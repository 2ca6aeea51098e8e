package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pthm/uxtone/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tone API over HTTP",
	Long: `Start an HTTP server exposing analysis and conversion.

Endpoints:
  POST /v1/analyze   analyze items and return a profile with suggestions
  POST /v1/apply     convert items with the selected rule patterns
  POST /v1/cancel    acknowledge a cancelled session
  GET  /v1/rules     list rules, optionally ?category=
  GET  /healthz      liveness

Examples:
  uxtone serve
  uxtone serve --addr 127.0.0.1:9000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, :8080)")
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(eng, server.Options{Addr: addr, Logger: logger})
	return srv.Run(ctx)
}
