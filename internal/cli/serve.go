package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/viettran1502/transcriptor/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP transcript service",
	Long: `Serve exposes the pipeline over HTTP: POST /api/transcript with a
JSON body {"url": "..."} returns the transcript, GET /healthz reports
status. Results are cached in memory for the configured TTL.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}

		pipe, err := buildPipeline(false)
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		srv := server.New(cfg, log, pipe)
		if err := srv.Start(ctx); err != nil && err != context.Canceled {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
