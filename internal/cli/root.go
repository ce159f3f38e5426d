package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/viettran1502/transcriptor/internal/audio"
	"github.com/viettran1502/transcriptor/internal/config"
	"github.com/viettran1502/transcriptor/internal/logger"
	"github.com/viettran1502/transcriptor/internal/pipeline"
	"github.com/viettran1502/transcriptor/internal/retriever"
	"github.com/viettran1502/transcriptor/internal/scraper"
	"github.com/viettran1502/transcriptor/internal/transcriber"
	"github.com/viettran1502/transcriptor/pkg/executor"
)

var (
	cfgPath string
	verbose bool

	cfg *config.Config
	log logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "transcriptor",
	Short: "Multi-platform video transcript extractor",
	Long: `Transcriptor downloads audio from YouTube and TikTok videos and
transcribes it with Whisper. Facebook and Douyin links are handled
best-effort: the tool scrapes title and author metadata instead of a
full transcript.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The default config path is optional; an explicitly given one
		// must exist.
		path := cfgPath
		if !cmd.Flags().Changed("config") {
			if _, err := os.Stat(path); os.IsNotExist(err) {
				path = ""
			}
		}

		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
		if verbose {
			cfg.Logging.Level = "debug"
		}
		log = logger.New(cfg.Logging.Level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "config.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildPipeline wires the full dependency graph from the loaded config.
// With lazyTranscriber the whisper backend is only validated on first
// use, so metadata-only URLs run without any whisper configuration;
// serve and watch exist solely to transcribe and fail fast instead.
func buildPipeline(lazyTranscriber bool) (pipeline.Pipeline, error) {
	exec := executor.New()
	retr := retriever.New(cfg, exec, log)
	norm := audio.New(cfg, exec, log)

	var trans transcriber.Transcriber
	if lazyTranscriber {
		trans = transcriber.NewLazy(cfg, exec, log)
	} else {
		var err error
		trans, err = transcriber.New(cfg, exec, log)
		if err != nil {
			return nil, err
		}
	}

	scr := scraper.New(cfg, log)
	return pipeline.New(cfg, log, retr, norm, trans, scr), nil
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
