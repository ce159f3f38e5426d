package cli

import (
	"errors"
	"io"
	"testing"

	"github.com/viettran1502/transcriptor/internal/config"
	"github.com/viettran1502/transcriptor/internal/domain"
	"github.com/viettran1502/transcriptor/internal/logger"
)

// Executing a command must load defaults when no config file exists and
// reach platform detection without any whisper configuration.
func TestExecuteWithoutConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())

	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"scrape", "https://vimeo.com/123"})

	err := rootCmd.Execute()
	var upErr *domain.UnsupportedPlatformError
	if !errors.As(err, &upErr) {
		t.Fatalf("Execute() error = %v, want UnsupportedPlatformError", err)
	}
}

func TestBuildPipelineWithoutWhisperConfig(t *testing.T) {
	cfg = &config.Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	log = logger.New("error")

	// Metadata-only URLs never transcribe, so wiring must not demand a
	// model path or API key up front.
	if _, err := buildPipeline(true); err != nil {
		t.Fatalf("buildPipeline(true) error = %v", err)
	}

	// Serve and watch fail fast instead.
	if _, err := buildPipeline(false); err == nil {
		t.Error("buildPipeline(false) accepted a cpp backend with no model path")
	}
}
