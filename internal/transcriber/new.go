package transcriber

import (
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/viettran1502/transcriptor/internal/config"
	"github.com/viettran1502/transcriptor/internal/logger"
	"github.com/viettran1502/transcriptor/pkg/executor"
)

// New selects a Transcriber implementation from the configured backend.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	switch cfg.Whisper.Backend {
	case "cpp":
		if cfg.Whisper.ModelPath == "" {
			return nil, fmt.Errorf("whisper.model_path is required for the cpp backend")
		}
		return &implWhisperCpp{cfg: cfg, executor: exec, logger: log}, nil
	case "openai":
		if cfg.Whisper.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for the openai backend")
		}
		return &implWhisperAPI{
			cfg:    cfg,
			client: openai.NewClient(cfg.Whisper.OpenAIKey),
			logger: log,
		}, nil
	default:
		return nil, fmt.Errorf("unknown whisper backend: %q", cfg.Whisper.Backend)
	}
}
