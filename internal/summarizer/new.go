package summarizer

import (
	"fmt"

	"github.com/viettran1502/transcriptor/internal/config"
	"github.com/viettran1502/transcriptor/internal/logger"
)

type implSummarizer struct {
	apiKey string
	model  string
	logger logger.Logger
}

// New creates a Summarizer backed by the Gemini API. The key comes
// from the environment; without one the feature is unavailable.
func New(cfg *config.Config, log logger.Logger) (Summarizer, error) {
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set; summaries are unavailable")
	}
	return &implSummarizer{
		apiKey: cfg.Gemini.APIKey,
		model:  cfg.Gemini.Model,
		logger: log,
	}, nil
}
