package retriever

import (
	"github.com/viettran1502/transcriptor/internal/config"
	"github.com/viettran1502/transcriptor/internal/logger"
	"github.com/viettran1502/transcriptor/pkg/executor"
)

type implRetriever struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Retriever instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Retriever {
	return &implRetriever{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
