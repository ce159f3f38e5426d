package transcriber

import (
	"context"
	"sync"

	"github.com/viettran1502/transcriptor/internal/config"
	"github.com/viettran1502/transcriptor/internal/domain"
	"github.com/viettran1502/transcriptor/internal/logger"
	"github.com/viettran1502/transcriptor/pkg/executor"
)

// implLazy defers backend construction to the first Transcribe call.
// URLs that resolve to metadata-only platforms never transcribe, so
// they must not require a configured whisper backend up front.
type implLazy struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger

	once    sync.Once
	backend Transcriber
	err     error
}

// NewLazy wraps New, validating the backend configuration on first use
// instead of at construction time.
func NewLazy(cfg *config.Config, exec executor.Executor, log logger.Logger) Transcriber {
	return &implLazy{cfg: cfg, executor: exec, logger: log}
}

func (l *implLazy) Transcribe(ctx context.Context, audioPath string) (*domain.Transcript, error) {
	l.once.Do(func() {
		l.backend, l.err = New(l.cfg, l.executor, l.logger)
	})
	if l.err != nil {
		return nil, l.err
	}
	return l.backend.Transcribe(ctx, audioPath)
}
