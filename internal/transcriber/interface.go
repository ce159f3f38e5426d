package transcriber

import (
	"context"

	"github.com/viettran1502/transcriptor/internal/domain"
)

// Transcriber converts a normalized WAV file into text. The call
// blocks until the full transcript is produced; there is no streaming.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (*domain.Transcript, error)
}
