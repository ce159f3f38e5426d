package pipeline

import (
	"context"

	"github.com/viettran1502/transcriptor/internal/domain"
)

// Pipeline runs one transcription job end to end: platform detection,
// download, normalization, transcription, cleanup. Metadata-only
// platforms short-circuit to the scraper.
type Pipeline interface {
	// Run processes a single URL. For metadata-only platforms the
	// returned error is always nil; scrape failures degrade to a
	// partial Result with the Err field set.
	Run(ctx context.Context, rawURL string) (*domain.Result, error)

	// TranscribeFile runs the local half of the pipeline (normalize +
	// transcribe) against a media file already on disk.
	TranscribeFile(ctx context.Context, mediaPath string) (*domain.Result, error)
}
