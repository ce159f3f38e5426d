package scraper

import (
	"context"

	"github.com/viettran1502/transcriptor/internal/domain"
)

// Scraper is the best-effort metadata adapter for platforms without a
// reliable audio pipeline. Failures are frequent and expected; callers
// treat them as partial results, not fatal errors.
type Scraper interface {
	Scrape(ctx context.Context, p domain.Platform, url string) (*domain.Metadata, error)
}
