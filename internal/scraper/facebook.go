package scraper

import (
	"context"
	"fmt"

	"github.com/viettran1502/transcriptor/internal/domain"
	"github.com/viettran1502/transcriptor/internal/platform"
)

// facebookMirrors are tried in order; the mobile frontends serve far
// simpler markup than www and often skip the login interstitial.
var facebookMirrors = []string{
	"https://m.facebook.com/watch/?v=%s",
	"https://touch.facebook.com/watch/?v=%s",
	"https://mbasic.facebook.com/watch/?v=%s",
}

func (s *implScraper) scrapeFacebook(ctx context.Context, url string) (*domain.Metadata, error) {
	videoID := platform.VideoID(domain.PlatformFacebook, url)
	if videoID == "" {
		// No recognizable ID: fall back to scraping the URL as given.
		return s.scrapePage(ctx, domain.PlatformFacebook, url)
	}

	var lastErr error
	for _, mirror := range facebookMirrors {
		candidate := fmt.Sprintf(mirror, videoID)
		s.logger.Debug(ctx, "Trying Facebook mirror: %s", candidate)

		md, err := s.scrapePage(ctx, domain.PlatformFacebook, candidate)
		if err != nil {
			lastErr = err
			continue
		}
		return md, nil
	}

	return nil, &domain.ScrapeError{Platform: domain.PlatformFacebook, Err: fmt.Errorf("all mirrors failed: %w", lastErr)}
}
