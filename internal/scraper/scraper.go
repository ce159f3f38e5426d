package scraper

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/viettran1502/transcriptor/internal/domain"
)

// Scrape dispatches to the platform-specific extraction strategy.
func (s *implScraper) Scrape(ctx context.Context, p domain.Platform, url string) (*domain.Metadata, error) {
	if limiter, ok := s.limiters[p]; ok {
		if err := limiter.Wait(ctx); err != nil {
			return nil, &domain.ScrapeError{Platform: p, Err: err}
		}
	}

	switch p {
	case domain.PlatformFacebook:
		return s.scrapeFacebook(ctx, url)
	case domain.PlatformDouyin:
		return s.scrapeDouyin(ctx, url)
	default:
		return s.scrapePage(ctx, p, url)
	}
}

// nextUserAgent rotates through the pool; safe for concurrent use.
func (s *implScraper) nextUserAgent() string {
	i := s.uaIndex.Add(1) - 1
	return s.userAgents[i%uint64(len(s.userAgents))]
}

func (s *implScraper) get(ctx context.Context, url string, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", s.nextUserAgent())
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9,vi;q=0.8")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return resp, nil
}

// scrapePage extracts OpenGraph metadata from a single page. This is
// the generic fallback shared by all platform strategies.
func (s *implScraper) scrapePage(ctx context.Context, p domain.Platform, url string) (*domain.Metadata, error) {
	resp, err := s.get(ctx, url, nil)
	if err != nil {
		return nil, &domain.ScrapeError{Platform: p, Err: err}
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &domain.ScrapeError{Platform: p, Err: err}
	}

	md := metadataFromDocument(doc)
	if md.Title == "" && md.Description == "" {
		return nil, &domain.ScrapeError{Platform: p, Err: fmt.Errorf("page has no recognizable metadata")}
	}
	return md, nil
}

func metadataFromDocument(doc *goquery.Document) *domain.Metadata {
	md := &domain.Metadata{}

	if v, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		md.Title = strings.TrimSpace(v)
	}
	if md.Title == "" {
		md.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if v, ok := doc.Find(`meta[property="og:description"]`).Attr("content"); ok {
		md.Description = strings.TrimSpace(v)
	}
	if md.Description == "" {
		if v, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
			md.Description = strings.TrimSpace(v)
		}
	}
	if v, ok := doc.Find(`meta[name="author"]`).Attr("content"); ok {
		md.Author = strings.TrimSpace(v)
	}

	return md
}
