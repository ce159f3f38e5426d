package scraper

import (
	"net/http"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/viettran1502/transcriptor/internal/config"
	"github.com/viettran1502/transcriptor/internal/domain"
	"github.com/viettran1502/transcriptor/internal/logger"
)

// Mobile user agents get lighter, more parseable pages than desktop ones.
var defaultUserAgents = []string{
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_1_1 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Mobile/15E148 Safari/604.1",
	"Mozilla/5.0 (Linux; Android 13; SM-S908B) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/112.0.0.0 Mobile Safari/537.36",
	"Mozilla/5.0 (Linux; Android 12; SM-G998B) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/111.0.0.0 Mobile Safari/537.36",
}

type implScraper struct {
	cfg        *config.Config
	client     *http.Client
	logger     logger.Logger
	userAgents []string
	limiters   map[domain.Platform]*rate.Limiter
	uaIndex    atomic.Uint64
}

// New creates a new Scraper instance with per-platform rate limiting.
func New(cfg *config.Config, log logger.Logger) Scraper {
	delay := func(seconds int) *rate.Limiter {
		return rate.NewLimiter(rate.Every(time.Duration(seconds)*time.Second), 1)
	}

	return &implScraper{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.Scrape.Timeout) * time.Second,
		},
		logger:     log,
		userAgents: defaultUserAgents,
		limiters: map[domain.Platform]*rate.Limiter{
			domain.PlatformYouTube:  delay(cfg.Scrape.YouTubeDelay),
			domain.PlatformTikTok:   delay(cfg.Scrape.TikTokDelay),
			domain.PlatformFacebook: delay(cfg.Scrape.FacebookDelay),
			domain.PlatformDouyin:   delay(cfg.Scrape.DouyinDelay),
		},
	}
}
