package pipeline

import (
	"net/http"
	"time"

	"github.com/viettran1502/transcriptor/internal/audio"
	"github.com/viettran1502/transcriptor/internal/config"
	"github.com/viettran1502/transcriptor/internal/logger"
	"github.com/viettran1502/transcriptor/internal/retriever"
	"github.com/viettran1502/transcriptor/internal/scraper"
	"github.com/viettran1502/transcriptor/internal/transcriber"
)

type implPipeline struct {
	cfg          *config.Config
	logger       logger.Logger
	retriever    retriever.Retriever
	normalizer   audio.Normalizer
	transcriber  transcriber.Transcriber
	scraper      scraper.Scraper
	expandClient *http.Client
}

// New creates a new Pipeline instance
func New(
	cfg *config.Config,
	log logger.Logger,
	retr retriever.Retriever,
	norm audio.Normalizer,
	trans transcriber.Transcriber,
	scr scraper.Scraper,
) Pipeline {
	return &implPipeline{
		cfg:          cfg,
		logger:       log,
		retriever:    retr,
		normalizer:   norm,
		transcriber:  trans,
		scraper:      scr,
		expandClient: &http.Client{Timeout: 15 * time.Second},
	}
}
