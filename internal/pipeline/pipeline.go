package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/viettran1502/transcriptor/internal/domain"
	"github.com/viettran1502/transcriptor/internal/platform"
)

// Run orchestrates one transcription job.
func (p *implPipeline) Run(ctx context.Context, rawURL string) (*domain.Result, error) {
	startTime := time.Now()

	url := platform.Expand(ctx, p.expandClient, rawURL)
	plat, err := platform.Detect(url)
	if err != nil {
		return nil, err
	}

	p.logger.Info(ctx, "Processing %s video: %s", plat, url)

	jb := p.newJob(url, plat)
	res := &domain.Result{URL: url, Platform: plat}

	if plat.Support() == domain.SupportMetadataOnly {
		p.runMetadataOnly(ctx, jb, res)
		p.logger.Info(ctx, "Completed in %s (metadata only)", time.Since(startTime).Round(time.Millisecond))
		return res, nil
	}

	if err := p.runFull(ctx, jb, res); err != nil {
		jb.transition(ctx, p, domain.StatusFailed)
		res.Err = err.Error()
		return res, err
	}

	p.logger.Info(ctx, "Completed in %s", time.Since(startTime).Round(time.Millisecond))
	return res, nil
}

// runMetadataOnly handles Facebook/Douyin: scrape what we can, never
// fail the run. A ScrapeError becomes a partial result.
func (p *implPipeline) runMetadataOnly(ctx context.Context, jb *job, res *domain.Result) {
	jb.transition(ctx, p, domain.StatusScraping)
	res.Completeness = domain.CompletenessMetadataOnly
	res.Source = "scrape"

	md, err := p.scraper.Scrape(ctx, jb.platform, jb.url)
	if err != nil {
		p.logger.Warn(ctx, "Scrape failed for %s: %v", jb.url, err)
		res.Err = err.Error()
		jb.transition(ctx, p, domain.StatusMetadataDone)
		return
	}

	res.Title = md.Title
	res.Author = md.Author
	res.Description = md.Description
	jb.transition(ctx, p, domain.StatusMetadataDone)
}

// runFull handles YouTube/TikTok: subtitles first, then the
// download -> normalize -> transcribe chain.
func (p *implPipeline) runFull(ctx context.Context, jb *job, res *domain.Result) error {
	if err := p.acquireTempDir(jb); err != nil {
		return err
	}
	defer p.cleanup(ctx, jb)

	res.Completeness = domain.CompletenessFull

	// TikTok pages carry useful creator metadata; fetch it up front so
	// even the subtitle path can report it.
	if jb.platform == domain.PlatformTikTok {
		if md, err := p.retriever.FetchMetadata(ctx, jb.url); err == nil {
			res.Title = md.Title
			res.Author = md.Uploader
		} else {
			p.logger.Debug(ctx, "Metadata probe failed: %v", err)
		}
	}

	// Fast path: existing captions make the whole audio chain moot.
	probe, err := p.retriever.FetchSubtitles(ctx, jb.url, jb.tempDir)
	if err == nil && probe != nil {
		if res.Title == "" {
			res.Title = probe.Title
		}
		if probe.Found {
			res.Transcript = probe.Text
			res.Segments = probe.Segments
			res.Language = probe.Language
			res.Source = "yt-dlp_subs_" + probe.Language
			jb.transition(ctx, p, domain.StatusDone)
			return nil
		}
	}

	p.logger.Info(ctx, "No subtitles found, falling back to audio transcription")

	jb.transition(ctx, p, domain.StatusDownloading)
	mediaPath, err := p.retriever.DownloadAudio(ctx, jb.platform, jb.url, jb.tempDir)
	if err != nil {
		return err
	}

	audioPath := mediaPath
	if !strings.EqualFold(filepath.Ext(mediaPath), ".wav") {
		audioPath, err = p.normalizer.Normalize(ctx, mediaPath)
		if err != nil {
			return err
		}
	}

	jb.transition(ctx, p, domain.StatusTranscribing)
	transcript, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return err
	}

	res.Transcript = transcript.Text
	res.Segments = transcript.Segments
	res.Language = transcript.Language
	res.Source = "whisper_" + p.cfg.Whisper.Backend
	jb.transition(ctx, p, domain.StatusDone)
	return nil
}

// TranscribeFile runs normalize + transcribe on a local media file,
// bypassing the retriever. Used by watch mode.
func (p *implPipeline) TranscribeFile(ctx context.Context, mediaPath string) (*domain.Result, error) {
	p.logger.Info(ctx, "Transcribing local file: %s", mediaPath)

	audioPath, err := p.normalizer.Normalize(ctx, mediaPath)
	if err != nil {
		return nil, err
	}
	defer p.removeQuiet(ctx, audioPath)

	transcript, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return nil, err
	}

	return &domain.Result{
		URL:          mediaPath,
		Completeness: domain.CompletenessFull,
		Title:        strings.TrimSuffix(filepath.Base(mediaPath), filepath.Ext(mediaPath)),
		Transcript:   transcript.Text,
		Segments:     transcript.Segments,
		Language:     transcript.Language,
		Source:       "whisper_" + p.cfg.Whisper.Backend,
	}, nil
}

func (p *implPipeline) removeQuiet(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		p.logger.Warn(ctx, "Failed to remove temp file %s: %v", path, err)
	}
}
