package audio

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/viettran1502/transcriptor/internal/config"
	"github.com/viettran1502/transcriptor/internal/domain"
	"github.com/viettran1502/transcriptor/internal/logger"
	"github.com/viettran1502/transcriptor/pkg/executor"
)

type implNormalizer struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Normalizer instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Normalizer {
	return &implNormalizer{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}

// Normalize converts a media file to mono 16kHz PCM WAV.
// This format is what Whisper expects.
func (n *implNormalizer) Normalize(ctx context.Context, mediaPath string) (string, error) {
	outPath := strings.TrimSuffix(mediaPath, filepath.Ext(mediaPath)) + "_norm.wav"

	n.logger.Info(ctx, "Normalizing audio: %s", mediaPath)

	// -vn: drop any video stream
	// -ar: target sample rate
	// -ac: channel count
	// -c:a pcm_s16le: uncompressed 16-bit PCM
	args := []string{
		"-i", mediaPath,
		"-vn",
		"-ar", strconv.Itoa(n.cfg.Audio.SampleRate),
		"-ac", strconv.Itoa(n.cfg.Audio.Channels),
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		outPath,
	}

	if _, err := n.executor.Execute(ctx, n.cfg.Audio.FFmpegPath, args...); err != nil {
		return "", &domain.AudioConversionError{Path: mediaPath, Err: err}
	}

	n.logger.Info(ctx, "Audio normalized: %s", outPath)
	return outPath, nil
}
