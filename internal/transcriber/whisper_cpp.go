package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/viettran1502/transcriptor/internal/config"
	"github.com/viettran1502/transcriptor/internal/domain"
	"github.com/viettran1502/transcriptor/internal/logger"
	"github.com/viettran1502/transcriptor/internal/subtitle"
	"github.com/viettran1502/transcriptor/pkg/executor"
)

type implWhisperCpp struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// Transcribe runs the whisper.cpp binary against a WAV file and parses
// the SRT it produces into text plus segments.
func (w *implWhisperCpp) Transcribe(ctx context.Context, audioPath string) (*domain.Transcript, error) {
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	w.logger.Info(ctx, "Transcribing with whisper.cpp (%d threads): %s",
		w.cfg.Whisper.Threads, audioPath)

	// -osrt: SRT output keeps timestamps so segments survive
	// -ml/-mc 0: no segment-length or context limit, better for long audio
	// -bo 5: best-of sampling for accuracy
	args := []string{
		"-m", w.cfg.Whisper.ModelPath,
		"-f", audioPath,
		"-osrt",
		"-t", strconv.Itoa(w.cfg.Whisper.Threads),
		"-ml", "0",
		"-mc", "0",
		"-bo", "5",
		"--output-file", outputPrefix,
	}
	if w.cfg.Whisper.Language != "" {
		args = append(args, "-l", w.cfg.Whisper.Language)
	}

	if _, err := w.executor.Execute(ctx, w.cfg.Whisper.BinaryPath, args...); err != nil {
		return nil, &domain.TranscriptionError{Backend: "whisper_cpp", Err: err}
	}

	srtPath := outputPrefix + ".srt"
	raw, err := os.ReadFile(srtPath)
	if err != nil {
		return nil, &domain.TranscriptionError{Backend: "whisper_cpp", Err: fmt.Errorf("read model output: %w", err)}
	}
	os.Remove(srtPath)

	text, segments := subtitle.Parse(string(raw))
	if strings.TrimSpace(text) == "" {
		return nil, &domain.TranscriptionError{Backend: "whisper_cpp", Err: fmt.Errorf("model produced empty transcript")}
	}

	w.logger.Info(ctx, "Transcription completed: %d chars, %d segments", len(text), len(segments))
	return &domain.Transcript{
		Text:     text,
		Segments: segments,
		Language: w.cfg.Whisper.Language,
	}, nil
}
