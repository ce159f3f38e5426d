package transcriber

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/viettran1502/transcriptor/internal/config"
	"github.com/viettran1502/transcriptor/internal/domain"
	"github.com/viettran1502/transcriptor/internal/logger"
)

type implWhisperAPI struct {
	cfg    *config.Config
	client *openai.Client
	logger logger.Logger
}

// Transcribe uploads the audio to the OpenAI transcription endpoint.
// Useful on machines without a local whisper.cpp build.
func (w *implWhisperAPI) Transcribe(ctx context.Context, audioPath string) (*domain.Transcript, error) {
	w.logger.Info(ctx, "Transcribing via OpenAI API: %s", audioPath)

	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: audioPath,
		Format:   openai.AudioResponseFormatVerboseJSON,
		Language: w.cfg.Whisper.Language,
	}

	resp, err := w.client.CreateTranscription(ctx, req)
	if err != nil {
		return nil, &domain.TranscriptionError{Backend: "whisper_api", Err: err}
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return nil, &domain.TranscriptionError{Backend: "whisper_api", Err: fmt.Errorf("empty transcript returned")}
	}

	segments := make([]domain.Segment, 0, len(resp.Segments))
	for _, s := range resp.Segments {
		segments = append(segments, domain.Segment{
			Start: time.Duration(s.Start * float64(time.Second)),
			End:   time.Duration(s.End * float64(time.Second)),
			Text:  strings.TrimSpace(s.Text),
		})
	}

	w.logger.Info(ctx, "Transcription completed: %d chars, %d segments", len(text), len(segments))
	return &domain.Transcript{
		Text:     text,
		Segments: segments,
		Language: resp.Language,
	}, nil
}
