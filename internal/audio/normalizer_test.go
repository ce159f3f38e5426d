package audio

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/viettran1502/transcriptor/internal/config"
	"github.com/viettran1502/transcriptor/internal/domain"
	"github.com/viettran1502/transcriptor/internal/logger"
)

type fakeExecutor struct {
	lastArgs []string
	err      error
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.lastArgs = append([]string{name}, args...)
	return "", f.err
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir, name string, args ...string) (string, error) {
	return f.Execute(ctx, name, args...)
}

func (f *fakeExecutor) ExecuteTimeout(ctx context.Context, timeout time.Duration, name string, args ...string) (string, error) {
	return f.Execute(ctx, name, args...)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{Whisper: config.WhisperConfig{ModelPath: "m.bin"}}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestNormalize(t *testing.T) {
	exec := &fakeExecutor{}
	n := New(testConfig(t), exec, logger.New("error"))

	out, err := n.Normalize(context.Background(), "/tmp/job/audio_1.m4a")
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if out != "/tmp/job/audio_1_norm.wav" {
		t.Errorf("Normalize() out = %q", out)
	}

	call := strings.Join(exec.lastArgs, " ")
	for _, want := range []string{"ffmpeg", "-vn", "-ar 16000", "-ac 1", "-c:a pcm_s16le"} {
		if !strings.Contains(call, want) {
			t.Errorf("ffmpeg invocation missing %q: %s", want, call)
		}
	}
}

func TestNormalizeError(t *testing.T) {
	exec := &fakeExecutor{err: errors.New("invalid data found when processing input")}
	n := New(testConfig(t), exec, logger.New("error"))

	_, err := n.Normalize(context.Background(), "/tmp/not-media.bin")
	var convErr *domain.AudioConversionError
	if !errors.As(err, &convErr) {
		t.Fatalf("Normalize() error = %v, want AudioConversionError", err)
	}
	if convErr.Path != "/tmp/not-media.bin" {
		t.Errorf("AudioConversionError.Path = %q", convErr.Path)
	}
}
