package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/viettran1502/transcriptor/internal/logger"
)

func TestIsMediaFile(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{"mp4 video", "/watch/clip.mp4", true},
		{"uppercase extension", "/watch/CLIP.MP4", true},
		{"mp3 audio", "/watch/voice.mp3", true},
		{"wav audio", "/watch/raw.wav", true},
		{"partial download", "/watch/clip.mp4.part", false},
		{"text file", "/watch/notes.txt", false},
		{"no extension", "/watch/clip", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isMediaFile(tt.path); got != tt.want {
				t.Errorf("isMediaFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestNewMissingDirectory(t *testing.T) {
	handler := func(ctx context.Context, filePath string) error { return nil }
	if _, err := New("/does/not/exist", handler, logger.New("error"), 1); err == nil {
		t.Error("New() with a missing directory should fail")
	}
}

// Shutdown must wait for in-flight handlers regardless of whether the
// event loop is idle or blocked acquiring the semaphore.
func TestStartWaitsForInFlightHandlers(t *testing.T) {
	dir := t.TempDir()
	started := make(chan struct{}, 2)
	release := make(chan struct{})

	handler := func(ctx context.Context, filePath string) error {
		started <- struct{}{}
		<-release
		return nil
	}

	w, err := New(dir, handler, logger.New("error"), 1)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	ret := make(chan error, 1)
	go func() { ret <- w.Start(ctx) }()

	if err := os.WriteFile(filepath.Join(dir, "a.mp4"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	<-started

	// Semaphore is full; this event parks the loop waiting for a slot.
	if err := os.WriteFile(filepath.Join(dir, "b.mp4"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(settleDelay + 200*time.Millisecond)
	cancel()

	select {
	case <-ret:
		t.Fatal("Start() returned while a handler was in flight")
	case <-time.After(100 * time.Millisecond):
	}

	close(release)
	if err := <-ret; !errors.Is(err, context.Canceled) {
		t.Errorf("Start() error = %v, want context.Canceled", err)
	}
}

func TestNewClampsConcurrency(t *testing.T) {
	handler := func(ctx context.Context, filePath string) error { return nil }
	w, err := New(t.TempDir(), handler, logger.New("error"), 0)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	impl := w.(*implWatcher)
	if cap(impl.semaphore) != 1 {
		t.Errorf("semaphore cap = %d, want 1", cap(impl.semaphore))
	}
}
