package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/viettran1502/transcriptor/internal/logger"
)

func newTestPipeline(t *testing.T) *implPipeline {
	t.Helper()
	p := New(testConfig(t, t.TempDir()), logger.New("error"), &fakeRetriever{}, &fakeNormalizer{}, &fakeTranscriber{}, &fakeScraper{})
	return p.(*implPipeline)
}

func TestCleanupRemovesArtifacts(t *testing.T) {
	p := newTestPipeline(t)
	jb := &job{}
	if err := p.acquireTempDir(jb); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"audio_1.wav", "audio_1.srt", ".title.txt"} {
		if err := os.WriteFile(filepath.Join(jb.tempDir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	if err := p.cleanup(context.Background(), jb); err != nil {
		t.Fatalf("cleanup() error = %v", err)
	}
	if _, err := os.Stat(jb.tempDir); !os.IsNotExist(err) {
		t.Error("temp dir survived cleanup")
	}
}

func TestCleanupIsIdempotent(t *testing.T) {
	p := newTestPipeline(t)
	jb := &job{}
	if err := p.acquireTempDir(jb); err != nil {
		t.Fatal(err)
	}

	if err := p.cleanup(context.Background(), jb); err != nil {
		t.Fatalf("first cleanup() error = %v", err)
	}
	// Second pass over already-deleted paths must not fail.
	if err := p.cleanup(context.Background(), jb); err != nil {
		t.Fatalf("second cleanup() error = %v", err)
	}
}

func TestCleanupNoTempDir(t *testing.T) {
	p := newTestPipeline(t)
	if err := p.cleanup(context.Background(), &job{}); err != nil {
		t.Fatalf("cleanup() on empty job error = %v", err)
	}
}
