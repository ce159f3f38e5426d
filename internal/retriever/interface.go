package retriever

import (
	"context"

	"github.com/viettran1502/transcriptor/internal/domain"
)

// SubtitleProbe is the outcome of a subtitle-first check. Title is
// filled whenever yt-dlp could resolve the page, even without captions.
type SubtitleProbe struct {
	Title    string
	Text     string
	Segments []domain.Segment
	Language string
	Found    bool
}

// Metadata holds the lightweight fields yt-dlp can print without
// downloading anything.
type Metadata struct {
	Title      string
	Uploader   string
	UploadDate string
}

// Retriever resolves a video URL into local artifacts via yt-dlp.
type Retriever interface {
	// DownloadAudio fetches the audio track into destDir as 16kHz mono
	// WAV, bounded by the per-platform timeout.
	DownloadAudio(ctx context.Context, p domain.Platform, url, destDir string) (string, error)

	// FetchSubtitles probes for existing captions without downloading
	// media. A missing subtitle track is not an error.
	FetchSubtitles(ctx context.Context, url, destDir string) (*SubtitleProbe, error)

	// FetchMetadata prints title/uploader/upload date for a URL.
	FetchMetadata(ctx context.Context, url string) (*Metadata, error)
}
