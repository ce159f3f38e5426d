package retriever

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/viettran1502/transcriptor/internal/domain"
	"github.com/viettran1502/transcriptor/internal/subtitle"
)

// probeTimeout bounds the cheap yt-dlp calls (subtitles, metadata)
// that never download media.
const probeTimeout = 30 * time.Second

var audioExtensions = []string{".wav", ".mp3", ".m4a", ".webm", ".opus"}

// downloadTimeout returns the documented per-platform download bound.
func (r *implRetriever) downloadTimeout(p domain.Platform) time.Duration {
	switch p {
	case domain.PlatformTikTok:
		return time.Duration(r.cfg.Downloader.TikTokTimeout) * time.Second
	default:
		return time.Duration(r.cfg.Downloader.YouTubeTimeout) * time.Second
	}
}

// DownloadAudio runs yt-dlp with audio extraction post-processing so
// the result is already 16kHz mono WAV in most cases. The actual output
// extension depends on the source container, so destDir is scanned.
func (r *implRetriever) DownloadAudio(ctx context.Context, p domain.Platform, url, destDir string) (string, error) {
	outTemplate := filepath.Join(destDir, fmt.Sprintf("audio_%d.%%(ext)s", time.Now().Unix()))

	args := []string{
		"--extract-audio",
		"--audio-format", "wav",
		"--postprocessor-args", fmt.Sprintf("ffmpeg:-ar %d -ac %d", r.cfg.Audio.SampleRate, r.cfg.Audio.Channels),
		"--no-playlist",
		"--output", outTemplate,
		url,
	}

	timeout := r.downloadTimeout(p)
	r.logger.Info(ctx, "Downloading audio (timeout %s): %s", timeout, url)

	if _, err := r.executor.ExecuteTimeout(ctx, timeout, r.cfg.Downloader.BinaryPath, args...); err != nil {
		return "", &domain.DownloadError{URL: url, Err: err}
	}

	audioPath, err := findAudioFile(destDir)
	if err != nil {
		return "", &domain.DownloadError{URL: url, Err: err}
	}

	r.logger.Info(ctx, "Audio downloaded: %s", audioPath)
	return audioPath, nil
}

// findAudioFile locates the file yt-dlp actually produced; it may pick
// a different container than requested when ffmpeg is unavailable.
func findAudioFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("scan download dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		if !strings.HasPrefix(name, "audio_") {
			continue
		}
		for _, ext := range audioExtensions {
			if strings.HasSuffix(name, ext) {
				return filepath.Join(dir, name), nil
			}
		}
	}
	return "", fmt.Errorf("downloader finished but produced no audio file")
}

// FetchSubtitles asks yt-dlp for existing captions without downloading
// the media. The title is printed to a file in the same call, so a
// successful probe costs a single yt-dlp invocation.
func (r *implRetriever) FetchSubtitles(ctx context.Context, url, destDir string) (*SubtitleProbe, error) {
	titleFile := filepath.Join(destDir, ".title.txt")

	args := []string{
		"--write-subs",
		"--write-auto-subs",
		"--sub-lang", r.cfg.Downloader.SubtitleLangs,
		"--skip-download",
		"--print-to-file", "title", titleFile,
		"--paths", destDir,
		"-o", "%(id)s.%(ext)s",
		url,
	}

	r.logger.Debug(ctx, "Probing subtitles: %s", url)

	// A failed probe is not fatal; some platforms reject the request
	// while the audio download still works.
	if _, err := r.executor.ExecuteTimeout(ctx, probeTimeout, r.cfg.Downloader.BinaryPath, args...); err != nil {
		r.logger.Debug(ctx, "Subtitle probe failed: %v", err)
	}

	probe := &SubtitleProbe{}
	if data, err := os.ReadFile(titleFile); err == nil {
		probe.Title = strings.TrimSpace(string(data))
		os.Remove(titleFile)
	}

	entries, err := os.ReadDir(destDir)
	if err != nil {
		return nil, fmt.Errorf("scan subtitle dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		if !isSubtitleFile(name) {
			continue
		}
		subPath := filepath.Join(destDir, name)
		raw, err := os.ReadFile(subPath)
		os.Remove(subPath)
		if err != nil {
			continue
		}

		text, segments := subtitle.Parse(string(raw))
		if len(strings.TrimSpace(text)) <= 20 {
			continue
		}

		probe.Text = text
		probe.Segments = segments
		probe.Language = subtitleLanguage(name, r.cfg.Downloader.SubtitleLangs)
		probe.Found = true
		r.logger.Info(ctx, "Found existing subtitles (%s): %d chars", probe.Language, len(text))
		return probe, nil
	}

	return probe, nil
}

func isSubtitleFile(name string) bool {
	return strings.HasSuffix(name, ".vtt") || strings.HasSuffix(name, ".srt") || strings.HasSuffix(name, ".ass")
}

func subtitleLanguage(filename, langs string) string {
	for _, lang := range strings.Split(langs, ",") {
		lang = strings.TrimSpace(lang)
		if lang != "" && strings.Contains(filename, "."+lang+".") {
			return lang
		}
	}
	return "auto"
}

// FetchMetadata prints basic fields for a URL without downloading.
func (r *implRetriever) FetchMetadata(ctx context.Context, url string) (*Metadata, error) {
	out, err := r.executor.ExecuteTimeout(ctx, probeTimeout, r.cfg.Downloader.BinaryPath,
		"--print", "title,uploader,upload_date", "--no-playlist", url)
	if err != nil {
		return nil, &domain.DownloadError{URL: url, Err: err}
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	md := &Metadata{}
	if len(lines) > 0 {
		md.Title = strings.TrimSpace(lines[0])
	}
	if len(lines) > 1 {
		md.Uploader = strings.TrimSpace(lines[1])
	}
	if len(lines) > 2 {
		md.UploadDate = strings.TrimSpace(lines[2])
	}
	return md, nil
}
