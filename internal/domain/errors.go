package domain

import "fmt"

// UnsupportedPlatformError is returned when a URL does not match any
// known platform pattern. Fatal, reported immediately.
type UnsupportedPlatformError struct {
	URL string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported platform: %s", e.URL)
}

// DownloadError wraps a downloader or network failure. Fatal for the
// job; there is no retry beyond what yt-dlp does internally.
type DownloadError struct {
	URL string
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// AudioConversionError wraps a converter failure: ffmpeg missing or
// the input is not a valid media container.
type AudioConversionError struct {
	Path string
	Err  error
}

func (e *AudioConversionError) Error() string {
	return fmt.Sprintf("convert audio %s: %v", e.Path, e.Err)
}

func (e *AudioConversionError) Unwrap() error { return e.Err }

// TranscriptionError wraps a speech-to-text backend failure.
type TranscriptionError struct {
	Backend string
	Err     error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcribe (%s): %v", e.Backend, e.Err)
}

func (e *TranscriptionError) Unwrap() error { return e.Err }

// ScrapeError reports a metadata extraction failure on a limited
// platform. Non-fatal: the job degrades to a partial result.
type ScrapeError struct {
	Platform Platform
	Err      error
}

func (e *ScrapeError) Error() string {
	return fmt.Sprintf("scrape %s: %v", e.Platform, e.Err)
}

func (e *ScrapeError) Unwrap() error { return e.Err }
