package platform

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/viettran1502/transcriptor/internal/domain"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    domain.Platform
		wantErr bool
	}{
		{"youtube watch", "https://youtube.com/watch?v=abc123def45", domain.PlatformYouTube, false},
		{"youtube www", "https://www.youtube.com/watch?v=abc123def45", domain.PlatformYouTube, false},
		{"youtube short link", "https://youtu.be/abc123def45", domain.PlatformYouTube, false},
		{"tiktok video", "https://www.tiktok.com/@user/video/7123456789012345678", domain.PlatformTikTok, false},
		{"tiktok short", "https://vt.tiktok.com/ZS8abcdef/", domain.PlatformTikTok, false},
		{"facebook watch", "https://facebook.com/watch/123456", domain.PlatformFacebook, false},
		{"facebook mobile", "https://m.facebook.com/watch/?v=123456", domain.PlatformFacebook, false},
		{"fb.watch", "https://fb.watch/abc123/", domain.PlatformFacebook, false},
		{"douyin", "https://www.douyin.com/video/7123456789012345678", domain.PlatformDouyin, false},
		{"unknown site", "https://vimeo.com/123456", "", true},
		{"lookalike host", "https://notyoutube.com/watch?v=abc123def45", "", true},
		{"not a url", "::::", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Detect(tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Detect() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var upErr *domain.UnsupportedPlatformError
				if !errors.As(err, &upErr) {
					t.Errorf("Detect() error type = %T, want UnsupportedPlatformError", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Detect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVideoID(t *testing.T) {
	tests := []struct {
		name     string
		platform domain.Platform
		url      string
		want     string
	}{
		{"youtube watch param", domain.PlatformYouTube, "https://youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"youtube short link", domain.PlatformYouTube, "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"tiktok", domain.PlatformTikTok, "https://www.tiktok.com/@user/video/7123456789012345678", "7123456789012345678"},
		{"facebook videos path", domain.PlatformFacebook, "https://www.facebook.com/page/videos/123456789", "123456789"},
		{"facebook reel", domain.PlatformFacebook, "https://www.facebook.com/reel/123456789", "123456789"},
		{"facebook watch param", domain.PlatformFacebook, "https://www.facebook.com/watch/?v=123456789", "123456789"},
		{"douyin", domain.PlatformDouyin, "https://www.douyin.com/video/7123456789012345678", "7123456789012345678"},
		{"douyin modal", domain.PlatformDouyin, "https://www.douyin.com/discover?modal_id=7123456789012345678", "7123456789012345678"},
		{"no match", domain.PlatformTikTok, "https://www.tiktok.com/@user", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VideoID(tt.platform, tt.url); got != tt.want {
				t.Errorf("VideoID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/@user/video/7123?is_from_webapp=1", http.StatusMovedPermanently)
	}))
	defer srv.Close()

	// Non-short URLs pass through untouched, no network call.
	plain := "https://www.tiktok.com/@user/video/7123"
	if got := Expand(context.Background(), srv.Client(), plain); got != plain {
		t.Errorf("Expand() = %q, want passthrough %q", got, plain)
	}
}

func TestExpandFailureReturnsOriginal(t *testing.T) {
	// A transport that serves no real pages: expansion must degrade to
	// the original URL instead of failing.
	url := "https://vt.tiktok.com/ZS8abcdef/"
	client := &http.Client{Transport: http.NewFileTransport(http.Dir(t.TempDir()))}
	if got := Expand(context.Background(), client, url); got != url {
		t.Errorf("Expand() = %q, want original %q", got, url)
	}
}

// bareResponseTransport returns a minimal response with nil Body and
// nil Request, the loosest shape a RoundTripper can legally produce.
type bareResponseTransport struct{}

func (bareResponseTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return &http.Response{StatusCode: http.StatusOK}, nil
}

func TestExpandToleratesBareResponse(t *testing.T) {
	url := "https://vm.tiktok.com/ZS8abcdef/"
	client := &http.Client{Transport: bareResponseTransport{}}
	if got := Expand(context.Background(), client, url); got != url {
		t.Errorf("Expand() = %q, want original %q", got, url)
	}
}
