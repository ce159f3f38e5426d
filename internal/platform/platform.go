package platform

import (
	"context"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/viettran1502/transcriptor/internal/domain"
)

// Detect classifies a URL by its host.
func Detect(rawURL string) (domain.Platform, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", &domain.UnsupportedPlatformError{URL: rawURL}
	}

	host := strings.ToLower(u.Hostname())
	switch {
	case hasDomain(host, "youtube.com") || hasDomain(host, "youtu.be"):
		return domain.PlatformYouTube, nil
	case hasDomain(host, "tiktok.com"):
		return domain.PlatformTikTok, nil
	case hasDomain(host, "facebook.com") || hasDomain(host, "fb.watch"):
		return domain.PlatformFacebook, nil
	case hasDomain(host, "douyin.com"):
		return domain.PlatformDouyin, nil
	default:
		return "", &domain.UnsupportedPlatformError{URL: rawURL}
	}
}

// hasDomain matches a host against a registered domain, accepting
// subdomains (m.facebook.com) but not lookalikes (notyoutube.com).
func hasDomain(host, domainName string) bool {
	return host == domainName || strings.HasSuffix(host, "."+domainName)
}

// Expand resolves vt.tiktok.com / vm.tiktok.com short links by
// following redirects and stripping tracking params. Expansion is
// best-effort: on any failure the original URL is returned.
func Expand(ctx context.Context, client *http.Client, rawURL string) string {
	if !strings.Contains(rawURL, "vt.tiktok.com") && !strings.Contains(rawURL, "vm.tiktok.com") {
		return rawURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return rawURL
	}

	resp, err := client.Do(req)
	if err != nil {
		return rawURL
	}
	if resp.Body != nil {
		resp.Body.Close()
	}
	// Custom transports may leave Request unset.
	if resp.Request == nil || resp.Request.URL == nil {
		return rawURL
	}

	expanded := resp.Request.URL.String()
	if i := strings.Index(expanded, "?"); i >= 0 {
		expanded = expanded[:i]
	}
	return expanded
}

var videoIDPatterns = map[domain.Platform][]*regexp.Regexp{
	domain.PlatformYouTube: {
		regexp.MustCompile(`(?:v=|/)([a-zA-Z0-9_-]{11})`),
	},
	domain.PlatformTikTok: {
		regexp.MustCompile(`/video/(\d+)`),
	},
	domain.PlatformFacebook: {
		regexp.MustCompile(`/(?:videos|reel)/(\d+)`),
		regexp.MustCompile(`v=(\d+)`),
		regexp.MustCompile(`/watch/(\d+)`),
	},
	domain.PlatformDouyin: {
		regexp.MustCompile(`/video/(\d+)`),
		regexp.MustCompile(`modal_id=(\d+)`),
	},
}

// VideoID extracts the platform-native video identifier from a URL.
// Returns an empty string if no pattern matches.
func VideoID(p domain.Platform, rawURL string) string {
	for _, re := range videoIDPatterns[p] {
		if m := re.FindStringSubmatch(rawURL); m != nil {
			return m[1]
		}
	}
	return ""
}
