// Package subtitle converts VTT/SRT subtitle payloads into plain text
// and time-aligned segments.
package subtitle

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/viettran1502/transcriptor/internal/domain"
)

var (
	inlineTagRe = regexp.MustCompile(`<[^>]+>`)
	// Matches both SRT (00:00:01,500) and VTT (00:00:01.500) cue lines.
	timestampRe = regexp.MustCompile(`(\d{2}):(\d{2}):(\d{2})[.,](\d{3})\s*-->\s*(\d{2}):(\d{2}):(\d{2})[.,](\d{3})`)
)

// seenResetThreshold bounds the dedup set so recurring phrases later in
// a long video are not dropped forever. Mirrors the rolling-window
// behavior subtitle generators expect.
const seenResetThreshold = 200

// Parse extracts clean plain text and timed segments from raw VTT/SRT
// content. Header lines, cue counters, inline tags, and consecutive
// duplicate lines (auto-captions repeat them) are removed.
func Parse(raw string) (string, []domain.Segment) {
	var (
		lines    []string
		segments []domain.Segment
		current  *domain.Segment
		seen     = make(map[string]struct{})
	)

	flush := func() {
		if current != nil && current.Text != "" {
			segments = append(segments, *current)
		}
		current = nil
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)

		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "WEBVTT") || strings.HasPrefix(line, "Kind:") ||
			strings.HasPrefix(line, "Language:") || strings.HasPrefix(line, "NOTE") ||
			strings.HasPrefix(line, "STYLE") {
			continue
		}
		if m := timestampRe.FindStringSubmatch(line); m != nil {
			flush()
			current = &domain.Segment{
				Start: parseTimestamp(m[1], m[2], m[3], m[4]),
				End:   parseTimestamp(m[5], m[6], m[7], m[8]),
			}
			continue
		}
		if isCueCounter(line) {
			continue
		}

		clean := strings.TrimSpace(inlineTagRe.ReplaceAllString(line, ""))
		if clean == "" {
			continue
		}

		if _, dup := seen[clean]; !dup {
			lines = append(lines, clean)
			seen[clean] = struct{}{}
			if current != nil {
				if current.Text != "" {
					current.Text += " "
				}
				current.Text += clean
			}
		}
		if len(seen) > seenResetThreshold {
			seen = make(map[string]struct{})
		}
	}
	flush()

	return strings.Join(lines, "\n"), segments
}

// PlainText returns only the cleaned text of a subtitle payload.
func PlainText(raw string) string {
	text, _ := Parse(raw)
	return text
}

func isCueCounter(line string) bool {
	if line == "" {
		return false
	}
	for _, r := range line {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func parseTimestamp(h, m, s, ms string) time.Duration {
	hi, _ := strconv.Atoi(h)
	mi, _ := strconv.Atoi(m)
	si, _ := strconv.Atoi(s)
	msi, _ := strconv.Atoi(ms)
	return time.Duration(hi)*time.Hour +
		time.Duration(mi)*time.Minute +
		time.Duration(si)*time.Second +
		time.Duration(msi)*time.Millisecond
}
