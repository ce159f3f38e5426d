package domain

import "time"

// Completeness tells the caller how much of the pipeline produced
// this result, so full and metadata-only platforms share one shape.
type Completeness string

const (
	CompletenessFull         Completeness = "full"
	CompletenessMetadataOnly Completeness = "metadata_only"
)

// Segment is one time-aligned piece of a transcript.
type Segment struct {
	Start time.Duration `json:"start"`
	End   time.Duration `json:"end"`
	Text  string        `json:"text"`
}

// Transcript is the output of a speech-to-text backend.
type Transcript struct {
	Text     string
	Segments []Segment
	Language string
}

// Result is the unified outcome of one job, regardless of whether the
// platform supports full transcription or only metadata scraping.
type Result struct {
	URL          string       `json:"url"`
	Platform     Platform     `json:"platform"`
	Completeness Completeness `json:"completeness"`
	Title        string       `json:"title,omitempty"`
	Author       string       `json:"author,omitempty"`
	Description  string       `json:"description,omitempty"`
	Transcript   string       `json:"transcript,omitempty"`
	Segments     []Segment    `json:"segments,omitempty"`
	Summary      string       `json:"summary,omitempty"`
	Source       string       `json:"source"`
	Language     string       `json:"language,omitempty"`
	Err          string       `json:"error,omitempty"`
}

// Metadata holds the fields a platform adapter can recover from a page.
type Metadata struct {
	Title       string
	Author      string
	Description string
}
