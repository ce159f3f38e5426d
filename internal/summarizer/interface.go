package summarizer

import "context"

// Summarizer produces an LLM-generated markdown summary of a transcript.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}
