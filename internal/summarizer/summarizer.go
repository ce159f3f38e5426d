package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const summaryPrompt = `You are an expert at analyzing video content. Based on the transcript
below, write a DETAILED markdown summary.

Requirements:
- Start with a one-sentence title describing the topic of the video
- List ALL main points in order of appearance
- Explain each point, including important caveats or warnings
- Keep technical terms as-is
- Use markdown: headings, bullet points, bold for key terms

Transcript:
---
%s
---`

// Summarize sends the transcript to Gemini and returns markdown.
func (s *implSummarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	if strings.TrimSpace(transcript) == "" {
		return "", fmt.Errorf("nothing to summarize")
	}

	s.logger.Info(ctx, "Summarizing transcript (%d chars) with %s", len(transcript), s.model)

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create gemini client: %w", err)
	}

	prompt := fmt.Sprintf(summaryPrompt, transcript)
	resp, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate summary: %w", err)
	}

	summary := strings.TrimSpace(resp.Text())
	if summary == "" {
		return "", fmt.Errorf("model returned an empty summary")
	}

	s.logger.Info(ctx, "Summary generated: %d chars", len(summary))
	return summary, nil
}
