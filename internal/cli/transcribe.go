package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/viettran1502/transcriptor/internal/domain"
	"github.com/viettran1502/transcriptor/internal/summarizer"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <url>",
	Short: "Download a video and produce a transcript",
	Example: `  # Transcribe a YouTube video to stdout
  transcriptor transcribe "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

  # TikTok short links are expanded automatically
  transcriptor transcribe "https://vt.tiktok.com/ZS8abc123/" -o transcript.txt

  # Styled docx with a Gemini summary appended
  transcriptor transcribe <url> --summarize -o transcript.docx`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if model, _ := cmd.Flags().GetString("model"); model != "" {
			cfg.Whisper.Model = model
		}
		if lang, _ := cmd.Flags().GetString("language"); lang != "" {
			cfg.Whisper.Language = lang
		}

		pipe, err := buildPipeline(true)
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		res, err := pipe.Run(ctx, args[0])
		if err != nil {
			return err
		}

		if summarize, _ := cmd.Flags().GetBool("summarize"); summarize && res.Transcript != "" {
			sum, err := summarizer.New(cfg, log)
			if err != nil {
				return err
			}
			summary, err := sum.Summarize(ctx, res.Transcript)
			if err != nil {
				log.Warn(ctx, "Summary generation failed: %v", err)
			} else {
				res.Summary = summary
			}
		}

		output, _ := cmd.Flags().GetString("output")
		return writeResult(res, output)
	},
}

func init() {
	transcribeCmd.Flags().String("model", "", "whisper model override (e.g. large-v3, medium)")
	transcribeCmd.Flags().String("language", "", "force the transcription language (e.g. vi, en)")
	transcribeCmd.Flags().StringP("output", "o", "", "output path: .txt, .json, or .docx (default stdout)")
	transcribeCmd.Flags().Bool("summarize", false, "append a Gemini-generated summary")
	rootCmd.AddCommand(transcribeCmd)
}

// writeResult renders the result to the requested destination. The file
// extension picks the format: .docx gets the styled document, .json the
// full structured result, anything else plain text.
func writeResult(res *domain.Result, output string) error {
	switch {
	case output == "":
		return printResult(os.Stdout, res)
	case strings.HasSuffix(output, ".docx"):
		return summarizer.WriteDocx(res, output)
	case strings.HasSuffix(output, ".json"):
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		return os.WriteFile(output, append(data, '\n'), 0644)
	default:
		return os.WriteFile(output, []byte(plainText(res)), 0644)
	}
}

func printResult(w io.Writer, res *domain.Result) error {
	if res.Completeness == domain.CompletenessMetadataOnly {
		fmt.Fprintf(w, "Platform: %s (metadata only)\n", res.Platform)
		if res.Title != "" {
			fmt.Fprintf(w, "Title:    %s\n", res.Title)
		}
		if res.Author != "" {
			fmt.Fprintf(w, "Author:   %s\n", res.Author)
		}
		if res.Description != "" {
			fmt.Fprintf(w, "About:    %s\n", res.Description)
		}
		if res.Err != "" {
			fmt.Fprintf(w, "Note:     %s\n", res.Err)
		}
		return nil
	}

	if res.Title != "" {
		fmt.Fprintf(w, "# %s\n\n", res.Title)
	}
	_, err := io.WriteString(w, plainText(res))
	return err
}

func plainText(res *domain.Result) string {
	text := res.Transcript
	if res.Summary != "" {
		text += "\n\n## Summary\n\n" + res.Summary
	}
	if res.Err != "" {
		text += "\n\n(warning: " + res.Err + ")"
	}
	return text + "\n"
}
