package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/viettran1502/transcriptor/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Transcribe media files dropped into a directory",
	Long: `Watch monitors a directory and transcribes every media file created
in it. The transcript is written next to the media file with a .txt
extension.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputDir := args[0]
		if err := os.MkdirAll(inputDir, 0755); err != nil {
			return fmt.Errorf("create watch directory: %w", err)
		}

		pipe, err := buildPipeline(false)
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		handler := func(ctx context.Context, filePath string) error {
			res, err := pipe.TranscribeFile(ctx, filePath)
			if err != nil {
				return err
			}
			outPath := strings.TrimSuffix(filePath, filepath.Ext(filePath)) + ".txt"
			if err := os.WriteFile(outPath, []byte(res.Transcript+"\n"), 0644); err != nil {
				return fmt.Errorf("write transcript: %w", err)
			}
			log.Info(ctx, "Transcript written: %s", outPath)
			return nil
		}

		concurrency, _ := cmd.Flags().GetInt("concurrency")
		w, err := watcher.New(inputDir, handler, log, concurrency)
		if err != nil {
			return err
		}
		defer w.Stop()

		log.Info(ctx, "Press Ctrl+C to stop")
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			return err
		}
		return nil
	},
}

func init() {
	watchCmd.Flags().Int("concurrency", 2, "max files transcribed at once")
	rootCmd.AddCommand(watchCmd)
}
