package cli

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/viettran1502/transcriptor/internal/platform"
	"github.com/viettran1502/transcriptor/internal/scraper"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape <url>",
	Short: "Fetch title and author metadata without transcribing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		client := &http.Client{Timeout: 15 * time.Second}
		rawURL := platform.Expand(ctx, client, args[0])

		p, err := platform.Detect(rawURL)
		if err != nil {
			return err
		}

		scr := scraper.New(cfg, log)
		meta, err := scr.Scrape(ctx, p, rawURL)
		if err != nil {
			return err
		}

		fmt.Printf("Platform: %s\n", p)
		fmt.Printf("Title:    %s\n", meta.Title)
		if meta.Author != "" {
			fmt.Printf("Author:   %s\n", meta.Author)
		}
		if meta.Description != "" {
			fmt.Printf("About:    %s\n", meta.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
}
