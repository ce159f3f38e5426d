package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
)

// cleanup removes every temporary artifact a job produced. Missing
// files are fine; calling it twice is fine. Other failures are
// aggregated so one bad file does not hide the rest.
func (p *implPipeline) cleanup(ctx context.Context, j *job) error {
	if j.tempDir == "" {
		return nil
	}

	var result error

	entries, err := os.ReadDir(j.tempDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		result = multierror.Append(result, err)
	}

	for _, e := range entries {
		path := filepath.Join(j.tempDir, e.Name())
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			result = multierror.Append(result, err)
		}
	}

	if err := os.Remove(j.tempDir); err != nil && !os.IsNotExist(err) {
		result = multierror.Append(result, err)
	}

	if result != nil {
		p.logger.Warn(ctx, "Cleanup incomplete for %s: %v", j.tempDir, result)
	} else {
		p.logger.Debug(ctx, "Cleaned up: %s", j.tempDir)
	}
	return result
}
