package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/viettran1502/transcriptor/internal/domain"
)

// job tracks one request through its lifecycle. All intermediate files
// live inside tempDir, owned exclusively by this job.
type job struct {
	url      string
	platform domain.Platform
	status   domain.Status
	tempDir  string
}

func (p *implPipeline) newJob(url string, platform domain.Platform) *job {
	return &job{
		url:      url,
		platform: platform,
		status:   domain.StatusPending,
	}
}

func (j *job) transition(ctx context.Context, p *implPipeline, next domain.Status) {
	p.logger.Debug(ctx, "Job %s: %s -> %s", j.url, j.status, next)
	j.status = next
}

// acquireTempDir creates the job-scoped temp directory. Released
// unconditionally by cleanup.
func (p *implPipeline) acquireTempDir(j *job) error {
	dir, err := os.MkdirTemp(p.cfg.Paths.Temp, "transcript_")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	j.tempDir = dir
	return nil
}
