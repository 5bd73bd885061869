package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/student-portal/internal/logger"
)

// defaultRefreshInterval applies when Start is given a non-positive interval.
const defaultRefreshInterval = 5 * time.Minute

type refreshJob struct {
	directory UserDirectoryService
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a RefreshJob that re-fetches users and teachers on a
// ticker. The job is idle until Start is called.
func NewRefreshJob(directory UserDirectoryService, logger *logger.Logger) RefreshJob {
	return &refreshJob{directory: directory, logger: logger}
}

// Start implements RefreshJob. It stops any previously running job, then
// launches a background goroutine that refreshes every interval. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *refreshJob) Start(ctx context.Context, adminID string, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	j.Stop()

	if adminID == "" {
		j.logger.Err(ErrNoAdminID).Str("func", "refreshJob.Start").Msg("refresh job not started")
		return
	}

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.refresh(jobCtx, adminID)
			}
		}
	}()
}

// Stop implements RefreshJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running.
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// refresh fetches both collections. A failure of one does not skip the other.
func (j *refreshJob) refresh(ctx context.Context, adminID string) {
	log := j.logger.With().Str("func", "refreshJob.refresh").Str("admin_id", adminID).Logger()

	if _, err := j.directory.ListUsers(ctx, adminID); err != nil {
		log.Warn().Err(err).Msg("background users refresh failed")
	}
	if _, err := j.directory.ListTeachers(ctx, adminID); err != nil {
		log.Warn().Err(err).Msg("background teachers refresh failed")
	}
}
