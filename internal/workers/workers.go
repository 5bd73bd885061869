package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/student-portal/internal/service"
)

// Workers runs a fixed set of workers.
type Workers struct {
	workers []Worker
}

// New groups workers. They are started in the given order and stopped in
// reverse.
func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Start starts every worker.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops every worker, last started first.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// refreshWorker binds a [service.RefreshJob] to one administrator and
// interval.
type refreshWorker struct {
	job      service.RefreshJob
	adminID  string
	interval time.Duration
}

// NewRefreshWorker adapts job to the Worker interface.
func NewRefreshWorker(job service.RefreshJob, adminID string, interval time.Duration) Worker {
	return &refreshWorker{job: job, adminID: adminID, interval: interval}
}

func (r *refreshWorker) Start(ctx context.Context) {
	r.job.Start(ctx, r.adminID, r.interval)
}

func (r *refreshWorker) Stop() {
	r.job.Stop()
}
