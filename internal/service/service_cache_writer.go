package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/student-portal/internal/logger"
	"github.com/MKhiriev/student-portal/internal/store"
	"github.com/MKhiriev/student-portal/models"
)

// CacheWriter persists directory snapshots for one administrator.
//
// It subscribes to the directory store and hands every snapshot to a single
// writer goroutine. When writes fall behind, only the newest pending
// snapshot is kept.
type CacheWriter struct {
	directory DirectoryStore
	repo      store.SnapshotRepository
	adminID   string
	logger    *logger.Logger

	mu          sync.Mutex
	cancel      context.CancelFunc
	unsubscribe func()
	wg          sync.WaitGroup

	// written is the version of the last persisted snapshot, guarded by mu.
	written uint64
}

// NewCacheWriter creates an idle CacheWriter.
func NewCacheWriter(directory DirectoryStore, repo store.SnapshotRepository, adminID string, logger *logger.Logger) *CacheWriter {
	return &CacheWriter{
		directory: directory,
		repo:      repo,
		adminID:   adminID,
		logger:    logger,
	}
}

// Seed loads the cached directory of the administrator into the store. It
// returns the number of users loaded. An empty cache is not an error.
func (w *CacheWriter) Seed(ctx context.Context) (int, error) {
	users, err := w.repo.LoadUsers(ctx, w.adminID)
	if err != nil {
		return 0, err
	}
	teachers, err := w.repo.LoadTeachers(ctx, w.adminID)
	if err != nil {
		return 0, err
	}

	if len(users) > 0 {
		w.directory.SetUsers(users)
	}
	if len(teachers) > 0 {
		w.directory.SetTeachers(teachers)
	}

	snap := w.directory.Snapshot()
	w.mu.Lock()
	w.written = snap.Version
	w.mu.Unlock()

	return len(users), nil
}

// Start subscribes to the directory store. Snapshots published after Start
// are persisted until ctx is cancelled or Stop is called.
func (w *CacheWriter) Start(ctx context.Context) {
	w.Stop()

	pending := make(chan models.DirectorySnapshot, 1)
	jobCtx, cancel := context.WithCancel(ctx)

	w.mu.Lock()
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		for {
			select {
			case <-jobCtx.Done():
				return
			case snap := <-pending:
				w.persist(jobCtx, snap)
			}
		}
	}()

	unsubscribe := w.directory.Subscribe(func(snap models.DirectorySnapshot) {
		// keep only the newest snapshot
		select {
		case <-pending:
		default:
		}
		pending <- snap
	})

	w.mu.Lock()
	w.unsubscribe = unsubscribe
	w.mu.Unlock()
}

// Stop unsubscribes and waits for an in-flight write to finish.
func (w *CacheWriter) Stop() {
	w.mu.Lock()
	cancel, unsubscribe := w.cancel, w.unsubscribe
	w.cancel, w.unsubscribe = nil, nil
	w.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *CacheWriter) persist(ctx context.Context, snap models.DirectorySnapshot) {
	w.mu.Lock()
	if snap.Version <= w.written {
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()

	log := w.logger.With().Str("func", "CacheWriter.persist").Uint64("version", snap.Version).Logger()

	if err := w.repo.SaveUsers(ctx, w.adminID, snap.Users); err != nil {
		log.Err(err).Msg("failed to cache users")
		return
	}
	if err := w.repo.SaveTeachers(ctx, w.adminID, snap.Teachers); err != nil {
		log.Err(err).Msg("failed to cache teachers")
		return
	}

	w.mu.Lock()
	w.written = snap.Version
	w.mu.Unlock()
	log.Debug().Int("users", len(snap.Users)).Int("teachers", len(snap.Teachers)).Msg("directory cached")
}
