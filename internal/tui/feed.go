package tui

import (
	"sync"

	"github.com/MKhiriev/student-portal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// snapshotFeed forwards directory snapshots into the program. offer never
// blocks: a snapshot the program has not picked up yet is replaced by a
// newer one.
type snapshotFeed struct {
	pending chan models.DirectorySnapshot
	done    chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

func newSnapshotFeed(send func(tea.Msg)) *snapshotFeed {
	f := &snapshotFeed{
		pending: make(chan models.DirectorySnapshot, 1),
		done:    make(chan struct{}),
	}

	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		for {
			select {
			case <-f.done:
				return
			case snap := <-f.pending:
				send(snapshotMsg{snapshot: snap})
			}
		}
	}()

	return f
}

func (f *snapshotFeed) offer(snap models.DirectorySnapshot) {
	for {
		select {
		case f.pending <- snap:
			return
		default:
		}
		select {
		case <-f.pending:
		default:
		}
	}
}

// close stops forwarding and waits for the forwarding goroutine. send must
// return once the program has exited.
func (f *snapshotFeed) close() {
	f.once.Do(func() { close(f.done) })
	f.wg.Wait()
}
