// Package directory holds the in-memory state of the user directory: the
// last successfully fetched lists of users and teachers.
//
// [Store] is the single source of truth for UI consumers. Every update
// replaces a collection wholesale and produces a new immutable
// [models.DirectorySnapshot]; subscribers receive snapshots in version order.
package directory

import (
	"sync"
	"time"

	"github.com/MKhiriev/student-portal/models"
)

// Listener receives directory snapshots. Each call gets its own copy, so a
// listener may keep or modify what it receives.
//
// Listeners are called synchronously from the goroutine that updated the
// store and must not update the store themselves.
type Listener func(models.DirectorySnapshot)

// Store is a concurrency-safe holder of the directory state.
type Store struct {
	mu        sync.Mutex
	snapshot  models.DirectorySnapshot
	listeners map[uint64]Listener
	nextID    uint64

	// Every update and subscription takes a ticket under mu. Listener calls
	// run one ticket at a time in ticket order, without holding mu.
	tickets uint64
	served  uint64
	turnMu  sync.Mutex
	turn    *sync.Cond

	now func() time.Time
}

// NewStore returns an empty store at version 0.
func NewStore() *Store {
	s := &Store{
		listeners: make(map[uint64]Listener),
		now:       time.Now,
	}
	s.turn = sync.NewCond(&s.turnMu)
	return s
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() models.DirectorySnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot.Clone()
}

// Users returns a copy of the current users list.
func (s *Store) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneUsers(s.snapshot.Users)
}

// Teachers returns a copy of the current teachers list.
func (s *Store) Teachers() []models.Teacher {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneTeachers(s.snapshot.Teachers)
}

// SetUsers replaces the users list with a copy of users and publishes the new
// snapshot.
func (s *Store) SetUsers(users []models.User) {
	users = models.CloneUsers(users)
	s.update(func(snap *models.DirectorySnapshot) {
		snap.Users = users
	})
}

// SetTeachers replaces the teachers list with a copy of teachers and
// publishes the new snapshot.
func (s *Store) SetTeachers(teachers []models.Teacher) {
	teachers = models.CloneTeachers(teachers)
	s.update(func(snap *models.DirectorySnapshot) {
		snap.Teachers = teachers
	})
}

// Subscribe registers l, calls it with the current snapshot, and then with
// every later snapshot. The returned function removes the listener; calling
// it more than once is a no-op.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	current := s.snapshot.Clone()
	ticket := s.takeTicket()
	s.mu.Unlock()

	s.inTurn(ticket, func() { l(current) })

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

func (s *Store) update(apply func(*models.DirectorySnapshot)) {
	s.mu.Lock()
	apply(&s.snapshot)
	s.snapshot.Version++
	s.snapshot.UpdatedAt = s.now()

	snap := s.snapshot.Clone()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	ticket := s.takeTicket()
	s.mu.Unlock()

	s.inTurn(ticket, func() {
		for _, l := range listeners {
			l(snap.Clone())
		}
	})
}

// takeTicket must be called with mu held.
func (s *Store) takeTicket() uint64 {
	t := s.tickets
	s.tickets++
	return t
}

// inTurn waits until every earlier ticket has been served, runs fn and
// passes the turn on.
func (s *Store) inTurn(ticket uint64, fn func()) {
	s.turnMu.Lock()
	for s.served != ticket {
		s.turn.Wait()
	}
	s.turnMu.Unlock()

	defer func() {
		s.turnMu.Lock()
		s.served++
		s.turn.Broadcast()
		s.turnMu.Unlock()
	}()
	fn()
}
