// Package memory keeps desk sessions in process memory. It provides the
// session registry, the unit of work used by commands and the reader used by
// queries. Nothing survives a restart.
//
// Each session has a one-slot semaphore. A unit of work holds the slot of every
// session it loaded until Commit or Rollback, and View holds it for the length
// of the callback, so all access to one session is serialized while different
// sessions proceed in parallel.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"dispatchdesk/internal/core/domain/model/kernel"
	"dispatchdesk/internal/core/domain/model/session"
	"dispatchdesk/internal/pkg/errs"
)

// ErrSessionAlreadyExists is returned when a session ID is registered twice.
var ErrSessionAlreadyExists = errors.New("session already exists")

type entry struct {
	slot       chan struct{}
	session    *session.Session
	lastAccess time.Time
	evicted    bool
}

func newEntry(s *session.Session, now time.Time) *entry {
	return &entry{
		slot:       make(chan struct{}, 1),
		session:    s,
		lastAccess: now,
	}
}

func (e *entry) lock(ctx context.Context) error {
	select {
	case e.slot <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *entry) tryLock() bool {
	select {
	case e.slot <- struct{}{}:
		return true
	default:
		return false
	}
}

func (e *entry) unlock() {
	<-e.slot
}

// Registry is the set of live sessions.
type Registry struct {
	mu      sync.RWMutex
	entries map[kernel.UUID]*entry
	now     func() time.Time
}

// NewRegistry creates an empty registry. now is the clock used for idle
// tracking; nil means time.Now.
func NewRegistry(now func() time.Time) *Registry {
	if now == nil {
		now = time.Now
	}
	return &Registry{
		entries: make(map[kernel.UUID]*entry),
		now:     now,
	}
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// View implements ports.SessionReader.
func (r *Registry) View(ctx context.Context, id kernel.UUID, fn func(s *session.Session) error) error {
	e, err := r.acquire(ctx, id)
	if err != nil {
		return err
	}
	defer r.release(e, true)

	return fn(e.session)
}

// EvictIdle removes every session not used for longer than ttl and returns how
// many were removed. Sessions busy right now are skipped.
func (r *Registry) EvictIdle(ttl time.Duration) int {
	cutoff := r.now().Add(-ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, e := range r.entries {
		if !e.tryLock() {
			continue
		}
		if e.lastAccess.Before(cutoff) {
			e.evicted = true
			delete(r.entries, id)
			evicted++
		}
		e.unlock()
	}
	return evicted
}

func (r *Registry) insert(s *session.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[s.ID()]; exists {
		return ErrSessionAlreadyExists
	}
	r.entries[s.ID()] = newEntry(s, r.now())
	return nil
}

func (r *Registry) contains(id kernel.UUID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[id]
	return ok
}

// acquire waits for the session's slot. A session evicted while the caller
// was waiting is reported as not found.
func (r *Registry) acquire(ctx context.Context, id kernel.UUID) (*entry, error) {
	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()
	if !ok {
		return nil, errs.NewObjectNotFoundError("session", id)
	}

	if err := e.lock(ctx); err != nil {
		return nil, err
	}
	if e.evicted {
		e.unlock()
		return nil, errs.NewObjectNotFoundError("session", id)
	}
	return e, nil
}

func (r *Registry) release(e *entry, touch bool) {
	if touch {
		e.lastAccess = r.now()
	}
	e.unlock()
}
