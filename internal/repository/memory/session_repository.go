package memory

import (
	"sync"
	"time"

	"github.com/commute-map/internal/domain"
	"github.com/commute-map/internal/domain/repository"
)

type sessionRepository struct {
	mu       sync.Mutex
	sessions map[string]*domain.MapSession
	now      func() time.Time
}

// NewSessionRepository creates an in-process session store. State is lost on restart.
func NewSessionRepository() repository.SessionRepository {
	return newSessionRepository(time.Now)
}

func newSessionRepository(now func() time.Time) *sessionRepository {
	return &sessionRepository{
		sessions: make(map[string]*domain.MapSession),
		now:      now,
	}
}

func (r *sessionRepository) Get(id string) *domain.MapSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil
	}
	return snapshot(s)
}

func (r *sessionRepository) Update(id string, fn func(s *domain.MapSession)) *domain.MapSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	s, ok := r.sessions[id]
	if !ok {
		s = &domain.MapSession{ID: id, CreatedAt: now}
		r.sessions[id] = s
	}

	fn(s)
	s.UpdatedAt = now

	return snapshot(s)
}

func (r *sessionRepository) UpdateExisting(id string, fn func(s *domain.MapSession)) (*domain.MapSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, false
	}

	fn(s)
	s.UpdatedAt = r.now()

	return snapshot(s), true
}

func (r *sessionRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
}

func (r *sessionRepository) Sweep(idleSince time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		if s.UpdatedAt.Before(idleSince) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

func (r *sessionRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

// snapshot copies the session header. Office, Route and Houses are replaced
// wholesale on write and never mutated in place, so sharing them is safe.
func snapshot(s *domain.MapSession) *domain.MapSession {
	c := *s
	return &c
}
