package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"webwhisper/internal/chat"
	"webwhisper/internal/chat/repository"
)

func (r *implRepository) CreateSession(ctx context.Context, opt repository.CreateSessionOptions) (chat.Session, error) {
	id := opt.ID
	if id == "" {
		id = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sessions.Contains(id) {
		return chat.Session{}, fmt.Errorf("%w: session %s", repository.ErrAlreadyExists, id)
	}

	now := r.now().UTC()
	s := chat.Session{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.sessions.Add(id, s)
	r.l.Debugf(ctx, "memory.CreateSession: id=%s total=%d", id, r.sessions.Len())

	return s.Clone(), nil
}

// GetSession returns the session and restarts its idle timer.
func (r *implRepository) GetSession(ctx context.Context, id string) (chat.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions.Get(id)
	if !ok {
		return chat.Session{}, repository.ErrNotFound
	}
	r.sessions.Add(id, s)

	return s.Clone(), nil
}

func (r *implRepository) UpdateSession(ctx context.Context, opt repository.UpdateSessionOptions) (chat.Session, error) {
	if opt.Mutate == nil {
		return chat.Session{}, repository.ErrInvalidOptions
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.sessions.Get(opt.ID)
	if !ok {
		return chat.Session{}, repository.ErrNotFound
	}

	next := current.Clone()
	if err := opt.Mutate(&next); err != nil {
		return chat.Session{}, err
	}
	next.ID = current.ID
	next.CreatedAt = current.CreatedAt
	next.UpdatedAt = r.now().UTC()

	stored := next.Clone()
	r.sessions.Add(opt.ID, stored)

	return next, nil
}

func (r *implRepository) DeleteSession(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.sessions.Remove(id) {
		return repository.ErrNotFound
	}
	return nil
}

func (r *implRepository) CountSessions(ctx context.Context) int {
	return r.sessions.Len()
}
