package repository

import (
	"context"

	"webwhisper/internal/chat"
)

// Repository is the composed interface for the chat domain data store.
type Repository interface {
	SessionRepository
}

// SessionRepository defines all data access methods for the Session entity.
// Returned sessions are copies; mutating them does not affect the store.
type SessionRepository interface {
	CreateSession(ctx context.Context, opt CreateSessionOptions) (chat.Session, error)
	GetSession(ctx context.Context, id string) (chat.Session, error)
	UpdateSession(ctx context.Context, opt UpdateSessionOptions) (chat.Session, error)
	DeleteSession(ctx context.Context, id string) error
	CountSessions(ctx context.Context) int
}
