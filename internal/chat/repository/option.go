package repository

import "webwhisper/internal/chat"

// CreateSessionOptions holds parameters for creating a new Session.
type CreateSessionOptions struct {
	ID string
}

// UpdateSessionOptions applies Mutate to the stored session atomically.
// Returning an error from Mutate leaves the stored session unchanged.
type UpdateSessionOptions struct {
	ID     string
	Mutate func(s *chat.Session) error
}
