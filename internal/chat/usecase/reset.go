package usecase

import (
	"context"

	"webwhisper/internal/chat"
)

// ClearChat empties the history and keeps the website loaded.
func (uc *implUseCase) ClearChat(ctx context.Context, id string) (chat.SessionOutput, error) {
	s, err := uc.updateSession(ctx, id, func(s *chat.Session) error {
		s.History = nil
		s.Revision++
		return nil
	})
	if err != nil {
		return chat.SessionOutput{}, err
	}
	return chat.SessionOutput{Session: s}, nil
}

// NewWebsite empties both the history and the website context.
func (uc *implUseCase) NewWebsite(ctx context.Context, id string) (chat.SessionOutput, error) {
	s, err := uc.updateSession(ctx, id, func(s *chat.Session) error {
		resetWebsite(s)
		return nil
	})
	if err != nil {
		return chat.SessionOutput{}, err
	}
	return chat.SessionOutput{Session: s}, nil
}
