package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"webwhisper/internal/chat"
	"webwhisper/internal/chat/repository"
)

// CreateSession starts an empty session.
func (uc *implUseCase) CreateSession(ctx context.Context, input chat.CreateSessionInput) (chat.SessionOutput, error) {
	s, err := uc.repo.CreateSession(ctx, repository.CreateSessionOptions{ID: strings.TrimSpace(input.ID)})
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.CreateSession: %v", err)
		return chat.SessionOutput{}, err
	}
	return chat.SessionOutput{Session: s}, nil
}

func (uc *implUseCase) GetSession(ctx context.Context, id string) (chat.SessionOutput, error) {
	s, err := uc.getSession(ctx, id)
	if err != nil {
		return chat.SessionOutput{}, err
	}
	return chat.SessionOutput{Session: s}, nil
}

// EnsureSession returns the session with id, creating it when it does not exist or has expired.
func (uc *implUseCase) EnsureSession(ctx context.Context, id string) (chat.SessionOutput, error) {
	if id != "" {
		s, err := uc.getSession(ctx, id)
		if err == nil {
			return chat.SessionOutput{Session: s}, nil
		}
		if !errors.Is(err, chat.ErrSessionNotFound) {
			return chat.SessionOutput{}, err
		}
	}

	out, err := uc.CreateSession(ctx, chat.CreateSessionInput{ID: id})
	if errors.Is(err, repository.ErrAlreadyExists) {
		return uc.GetSession(ctx, id)
	}
	return out, err
}

// Stats summarizes a session for the sidebar.
func (uc *implUseCase) Stats(ctx context.Context, id string) (chat.StatsOutput, error) {
	s, err := uc.getSession(ctx, id)
	if err != nil {
		return chat.StatsOutput{}, err
	}
	return chat.StatsOutput{Stats: statsOf(s)}, nil
}

// DeleteSession drops the session and everything it holds.
func (uc *implUseCase) DeleteSession(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return chat.ErrSessionNotFound
	}
	if err := uc.repo.DeleteSession(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return chat.ErrSessionNotFound
		}
		uc.l.Errorf(ctx, "chat.usecase.DeleteSession: %v", err)
		return err
	}
	uc.l.Infof(ctx, "chat.usecase.DeleteSession: session %s deleted", id)
	return nil
}

// CountSessions returns how many sessions are currently held.
func (uc *implUseCase) CountSessions(ctx context.Context) int {
	return uc.repo.CountSessions(ctx)
}

func (uc *implUseCase) getSession(ctx context.Context, id string) (chat.Session, error) {
	if strings.TrimSpace(id) == "" {
		return chat.Session{}, chat.ErrSessionNotFound
	}
	s, err := uc.repo.GetSession(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return chat.Session{}, chat.ErrSessionNotFound
		}
		uc.l.Errorf(ctx, "chat.usecase.getSession: %v", err)
		return chat.Session{}, err
	}
	return s, nil
}

func (uc *implUseCase) updateSession(ctx context.Context, id string, mutate func(s *chat.Session) error) (chat.Session, error) {
	s, err := uc.repo.UpdateSession(ctx, repository.UpdateSessionOptions{ID: id, Mutate: mutate})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return chat.Session{}, chat.ErrSessionNotFound
		}
		return chat.Session{}, err
	}
	return s, nil
}

func statsOf(s chat.Session) chat.Stats {
	return chat.Stats{
		URL:          s.URL,
		HasContext:   s.HasContext(),
		ContextChars: utf8.RuneCountInString(s.Context),
		Messages:     2 * len(s.History),
	}
}
