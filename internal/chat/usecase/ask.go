package usecase

import (
	"context"
	"errors"
	"strings"

	"webwhisper/internal/chat"
	"webwhisper/pkg/llmprovider"
)

// Ask answers question from the session's website content and records the turn.
// History is kept for display only; it is not sent to the model.
func (uc *implUseCase) Ask(ctx context.Context, input chat.AskInput) (chat.AskOutput, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return chat.AskOutput{}, chat.ErrEmptyQuestion
	}

	s, err := uc.getSession(ctx, input.SessionID)
	if err != nil {
		return chat.AskOutput{}, err
	}
	if !s.HasContext() {
		return chat.AskOutput{}, chat.ErrNoContext
	}

	req := llmprovider.NewPromptRequest(BuildPrompt(s.Context, question))
	req.MaxTokens = uc.opts.MaxNewTokens
	req.MinTokens = uc.opts.MinNewTokens
	req.Temperature = uc.opts.Temperature

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.Ask.GenerateContent: %v", err)
		return chat.AskOutput{}, &chat.ModelError{Err: err}
	}
	if resp == nil {
		return chat.AskOutput{}, &chat.ModelError{Err: errors.New("empty response")}
	}

	answer := strings.TrimSpace(resp.Text())
	if answer == "" {
		answer = FallbackAnswer
	}

	turn := chat.Turn{
		Question: question,
		Answer:   answer,
		Provider: resp.ProviderName,
		Model:    resp.ModelName,
		AskedAt:  uc.now().UTC(),
	}

	revision := s.Revision
	s, err = uc.updateSession(ctx, input.SessionID, func(s *chat.Session) error {
		// The answer belongs to the context it was generated from.
		if s.Revision != revision {
			return chat.ErrContextChanged
		}
		s.History = append(s.History, turn)
		return nil
	})
	if errors.Is(err, chat.ErrContextChanged) {
		uc.l.Warnf(ctx, "chat.usecase.Ask: session %s was reset during generation, answer dropped", input.SessionID)
		return chat.AskOutput{}, err
	}
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.Ask.updateSession: %v", err)
		return chat.AskOutput{}, err
	}

	return chat.AskOutput{Session: s, Turn: turn}, nil
}
