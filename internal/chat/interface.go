package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Sessions
	CreateSession(ctx context.Context, input CreateSessionInput) (SessionOutput, error)
	GetSession(ctx context.Context, id string) (SessionOutput, error)
	EnsureSession(ctx context.Context, id string) (SessionOutput, error)
	Stats(ctx context.Context, id string) (StatsOutput, error)
	DeleteSession(ctx context.Context, id string) error
	CountSessions(ctx context.Context) int

	// Website chat
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)
	Ask(ctx context.Context, input AskInput) (AskOutput, error)
	ClearChat(ctx context.Context, id string) (SessionOutput, error)
	NewWebsite(ctx context.Context, id string) (SessionOutput, error)
}
