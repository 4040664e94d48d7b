package usecase

import (
	"context"
	"time"

	"webwhisper/internal/chat"
	"webwhisper/internal/chat/repository"
	"webwhisper/pkg/extractor"
	"webwhisper/pkg/llmprovider"
	"webwhisper/pkg/log"
	"webwhisper/pkg/scraper"
)

// Generator produces answers. Both *llmprovider.Manager and *llmprovider.Lazy satisfy it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Options tunes answer generation.
type Options struct {
	MaxNewTokens  int
	MinNewTokens  int
	Temperature   float64
	PreviewLength int
}

const (
	defaultMaxNewTokens  = 150
	defaultPreviewLength = 500
)

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	l         log.Logger
	repo      repository.Repository
	scraper   scraper.IScraper
	extractor extractor.IExtractor
	llm       Generator
	opts      Options
	now       func() time.Time
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase implementation.
func New(l log.Logger, repo repository.Repository, s scraper.IScraper, e extractor.IExtractor, llm Generator, opts Options) *implUseCase {
	if opts.MaxNewTokens <= 0 {
		opts.MaxNewTokens = defaultMaxNewTokens
	}
	if opts.MinNewTokens < 0 || opts.MinNewTokens > opts.MaxNewTokens {
		opts.MinNewTokens = 0
	}
	if opts.PreviewLength <= 0 {
		opts.PreviewLength = defaultPreviewLength
	}

	return &implUseCase{
		l:         l,
		repo:      repo,
		scraper:   s,
		extractor: e,
		llm:       llm,
		opts:      opts,
		now:       time.Now,
	}
}
