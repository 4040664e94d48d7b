package usecase

import (
	"context"
	"strings"

	"webwhisper/internal/chat"
	"webwhisper/pkg/extractor"
	"webwhisper/pkg/scraper"
)

// Analyze loads a website into the session.
// The previous context and history are dropped before fetching, so a failed
// fetch leaves the session empty.
func (uc *implUseCase) Analyze(ctx context.Context, input chat.AnalyzeInput) (chat.AnalyzeOutput, error) {
	rawURL := strings.TrimSpace(input.URL)
	if rawURL == "" {
		return chat.AnalyzeOutput{}, chat.ErrEmptyURL
	}

	if _, err := uc.updateSession(ctx, input.SessionID, func(s *chat.Session) error {
		resetWebsite(s)
		return nil
	}); err != nil {
		return chat.AnalyzeOutput{}, err
	}

	page, err := uc.scraper.Fetch(ctx, rawURL)
	if err != nil {
		uc.l.Warnf(ctx, "chat.usecase.Analyze.Fetch: %v", err)
		return chat.AnalyzeOutput{}, err
	}

	res := uc.extract(page)
	if res.Empty() {
		uc.l.Infof(ctx, "chat.usecase.Analyze: no text extracted from %s", page.FinalURL)
		return chat.AnalyzeOutput{}, chat.ErrEmptyContent
	}
	if res.Truncated {
		uc.l.Debugf(ctx, "chat.usecase.Analyze: text truncated from %d to %d characters", res.RawLength, uc.extractor.MaxLength())
	}

	s, err := uc.updateSession(ctx, input.SessionID, func(s *chat.Session) error {
		s.URL = page.URL
		s.Context = res.Text
		s.History = nil
		s.Revision++
		s.Page = chat.PageMeta{
			Title:       res.Title,
			Description: res.Description,
			SiteName:    res.SiteName,
			FinalURL:    page.FinalURL,
			RawLength:   res.RawLength,
			Truncated:   res.Truncated,
			FetchedAt:   page.FetchedAt,
		}
		return nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.Analyze.updateSession: %v", err)
		return chat.AnalyzeOutput{}, err
	}

	uc.l.Infof(ctx, "chat.usecase.Analyze: loaded %d characters from %s in %s", len([]rune(s.Context)), page.FinalURL, page.Took)

	return chat.AnalyzeOutput{
		Session: s,
		Preview: s.Preview(uc.opts.PreviewLength),
	}, nil
}

// extract treats anything that is not plain text as HTML.
func (uc *implUseCase) extract(page *scraper.Page) extractor.Result {
	if page.ContentType == "text/plain" {
		return uc.extractor.ExtractPlain(page.Body)
	}
	return uc.extractor.Extract(page.Body)
}

func resetWebsite(s *chat.Session) {
	s.URL = ""
	s.Context = ""
	s.Page = chat.PageMeta{}
	s.History = nil
	s.Revision++
}
