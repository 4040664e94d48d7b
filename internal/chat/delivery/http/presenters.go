package http

import (
	"strings"

	"webwhisper/internal/chat"
	"webwhisper/pkg/response"
)

// --- Request DTOs ---

type analyzeReq struct {
	SessionID string `json:"-"` // populated from URI param
	URL       string `json:"url" binding:"required,max=2048"`
}

func (r analyzeReq) validate() error {
	if strings.TrimSpace(r.URL) == "" {
		return chat.ErrEmptyURL
	}
	return nil
}

func (r analyzeReq) toInput() chat.AnalyzeInput {
	return chat.AnalyzeInput{
		SessionID: r.SessionID,
		URL:       strings.TrimSpace(r.URL),
	}
}

// ---

type askReq struct {
	SessionID string `json:"-"` // populated from URI param
	Question  string `json:"question" binding:"required,max=2000"`
}

func (r askReq) validate() error {
	if strings.TrimSpace(r.Question) == "" {
		return chat.ErrEmptyQuestion
	}
	return nil
}

func (r askReq) toInput() chat.AskInput {
	return chat.AskInput{
		SessionID: r.SessionID,
		Question:  r.Question,
	}
}

// --- Response DTOs ---

type turnResp struct {
	Question string             `json:"question"`
	Answer   string             `json:"answer"`
	Provider string             `json:"provider,omitempty"`
	Model    string             `json:"model,omitempty"`
	AskedAt  response.Timestamp `json:"asked_at"`
}

func newTurnResp(t chat.Turn) turnResp {
	return turnResp{
		Question: t.Question,
		Answer:   t.Answer,
		Provider: t.Provider,
		Model:    t.Model,
		AskedAt:  response.Timestamp(t.AskedAt),
	}
}

type pageResp struct {
	Title       string             `json:"title,omitempty"`
	Description string             `json:"description,omitempty"`
	SiteName    string             `json:"site_name,omitempty"`
	FinalURL    string             `json:"final_url,omitempty"`
	RawLength   int                `json:"raw_length"`
	Truncated   bool               `json:"truncated"`
	FetchedAt   response.Timestamp `json:"fetched_at"`
}

type statsResp struct {
	Characters int `json:"characters"`
	Messages   int `json:"messages"`
}

type statsDetailResp struct {
	URL        string `json:"url,omitempty"`
	HasContext bool   `json:"has_context"`
	Characters int    `json:"characters"`
	Messages   int    `json:"messages"`
}

func newStatsDetailResp(s chat.Stats) statsDetailResp {
	return statsDetailResp{
		URL:        s.URL,
		HasContext: s.HasContext,
		Characters: s.ContextChars,
		Messages:   s.Messages,
	}
}

type sessionResp struct {
	ID         string             `json:"id"`
	URL        string             `json:"url,omitempty"`
	HasContext bool               `json:"has_context"`
	Page       *pageResp          `json:"page,omitempty"`
	History    []turnResp         `json:"history"`
	Stats      statsResp          `json:"stats"`
	CreatedAt  response.Timestamp `json:"created_at"`
	UpdatedAt  response.Timestamp `json:"updated_at"`
}

func newSessionResp(s chat.Session) sessionResp {
	history := make([]turnResp, len(s.History))
	for i, t := range s.History {
		history[i] = newTurnResp(t)
	}

	resp := sessionResp{
		ID:         s.ID,
		URL:        s.URL,
		HasContext: s.HasContext(),
		History:    history,
		Stats: statsResp{
			Characters: len([]rune(s.Context)),
			Messages:   2 * len(s.History),
		},
		CreatedAt: response.Timestamp(s.CreatedAt),
		UpdatedAt: response.Timestamp(s.UpdatedAt),
	}
	if s.HasContext() {
		resp.Page = &pageResp{
			Title:       s.Page.Title,
			Description: s.Page.Description,
			SiteName:    s.Page.SiteName,
			FinalURL:    s.Page.FinalURL,
			RawLength:   s.Page.RawLength,
			Truncated:   s.Page.Truncated,
			FetchedAt:   response.Timestamp(s.Page.FetchedAt),
		}
	}
	return resp
}

type analyzeResp struct {
	Session sessionResp `json:"session"`
	Preview string      `json:"preview"`
}

func (h *handler) newAnalyzeResp(out chat.AnalyzeOutput) analyzeResp {
	return analyzeResp{
		Session: newSessionResp(out.Session),
		Preview: out.Preview,
	}
}

type askResp struct {
	Turn     turnResp `json:"turn"`
	Messages int      `json:"messages"`
}

func (h *handler) newAskResp(out chat.AskOutput) askResp {
	return askResp{
		Turn:     newTurnResp(out.Turn),
		Messages: 2 * len(out.Session.History),
	}
}
