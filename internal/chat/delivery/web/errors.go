package web

import (
	"errors"
	"fmt"

	"webwhisper/internal/chat"
	"webwhisper/pkg/scraper"
)

// flashForError turns a use case error into a message for the page.
func flashForError(err error) flash {
	var fetchErr *scraper.FetchError
	var modelErr *chat.ModelError

	switch {
	case errors.Is(err, chat.ErrEmptyURL), errors.Is(err, chat.ErrEmptyQuestion):
		return flash{Kind: flashWarning, Message: upperFirst(err.Error())}
	case errors.Is(err, chat.ErrNoContext):
		return flash{Kind: flashWarning, Message: "Analyze a website before asking questions."}
	case errors.Is(err, chat.ErrContextChanged):
		return flash{Kind: flashWarning, Message: "The chat was reset before the answer arrived. Please ask again."}
	case errors.Is(err, scraper.ErrInvalidURL):
		return flash{Kind: flashError, Message: "Please enter a valid http:// or https:// URL."}
	case errors.As(err, &fetchErr):
		return flash{Kind: flashError, Message: fmt.Sprintf("Error fetching website: %v", fetchErr)}
	case errors.Is(err, chat.ErrEmptyContent):
		return flash{Kind: flashError, Message: "No content could be extracted from this website."}
	case errors.As(err, &modelErr):
		return flash{Kind: flashError, Message: upperFirst(modelErr.Error())}
	default:
		return flash{Kind: flashError, Message: "Something went wrong. Please try again."}
	}
}

func upperFirst(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
