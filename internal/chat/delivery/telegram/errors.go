package telegram

import (
	"errors"
	"fmt"

	"webwhisper/internal/chat"
	"webwhisper/pkg/scraper"
)

var errBadSecret = errors.New("telegram webhook: secret token mismatch")

// errorMessage returns a user-facing error string for the given error.
func errorMessage(err error) string {
	var fetchErr *scraper.FetchError
	var modelErr *chat.ModelError

	switch {
	case errors.Is(err, chat.ErrNoContext):
		return "No website loaded yet. Send /analyze <url> first."
	case errors.Is(err, chat.ErrEmptyURL):
		return "Usage: /analyze https://example.com"
	case errors.Is(err, chat.ErrEmptyQuestion):
		return "Please enter a question."
	case errors.Is(err, chat.ErrContextChanged):
		return "The chat was reset before this answer was ready, so it was dropped."
	case errors.Is(err, scraper.ErrInvalidURL):
		return "That does not look like an http:// or https:// URL."
	case errors.As(err, &fetchErr):
		return fmt.Sprintf("Error fetching website: %v", fetchErr)
	case errors.Is(err, chat.ErrEmptyContent):
		return "No content could be extracted from this website."
	case errors.As(err, &modelErr):
		return fmt.Sprintf("Error generating response: %v", modelErr.Err)
	default:
		return "Something went wrong while processing your message. Please try again."
	}
}
