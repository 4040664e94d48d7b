package chat

import (
	"errors"
	"fmt"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptyContent    = errors.New("no content could be extracted from this website")
	ErrNoContext       = errors.New("no website has been analyzed yet")
	ErrEmptyQuestion   = errors.New("please enter a question")
	ErrEmptyURL        = errors.New("please enter a website URL")
	ErrContextChanged  = errors.New("the conversation was reset while the answer was being generated")
)

// ModelError reports that no answer could be generated.
type ModelError struct {
	Err error
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("error generating response: %v", e.Err)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}
