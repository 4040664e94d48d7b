package http

import (
	"errors"
	"net/http"

	"webwhisper/internal/chat"
	"webwhisper/pkg/response"
	"webwhisper/pkg/scraper"
)

var (
	errSessionIDRequired = response.NewHTTPError(http.StatusBadRequest, "session id is required")
)

// mapError translates domain/use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	return MapError(err)
}

// MapError translates an error into the HTTPError the JSON API renders.
func MapError(err error) *response.HTTPError {
	var fetchErr *scraper.FetchError
	var modelErr *chat.ModelError

	switch {
	case errors.Is(err, chat.ErrSessionNotFound):
		return response.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, chat.ErrEmptyURL),
		errors.Is(err, chat.ErrEmptyQuestion),
		errors.Is(err, chat.ErrNoContext):
		return response.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, chat.ErrContextChanged):
		return response.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, scraper.ErrInvalidURL):
		return response.NewHTTPError(http.StatusBadRequest, "invalid website URL: use an http:// or https:// address")
	case errors.As(err, &fetchErr) && fetchErr.Timeout():
		return response.NewHTTPError(http.StatusGatewayTimeout, "error fetching website: request timed out")
	case errors.As(err, &fetchErr):
		return response.NewHTTPError(http.StatusBadGateway, "error fetching website: "+fetchErr.Error())
	case errors.Is(err, chat.ErrEmptyContent):
		return response.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &modelErr):
		return response.NewHTTPError(http.StatusServiceUnavailable, modelErr.Error())
	default:
		return response.NewInternalError()
	}
}

// mapBindError turns request binding failures into 400s, keeping the
// domain message for blank input.
func (h *handler) mapBindError(err error) error {
	var httpErr *response.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}
	if errors.Is(err, chat.ErrEmptyURL) || errors.Is(err, chat.ErrEmptyQuestion) {
		return MapError(err)
	}
	return response.NewHTTPError(http.StatusBadRequest, "invalid request body: "+err.Error())
}
