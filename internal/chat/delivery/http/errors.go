package http

import (
	"errors"
	"net/http"

	"multimodal-chat/internal/chat"
	pkgErrors "multimodal-chat/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// Bad input, backend failure, and timeout stay distinguishable to the caller:
// a timeout signals unknown outcome, a failed job is terminal.
func (h *handler) mapError(err error) error {
	var (
		failedErr  *chat.VideoJobFailedError
		timeoutErr *chat.VideoJobTimeoutError
	)

	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "message text is required")
	case errors.As(err, &timeoutErr):
		return pkgErrors.NewHTTPError(http.StatusGatewayTimeout, timeoutErr.Error())
	case errors.As(err, &failedErr):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, failedErr.Error())
	case errors.Is(err, chat.ErrNoImagePayload):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, chat.ErrNoImagePayload.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
