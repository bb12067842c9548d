package http

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/MKhiriev/go-chat-gate/internal/app"
)

var errorStatusMap = map[error]int{
	ErrMalformedRequest:    http.StatusBadRequest,
	ErrUpstreamTimeout:     http.StatusGatewayTimeout,
	ErrUpstreamUnreachable: http.StatusBadGateway,
}

var errorMessageMap = map[error]string{
	ErrMalformedRequest:    app.MsgMalformedRequest,
	ErrUpstreamTimeout:     app.MsgUpstreamTimeout,
	ErrUpstreamUnreachable: app.MsgUpstreamUnreachable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}

// classifyUpstreamError maps a reverse proxy transport error onto the
// gateway sentinels. Deadline errors from the request context and network
// timeouts (dial, response header) are both reported as a timeout.
func classifyUpstreamError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Join(ErrUpstreamTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return errors.Join(ErrUpstreamTimeout, err)
	}

	return errors.Join(ErrUpstreamUnreachable, err)
}
