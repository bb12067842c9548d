package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-chat-gate/internal/logger"
)

// withRequestValidation rejects requests that cannot be forwarded to a
// fixed origin with 400 before any upstream contact.
func (h *Handler) withRequestValidation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !forwardable(r) {
			logger.FromRequest(r).Warn().
				Str("method", r.Method).
				Str("uri", r.RequestURI).
				Msg("malformed request")
			h.writeError(w, r, ErrMalformedRequest)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func forwardable(r *http.Request) bool {
	if r.Method == http.MethodConnect {
		return false
	}
	if r.URL == nil || r.URL.IsAbs() || r.URL.Host != "" {
		return false
	}
	if !strings.HasPrefix(r.URL.Path, "/") {
		return false
	}
	if r.RequestURI != "" && !strings.HasPrefix(r.RequestURI, "/") {
		return false
	}
	return true
}
