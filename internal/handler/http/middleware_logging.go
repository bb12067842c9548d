package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-chat-gate/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access log entry per relayed request. Upstream and
// gateway failures (5xx) are logged as errors, rejected requests as warnings.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		log.WithLevel(levelForStatus(lw.status)).
			Str("uri", uri).
			Str("method", method).
			Str("upstream", h.upstream.Host).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

func levelForStatus(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
