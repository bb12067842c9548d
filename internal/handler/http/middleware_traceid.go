package http

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
)

const (
	traceIDHeader    = "X-Trace-ID"
	maxTraceIDLength = 128
)

type traceIDKey struct{}

// withTraceID attaches the trace id and a request-scoped logger carrying
// trace_id to the request context. A caller-supplied id is reused when it is
// not longer than maxTraceIDLength. Relayed responses keep the upstream
// headers; only responses written by the gateway echo the id.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" || len(traceID) > maxTraceIDLength {
			traceID = h.traceIDs.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		ctx = context.WithValue(ctx, traceIDKey{}, traceID)
		r = r.WithContext(l.WithContext(ctx))

		next.ServeHTTP(w, r)
	})
}

func traceIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(traceIDKey{}).(string)
	return id
}
