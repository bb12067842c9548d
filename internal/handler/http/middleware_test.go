package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-chat-gate/internal/app"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- request validation ----

func TestWithRequestValidation_RejectsUnforwardable(t *testing.T) {
	var hits atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer upstream.Close()

	h := newTestHandler(t, upstream.URL, time.Second)

	relative := httptest.NewRequest(http.MethodGet, "/", nil)
	relative.URL.Path = "v1/models"
	relative.RequestURI = "v1/models"

	tests := []struct {
		name string
		req  *http.Request
	}{
		{name: "CONNECT", req: httptest.NewRequest(http.MethodConnect, "upstream.example:443", nil)},
		{name: "absolute-form target", req: httptest.NewRequest(http.MethodGet, "http://evil.example/v1/models", nil)},
		{name: "asterisk target", req: httptest.NewRequest(http.MethodOptions, "*", nil)},
		{name: "path without leading slash", req: relative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.Init().ServeHTTP(rr, tt.req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, app.MsgMalformedRequest, decodeErrorResponse(t, rr.Body).Message)
			assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
		})
	}

	assert.Zero(t, hits.Load(), "upstream must not be contacted")
}

func TestForwardable(t *testing.T) {
	assert.True(t, forwardable(httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.True(t, forwardable(httptest.NewRequest(http.MethodDelete, "/v1/files/1?purge=true", nil)))
	assert.False(t, forwardable(httptest.NewRequest(http.MethodConnect, "upstream.example:443", nil)))
}

// ---- trace id ----

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name          string
		requestID     string
		wantSame      bool
		wantGenerated bool
	}{
		{name: "caller id reused", requestID: "my-custom-trace-id", wantSame: true},
		{name: "generated when absent", wantGenerated: true},
		{name: "oversized id replaced", requestID: strings.Repeat("x", maxTraceIDLength+1), wantGenerated: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			h := newBufferedHandler(t, "http://upstream.example", time.Second, &logBuf)

			var got string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = traceIDFromContext(r.Context())
				zerolog.Ctx(r.Context()).Info().Msg("inside")
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.requestID != "" {
				req.Header.Set(traceIDHeader, tt.requestID)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			require.NotEmpty(t, got)
			assert.Empty(t, rr.Header().Get(traceIDHeader))
			if tt.wantSame {
				assert.Equal(t, tt.requestID, got)
			}
			if tt.wantGenerated {
				parsed, err := uuid.Parse(got)
				require.NoError(t, err)
				assert.Equal(t, uuid.Version(7), parsed.Version())
			}

			assert.Contains(t, logBuf.String(), `"trace_id":"`+got+`"`)
		})
	}
}

// ---- access logging ----

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		target    string
		status    int
		body      string
		wantLevel string
		wantSize  string
	}{
		{name: "success", method: http.MethodPost, target: "/v1/chat/completions", status: http.StatusOK, body: "OK", wantLevel: "info", wantSize: `"size":2`},
		{name: "client error", method: http.MethodGet, target: "/v1/models?limit=1", status: http.StatusBadRequest, wantLevel: "warn", wantSize: `"size":0`},
		{name: "upstream failure", method: http.MethodGet, target: "/v1/models", status: http.StatusBadGateway, wantLevel: "error", wantSize: `"size":0`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			h := newBufferedHandler(t, "http://upstream.example", time.Second, &logBuf)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			rr := httptest.NewRecorder()
			h.withTraceID(h.withLogging(next)).ServeHTTP(rr, httptest.NewRequest(tt.method, tt.target, nil))

			out := logBuf.String()
			assert.Equal(t, tt.status, rr.Code)
			assert.Contains(t, out, `"level":"`+tt.wantLevel+`"`)
			assert.Contains(t, out, `"method":"`+tt.method+`"`)
			assert.Contains(t, out, `"uri":"`+tt.target+`"`)
			assert.Contains(t, out, `"upstream":"upstream.example"`)
			assert.Contains(t, out, `"duration":`)
			assert.Contains(t, out, `"trace_id":`)
			assert.Contains(t, out, tt.wantSize)
		})
	}
}

func TestRecoverer_PanicBecomes500(t *testing.T) {
	h := newTestHandler(t, "http://upstream.example", time.Second)
	router := h.Init()
	router.Get("/panic", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/panic", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

// ---- responseWriter ----

func TestResponseWriter(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	assert.Zero(t, w.status)
	assert.False(t, w.wroteHeader)

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)
	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rr.Code)

	_, err := w.Write([]byte("first"))
	require.NoError(t, err)
	_, err = w.Write([]byte("second"))
	require.NoError(t, err)
	assert.Equal(t, len("firstsecond"), w.size)

	w.Flush()
	assert.True(t, rr.Flushed)
	assert.Same(t, rr, w.Unwrap())
}

func TestResponseWriter_ImplicitStatus(t *testing.T) {
	tests := []struct {
		name  string
		write func(w *responseWriter)
	}{
		{name: "write", write: func(w *responseWriter) { _, _ = w.Write([]byte("x")) }},
		{name: "flush", write: func(w *responseWriter) { w.Flush() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rr}
			tt.write(w)
			assert.Equal(t, http.StatusOK, w.status)
			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}
}
