package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
	"testing"

	"github.com/MKhiriev/go-chat-gate/internal/app"
	"github.com/stretchr/testify/assert"
)

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestClassifyUpstreamError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantErr    error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "context deadline",
			err:        fmt.Errorf("round trip: %w", context.DeadlineExceeded),
			wantErr:    ErrUpstreamTimeout,
			wantStatus: http.StatusGatewayTimeout,
			wantMsg:    app.MsgUpstreamTimeout,
		},
		{
			name:       "dial timeout",
			err:        &net.OpError{Op: "dial", Net: "tcp", Err: timeoutError{}},
			wantErr:    ErrUpstreamTimeout,
			wantStatus: http.StatusGatewayTimeout,
			wantMsg:    app.MsgUpstreamTimeout,
		},
		{
			name:       "connection refused",
			err:        &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED},
			wantErr:    ErrUpstreamUnreachable,
			wantStatus: http.StatusBadGateway,
			wantMsg:    app.MsgUpstreamUnreachable,
		},
		{
			name:       "dns failure",
			err:        &net.DNSError{Err: "no such host", Name: "upstream.invalid"},
			wantErr:    ErrUpstreamUnreachable,
			wantStatus: http.StatusBadGateway,
			wantMsg:    app.MsgUpstreamUnreachable,
		},
		{
			name:       "reset",
			err:        errors.New("connection reset by peer"),
			wantErr:    ErrUpstreamUnreachable,
			wantStatus: http.StatusBadGateway,
			wantMsg:    app.MsgUpstreamUnreachable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyUpstreamError(tt.err)

			assert.ErrorIs(t, got, tt.wantErr)
			assert.ErrorIs(t, got, tt.err)
			assert.Equal(t, tt.wantStatus, statusFromError(got))
			assert.Equal(t, tt.wantMsg, messageFromError(got))
		})
	}
}

func TestStatusFromError_Defaults(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFromError(ErrMalformedRequest))
	assert.Equal(t, app.MsgMalformedRequest, messageFromError(ErrMalformedRequest))

	assert.Equal(t, http.StatusInternalServerError, statusFromError(errors.New("unknown")))
	assert.Equal(t, app.MsgInternalServerError, messageFromError(errors.New("unknown")))
}
