// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"io"
	stdlog "log"
	"net"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/MKhiriev/go-chat-gate/internal/logger"
	"github.com/MKhiriev/go-chat-gate/internal/utils"
	"github.com/MKhiriev/go-chat-gate/models"
)

const (
	maxDialTimeout      = 10 * time.Second
	tlsHandshakeTimeout = 10 * time.Second
	idleConnTimeout     = 90 * time.Second
)

type upstreamDeadlineKey struct{}

// upstreamDeadline cancels the outbound request once the upstream has been
// silent for longer than timeout.
type upstreamDeadline struct {
	timer   *time.Timer
	timeout time.Duration
}

func (d *upstreamDeadline) extend() {
	d.timer.Reset(d.timeout)
}

// forward relays r to the upstream. The upstream timeout bounds the time
// until response headers arrive and then every gap between body reads, so a
// stream lives as long as the upstream keeps sending.
func (h *Handler) forward(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithCancelCause(r.Context())
	defer cancel(nil)

	deadline := &upstreamDeadline{
		timer:   time.AfterFunc(h.timeout, func() { cancel(ErrUpstreamTimeout) }),
		timeout: h.timeout,
	}
	defer deadline.timer.Stop()

	ctx = context.WithValue(ctx, upstreamDeadlineKey{}, deadline)
	h.proxy.ServeHTTP(w, r.WithContext(ctx))
}

func (h *Handler) newReverseProxy(transport http.RoundTripper) *httputil.ReverseProxy {
	return &httputil.ReverseProxy{
		Rewrite:        h.rewrite,
		Transport:      transport,
		FlushInterval:  -1,
		ModifyResponse: watchUpstreamBody,
		ErrorHandler:   h.handleUpstreamError,
		ErrorLog:       stdlog.New(h.logger, "", 0),
	}
}

// rewrite points the outbound request at the upstream origin. SetURL joins
// the paths, keeps the query and replaces Host. No X-Forwarded-* headers are
// added.
func (h *Handler) rewrite(pr *httputil.ProxyRequest) {
	pr.SetURL(h.upstream)
	pr.Out.Host = h.upstream.Host

	origin := h.upstream.Scheme + "://" + h.upstream.Host
	if pr.Out.Header.Get("Origin") != "" {
		pr.Out.Header.Set("Origin", origin)
	}
	if referer := pr.Out.Header.Get("Referer"); referer != "" {
		pr.Out.Header.Set("Referer", rewriteReferer(referer, h.upstream))
	}
}

func rewriteReferer(referer string, upstream *url.URL) string {
	u, err := url.Parse(referer)
	if err != nil || u.Host == "" {
		return upstream.Scheme + "://" + upstream.Host + "/"
	}
	u.Scheme = upstream.Scheme
	u.Host = upstream.Host
	u.User = nil
	return u.String()
}

// watchUpstreamBody re-arms the upstream deadline on every body read.
// Upgraded connections keep their raw body and are not limited.
func watchUpstreamBody(resp *http.Response) error {
	if resp.Request == nil {
		return nil
	}
	deadline, ok := resp.Request.Context().Value(upstreamDeadlineKey{}).(*upstreamDeadline)
	if !ok {
		return nil
	}
	if resp.StatusCode == http.StatusSwitchingProtocols {
		deadline.timer.Stop()
		return nil
	}

	deadline.extend()
	resp.Body = &idleTimeoutBody{ReadCloser: resp.Body, deadline: deadline}
	return nil
}

type idleTimeoutBody struct {
	io.ReadCloser
	deadline *upstreamDeadline
}

func (b *idleTimeoutBody) Read(p []byte) (int, error) {
	n, err := b.ReadCloser.Read(p)
	if n > 0 {
		b.deadline.extend()
	}
	return n, err
}

func (h *Handler) handleUpstreamError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	if errors.Is(context.Cause(ctx), ErrUpstreamTimeout) {
		err = errors.Join(ErrUpstreamTimeout, err)
	} else if errors.Is(context.Cause(ctx), context.Canceled) {
		log.Info().Err(err).Str("path", r.URL.Path).Msg("client cancelled request")
		return
	} else {
		err = classifyUpstreamError(err)
	}

	log.Error().Err(err).Str("path", r.URL.Path).Msg("upstream request failed")
	h.writeError(w, r, err)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if traceID := traceIDFromContext(r.Context()); traceID != "" {
		w.Header().Set(traceIDHeader, traceID)
	}
	if _, writeErr := utils.WriteJSON(w, models.ErrorResponse{Message: messageFromError(err)}, statusFromError(err)); writeErr != nil {
		logger.FromRequest(r).Err(writeErr).Msg("error writing error response")
	}
}

func newUpstreamTransport(timeout time.Duration) *http.Transport {
	dialTimeout := min(timeout, maxDialTimeout)

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = nil
	transport.DialContext = (&net.Dialer{
		Timeout:   dialTimeout,
		KeepAlive: 30 * time.Second,
	}).DialContext
	transport.TLSHandshakeTimeout = min(timeout, tlsHandshakeTimeout)
	transport.ResponseHeaderTimeout = timeout
	transport.IdleConnTimeout = idleConnTimeout

	return transport
}
