// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidUpstream is returned by NewHandler when the upstream URL is
	// not an absolute http(s) origin.
	ErrInvalidUpstream = errors.New("invalid upstream url")

	// ErrMalformedRequest is reported for inbound requests that cannot be
	// forwarded: CONNECT, absolute-form targets or paths not starting with "/".
	ErrMalformedRequest = errors.New("malformed request")

	// ErrUpstreamTimeout means the upstream did not answer within the
	// configured timeout.
	ErrUpstreamTimeout = errors.New("upstream timeout")

	// ErrUpstreamUnreachable covers every other upstream transport failure.
	ErrUpstreamUnreachable = errors.New("upstream unreachable")
)
