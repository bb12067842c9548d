// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chat-gate/internal/adapter"
)

// mapLoginAdapterError translates an adapter error of the login call into a
// service error. Client-side status codes without a message are rejections;
// everything else means the service could not serve the attempt.
func mapLoginAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrUnauthorized),
		errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", &AuthRejectedError{}, err)
	default:
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}
}
