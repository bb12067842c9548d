// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the gateway has no
// listen address configured, resulting in no transport handler being
// initialized. This is treated as a fatal misconfiguration and causes the
// gateway to fail at startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")
