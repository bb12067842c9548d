// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive chat client runtime.
//
// It ties the terminal UI to the client services and owns the lifetime of
// the local credential store.
package client
