// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when no HTTP address
	// is configured, so there is nothing to serve.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errAPIKeyIsNotSet is returned by NewHandlers when the shared secret is
	// empty. An empty secret would leave the gate unable to admit anyone.
	errAPIKeyIsNotSet = errors.New("api key is not set")
)
