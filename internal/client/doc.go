// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the question/answer
// API.
//
// It builds a cobra command tree over the positional arguments, calls
// the server through an [adapter.ServerAdapter] and prints the result as
// JSON.
package client
