// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package kv provides the string-keyed persistence substrate every store in
// the application is built on, together with its backends.
//
// The contract mirrors browser local storage: values are opaque strings,
// reads of a missing key report ok == false instead of failing, and writes
// replace the previous value wholesale.
package kv

import "context"

//go:generate mockgen -source=substrate.go -destination=../mock/kv_mock.go -package=mock

// Substrate is a synchronous string-keyed store.
type Substrate interface {
	// Get returns the value stored under key. ok is false when the key is
	// absent; err is reserved for backend failures.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
