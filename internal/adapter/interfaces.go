// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound destinations of the users export.
//
// Every destination implements [Sink]:
//   - [FileSink] writes into a local directory.
//   - [S3Sink] uploads to an S3-compatible bucket (AWS, MinIO).
//   - [HTTPSink] posts the export to the import endpoint of another ar-fit
//     server, replacing that server's users.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] regardless of the
// destination.
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Sink stores a named export payload and returns where it landed (a file
// path or a URL).
type Sink interface {
	Put(ctx context.Context, name string, data []byte) (string, error)
}
