// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"

	"github.com/MKhiriev/ar-fit/internal/service"
)

// Request decoding errors. They wrap [service.ErrInvalidDataProvided] so the
// status table and the message catalog treat them as bad input.
var (
	// ErrInvalidJSON is returned when the request body is not valid JSON
	// for the endpoint.
	ErrInvalidJSON = fmt.Errorf("%w: malformed JSON body", service.ErrInvalidDataProvided)

	// ErrUnknownSubscriptionKind is returned when the {kind} path parameter
	// is neither "workout" nor "nutrition".
	ErrUnknownSubscriptionKind = fmt.Errorf("%w: unknown subscription kind", service.ErrInvalidDataProvided)

	// ErrEmptyBody is returned when an endpoint that needs a payload gets
	// none.
	ErrEmptyBody = fmt.Errorf("%w: empty request body", service.ErrInvalidDataProvided)
)
