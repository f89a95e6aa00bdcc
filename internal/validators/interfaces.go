// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user-supplied fitness data before it reaches
// storage: registration records, profile patches, meals, plan activations
// and calculator requests.
package validators

import "context"

// Validator checks one of the supported request models. Passing field names
// limits the check to those fields; with none every field is checked.
// Unsupported models return ErrUnsupportedType.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
