// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "context"

// Validator checks a value before it reaches the record store.
type Validator interface {
	// Validate checks obj. When fields is empty every known field is checked,
	// otherwise only the named ones, in order. The first failing check is
	// returned.
	Validate(ctx context.Context, obj any, fields ...string) error
}
