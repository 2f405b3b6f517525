// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks account credentials before they reach the
// password hasher or the repositories.
//
// A Validator takes the value and, optionally, the names of the fields to
// check. Login only needs the presence rules, registration adds the length
// rules.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
