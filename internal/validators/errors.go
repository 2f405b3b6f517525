// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyLogin      = errors.New("login is required")
	ErrInvalidLogin    = errors.New("login contains invalid characters")
	ErrLoginTooLong    = errors.New("login is too long")
	ErrEmptyPassword   = errors.New("password is required")
	ErrPasswordTooLong = errors.New("password is too long")
)
