// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-session-keeper/models"
)

const (
	// FieldLogin requires a non-empty login without control characters.
	FieldLogin = "login"
	// FieldPassword requires a non-empty password.
	FieldPassword = "password"
	// FieldLength applies the length limits of stored accounts.
	FieldLength = "length"
)

const (
	MaxLoginLength = 64
	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes = 72
)

type CredentialsValidator struct{}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate checks a models.User. Without fields every rule is applied.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUser(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword, FieldLength}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldLogin:
			err = validateLogin(user.Login)
		case FieldPassword:
			if user.Password == "" {
				err = ErrEmptyPassword
			}
		case FieldLength:
			err = validateLength(user)
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func validateLogin(login string) error {
	if strings.TrimSpace(login) == "" {
		return ErrEmptyLogin
	}
	if !utf8.ValidString(login) || strings.ContainsFunc(login, unicode.IsControl) {
		return ErrInvalidLogin
	}
	return nil
}

func validateLength(user models.User) error {
	if utf8.RuneCountInString(user.Login) > MaxLoginLength {
		return ErrLoginTooLong
	}
	if len(user.Password) > MaxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}
