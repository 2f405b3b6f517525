// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnauthorized      = errors.New("client unauthorized")
	ErrMalformedResponse = errors.New("malformed response")
)

// TransportError means the request never produced an HTTP response
// (connection refused, timeout, cancelled context).
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s request: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ApplicationError is a non-2xx HTTP response. Body holds the trimmed
// response body, which may be empty; RawBody is the body as received.
type ApplicationError struct {
	Op         string
	StatusCode int
	Body       string
	RawBody    string
}

func (e *ApplicationError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: http %d: %s", e.Op, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("%s: http %d: %s", e.Op, e.StatusCode, e.Body)
}

// Is reports 401 responses as [ErrUnauthorized].
func (e *ApplicationError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}
