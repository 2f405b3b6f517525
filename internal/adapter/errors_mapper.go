// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(op string, resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	raw := string(resp.Body())
	return &ApplicationError{
		Op:         op,
		StatusCode: resp.StatusCode(),
		Body:       strings.TrimSpace(raw),
		RawBody:    raw,
	}
}
