// Copyright (C) 2025 Allen Li
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package xivapi

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrRateLimited is returned when the service rejects a request for
// exceeding its rate limits.
// Use errors.Is to check for it.
var ErrRateLimited = errors.New("rate limit exceeded")

// ErrInvalidResponse is returned when a response body cannot be
// decoded.
// Use errors.Is to check for it.
var ErrInvalidResponse = errors.New("invalid response format")

// A StatusError is returned when a request fails with an unexpected
// HTTP status.
// Use errors.As to inspect the status code.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Bad status %d", e.Code)
}

// checkStatus maps a response status to the error kind surfaced to
// the caller.
func checkStatus(code int) error {
	switch code {
	case http.StatusOK:
		return nil
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return &StatusError{Code: code}
	}
}
