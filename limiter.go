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
	"context"

	"golang.org/x/time/rate"
)

// A Limiter implements rate limiting.
// The golang.org/x/time/rate package provides an implementation.
// A Limiter must be safe to use concurrently.
type Limiter interface {
	Wait(context.Context) error
}

// newLimiter makes the limiter that clients use unless configured
// otherwise.
func newLimiter() Limiter {
	// 10 per second, staying under the service's flood protection.
	return rate.NewLimiter(10, 10)
}
