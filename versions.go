// Copyright (C) 2026 Allen Li
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
	"fmt"
)

// Versions lists the game versions known to the service.
func (c *Client) Versions(ctx context.Context) ([]Version, error) {
	var r struct {
		Versions []Version `json:"versions"`
	}
	if err := c.get(ctx, "/version", nil, &r); err != nil {
		return nil, fmt.Errorf("xivapi: list versions: %w", err)
	}
	return r.Versions, nil
}
