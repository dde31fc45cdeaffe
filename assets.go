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
	"net/url"
)

// Asset reads the game asset at a game file path, converted to the
// given format, e.g. "png" for texture files.
// If format is empty, the service picks a format for the file type.
func (c *Client) Asset(ctx context.Context, path, format string) ([]byte, error) {
	v := url.Values{}
	v.Set("path", path)
	if format != "" {
		v.Set("format", format)
	}
	d, err := c.getRaw(ctx, "/asset", v)
	if err != nil {
		return nil, fmt.Errorf("xivapi: asset %s: %w", path, err)
	}
	return d, nil
}

// MapAsset reads the composed map image for a territory, e.g.
// territory "s1d1" index "00".
func (c *Client) MapAsset(ctx context.Context, territory, index string) ([]byte, error) {
	p := "/asset/map/" + url.PathEscape(territory) + "/" + url.PathEscape(index)
	d, err := c.getRaw(ctx, p, nil)
	if err != nil {
		return nil, fmt.Errorf("xivapi: map asset %s/%s: %w", territory, index, err)
	}
	return d, nil
}
