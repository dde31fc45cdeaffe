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
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// SearchResults holds one page of search results.
type SearchResults struct {
	// Schema identifies the schema the results were read with.
	Schema  string         `json:"schema"`
	Results []SearchResult `json:"results"`
	// Next is the cursor for the next page of results, if any.
	// Pass it to Client.SearchAfter.
	Next string `json:"next"`
}

// A SearchResult is a row matched by a search, with its relevance
// score.
type SearchResult struct {
	Score float64 `json:"score"`
	Sheet string  `json:"sheet"`
	RowID int     `json:"row_id"`
	// SubrowID is set for results from sheets with subrows.
	SubrowID  *int           `json:"subrow_id"`
	Fields    map[string]any `json:"fields"`
	Transient map[string]any `json:"transient"`
}

// Search searches sheets for rows matching a query.
// The query must name at least one sheet.
// Results beyond the page limit are read with SearchAfter.
func (c *Client) Search(ctx context.Context, q *Query) (*SearchResults, error) {
	if q == nil || len(q.sheets) == 0 {
		return nil, errors.New("xivapi: search: no sheets given")
	}
	var r SearchResults
	if err := c.get(ctx, "/search", q.values(), &r); err != nil {
		return nil, fmt.Errorf("xivapi: search: %w", err)
	}
	return &r, nil
}

// SearchAfter continues a search from the cursor of an earlier page
// of results.
// The service keeps the original query; a limit of 0 means the
// service default.
func (c *Client) SearchAfter(ctx context.Context, cursor string, limit int) (*SearchResults, error) {
	if cursor == "" {
		return nil, errors.New("xivapi: search: no cursor given")
	}
	v := url.Values{}
	v.Set("cursor", cursor)
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	var r SearchResults
	if err := c.get(ctx, "/search", v, &r); err != nil {
		return nil, fmt.Errorf("xivapi: search: %w", err)
	}
	return &r, nil
}
