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
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Sheets lists the names of the sheets available from the service.
func (c *Client) Sheets(ctx context.Context) ([]string, error) {
	var r struct {
		Sheets []struct {
			Name string `json:"name"`
		} `json:"sheets"`
	}
	if err := c.get(ctx, "/sheet", nil, &r); err != nil {
		return nil, fmt.Errorf("xivapi: list sheets: %w", err)
	}
	names := make([]string, len(r.Sheets))
	for i, s := range r.Sheets {
		names[i] = s.Name
	}
	return names, nil
}

// A RowQuery customizes how rows are read from a sheet.
// A nil RowQuery means the service defaults.
type RowQuery struct {
	// Fields selects the fields to read.  All fields are read if
	// empty.
	Fields []string
	// Transient selects fields to read from the sheet's transient
	// row.
	Transient []string
	Language  Language
	Schema    string
	Version   string
}

func (q *RowQuery) values() url.Values {
	v := url.Values{}
	if q == nil {
		return v
	}
	if len(q.Fields) > 0 {
		v.Set("fields", strings.Join(q.Fields, ","))
	}
	if len(q.Transient) > 0 {
		v.Set("transient", strings.Join(q.Transient, ","))
	}
	if q.Language != "" {
		v.Set("language", string(q.Language))
	}
	if q.Schema != "" {
		v.Set("schema", q.Schema)
	}
	if q.Version != "" {
		v.Set("version", q.Version)
	}
	return v
}

// SheetRow reads a single row from a sheet.
func (c *Client) SheetRow(ctx context.Context, sheet string, row int, q *RowQuery) (*Row, error) {
	var r Row
	p := "/sheet/" + url.PathEscape(sheet) + "/" + strconv.Itoa(row)
	if err := c.get(ctx, p, q.values(), &r); err != nil {
		return nil, fmt.Errorf("xivapi: sheet %s row %d: %w", sheet, row, err)
	}
	return &r, nil
}

// A RowsQuery customizes a listing of sheet rows.
// A nil RowsQuery means the service defaults.
type RowsQuery struct {
	RowQuery
	// Rows reads only the rows with these IDs.
	Rows []int
	// After resumes the listing after the row named by a row ID from
	// an earlier page.
	After string
	// Limit caps the number of rows returned in one page.
	Limit int
}

func (q *RowsQuery) values() url.Values {
	if q == nil {
		return url.Values{}
	}
	v := q.RowQuery.values()
	if len(q.Rows) > 0 {
		rows := make([]string, len(q.Rows))
		for i, r := range q.Rows {
			rows[i] = strconv.Itoa(r)
		}
		v.Set("rows", strings.Join(rows, ","))
	}
	if q.After != "" {
		v.Set("after", q.After)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v
}

// A RowsPage is one page of rows listed from a sheet.
// Paginate by passing the last row's ID as RowsQuery.After.
type RowsPage struct {
	Schema string `json:"schema"`
	Rows   []Row  `json:"rows"`
}

// SheetRows lists rows from a sheet.
func (c *Client) SheetRows(ctx context.Context, sheet string, q *RowsQuery) (*RowsPage, error) {
	var r RowsPage
	p := "/sheet/" + url.PathEscape(sheet)
	if err := c.get(ctx, p, q.values(), &r); err != nil {
		return nil, fmt.Errorf("xivapi: sheet %s rows: %w", sheet, err)
	}
	return &r, nil
}
