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
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// An Operator compares a field with a filter value.
type Operator string

// Operators accepted by search filters.
const (
	// OpEqual matches fields equal to the value.
	OpEqual Operator = "="
	// OpMatch matches string fields containing the value.
	OpMatch Operator = "~"

	OpGreater        Operator = ">"
	OpLess           Operator = "<"
	OpGreaterOrEqual Operator = ">="
	OpLessOrEqual    Operator = "<="
)

// A queryTerm is one term of a search query, either a single filter
// or a filter group.
type queryTerm interface {
	build() string
}

// A filter matches one field against a value.
// Values may be strings, bools, ints, or floats.
type filter struct {
	field string
	op    Operator
	value any
}

func (f filter) build() string {
	return f.field + string(f.op) + formatValue(f.value)
}

// formatValue renders a filter value the way the service parses it:
// strings are double quoted with embedded quotes written as %22,
// bools are lowercase, and numbers are bare.
func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return `"` + strings.ReplaceAll(v, `"`, "%22") + `"`
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}

// A clause is a query term with its include or exclude marker.
type clause struct {
	term    queryTerm
	exclude bool
}

func (c clause) build() string {
	if c.exclude {
		return "-" + c.term.build()
	}
	return "+" + c.term.build()
}

// A FilterGroup is a parenthesized group of filters matched as a
// unit.  Methods return the receiver so calls can be chained.
type FilterGroup struct {
	clauses []clause
}

// NewFilterGroup makes a new FilterGroup.
func NewFilterGroup() *FilterGroup {
	return &FilterGroup{}
}

// Filter adds a filter that rows must match.
func (g *FilterGroup) Filter(field string, op Operator, value any) *FilterGroup {
	g.clauses = append(g.clauses, clause{term: filter{field, op, value}})
	return g
}

// Exclude adds a filter that rows must not match.
func (g *FilterGroup) Exclude(field string, op Operator, value any) *FilterGroup {
	g.clauses = append(g.clauses, clause{term: filter{field, op, value}, exclude: true})
	return g
}

func (g *FilterGroup) build() string {
	parts := make([]string, len(g.clauses))
	for i, c := range g.clauses {
		parts[i] = c.build()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// A Query describes a sheet search for Client.Search.
// Make one with NewQuery.  Methods return the receiver so calls can
// be chained.
type Query struct {
	sheets     []string
	fields     []string
	transients []string
	clauses    []clause
	limit      int
	version    string
	language   Language
	schema     string
}

// NewQuery makes a Query searching the named sheets.
func NewQuery(sheets ...string) *Query {
	return &Query{sheets: sheets}
}

// Sheets adds sheets to search.
func (q *Query) Sheets(sheets ...string) *Query {
	q.sheets = append(q.sheets, sheets...)
	return q
}

// Fields adds fields to read for each result.
// If no fields are added, the service picks a default set.
func (q *Query) Fields(fields ...string) *Query {
	q.fields = append(q.fields, fields...)
	return q
}

// Transients adds fields to read from each result's transient row.
func (q *Query) Transients(fields ...string) *Query {
	q.transients = append(q.transients, fields...)
	return q
}

// Filter adds a filter that results must match.
func (q *Query) Filter(field string, op Operator, value any) *Query {
	q.clauses = append(q.clauses, clause{term: filter{field, op, value}})
	return q
}

// Exclude adds a filter that results must not match.
func (q *Query) Exclude(field string, op Operator, value any) *Query {
	q.clauses = append(q.clauses, clause{term: filter{field, op, value}, exclude: true})
	return q
}

// Group adds a filter group that results must match.
func (q *Query) Group(g *FilterGroup) *Query {
	q.clauses = append(q.clauses, clause{term: g})
	return q
}

// ExcludeGroup adds a filter group that results must not match.
func (q *Query) ExcludeGroup(g *FilterGroup) *Query {
	q.clauses = append(q.clauses, clause{term: g, exclude: true})
	return q
}

// Limit caps the number of results returned in one page.
func (q *Query) Limit(n int) *Query {
	q.limit = n
	return q
}

// Version sets the game version to search.
func (q *Query) Version(v string) *Query {
	q.version = v
	return q
}

// Language sets the localization results are read with.
func (q *Query) Language(l Language) *Query {
	q.language = l
	return q
}

// Schema sets the schema results are read with.
func (q *Query) Schema(s string) *Query {
	q.schema = s
	return q
}

func (q *Query) values() url.Values {
	v := url.Values{}
	v.Set("sheets", strings.Join(q.sheets, ","))
	if len(q.fields) > 0 {
		v.Set("fields", strings.Join(q.fields, ","))
	}
	if len(q.transients) > 0 {
		v.Set("transient", strings.Join(q.transients, ","))
	}
	if len(q.clauses) > 0 {
		parts := make([]string, len(q.clauses))
		for i, c := range q.clauses {
			parts[i] = c.build()
		}
		v.Set("query", strings.Join(parts, " "))
	}
	if q.limit > 0 {
		v.Set("limit", strconv.Itoa(q.limit))
	}
	if q.version != "" {
		v.Set("version", q.version)
	}
	if q.language != "" {
		v.Set("language", string(q.language))
	}
	if q.schema != "" {
		v.Set("schema", q.schema)
	}
	return v
}
