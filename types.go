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

// A Language selects the localization used for sheet fields.
type Language string

// Languages known to the service.
const (
	Japanese           Language = "ja"
	English            Language = "en"
	German             Language = "de"
	French             Language = "fr"
	ChineseSimplified  Language = "chs"
	ChineseTraditional Language = "cht"
	Korean             Language = "kr"
)

// A Row holds one row read from a sheet.  Fields holds the decoded
// field tree keyed by field name.  Transient holds fields read from
// the sheet's transient row, if any were requested.
type Row struct {
	// Schema identifies the schema the fields were read with.  It is
	// only set on rows fetched individually.
	Schema string `json:"schema"`
	RowID  int    `json:"row_id"`
	// SubrowID is set for rows of sheets with subrows.
	SubrowID  *int           `json:"subrow_id"`
	Fields    map[string]any `json:"fields"`
	Transient map[string]any `json:"transient"`
}

// A Version is a game version known to the service.  A version may be
// addressed by any of its names, e.g. in Query.Version.
type Version struct {
	Names []string `json:"names"`
}
