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

package main

import (
	"reflect"
	"testing"

	"go.felesatra.moe/xivapi"
)

func TestSplitFilter(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		field string
		op    xivapi.Operator
		value string
		ok    bool
	}{
		{"Name~Steak", "Name", xivapi.OpMatch, "Steak", true},
		{"IsUntradable=false", "IsUntradable", xivapi.OpEqual, "false", true},
		{"LevelItem>=50", "LevelItem", xivapi.OpGreaterOrEqual, "50", true},
		{"LevelItem<=50", "LevelItem", xivapi.OpLessOrEqual, "50", true},
		{"Rarity>2", "Rarity", xivapi.OpGreater, "2", true},
		{"Rarity<2", "Rarity", xivapi.OpLess, "2", true},
		{"Name~", "Name", xivapi.OpMatch, "", true},
		{"Name", "", "", "", false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			field, op, value, ok := splitFilter(tc.input)
			if field != tc.field || op != tc.op || value != tc.value || ok != tc.ok {
				t.Errorf("splitFilter(%q) = %q, %q, %q, %v; want %q, %q, %q, %v",
					tc.input, field, op, value, ok, tc.field, tc.op, tc.value, tc.ok)
			}
		})
	}
}

func TestParseValue(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  any
	}{
		{"true", true},
		{"false", false},
		{"50", 50},
		{"1.5", 1.5},
		{"Steak", "Steak"},
		{"", ""},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			if got := parseValue(tc.input); got != tc.want {
				t.Errorf("parseValue(%q) = %#v; want %#v", tc.input, got, tc.want)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"Name", []string{"Name"}},
		{"Name,Description", []string{"Name", "Description"}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			if got := splitList(tc.input); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("splitList(%q) = %#v; want %#v", tc.input, got, tc.want)
			}
		})
	}
}
