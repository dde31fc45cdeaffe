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

// Command xivapi is a command line interface to XIVAPI.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.felesatra.moe/xdg"

	"go.felesatra.moe/xivapi"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "sheets":
		runSheets(os.Args[2:])
	case "row":
		runRow(os.Args[2:])
	case "rows":
		runRows(os.Args[2:])
	case "search":
		runSearch(os.Args[2:])
	case "versions":
		runVersions(os.Args[2:])
	case "asset":
		runAsset(os.Args[2:])
	case "map":
		runMap(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Print(`Usage:
  xivapi sheets
  xivapi row [flags] <sheet> <row>
  xivapi rows [flags] <sheet> [row...]
  xivapi search [flags] <sheets> [filter...]
  xivapi versions
  xivapi asset [flags] <path>
  xivapi map [flags] <territory> <index>

Filters look like Name~Steak, IsUntradable=false, or LevelItem>=50.
Prefix a filter with - to exclude matches.  Sheets for search may be
comma separated.  Flags go before positional arguments.
`)
}

func runSheets(args []string) {
	fs := flag.NewFlagSet("sheets", flag.ExitOnError)
	verbose := fs.Bool("v", false, "Verbose output")
	_ = fs.Parse(args)

	c := newClient(*verbose)
	sheets, err := c.Sheets(context.Background())
	if err != nil {
		fatal(err)
	}
	for _, s := range sheets {
		fmt.Println(s)
	}
}

func runRow(args []string) {
	fs := flag.NewFlagSet("row", flag.ExitOnError)
	verbose := fs.Bool("v", false, "Verbose output")
	fields := fs.String("fields", "", "Fields to read, comma separated")
	transient := fs.String("transient", "", "Transient fields to read, comma separated")
	language := fs.String("language", "", "Default language for fields")
	schema := fs.String("schema", "", "Schema to read rows with")
	version := fs.String("version", "", "Game version to read")
	_ = fs.Parse(args)
	if fs.NArg() != 2 {
		usage()
		os.Exit(2)
	}

	row, err := strconv.Atoi(fs.Arg(1))
	if err != nil {
		fatal(errors.Wrap(err, "parse row ID"))
	}
	c := newClient(*verbose)
	q := &xivapi.RowQuery{
		Fields:    splitList(*fields),
		Transient: splitList(*transient),
		Language:  xivapi.Language(*language),
		Schema:    *schema,
		Version:   *version,
	}
	r, err := c.SheetRow(context.Background(), fs.Arg(0), row, q)
	if err != nil {
		fatal(err)
	}
	printJSON(r)
}

func runRows(args []string) {
	fs := flag.NewFlagSet("rows", flag.ExitOnError)
	verbose := fs.Bool("v", false, "Verbose output")
	fields := fs.String("fields", "", "Fields to read, comma separated")
	transient := fs.String("transient", "", "Transient fields to read, comma separated")
	language := fs.String("language", "", "Default language for fields")
	schema := fs.String("schema", "", "Schema to read rows with")
	version := fs.String("version", "", "Game version to read")
	after := fs.String("after", "", "Return rows after this row ID")
	limit := fs.Int("limit", 0, "Maximum number of rows")
	_ = fs.Parse(args)
	if fs.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	var rows []int
	for _, a := range fs.Args()[1:] {
		n, err := strconv.Atoi(a)
		if err != nil {
			fatal(errors.Wrap(err, "parse row ID"))
		}
		rows = append(rows, n)
	}
	c := newClient(*verbose)
	q := &xivapi.RowsQuery{
		RowQuery: xivapi.RowQuery{
			Fields:    splitList(*fields),
			Transient: splitList(*transient),
			Language:  xivapi.Language(*language),
			Schema:    *schema,
			Version:   *version,
		},
		Rows:  rows,
		After: *after,
		Limit: *limit,
	}
	p, err := c.SheetRows(context.Background(), fs.Arg(0), q)
	if err != nil {
		fatal(err)
	}
	printJSON(p)
}

func runSearch(args []string) {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	verbose := fs.Bool("v", false, "Verbose output")
	fields := fs.String("fields", "", "Fields to read, comma separated")
	transient := fs.String("transient", "", "Transient fields to read, comma separated")
	language := fs.String("language", "", "Default language for fields")
	schema := fs.String("schema", "", "Schema to read rows with")
	version := fs.String("version", "", "Game version to search")
	limit := fs.Int("limit", 0, "Maximum number of results")
	cursor := fs.String("cursor", "", "Continue a search from this cursor")
	_ = fs.Parse(args)

	c := newClient(*verbose)
	if *cursor != "" {
		r, err := c.SearchAfter(context.Background(), *cursor, *limit)
		if err != nil {
			fatal(err)
		}
		printJSON(r)
		return
	}
	if fs.NArg() < 1 {
		usage()
		os.Exit(2)
	}
	q := xivapi.NewQuery(splitList(fs.Arg(0))...).
		Fields(splitList(*fields)...).
		Transients(splitList(*transient)...).
		Language(xivapi.Language(*language)).
		Schema(*schema).
		Version(*version).
		Limit(*limit)
	for _, a := range fs.Args()[1:] {
		if err := addFilter(q, a); err != nil {
			fatal(err)
		}
	}
	r, err := c.Search(context.Background(), q)
	if err != nil {
		fatal(err)
	}
	printJSON(r)
}

func runVersions(args []string) {
	fs := flag.NewFlagSet("versions", flag.ExitOnError)
	verbose := fs.Bool("v", false, "Verbose output")
	_ = fs.Parse(args)

	c := newClient(*verbose)
	versions, err := c.Versions(context.Background())
	if err != nil {
		fatal(err)
	}
	for _, v := range versions {
		fmt.Println(strings.Join(v.Names, " "))
	}
}

func runAsset(args []string) {
	fs := flag.NewFlagSet("asset", flag.ExitOnError)
	verbose := fs.Bool("v", false, "Verbose output")
	format := fs.String("format", "png", "Format to convert the asset to")
	out := fs.String("o", "", "Output file (defaults to the asset name under the XDG data dir)")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	c := newClient(*verbose)
	d, err := c.Asset(context.Background(), fs.Arg(0), *format)
	if err != nil {
		fatal(err)
	}
	p := *out
	if p == "" {
		p = defaultAssetPath(fs.Arg(0), *format)
	}
	if err := writeFile(p, d); err != nil {
		fatal(err)
	}
	fmt.Println(p)
}

func runMap(args []string) {
	fs := flag.NewFlagSet("map", flag.ExitOnError)
	verbose := fs.Bool("v", false, "Verbose output")
	out := fs.String("o", "", "Output file (defaults to the map name under the XDG data dir)")
	_ = fs.Parse(args)
	if fs.NArg() != 2 {
		usage()
		os.Exit(2)
	}

	c := newClient(*verbose)
	d, err := c.MapAsset(context.Background(), fs.Arg(0), fs.Arg(1))
	if err != nil {
		fatal(err)
	}
	p := *out
	if p == "" {
		name := fmt.Sprintf("map-%s-%s.jpg", fs.Arg(0), fs.Arg(1))
		p = filepath.Join(dataDir, name)
	}
	if err := writeFile(p, d); err != nil {
		fatal(err)
	}
	fmt.Println(p)
}

func newClient(verbose bool) *xivapi.Client {
	var o []xivapi.Option
	if verbose {
		o = append(o, xivapi.UseLogger(log.New(os.Stderr, "", log.LstdFlags)))
	}
	return xivapi.NewClient(o...)
}

// addFilter parses a filter argument like Name~Steak or -Rarity>=2 and
// adds it to the query.
func addFilter(q *xivapi.Query, s string) error {
	arg := strings.TrimPrefix(s, "-")
	field, op, value, ok := splitFilter(arg)
	if !ok || field == "" {
		return errors.Errorf("bad filter %q", s)
	}
	if arg != s {
		q.Exclude(field, op, parseValue(value))
	} else {
		q.Filter(field, op, parseValue(value))
	}
	return nil
}

func splitFilter(s string) (field string, op xivapi.Operator, value string, ok bool) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '>', '<':
			if i+1 < len(s) && s[i+1] == '=' {
				return s[:i], xivapi.Operator(s[i : i+2]), s[i+2:], true
			}
			return s[:i], xivapi.Operator(s[i : i+1]), s[i+1:], true
		case '=', '~':
			return s[:i], xivapi.Operator(s[i : i+1]), s[i+1:], true
		}
	}
	return "", "", "", false
}

func parseValue(s string) any {
	if s == "true" || s == "false" {
		return s == "true"
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

var dataDir = filepath.Join(xdg.DataHome(), "go.felesatra.moe_xivapi")

func defaultAssetPath(path, format string) string {
	name := filepath.Base(path)
	if format != "" {
		name = strings.TrimSuffix(name, filepath.Ext(name)) + "." + format
	}
	return filepath.Join(dataDir, name)
}

func writeFile(p string, d []byte) error {
	if err := os.MkdirAll(filepath.Dir(p), 0o777); err != nil {
		return errors.Wrap(err, "write file")
	}
	if err := os.WriteFile(p, d, 0o666); err != nil {
		return errors.Wrap(err, "write file")
	}
	return nil
}

func printJSON(v any) {
	d, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatal(err)
	}
	os.Stdout.Write(append(d, '\n'))
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
