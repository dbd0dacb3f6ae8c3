/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cli

import (
	"regexp"
	"strings"
)

// delimiter matches the horizontal rules of an ASCII table.
var delimiter = regexp.MustCompile(`^\+-[+-]+-\+$`)

// Cell is a table cell, cells spanning several output lines have one entry
// per non-empty line.
type Cell []string

func (c Cell) String() string {
	return strings.Join(c, "\n")
}

// IsTable reports whether the cell holds a nested table.
func (c Cell) IsTable() bool {
	return len(c) > 3 && strings.HasPrefix(c[0], "+") && strings.HasPrefix(c[len(c)-1], "+")
}

// Table parses a nested table, grouping rows by its id column.
func (c Cell) Table() *Table {
	return MergeMultiLineRows(ParseTable(c.String()), -1)
}

// Table is a parsed CLI table.
type Table struct {
	Headers []string
	Rows    [][]Cell
}

// Column returns the index of the named column, ignoring case, or -1.
func (t *Table) Column(name string) int {
	for i, header := range t.Headers {
		if strings.EqualFold(header, name) {
			return i
		}
	}

	return -1
}

// ParseTable reads a table as printed by the OpenStack CLIs.  The first row
// is taken as the headers, column boundaries come from the most recent
// delimiter line and lines without a column separator are ignored.
func ParseTable(output string) *Table {
	t := &Table{}

	var columns [][2]int

	for _, line := range strings.Split(strings.TrimSuffix(output, "\n"), "\n") {
		line = strings.TrimRight(line, "\r")

		if delimiter.MatchString(line) {
			columns = tableColumns(line)

			continue
		}

		if columns == nil || !strings.Contains(line, "|") {
			continue
		}

		runes := []rune(line)

		row := make([]Cell, len(columns))

		for i, column := range columns {
			row[i] = newCell(slice(runes, column[0], column[1]))
		}

		if t.Headers == nil {
			t.Headers = make([]string, len(row))

			for i := range row {
				t.Headers[i] = row[i].String()
			}

			continue
		}

		t.Rows = append(t.Rows, row)
	}

	return t
}

func tableColumns(line string) [][2]int {
	runes := []rune(line)

	var columns [][2]int

	// Position 0 is always a '+'.
	for start := 1; start < len(runes); {
		end := -1

		for i := start; i < len(runes); i++ {
			if runes[i] == '+' {
				end = i
				break
			}
		}

		if end == -1 {
			break
		}

		columns = append(columns, [2]int{start, end})
		start = end + 1
	}

	return columns
}

func slice(runes []rune, start, end int) string {
	if start > len(runes) {
		return ""
	}

	if end > len(runes) {
		end = len(runes)
	}

	return strings.TrimSpace(string(runes[start:end]))
}

func newCell(value string) Cell {
	if value == "" {
		return Cell{}
	}

	return Cell{value}
}

// MergeMultiLineRows folds continuation lines into the row above.  A row is
// a continuation when its groupBy column is empty, a negative groupBy uses
// the "id" column or the first column if there isn't one.  Cells that turn
// out to be nested tables may be expanded with Cell.Table.
func MergeMultiLineRows(t *Table, groupBy int) *Table {
	if groupBy < 0 {
		groupBy = max(t.Column("id"), 0)
	}

	rows := make([][]Cell, 0, len(t.Rows))

	for _, row := range t.Rows {
		n := len(rows)

		if n == 0 || groupBy >= len(row) || len(row[groupBy]) != 0 || isEmptyRow(row) {
			rows = append(rows, row)

			continue
		}

		previous := rows[n-1]

		for i := range previous {
			if i < len(row) {
				previous[i] = append(previous[i], row[i]...)
			}
		}
	}

	return &Table{
		Headers: t.Headers,
		Rows:    rows,
	}
}

func isEmptyRow(row []Cell) bool {
	for _, cell := range row {
		if len(cell) != 0 {
			return false
		}
	}

	return true
}

// Listing returns each row of a listing as a map from header to value,
// multi-line values are newline separated.
func Listing(output string) []map[string]string {
	t := MergeMultiLineRows(ParseTable(output), 0)

	items := make([]map[string]string, 0, len(t.Rows))

	for _, row := range t.Rows {
		item := map[string]string{}

		for i, header := range t.Headers {
			if i < len(row) {
				item[header] = row[i].String()
			}
		}

		items = append(items, item)
	}

	return items
}

// Details returns a Property/Value table as a map, multi-line values are
// newline separated.
func Details(output string) map[string]string {
	t := MergeMultiLineRows(ParseTable(output), 0)

	properties := map[string]string{}

	for _, row := range t.Rows {
		if len(row) < 2 {
			continue
		}

		properties[row[0].String()] = row[1].String()
	}

	return properties
}
