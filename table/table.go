//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//

// Package table loads row-oriented tables from spreadsheet files and writes
// them back. A Table only grows by appending whole columns.
package table

import (
	"fmt"
	"strconv"
)

// CellKind is the type of value held by a Cell.
type CellKind int

// Cell kinds.
const (
	// CellEmpty is a missing or blank cell.
	CellEmpty CellKind = iota
	// CellString holds text.
	CellString
	// CellNumber holds a float64.
	CellNumber
	// CellBool holds a boolean.
	CellBool
)

// String implements fmt.Stringer.
func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellString:
		return "string"
	case CellNumber:
		return "number"
	case CellBool:
		return "bool"
	default:
		return "CellKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Cell is a single typed table value.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
	Bool   bool
}

// StringCell returns a text cell.
func StringCell(s string) Cell { return Cell{Kind: CellString, Text: s} }

// NumberCell returns a numeric cell.
func NumberCell(v float64) Cell { return Cell{Kind: CellNumber, Number: v} }

// BoolCell returns a boolean cell.
func BoolCell(b bool) Cell { return Cell{Kind: CellBool, Bool: b} }

// String renders the cell value as text. Empty cells render as "".
func (c Cell) String() string {
	switch c.Kind {
	case CellString:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellBool:
		if c.Bool {
			return "TRUE"
		}
		return "FALSE"
	default:
		return ""
	}
}

// value returns the cell as a Go value suitable for a spreadsheet writer.
func (c Cell) value() any {
	switch c.Kind {
	case CellString:
		return c.Text
	case CellNumber:
		return c.Number
	case CellBool:
		return c.Bool
	default:
		return nil
	}
}

// Table is an ordered list of rows sharing one header.
// Every row has exactly len(Columns) cells.
type Table struct {
	// Columns holds the header names in order. Names are unique.
	Columns []string
	// Rows holds the data rows in input order.
	Rows [][]Cell
}

// New creates an empty table with the given header.
func New(columns ...string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(name string) (int, error) {
	for i, c := range t.Columns {
		if c == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: column %q not found", ErrSchemaMismatch, name)
}

// Text returns the text in row at column col. Cells that are not strings
// yield ErrTypeMismatch.
func (t *Table) Text(row, col int) (string, error) {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Columns) {
		return "", fmt.Errorf("cell (%d, %d) out of range", row, col)
	}
	cell := t.Rows[row][col]
	if cell.Kind != CellString {
		return "", fmt.Errorf("%w: row %d column %q: expected string, got %s",
			ErrTypeMismatch, row, t.Columns[col], cell.Kind)
	}
	return cell.Text, nil
}

// AppendColumn adds a column after the existing ones. values must hold one
// cell per row and name must not already be in use.
func (t *Table) AppendColumn(name string, values []Cell) error {
	if _, err := t.ColumnIndex(name); err == nil {
		return fmt.Errorf("%w: column %q already exists", ErrSchemaMismatch, name)
	}
	if len(values) != len(t.Rows) {
		return fmt.Errorf("%w: column %q has %d values for %d rows",
			ErrSchemaMismatch, name, len(values), len(t.Rows))
	}
	t.Columns = append(t.Columns, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], values[i])
	}
	return nil
}

// AppendRow adds a data row, padding it with empty cells up to the header width.
func (t *Table) AppendRow(cells ...Cell) error {
	if len(cells) > len(t.Columns) {
		return fmt.Errorf("%w: row has %d cells for %d columns",
			ErrSchemaMismatch, len(cells), len(t.Columns))
	}
	row := make([]Cell, len(t.Columns))
	copy(row, cells)
	t.Rows = append(t.Rows, row)
	return nil
}
