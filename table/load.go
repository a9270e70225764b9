//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//

package table

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Load reads the table stored at path. The first row is the header; column
// and row order are preserved. The format is chosen by extension: .xlsx and
// .xlsm are read as workbooks, .csv and .tsv as delimited text.
//
// A missing file yields an error wrapping ErrFileNotFound. Cell values are
// not validated.
func Load(ctx context.Context, path string, opt ...Option) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	f, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	opts := newOptions(opt...)
	if f == formatXLSX {
		return loadXLSX(path, opts.sheet)
	}
	return loadDelimited(path, f.comma())
}

// build assembles a table from a raw header and data rows, widening the
// header to the longest row and padding short rows with empty cells.
func build(rawHeader []string, rows [][]Cell) *Table {
	width := len(rawHeader)
	for _, r := range rows {
		width = max(width, len(r))
	}
	t := &Table{Columns: header(rawHeader, width), Rows: make([][]Cell, 0, len(rows))}
	for _, r := range rows {
		row := make([]Cell, width)
		copy(row, r)
		t.Rows = append(t.Rows, row)
	}
	return t
}
