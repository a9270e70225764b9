//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//

package table

import (
	"fmt"
	"path/filepath"
	"strings"
)

// format identifies an on-disk table encoding.
type format int

const (
	formatXLSX format = iota + 1
	formatCSV
	formatTSV
)

// formatOf picks the encoding from the file extension.
func formatOf(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return formatXLSX, nil
	case ".csv":
		return formatCSV, nil
	case ".tsv":
		return formatTSV, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
}

func (f format) comma() rune {
	if f == formatTSV {
		return '\t'
	}
	return ','
}

// header normalizes raw header cells: blank names become "Unnamed: <i>" and
// repeated names get a ".<k>" suffix.
func header(raw []string, width int) []string {
	cols := make([]string, width)
	used := make(map[string]bool, width)
	dups := make(map[string]int)
	for i := range cols {
		name := ""
		if i < len(raw) {
			name = strings.TrimSpace(raw[i])
		}
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		base := name
		for used[name] {
			dups[base]++
			name = fmt.Sprintf("%s.%d", base, dups[base])
		}
		used[name] = true
		cols[i] = name
	}
	return cols
}
