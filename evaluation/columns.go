//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package evaluation

import (
	"fmt"
	"strings"

	"trpc.group/trpc-go/trpc-rouge-eval/internal/rouge"
	"trpc.group/trpc-go/trpc-rouge-eval/table"
)

// Column suffixes, appended in this order for every type.
const (
	SuffixPrecision = "P"
	SuffixRecall    = "R"
	SuffixF1        = "F1"
)

// columnSpec names one output column and selects its value from a Score.
type columnSpec struct {
	name  string
	typ   rouge.Type
	value func(rouge.Score) float64
}

// ColumnName returns the output column header for typ and suffix, for
// example "R1P" for rouge1 precision or "RLF1" for rougeL F1.
func ColumnName(typ rouge.Type, suffix string) string {
	return "R" + strings.TrimPrefix(string(typ), "rouge") + suffix
}

// ColumnNames returns the headers AppendScores adds for types, metric-major.
func ColumnNames(types []rouge.Type) []string {
	specs := columnSpecs(types)
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.name
	}
	return names
}

func columnSpecs(types []rouge.Type) []columnSpec {
	specs := make([]columnSpec, 0, 3*len(types))
	for _, typ := range types {
		specs = append(specs,
			columnSpec{ColumnName(typ, SuffixPrecision), typ, func(s rouge.Score) float64 { return s.Precision }},
			columnSpec{ColumnName(typ, SuffixRecall), typ, func(s rouge.Score) float64 { return s.Recall }},
			columnSpec{ColumnName(typ, SuffixF1), typ, func(s rouge.Score) float64 { return s.F1 }},
		)
	}
	return specs
}

// AppendScores adds three numeric columns per type to tbl, one value per
// record. records must hold one entry per row in row order and every record
// must carry a score for every type.
func AppendScores(tbl *table.Table, records []RowScores, types []rouge.Type) error {
	if tbl == nil {
		return fmt.Errorf("%w: table is nil", table.ErrSchemaMismatch)
	}
	if len(records) != tbl.Len() {
		return fmt.Errorf("%w: %d records for %d rows", table.ErrSchemaMismatch, len(records), tbl.Len())
	}
	for i, rec := range records {
		for _, typ := range types {
			if _, ok := rec.Scores[typ]; !ok {
				return fmt.Errorf("%w: row %d has no %s score", table.ErrSchemaMismatch, i, typ)
			}
		}
	}
	specs := columnSpecs(types)
	for _, col := range specs {
		if _, err := tbl.ColumnIndex(col.name); err == nil {
			return fmt.Errorf("%w: column %q already exists", table.ErrSchemaMismatch, col.name)
		}
	}
	for _, col := range specs {
		values := make([]table.Cell, len(records))
		for i, rec := range records {
			values[i] = table.NumberCell(col.value(rec.Scores[col.typ]))
		}
		if err := tbl.AppendColumn(col.name, values); err != nil {
			return err
		}
	}
	return nil
}
