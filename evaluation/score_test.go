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
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-rouge-eval/internal/rouge"
	"trpc.group/trpc-go/trpc-rouge-eval/table"
)

func pairTable(t *testing.T, pairs ...[2]table.Cell) *table.Table {
	t.Helper()
	tbl := table.New("Reference Summary", "Gold Standard")
	for _, p := range pairs {
		require.NoError(t, tbl.AppendRow(p[1], p[0]))
	}
	return tbl
}

func text(candidate, reference string) [2]table.Cell {
	return [2]table.Cell{table.StringCell(candidate), table.StringCell(reference)}
}

func TestScoreRows_PreservesOrder(t *testing.T) {
	pairs := [][2]string{
		{"the cat sat", "the cat sat"},
		{"the cat sat", "a dog ran"},
		{"one two three four", "one two"},
		{"alpha", "alpha beta gamma delta"},
	}
	var cells [][2]table.Cell
	for _, p := range pairs {
		cells = append(cells, text(p[0], p[1]))
	}
	e := newEvaluator(t)
	records, err := e.ScoreRows(context.Background(), pairTable(t, cells...))
	require.NoError(t, err)
	require.Len(t, records, len(pairs))

	for i, p := range pairs {
		want, err := e.scorer.Score(context.Background(), p[1], p[0])
		require.NoError(t, err)
		assert.Equal(t, i, records[i].Row)
		assert.Equal(t, want, records[i].Scores, "row %d", i)
		assert.True(t, records[i].Passed())
	}
}

func TestScoreRows_CandidateIsPrediction(t *testing.T) {
	records, err := newEvaluator(t).ScoreRows(context.Background(),
		pairTable(t, text("one two three four", "one two")))
	require.NoError(t, err)
	s := records[0].Scores[rouge.Rouge1]
	assert.InDelta(t, 0.5, s.Precision, 1e-12)
	assert.InDelta(t, 1.0, s.Recall, 1e-12)
}

func TestScoreRows_Errors(t *testing.T) {
	tests := []struct {
		name   string
		tbl    func(t *testing.T) *table.Table
		target error
	}{
		{
			name: "number cell",
			tbl: func(t *testing.T) *table.Table {
				return pairTable(t, [2]table.Cell{table.NumberCell(3), table.StringCell("x")})
			},
			target: table.ErrTypeMismatch,
		},
		{
			name: "empty reference",
			tbl: func(t *testing.T) *table.Table {
				return pairTable(t, [2]table.Cell{table.StringCell("x"), {}})
			},
			target: table.ErrTypeMismatch,
		},
		{
			name: "missing candidate column",
			tbl: func(t *testing.T) *table.Table {
				return table.New("Reference Summary", "Notes")
			},
			target: table.ErrSchemaMismatch,
		},
		{
			name: "missing reference column",
			tbl: func(t *testing.T) *table.Table {
				return table.New("Gold Standard")
			},
			target: table.ErrSchemaMismatch,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newEvaluator(t).ScoreRows(context.Background(), tt.tbl(t))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), err.Error())
		})
	}
}

func TestScoreRows_StopsOnFirstBadRow(t *testing.T) {
	tbl := pairTable(t,
		text("the cat sat", "the cat sat"),
		[2]table.Cell{table.BoolCell(true), table.StringCell("x")},
		text("the cat sat", "the cat sat"),
	)
	records, err := newEvaluator(t).ScoreRows(context.Background(), tbl)
	require.Error(t, err)
	assert.Nil(t, records)
	assert.Contains(t, err.Error(), "row 1")
}

func TestScoreRows_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newEvaluator(t).ScoreRows(ctx, pairTable(t, text("a", "a")))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestScoreRows_Thresholds(t *testing.T) {
	e := newEvaluator(t, WithThresholds(map[rouge.Type]rouge.Score{
		rouge.Rouge2: {Recall: 0.5},
		rouge.RougeL: {F1: 0.9},
	}))
	records, err := e.ScoreRows(context.Background(), pairTable(t,
		text("the cat sat", "the cat sat"),
		text("the cat", "the cat sat on the mat"),
		text("the cat sat", "a dog ran"),
	))
	require.NoError(t, err)
	assert.Empty(t, records[0].Failed)
	assert.Equal(t, []rouge.Type{rouge.Rouge2, rouge.RougeL}, records[1].Failed)
	assert.Equal(t, []rouge.Type{rouge.Rouge2, rouge.RougeL}, records[2].Failed)
	assert.Equal(t, 2, summarize(records, e.Types()).FailedRows)
}

func TestColumnNames(t *testing.T) {
	assert.Equal(t, nineColumns, ColumnNames(rouge.DefaultTypes))
	assert.Equal(t, []string{"R3P", "R3R", "R3F1", "RLsumP", "RLsumR", "RLsumF1"},
		ColumnNames([]rouge.Type{"rouge3", rouge.RougeLsum}))
}

func TestAppendScores(t *testing.T) {
	tbl := pairTable(t, text("a", "a"), text("b", "c"))
	records := []RowScores{
		{Row: 0, Scores: map[rouge.Type]rouge.Score{rouge.Rouge1: {Precision: 1, Recall: 0.5, F1: 2.0 / 3.0}}},
		{Row: 1, Scores: map[rouge.Type]rouge.Score{rouge.Rouge1: {}}},
	}
	require.NoError(t, AppendScores(tbl, records, []rouge.Type{rouge.Rouge1}))
	assert.Equal(t, []string{"Reference Summary", "Gold Standard", "R1P", "R1R", "R1F1"}, tbl.Columns)
	assert.Equal(t, table.NumberCell(0.5), tbl.Rows[0][3])
	assert.Equal(t, table.NumberCell(0), tbl.Rows[1][4])
}

func TestAppendScores_Errors(t *testing.T) {
	one := []RowScores{{Scores: map[rouge.Type]rouge.Score{rouge.Rouge1: {}}}}
	tests := []struct {
		name    string
		tbl     func(t *testing.T) *table.Table
		records []RowScores
	}{
		{"nil table", func(*testing.T) *table.Table { return nil }, nil},
		{"record count", func(t *testing.T) *table.Table { return pairTable(t) }, one},
		{"missing score", func(t *testing.T) *table.Table { return pairTable(t, text("a", "b")) },
			[]RowScores{{Scores: map[rouge.Type]rouge.Score{}}}},
		{"existing column", func(t *testing.T) *table.Table {
			tbl := pairTable(t, text("a", "b"))
			require.NoError(t, tbl.AppendColumn("R1F1", []table.Cell{table.NumberCell(1)}))
			return tbl
		}, one},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := tt.tbl(t)
			var before []string
			if tbl != nil {
				before = append(before, tbl.Columns...)
			}
			err := AppendScores(tbl, tt.records, []rouge.Type{rouge.Rouge1})
			require.Error(t, err)
			assert.True(t, errors.Is(err, table.ErrSchemaMismatch))
			if tbl != nil {
				assert.Equal(t, before, tbl.Columns)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	types := []rouge.Type{rouge.Rouge1}
	empty := summarize(nil, types)
	assert.Equal(t, 0, empty.Rows)
	assert.Equal(t, rouge.Score{}, empty.Means[rouge.Rouge1])

	records := make([]RowScores, 0, 4)
	for i := 0; i < 4; i++ {
		v := float64(i) / 4
		records = append(records, RowScores{
			Row:    i,
			Scores: map[rouge.Type]rouge.Score{rouge.Rouge1: {Precision: v, Recall: 1 - v, F1: v}},
		})
	}
	records[3].Failed = []rouge.Type{rouge.Rouge1}
	s := summarize(records, types)
	assert.Equal(t, 4, s.Rows)
	assert.Equal(t, 1, s.FailedRows)
	m := s.Means[rouge.Rouge1]
	assert.InDelta(t, 0.375, m.Precision, 1e-12, fmt.Sprint(m))
	assert.InDelta(t, 0.625, m.Recall, 1e-12)
	assert.InDelta(t, 0.375, m.F1, 1e-12)
}
