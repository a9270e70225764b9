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
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"trpc.group/trpc-go/trpc-rouge-eval/internal/rouge"
	"trpc.group/trpc-go/trpc-rouge-eval/internal/telemetry"
	"trpc.group/trpc-go/trpc-rouge-eval/log"
	"trpc.group/trpc-go/trpc-rouge-eval/table"
)

// RowScores holds every ROUGE score computed for one table row.
type RowScores struct {
	Row    int                        `json:"row"`    // Row is the zero based data row index.
	Scores map[rouge.Type]rouge.Score `json:"scores"` // Scores maps each computed type to its triple.
	Failed []rouge.Type               `json:"failed"` // Failed lists the types whose scores fall below a threshold.
}

// Passed reports whether the row met every configured threshold.
func (r RowScores) Passed() bool {
	return len(r.Failed) == 0
}

// ScoreRows scores every row of tbl in order. The candidate column is the
// prediction and the reference column the target. A row whose cells are not
// text aborts the batch with table.ErrTypeMismatch.
func (e *Evaluator) ScoreRows(ctx context.Context, tbl *table.Table) ([]RowScores, error) {
	ctx, span := telemetry.Tracer.Start(ctx, telemetry.SpanNameScore)
	defer span.End()
	records, err := e.scoreRows(ctx, tbl)
	if err != nil {
		telemetry.TraceError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int(telemetry.KeyRowCount, len(records)))
	return records, nil
}

func (e *Evaluator) scoreRows(ctx context.Context, tbl *table.Table) ([]RowScores, error) {
	if tbl == nil {
		return nil, errors.New("table is nil")
	}
	candCol, err := tbl.ColumnIndex(e.candidateColumn)
	if err != nil {
		return nil, err
	}
	refCol, err := tbl.ColumnIndex(e.referenceColumn)
	if err != nil {
		return nil, err
	}
	types := e.scorer.Types()
	records := make([]RowScores, 0, tbl.Len())
	for i := 0; i < tbl.Len(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		candidate, err := tbl.Text(i, candCol)
		if err != nil {
			return nil, err
		}
		reference, err := tbl.Text(i, refCol)
		if err != nil {
			return nil, err
		}
		scores, err := e.scorer.Score(ctx, reference, candidate)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rec := RowScores{Row: i, Scores: scores, Failed: e.failedTypes(scores, types)}
		for _, typ := range types {
			telemetry.RecordRowF1(ctx, string(typ), scores[typ].F1)
		}
		telemetry.IncRowsScored(ctx, 1)
		log.DebugfContext(ctx, "row %d: %s", i, formatScores(scores, types))
		if !rec.Passed() {
			log.WarnfContext(ctx, "row %d below threshold for %v: %s", i, rec.Failed, formatScores(scores, rec.Failed))
		}
		records = append(records, rec)
	}
	return records, nil
}

// failedTypes returns the types, in column order, whose scores are below the
// configured minimum in any component.
func (e *Evaluator) failedTypes(scores map[rouge.Type]rouge.Score, types []rouge.Type) []rouge.Type {
	var failed []rouge.Type
	for _, typ := range types {
		th, ok := e.thresholds[typ]
		if !ok {
			continue
		}
		s := scores[typ]
		if s.Precision < th.Precision || s.Recall < th.Recall || s.F1 < th.F1 {
			failed = append(failed, typ)
		}
	}
	return failed
}

func formatScores(scores map[rouge.Type]rouge.Score, types []rouge.Type) string {
	parts := make([]string, 0, len(types))
	for _, typ := range types {
		s := scores[typ]
		parts = append(parts, fmt.Sprintf("%s precision=%.6f recall=%.6f f1=%.6f",
			typ, s.Precision, s.Recall, s.F1))
	}
	return strings.Join(parts, "; ")
}
