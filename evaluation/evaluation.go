//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package evaluation scores a spreadsheet of candidate and reference texts
// with ROUGE and writes the table back with the score columns appended.
package evaluation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"trpc.group/trpc-go/trpc-rouge-eval/internal/rouge"
	"trpc.group/trpc-go/trpc-rouge-eval/internal/telemetry"
	"trpc.group/trpc-go/trpc-rouge-eval/log"
	"trpc.group/trpc-go/trpc-rouge-eval/table"
)

// Evaluator runs the load, score, append and save pipeline.
type Evaluator struct {
	inputPath       string
	outputPath      string
	sheet           string
	candidateColumn string
	referenceColumn string
	thresholds      map[rouge.Type]rouge.Score
	scorer          *rouge.Scorer
}

// Result is the outcome of one Evaluate call.
type Result struct {
	RunID         string        `json:"runId"`         // RunID identifies this evaluation run.
	InputPath     string        `json:"inputPath"`     // InputPath is the spreadsheet that was scored.
	OutputPath    string        `json:"outputPath"`    // OutputPath is where the scored table was written.
	Rows          int           `json:"rows"`          // Rows is the number of data rows scored.
	Records       []RowScores   `json:"records"`       // Records holds the scores of every row in input order.
	Summary       Summary       `json:"summary"`       // Summary aggregates Records.
	ExecutionTime time.Duration `json:"executionTime"` // ExecutionTime is the wall time of the run.
}

// New creates an Evaluator. Without options it reads RougeExampleSheet.xlsx
// and writes RougeScoreResults.xlsx.
func New(opt ...Option) (*Evaluator, error) {
	opts := newOptions(opt...)
	if opts.inputPath == "" {
		return nil, errors.New("input path is empty")
	}
	if opts.outputPath == "" {
		return nil, errors.New("output path is empty")
	}
	if opts.candidateColumn == "" || opts.referenceColumn == "" {
		return nil, errors.New("candidate and reference columns must be set")
	}
	types := append([]rouge.Type(nil), rouge.DefaultTypes...)
	if opts.summaryLevel {
		types = append(types, rouge.RougeLsum)
	}
	for typ := range opts.thresholds {
		if !containsType(types, typ) {
			return nil, fmt.Errorf("threshold for %q: type is not scored", typ)
		}
	}
	scorer, err := rouge.New(
		rouge.WithTypes(types...),
		rouge.WithStemmer(opts.useStemmer),
		rouge.WithSplitSummaries(opts.splitSummaries),
	)
	if err != nil {
		return nil, fmt.Errorf("create rouge scorer: %w", err)
	}
	return &Evaluator{
		inputPath:       opts.inputPath,
		outputPath:      opts.outputPath,
		sheet:           opts.sheet,
		candidateColumn: opts.candidateColumn,
		referenceColumn: opts.referenceColumn,
		thresholds:      opts.thresholds,
		scorer:          scorer,
	}, nil
}

// Types returns the ROUGE types the Evaluator computes, in column order.
func (e *Evaluator) Types() []rouge.Type {
	return e.scorer.Types()
}

// Evaluate loads the input table, scores every row, appends the score
// columns and saves the result. Any failure aborts the run and nothing is
// written.
func (e *Evaluator) Evaluate(ctx context.Context) (*Result, error) {
	runID := uuid.NewString()
	start := time.Now()
	tbl, err := e.load(ctx, runID)
	if err != nil {
		return nil, err
	}
	log.InfofContext(ctx, "loaded %d rows from %s", tbl.Len(), e.inputPath)

	records, err := e.ScoreRows(ctx, tbl)
	if err != nil {
		return nil, fmt.Errorf("score rows: %w", err)
	}
	types := e.scorer.Types()
	if err := AppendScores(tbl, records, types); err != nil {
		return nil, fmt.Errorf("append scores: %w", err)
	}
	if err := e.save(ctx, runID, tbl); err != nil {
		return nil, err
	}
	summary := summarize(records, types)
	logSummary(ctx, summary, types)
	log.InfofContext(ctx, "scores saved to %s", e.outputPath)
	return &Result{
		RunID:         runID,
		InputPath:     e.inputPath,
		OutputPath:    e.outputPath,
		Rows:          len(records),
		Records:       records,
		Summary:       summary,
		ExecutionTime: time.Since(start),
	}, nil
}

func (e *Evaluator) load(ctx context.Context, runID string) (*table.Table, error) {
	ctx, span := telemetry.Tracer.Start(ctx, telemetry.SpanNameLoad)
	defer span.End()
	telemetry.TraceStage(span, runID, e.inputPath)
	if e.sheet != "" {
		span.SetAttributes(attribute.String(telemetry.KeySheet, e.sheet))
	}
	tbl, err := table.Load(ctx, e.inputPath, table.WithSheet(e.sheet))
	if err != nil {
		telemetry.TraceError(span, err)
		return nil, fmt.Errorf("load %s: %w", e.inputPath, err)
	}
	return tbl, nil
}

func (e *Evaluator) save(ctx context.Context, runID string, tbl *table.Table) error {
	ctx, span := telemetry.Tracer.Start(ctx, telemetry.SpanNameSave)
	defer span.End()
	telemetry.TraceStage(span, runID, e.outputPath)
	if err := table.Save(ctx, tbl, e.outputPath); err != nil {
		telemetry.TraceError(span, err)
		return fmt.Errorf("save %s: %w", e.outputPath, err)
	}
	return nil
}

func containsType(types []rouge.Type, typ rouge.Type) bool {
	for _, t := range types {
		if t == typ {
			return true
		}
	}
	return false
}
