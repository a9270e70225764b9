//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package telemetry holds the tracer and meters used by the scoring pipeline.
// Both default to noop providers until the process installs real ones.
package telemetry

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// telemetry service constants.
const (
	ServiceName    = "rouge-eval"
	InstrumentName = "trpc.rouge.eval"

	SpanNameLoad  = "rouge_eval.load"
	SpanNameScore = "rouge_eval.score"
	SpanNameSave  = "rouge_eval.save"
)

// Attribute keys.
const (
	KeyRunID     = "rouge_eval.run_id"
	KeyPath      = "rouge_eval.path"
	KeySheet     = "rouge_eval.sheet"
	KeyRowCount  = "rouge_eval.row_count"
	KeyRougeType = "rouge.type"
)

// Tracer is the tracer used by the pipeline stages.
var Tracer trace.Tracer = noop.NewTracerProvider().Tracer(InstrumentName)

// SetTracerProvider replaces Tracer with one obtained from tp.
func SetTracerProvider(tp trace.TracerProvider) {
	if tp == nil {
		tp = noop.NewTracerProvider()
	}
	Tracer = tp.Tracer(InstrumentName)
}

// TraceStage annotates a stage span with its run and target path.
func TraceStage(span trace.Span, runID, path string) {
	span.SetAttributes(
		attribute.String(KeyRunID, runID),
		attribute.String(KeyPath, path),
	)
}

// TraceError marks span as failed when err is not nil.
func TraceError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
