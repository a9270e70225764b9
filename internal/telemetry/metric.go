//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Metric names.
const (
	MetricRowsScored = "rouge_eval.rows.scored"
	MetricRowF1      = "rouge_eval.row.f1"
)

var (
	MeterProvider metric.MeterProvider = noop.NewMeterProvider()

	Meter         metric.Meter            = MeterProvider.Meter(InstrumentName)
	RowsScoredCnt metric.Int64Counter     = noop.Int64Counter{}
	RowF1         metric.Float64Histogram = noop.Float64Histogram{}
)

// InitMeterProvider installs mp and creates the pipeline instruments on it.
func InitMeterProvider(mp metric.MeterProvider) error {
	if mp == nil {
		mp = noop.NewMeterProvider()
	}
	meter := mp.Meter(InstrumentName)
	rows, err := meter.Int64Counter(
		MetricRowsScored,
		metric.WithDescription("Number of rows scored"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create metric %s: %w", MetricRowsScored, err)
	}
	f1, err := meter.Float64Histogram(
		MetricRowF1,
		metric.WithDescription("F1 score per row and rouge type"),
		metric.WithUnit("1"),
		metric.WithExplicitBucketBoundaries(0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1),
	)
	if err != nil {
		return fmt.Errorf("failed to create metric %s: %w", MetricRowF1, err)
	}
	MeterProvider = mp
	Meter = meter
	RowsScoredCnt = rows
	RowF1 = f1
	return nil
}

// IncRowsScored adds n to the scored row counter.
func IncRowsScored(ctx context.Context, n int) {
	if n <= 0 {
		return
	}
	RowsScoredCnt.Add(ctx, int64(n))
}

// RecordRowF1 records one row's F1 for the given rouge type.
func RecordRowF1(ctx context.Context, rougeType string, f1 float64) {
	RowF1.Record(ctx, f1, metric.WithAttributes(attribute.String(KeyRougeType, rougeType)))
}
