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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func restoreMeters(t *testing.T) {
	mp, meter, rows, f1 := MeterProvider, Meter, RowsScoredCnt, RowF1
	t.Cleanup(func() {
		MeterProvider, Meter, RowsScoredCnt, RowF1 = mp, meter, rows, f1
	})
}

func findMetric(rm metricdata.ResourceMetrics, name string) (metricdata.Metrics, bool) {
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == name {
				return m, true
			}
		}
	}
	return metricdata.Metrics{}, false
}

func TestInitMeterProvider_RecordsRowsAndF1(t *testing.T) {
	restoreMeters(t)
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	require.NoError(t, InitMeterProvider(provider))

	ctx := context.Background()
	IncRowsScored(ctx, 3)
	IncRowsScored(ctx, 0)
	RecordRowF1(ctx, "rouge1", 1)
	RecordRowF1(ctx, "rouge1", 0.5)
	RecordRowF1(ctx, "rougeL", 0.25)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	rows, ok := findMetric(rm, MetricRowsScored)
	require.True(t, ok)
	sum, ok := rows.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(3), sum.DataPoints[0].Value)

	f1, ok := findMetric(rm, MetricRowF1)
	require.True(t, ok)
	hist, ok := f1.Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	counts := map[string]uint64{}
	for _, dp := range hist.DataPoints {
		v, ok := dp.Attributes.Value(attribute.Key(KeyRougeType))
		require.True(t, ok)
		counts[v.AsString()] = dp.Count
	}
	assert.Equal(t, map[string]uint64{"rouge1": 2, "rougeL": 1}, counts)
}

func TestInitMeterProvider_NilFallsBackToNoop(t *testing.T) {
	restoreMeters(t)
	require.NoError(t, InitMeterProvider(nil))
	assert.NotPanics(t, func() {
		IncRowsScored(context.Background(), 1)
		RecordRowF1(context.Background(), "rouge2", 0)
	})
}
