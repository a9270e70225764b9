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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

func shutdownQuickly(t *testing.T, shutdown func(context.Context) error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	// No collector runs in tests, so export failures are expected.
	_ = shutdown(ctx)
}

func TestStart_Protocols(t *testing.T) {
	for _, protocol := range []string{ProtocolGRPC, ProtocolHTTP} {
		t.Run(protocol, func(t *testing.T) {
			restoreMeters(t)
			orig := Tracer
			t.Cleanup(func() { Tracer = orig })

			shutdown, err := Start(context.Background(),
				WithProtocol(protocol),
				WithEndpoint("localhost:4999"),
			)
			require.NoError(t, err)
			require.NotNil(t, shutdown)

			_, span := Tracer.Start(context.Background(), SpanNameScore)
			assert.True(t, span.SpanContext().IsValid())
			span.End()
			IncRowsScored(context.Background(), 1)
			shutdownQuickly(t, shutdown)

			_, span = Tracer.Start(context.Background(), SpanNameScore)
			assert.False(t, span.SpanContext().IsValid())
			span.End()
		})
	}
}

func TestStart_UnsupportedProtocol(t *testing.T) {
	_, err := Start(context.Background(), WithProtocol("udp"))
	assert.Error(t, err)
}

func TestStart_GRPCConnError(t *testing.T) {
	orig := grpcNewClient
	t.Cleanup(func() { grpcNewClient = orig })
	grpcNewClient = func(string, ...grpc.DialOption) (*grpc.ClientConn, error) {
		return nil, errors.New("dial refused")
	}
	_, err := Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dial refused")
}

func TestEnvEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	assert.Equal(t, "localhost:4317", envEndpoint("localhost:4317"))

	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://collector:4317/")
	assert.Equal(t, "collector:4317", envEndpoint("localhost:4317"))

	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "traces:4317")
	assert.Equal(t, "traces:4317", envEndpoint("localhost:4317"))
}
