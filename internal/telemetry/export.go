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
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	// ProtocolGRPC uses gRPC protocol for OTLP exporter.
	ProtocolGRPC = "grpc"
	// ProtocolHTTP uses HTTP protocol for OTLP exporter.
	ProtocolHTTP = "http"
)

// grpcNewClient is replaced in tests.
var grpcNewClient = grpc.NewClient

type exportOptions struct {
	endpoint string
	protocol string
}

// ExportOption configures Start.
type ExportOption func(*exportOptions)

// WithEndpoint sets the collector address, host:port without scheme. When
// empty the exporters fall back to the OTEL_EXPORTER_OTLP_* environment
// variables and then to localhost.
func WithEndpoint(endpoint string) ExportOption {
	return func(o *exportOptions) {
		o.endpoint = endpoint
	}
}

// WithProtocol selects ProtocolGRPC (default) or ProtocolHTTP.
func WithProtocol(protocol string) ExportOption {
	return func(o *exportOptions) {
		if protocol != "" {
			o.protocol = protocol
		}
	}
}

// Start exports spans and metrics over OTLP and installs the providers as
// Tracer and the pipeline meters. The returned function flushes, shuts the
// exporters down and restores the noop providers.
func Start(ctx context.Context, opt ...ExportOption) (func(context.Context) error, error) {
	opts := &exportOptions{protocol: ProtocolGRPC}
	for _, o := range opt {
		o(opts)
	}
	res := resource.NewSchemaless(attribute.String("service.name", ServiceName))

	var (
		traceExp  sdktrace.SpanExporter
		metricExp sdkmetric.Exporter
		conn      *grpc.ClientConn
		err       error
	)
	switch opts.protocol {
	case ProtocolGRPC:
		traceExp, metricExp, conn, err = newGRPCExporters(ctx, opts.endpoint)
	case ProtocolHTTP:
		traceExp, metricExp, err = newHTTPExporters(ctx, opts.endpoint)
	default:
		return nil, fmt.Errorf("unsupported otlp protocol: %s", opts.protocol)
	}
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(traceExp), sdktrace.WithResource(res))
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExp)),
		sdkmetric.WithResource(res),
	)
	if err := InitMeterProvider(mp); err != nil {
		return nil, err
	}
	SetTracerProvider(tp)

	return func(ctx context.Context) error {
		var result *multierror.Error
		if err := tp.Shutdown(ctx); err != nil {
			result = multierror.Append(result, fmt.Errorf("shutdown tracer provider: %w", err))
		}
		if err := mp.Shutdown(ctx); err != nil {
			result = multierror.Append(result, fmt.Errorf("shutdown meter provider: %w", err))
		}
		if conn != nil {
			if err := conn.Close(); err != nil {
				result = multierror.Append(result, fmt.Errorf("close grpc connection: %w", err))
			}
		}
		SetTracerProvider(nil)
		if err := InitMeterProvider(nil); err != nil {
			result = multierror.Append(result, err)
		}
		return result.ErrorOrNil()
	}, nil
}

func newGRPCExporters(ctx context.Context, endpoint string) (sdktrace.SpanExporter, sdkmetric.Exporter, *grpc.ClientConn, error) {
	if endpoint == "" {
		endpoint = envEndpoint("localhost:4317")
	}
	conn, err := grpcNewClient(endpoint, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create grpc connection: %w", err)
	}
	traceExp, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		_ = conn.Close()
		return nil, nil, nil, fmt.Errorf("create grpc trace exporter: %w", err)
	}
	metricExp, err := otlpmetricgrpc.New(ctx, otlpmetricgrpc.WithGRPCConn(conn))
	if err != nil {
		_ = traceExp.Shutdown(ctx)
		_ = conn.Close()
		return nil, nil, nil, fmt.Errorf("create grpc metric exporter: %w", err)
	}
	return traceExp, metricExp, conn, nil
}

func newHTTPExporters(ctx context.Context, endpoint string) (sdktrace.SpanExporter, sdkmetric.Exporter, error) {
	traceOpts := []otlptracehttp.Option{otlptracehttp.WithInsecure()}
	metricOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithInsecure()}
	if endpoint != "" {
		traceOpts = append(traceOpts, otlptracehttp.WithEndpoint(endpoint))
		metricOpts = append(metricOpts, otlpmetrichttp.WithEndpoint(endpoint))
	}
	traceExp, err := otlptracehttp.New(ctx, traceOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("create http trace exporter: %w", err)
	}
	metricExp, err := otlpmetrichttp.New(ctx, metricOpts...)
	if err != nil {
		_ = traceExp.Shutdown(ctx)
		return nil, nil, fmt.Errorf("create http metric exporter: %w", err)
	}
	return traceExp, metricExp, nil
}

// envEndpoint reads the collector address for gRPC from the standard OTLP
// variables, dropping any URL scheme.
func envEndpoint(fallback string) string {
	for _, key := range []string{"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT"} {
		if v := os.Getenv(key); v != "" {
			v = strings.TrimPrefix(strings.TrimPrefix(v, "http://"), "https://")
			return strings.TrimSuffix(v, "/")
		}
	}
	return fallback
}
