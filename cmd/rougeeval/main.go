//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//

// Command rougeeval scores the candidate and reference columns of a
// spreadsheet with ROUGE-1, ROUGE-2 and ROUGE-L and writes the table back
// with the score columns appended.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"

	"trpc.group/trpc-go/trpc-rouge-eval/config"
	"trpc.group/trpc-go/trpc-rouge-eval/evaluation"
	"trpc.group/trpc-go/trpc-rouge-eval/evaluation/report"
	"trpc.group/trpc-go/trpc-rouge-eval/internal/telemetry"
	"trpc.group/trpc-go/trpc-rouge-eval/log"
	"trpc.group/trpc-go/trpc-rouge-eval/table"
)

const shutdownTimeout = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout)
	stop()
	if err == nil {
		return
	}
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if errors.Is(err, table.ErrFileNotFound) {
		log.Errorf("input file not found, nothing was scored: %v", err)
	} else {
		log.Errorf("rouge evaluation failed: %v", err)
	}
	os.Exit(1)
}

// run parses args, scores the configured spreadsheet and prints a summary to out.
func run(ctx context.Context, args []string, out io.Writer) error {
	cfg, err := parseConfig(args)
	if err != nil {
		return err
	}
	log.SetLevel(cfg.LogLevel)
	shutdown, err := startTelemetry(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdown(sctx); err != nil {
			log.Warnf("telemetry shutdown: %v", err)
		}
	}()
	e, err := evaluation.New(evaluation.WithConfig(cfg))
	if err != nil {
		return fmt.Errorf("create evaluator: %w", err)
	}
	result, err := e.Evaluate(ctx)
	if err != nil {
		return err
	}
	printSummary(out, result, e)
	if cfg.ReportDir != "" {
		path, err := report.NewManager(report.WithBaseDir(cfg.ReportDir)).Save(ctx, result)
		if err != nil {
			return fmt.Errorf("save report: %w", err)
		}
		fmt.Fprintf(out, "Report saved to: %s\n", path)
	}
	return nil
}

// startTelemetry exports over OTLP when an endpoint is configured and
// otherwise uses the global otel providers.
func startTelemetry(ctx context.Context, cfg *config.Config) (func(context.Context) error, error) {
	if cfg.OTLPEndpoint != "" {
		shutdown, err := telemetry.Start(ctx,
			telemetry.WithEndpoint(cfg.OTLPEndpoint),
			telemetry.WithProtocol(cfg.OTLPProtocol),
		)
		if err != nil {
			return nil, fmt.Errorf("start telemetry: %w", err)
		}
		return shutdown, nil
	}
	telemetry.SetTracerProvider(otel.GetTracerProvider())
	if err := telemetry.InitMeterProvider(otel.GetMeterProvider()); err != nil {
		return nil, fmt.Errorf("init meters: %w", err)
	}
	return func(context.Context) error { return nil }, nil
}

// parseConfig builds the run configuration. Flags set on the command line
// override the config file, which overrides the defaults.
func parseConfig(args []string) (*config.Config, error) {
	fs := flag.NewFlagSet("rougeeval", flag.ContinueOnError)
	var (
		configPath   = fs.String("config", "", "JSON config file")
		input        = fs.String("input", config.DefaultInputPath, "Spreadsheet to score (.xlsx, .xlsm, .csv or .tsv)")
		output       = fs.String("output", config.DefaultOutputPath, "Where the scored spreadsheet is written")
		sheet        = fs.String("sheet", "", "Input sheet name, first sheet when empty")
		logLevel     = fs.String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error or fatal")
		lsum         = fs.Bool("lsum", false, "Also compute summary-level rougeLsum columns")
		reportDir    = fs.String("report-dir", "", "Directory for JSON run reports, none when empty")
		otlpEndpoint = fs.String("otlp-endpoint", "", "OTLP collector host:port, export disabled when empty")
		otlpProtocol = fs.String("otlp-protocol", "grpc", "OTLP protocol: grpc or http")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.InputPath = *input
		case "output":
			cfg.OutputPath = *output
		case "sheet":
			cfg.Sheet = *sheet
		case "log-level":
			cfg.LogLevel = *logLevel
		case "lsum":
			cfg.SummaryLevel = *lsum
		case "report-dir":
			cfg.ReportDir = *reportDir
		case "otlp-endpoint":
			cfg.OTLPEndpoint = *otlpEndpoint
		case "otlp-protocol":
			cfg.OTLPProtocol = *otlpProtocol
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// printSummary prints a short human-readable evaluation summary.
func printSummary(out io.Writer, result *evaluation.Result, e *evaluation.Evaluator) {
	fmt.Fprintf(out, "Run: %s\n", result.RunID)
	fmt.Fprintf(out, "Input: %s\n", result.InputPath)
	fmt.Fprintf(out, "Rows: %d\n", result.Rows)
	for _, typ := range e.Types() {
		m := result.Summary.Means[typ]
		fmt.Fprintf(out, "  %s: precision %.4f recall %.4f f1 %.4f\n", typ, m.Precision, m.Recall, m.F1)
	}
	if result.Summary.FailedRows > 0 {
		fmt.Fprintf(out, "Rows below threshold: %d\n", result.Summary.FailedRows)
	}
	fmt.Fprintf(out, "Results saved to: %s\n", result.OutputPath)
}
