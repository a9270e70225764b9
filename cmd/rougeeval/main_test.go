//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-rouge-eval/config"
	"trpc.group/trpc-go/trpc-rouge-eval/evaluation/report"
	"trpc.group/trpc-go/trpc-rouge-eval/table"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rouge.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParseConfig_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, `{
		"inputPath": "from-file.xlsx",
		"outputPath": "from-file-out.xlsx",
		"sheet": "Data",
		"logLevel": "warn"
	}`)
	cfg, err := parseConfig([]string{"-config", path, "-output", "flag-out.csv", "-lsum"})
	require.NoError(t, err)
	assert.Equal(t, "from-file.xlsx", cfg.InputPath)
	assert.Equal(t, "flag-out.csv", cfg.OutputPath)
	assert.Equal(t, "Data", cfg.Sheet)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.SummaryLevel)
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-nope"}},
		{"positional argument", []string{"extra"}},
		{"missing config file", []string{"-config", filepath.Join(t.TempDir(), "none.json")}},
		{"same input and output", []string{"-input", "a.xlsx", "-output", "a.xlsx"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseConfig(tt.args)
			assert.Error(t, err)
		})
	}
}

func TestParseConfig_OTLP(t *testing.T) {
	path := writeConfig(t, `{"otlpEndpoint": "collector:4317", "otlpProtocol": "grpc"}`)
	cfg, err := parseConfig([]string{"-config", path, "-otlp-protocol", "http"})
	require.NoError(t, err)
	assert.Equal(t, "collector:4317", cfg.OTLPEndpoint)
	assert.Equal(t, "http", cfg.OTLPProtocol)

	_, err = parseConfig([]string{"-otlp-protocol", "udp"})
	assert.Error(t, err)
}

func TestParseConfig_Help(t *testing.T) {
	_, err := parseConfig([]string{"-h"})
	assert.True(t, errors.Is(err, flag.ErrHelp))
}

func TestRun_CSV(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	out := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(in,
		[]byte("Gold Standard,Reference Summary\nthe cat sat,the cat sat\nthe cat sat,a dog ran\n"), 0o644))

	reports := filepath.Join(dir, "reports")

	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), []string{
		"-input", in, "-output", out, "-log-level", "error", "-report-dir", reports,
	}, &buf))
	assert.Contains(t, buf.String(), "Rows: 2")
	assert.Contains(t, buf.String(), "rouge1: precision 0.5000 recall 0.5000 f1 0.5000")
	assert.Contains(t, buf.String(), "Results saved to: "+out)

	got, err := table.Load(context.Background(), out)
	require.NoError(t, err)
	assert.Len(t, got.Columns, 11)
	assert.Equal(t, 2, got.Len())

	ids, err := report.NewManager(report.WithBaseDir(reports)).List(context.Background())
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Contains(t, buf.String(), "Report saved to: "+filepath.Join(reports, ids[0]+".rouge_report.json"))
}

func TestRun_MissingInput(t *testing.T) {
	dir := t.TempDir()
	err := run(context.Background(), []string{
		"-input", filepath.Join(dir, "RougeExampleSheet.xlsx"),
		"-output", filepath.Join(dir, "out.xlsx"),
		"-log-level", "error",
	}, &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, table.ErrFileNotFound))
}
