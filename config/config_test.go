//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rouge.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "RougeExampleSheet.xlsx", cfg.InputPath)
	assert.Equal(t, "RougeScoreResults.xlsx", cfg.OutputPath)
	assert.Equal(t, "Gold Standard", cfg.CandidateColumn)
	assert.Equal(t, "Reference Summary", cfg.ReferenceColumn)
	assert.True(t, cfg.Stemmer())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"outputPath": "out/scores.csv",
		"useStemmer": false,
		"summaryLevel": true,
		"thresholds": {"rouge1": {"f1": 0.5}}
	}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultInputPath, cfg.InputPath)
	assert.Equal(t, "out/scores.csv", cfg.OutputPath)
	assert.False(t, cfg.Stemmer())
	assert.True(t, cfg.SummaryLevel)
	assert.Equal(t, Threshold{F1: 0.5}, cfg.Thresholds["rouge1"])
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")

	_, err = Load(writeConfig(t, `{"inputPath": 3}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")

	_, err = Load(writeConfig(t, `{"candidateColumn": ""}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "candidateColumn is empty")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.ReferenceColumn = cfg.CandidateColumn
	cfg.OutputPath = cfg.InputPath
	cfg.Thresholds = map[string]Threshold{"rougeL": {Recall: 1.5}}
	cfg.OTLPProtocol = "udp"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both")
	assert.Contains(t, err.Error(), "outputPath must differ")
	assert.Contains(t, err.Error(), "threshold rougeL")
	assert.Contains(t, err.Error(), `otlpProtocol "udp"`)
}
