//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//

// Package config holds the settings of a ROUGE evaluation run.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Defaults matching the original fixed file names and column headers.
const (
	DefaultInputPath       = "RougeExampleSheet.xlsx"
	DefaultOutputPath      = "RougeScoreResults.xlsx"
	DefaultCandidateColumn = "Gold Standard"
	DefaultReferenceColumn = "Reference Summary"
	DefaultLogLevel        = "info"
)

// Threshold is the minimum score a row must reach for one ROUGE type.
type Threshold struct {
	// Precision is the minimum precision in range [0, 1].
	Precision float64 `json:"precision,omitempty"`
	// Recall is the minimum recall in range [0, 1].
	Recall float64 `json:"recall,omitempty"`
	// F1 is the minimum F1 in range [0, 1].
	F1 float64 `json:"f1,omitempty"`
}

// Config describes one evaluation run.
type Config struct {
	// InputPath is the spreadsheet holding candidate and reference texts.
	InputPath string `json:"inputPath,omitempty"`
	// OutputPath is where the scored table is written.
	OutputPath string `json:"outputPath,omitempty"`
	// Sheet selects the input workbook sheet; empty means the first sheet.
	Sheet string `json:"sheet,omitempty"`
	// CandidateColumn names the column holding the candidate text.
	CandidateColumn string `json:"candidateColumn,omitempty"`
	// ReferenceColumn names the column holding the reference text.
	ReferenceColumn string `json:"referenceColumn,omitempty"`
	// UseStemmer enables Porter stemming. Nil means enabled.
	UseStemmer *bool `json:"useStemmer,omitempty"`
	// SummaryLevel adds rougeLsum columns after the nine default score columns.
	SummaryLevel bool `json:"summaryLevel,omitempty"`
	// SplitSummaries splits texts into sentences for rougeLsum instead of using lines.
	SplitSummaries bool `json:"splitSummaries,omitempty"`
	// Thresholds maps a ROUGE type such as "rouge1" to its minimum scores.
	Thresholds map[string]Threshold `json:"thresholds,omitempty"`
	// LogLevel is one of debug, info, warn, error or fatal.
	LogLevel string `json:"logLevel,omitempty"`
	// ReportDir, when set, receives a JSON report of every run.
	ReportDir string `json:"reportDir,omitempty"`
	// OTLPEndpoint, when set, enables OTLP export of spans and metrics to
	// this collector address (host:port).
	OTLPEndpoint string `json:"otlpEndpoint,omitempty"`
	// OTLPProtocol is "grpc" (default) or "http".
	OTLPProtocol string `json:"otlpProtocol,omitempty"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		InputPath:       DefaultInputPath,
		OutputPath:      DefaultOutputPath,
		CandidateColumn: DefaultCandidateColumn,
		ReferenceColumn: DefaultReferenceColumn,
		LogLevel:        DefaultLogLevel,
	}
}

// Load reads a JSON config file and overlays it on Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Stemmer reports whether stemming is enabled.
func (c *Config) Stemmer() bool {
	return c.UseStemmer == nil || *c.UseStemmer
}

// Validate checks that required fields are set and thresholds are in range.
func (c *Config) Validate() error {
	var result *multierror.Error
	required := []struct{ name, value string }{
		{"inputPath", c.InputPath},
		{"outputPath", c.OutputPath},
		{"candidateColumn", c.CandidateColumn},
		{"referenceColumn", c.ReferenceColumn},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			result = multierror.Append(result, fmt.Errorf("%s is empty", f.name))
		}
	}
	if c.CandidateColumn != "" && c.CandidateColumn == c.ReferenceColumn {
		result = multierror.Append(result,
			fmt.Errorf("candidateColumn and referenceColumn are both %q", c.CandidateColumn))
	}
	if c.InputPath != "" && c.InputPath == c.OutputPath {
		result = multierror.Append(result, errors.New("outputPath must differ from inputPath"))
	}
	switch c.OTLPProtocol {
	case "", "grpc", "http":
	default:
		result = multierror.Append(result, fmt.Errorf("otlpProtocol %q is not grpc or http", c.OTLPProtocol))
	}
	types := make([]string, 0, len(c.Thresholds))
	for typ := range c.Thresholds {
		types = append(types, typ)
	}
	sort.Strings(types)
	for _, typ := range types {
		th := c.Thresholds[typ]
		for _, v := range []float64{th.Precision, th.Recall, th.F1} {
			if v < 0 || v > 1 {
				result = multierror.Append(result, fmt.Errorf("threshold %s: %v out of range [0, 1]", typ, v))
			}
		}
	}
	return result.ErrorOrNil()
}
