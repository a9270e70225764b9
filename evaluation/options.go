//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package evaluation

import (
	"trpc.group/trpc-go/trpc-rouge-eval/config"
	"trpc.group/trpc-go/trpc-rouge-eval/internal/rouge"
)

type options struct {
	inputPath       string
	outputPath      string
	sheet           string
	candidateColumn string
	referenceColumn string
	useStemmer      bool
	summaryLevel    bool
	splitSummaries  bool
	thresholds      map[rouge.Type]rouge.Score
}

func newOptions(opt ...Option) *options {
	opts := &options{
		inputPath:       config.DefaultInputPath,
		outputPath:      config.DefaultOutputPath,
		candidateColumn: config.DefaultCandidateColumn,
		referenceColumn: config.DefaultReferenceColumn,
		useStemmer:      true,
		thresholds:      map[rouge.Type]rouge.Score{},
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures an Evaluator.
type Option func(*options)

// WithInputPath sets the spreadsheet to score.
func WithInputPath(path string) Option {
	return func(o *options) {
		o.inputPath = path
	}
}

// WithOutputPath sets where the scored spreadsheet is written.
func WithOutputPath(path string) Option {
	return func(o *options) {
		o.outputPath = path
	}
}

// WithSheet selects the input workbook sheet. Empty means the first sheet.
func WithSheet(sheet string) Option {
	return func(o *options) {
		o.sheet = sheet
	}
}

// WithCandidateColumn names the column holding the candidate text.
func WithCandidateColumn(name string) Option {
	return func(o *options) {
		o.candidateColumn = name
	}
}

// WithReferenceColumn names the column holding the reference text.
func WithReferenceColumn(name string) Option {
	return func(o *options) {
		o.referenceColumn = name
	}
}

// WithStemmer toggles Porter stemming.
func WithStemmer(useStemmer bool) Option {
	return func(o *options) {
		o.useStemmer = useStemmer
	}
}

// WithSummaryLevel adds rougeLsum scores and their columns.
func WithSummaryLevel(summaryLevel bool) Option {
	return func(o *options) {
		o.summaryLevel = summaryLevel
	}
}

// WithSplitSummaries splits texts into sentences for rougeLsum.
func WithSplitSummaries(splitSummaries bool) Option {
	return func(o *options) {
		o.splitSummaries = splitSummaries
	}
}

// WithThresholds sets per type minimum scores. Rows below a minimum are
// reported but still written.
func WithThresholds(thresholds map[rouge.Type]rouge.Score) Option {
	return func(o *options) {
		for typ, th := range thresholds {
			o.thresholds[typ] = th
		}
	}
}

// WithConfig applies every setting of cfg.
func WithConfig(cfg *config.Config) Option {
	return func(o *options) {
		if cfg == nil {
			return
		}
		o.inputPath = cfg.InputPath
		o.outputPath = cfg.OutputPath
		o.sheet = cfg.Sheet
		o.candidateColumn = cfg.CandidateColumn
		o.referenceColumn = cfg.ReferenceColumn
		o.useStemmer = cfg.Stemmer()
		o.summaryLevel = cfg.SummaryLevel
		o.splitSummaries = cfg.SplitSummaries
		for typ, th := range cfg.Thresholds {
			o.thresholds[rouge.Type(typ)] = rouge.Score{
				Precision: th.Precision,
				Recall:    th.Recall,
				F1:        th.F1,
			}
		}
	}
}
