//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//

package table

// DefaultSheet is the sheet written to new workbooks.
const DefaultSheet = "Sheet1"

// options configures Load and Save.
type options struct {
	// sheet selects the workbook sheet; empty means the first sheet on load
	// and DefaultSheet on save.
	sheet string
}

// Option configures Load and Save.
type Option func(*options)

func newOptions(opt ...Option) *options {
	opts := &options{}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// WithSheet selects the workbook sheet to read or write. It is ignored for
// delimited text files.
func WithSheet(sheet string) Option {
	return func(o *options) {
		o.sheet = sheet
	}
}
