//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//

package table

import "errors"

var (
	// ErrFileNotFound is returned when the input file does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrSchemaMismatch is returned when a required column is absent or a
	// column cannot be appended to the table.
	ErrSchemaMismatch = errors.New("schema mismatch")
	// ErrTypeMismatch is returned when a cell does not hold the expected kind of value.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrUnsupportedFormat is returned for file extensions with no reader or writer.
	ErrUnsupportedFormat = errors.New("unsupported table format")
)
