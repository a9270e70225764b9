//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//

package table

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
)

// Save writes t to path in the format given by its extension, replacing any
// existing file. Data is written to a temporary sibling file first and
// renamed into place, so a failed save leaves no partial output.
func Save(ctx context.Context, t *Table, path string, opt ...Option) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if t == nil {
		return errors.New("table is nil")
	}
	f, err := formatOf(path)
	if err != nil {
		return err
	}
	opts := newOptions(opt...)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir all %s: %w", filepath.Dir(path), err)
	}
	return writeFile(path, func(w io.Writer) error {
		if f == formatXLSX {
			return writeXLSX(w, t, opts.sheet)
		}
		return writeDelimited(w, t, f.comma())
	})
}

// writeFile runs write against a temporary file and renames it to path.
func writeFile(path string, write func(io.Writer) error) error {
	tmp := path + ".tmp"
	file, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open file %s: %w", tmp, err)
	}
	if err := write(file); err != nil {
		if cerr := file.Close(); cerr != nil {
			err = multierror.Append(err, cerr)
		}
		_ = os.Remove(tmp)
		return err
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close file %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename %s to %s: %w", tmp, path, err)
	}
	return nil
}
