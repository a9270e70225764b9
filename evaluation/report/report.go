//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package report stores evaluation run reports as JSON files in a local directory.
package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"trpc.group/trpc-go/trpc-rouge-eval/evaluation"
)

const (
	// DefaultBaseDir is the directory reports are written to by default.
	DefaultBaseDir = "rouge_reports"

	fileSuffix = ".rouge_report.json"
)

// Report is the persisted form of one evaluation run.
type Report struct {
	CreatedAt time.Time `json:"createdAt"` // CreatedAt is when the report was saved.
	*evaluation.Result
}

// Manager persists run reports keyed by run ID.
type Manager struct {
	baseDir string
	mu      sync.Mutex
}

// Option configures a Manager.
type Option func(*Manager)

// WithBaseDir sets the report directory.
func WithBaseDir(dir string) Option {
	return func(m *Manager) {
		if dir != "" {
			m.baseDir = dir
		}
	}
}

// NewManager creates a Manager writing under DefaultBaseDir unless overridden.
func NewManager(opt ...Option) *Manager {
	m := &Manager{baseDir: DefaultBaseDir}
	for _, o := range opt {
		o(m)
	}
	return m
}

// Save writes result to <baseDir>/<runID>.rouge_report.json and returns the path.
func (m *Manager) Save(ctx context.Context, result *evaluation.Result) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if result == nil {
		return "", errors.New("result is nil")
	}
	if result.RunID == "" {
		return "", errors.New("run id is empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := os.MkdirAll(m.baseDir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir all %s: %w", m.baseDir, err)
	}
	path := m.path(result.RunID)
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", tmp, err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Report{CreatedAt: time.Now().UTC(), Result: result}); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return "", fmt.Errorf("encode report %s: %w", result.RunID, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("close %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("rename %s: %w", tmp, err)
	}
	return path, nil
}

// Get loads the report of runID.
func (m *Manager) Get(ctx context.Context, runID string) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if runID == "" {
		return nil, errors.New("run id is empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	f, err := os.Open(m.path(runID))
	if err != nil {
		return nil, fmt.Errorf("open report %s: %w", runID, err)
	}
	defer f.Close()
	var r Report
	if err := json.NewDecoder(f).Decode(&r); err != nil {
		return nil, fmt.Errorf("decode report %s: %w", runID, err)
	}
	return &r, nil
}

// List returns the run IDs of all stored reports, sorted.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	entries, err := os.ReadDir(m.baseDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read dir %s: %w", m.baseDir, err)
	}
	ids := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, fileSuffix))
	}
	sort.Strings(ids)
	return ids, nil
}

func (m *Manager) path(runID string) string {
	return filepath.Join(m.baseDir, runID+fileSuffix)
}
