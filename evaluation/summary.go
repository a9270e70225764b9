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
	"context"

	"trpc.group/trpc-go/trpc-rouge-eval/internal/rouge"
	"trpc.group/trpc-go/trpc-rouge-eval/log"
)

// Summary aggregates the scores of one run.
type Summary struct {
	Rows       int                        `json:"rows"`       // Rows is the number of scored rows.
	Means      map[rouge.Type]rouge.Score `json:"means"`      // Means holds the mean triple per type.
	FailedRows int                        `json:"failedRows"` // FailedRows counts rows below any threshold.
}

// summarize averages records per type. Means are zero when there are no rows.
func summarize(records []RowScores, types []rouge.Type) Summary {
	means := make(map[rouge.Type]rouge.Score, len(types))
	failed := 0
	for _, rec := range records {
		if !rec.Passed() {
			failed++
		}
		for _, typ := range types {
			s := rec.Scores[typ]
			m := means[typ]
			m.Precision += s.Precision
			m.Recall += s.Recall
			m.F1 += s.F1
			means[typ] = m
		}
	}
	n := float64(len(records))
	for _, typ := range types {
		m := means[typ]
		if n > 0 {
			m.Precision /= n
			m.Recall /= n
			m.F1 /= n
		}
		means[typ] = m
	}
	return Summary{Rows: len(records), Means: means, FailedRows: failed}
}

func logSummary(ctx context.Context, s Summary, types []rouge.Type) {
	log.InfofContext(ctx, "scored %d rows, mean %s", s.Rows, formatScores(s.Means, types))
	if s.FailedRows > 0 {
		log.WarnfContext(ctx, "%d of %d rows below threshold", s.FailedRows, s.Rows)
	}
}
