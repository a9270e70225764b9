//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//

// Package rouge implements ROUGE-N, ROUGE-L and ROUGE-Lsum scoring.
//
// Scores follow the conventions of google-research/rouge: the target is the
// reference text and the prediction is the candidate text, precision is
// measured against prediction units and recall against target units.
package rouge

// Score holds ROUGE precision, recall and F1.
type Score struct {
	// Precision is the fraction of prediction units that match the target in range [0, 1].
	Precision float64 `json:"precision"`
	// Recall is the fraction of target units matched by the prediction in range [0, 1].
	Recall float64 `json:"recall"`
	// F1 is the harmonic mean of precision and recall in range [0, 1].
	F1 float64 `json:"f1"`
}

// newScore builds a Score from an overlap count and the two unit totals.
// A zero total on either side yields the zero Score.
func newScore(overlap, predTotal, targetTotal int) Score {
	if predTotal <= 0 || targetTotal <= 0 {
		return Score{}
	}
	precision := float64(overlap) / float64(predTotal)
	recall := float64(overlap) / float64(targetTotal)
	return Score{Precision: precision, Recall: recall, F1: fMeasure(precision, recall)}
}

// fMeasure computes the harmonic mean of precision and recall, 0 when both are 0.
func fMeasure(precision, recall float64) float64 {
	if precision+recall > 0 {
		return 2 * precision * recall / (precision + recall)
	}
	return 0
}
