//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//

package rouge

import "strings"

// ngramSep joins tokens into a map key; tokens never contain it.
const ngramSep = "\x00"

// scoreNGrams computes ROUGE-N from the clipped n-gram multiset intersection.
func scoreNGrams(targetTokens, predTokens []string, n int) Score {
	if len(targetTokens) == 0 || len(predTokens) == 0 {
		return Score{}
	}
	target := countNGrams(targetTokens, n)
	pred := countNGrams(predTokens, n)

	overlap, targetTotal, predTotal := 0, 0, 0
	for key, cnt := range target {
		targetTotal += cnt
		overlap += min(cnt, pred[key])
	}
	for _, cnt := range pred {
		predTotal += cnt
	}
	if overlap == 0 {
		return Score{}
	}
	return newScore(overlap, predTotal, targetTotal)
}

// countNGrams builds the multiset of n-grams in tokens.
func countNGrams(tokens []string, n int) map[string]int {
	if n <= 0 || len(tokens) < n {
		return map[string]int{}
	}
	counts := make(map[string]int, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		counts[strings.Join(tokens[i:i+n], ngramSep)]++
	}
	return counts
}
