//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//

package rouge

import "sort"

// scoreLCS computes ROUGE-L using the LCS length as the overlap count.
func scoreLCS(targetTokens, predTokens []string) Score {
	if len(targetTokens) == 0 || len(predTokens) == 0 {
		return Score{}
	}
	return newScore(lcsLength(targetTokens, predTokens), len(predTokens), len(targetTokens))
}

// lcsLength computes the LCS length with two rolling rows.
func lcsLength(ref, can []string) int {
	if len(ref) == 0 || len(can) == 0 {
		return 0
	}
	prev := make([]int, len(can)+1)
	curr := make([]int, len(can)+1)
	for i := 1; i <= len(ref); i++ {
		curr[0] = 0
		for j := 1; j <= len(can); j++ {
			switch {
			case ref[i-1] == can[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(can)]
}

// summaryLevelLCS computes ROUGE-Lsum. Each target sentence contributes the
// union of its LCS matches against every prediction sentence, and a token is
// counted at most as often as it occurs on both sides.
func summaryLevelLCS(targetSents, predSents [][]string) Score {
	targetTotal := countTokens(targetSents)
	predTotal := countTokens(predSents)
	if targetTotal == 0 || predTotal == 0 {
		return Score{}
	}

	targetLeft := tokenCounts(targetSents)
	predLeft := tokenCounts(predSents)
	hits := 0
	for _, ref := range targetSents {
		for _, tok := range unionLCS(ref, predSents) {
			if targetLeft[tok] <= 0 || predLeft[tok] <= 0 {
				continue
			}
			hits++
			targetLeft[tok]--
			predLeft[tok]--
		}
	}
	return newScore(hits, predTotal, targetTotal)
}

func countTokens(sents [][]string) int {
	n := 0
	for _, s := range sents {
		n += len(s)
	}
	return n
}

func tokenCounts(sents [][]string) map[string]int {
	counts := make(map[string]int)
	for _, s := range sents {
		for _, tok := range s {
			counts[tok]++
		}
	}
	return counts
}

// unionLCS returns the tokens of ref covered by an LCS with any of cans, in ref order.
func unionLCS(ref []string, cans [][]string) []string {
	seen := make(map[int]struct{})
	for _, can := range cans {
		for _, idx := range lcsIndices(ref, can) {
			seen[idx] = struct{}{}
		}
	}
	union := make([]int, 0, len(seen))
	for idx := range seen {
		union = append(union, idx)
	}
	sort.Ints(union)
	out := make([]string, 0, len(union))
	for _, idx := range union {
		out = append(out, ref[idx])
	}
	return out
}

// lcsIndices returns the indices in ref of one LCS between ref and can.
func lcsIndices(ref, can []string) []int {
	table := make([][]int, len(ref)+1)
	for i := range table {
		table[i] = make([]int, len(can)+1)
	}
	for i := 1; i <= len(ref); i++ {
		for j := 1; j <= len(can); j++ {
			switch {
			case ref[i-1] == can[j-1]:
				table[i][j] = table[i-1][j-1] + 1
			case table[i-1][j] >= table[i][j-1]:
				table[i][j] = table[i-1][j]
			default:
				table[i][j] = table[i][j-1]
			}
		}
	}

	i, j := len(ref), len(can)
	indices := make([]int, table[i][j])
	k := len(indices)
	for i > 0 && j > 0 {
		switch {
		case ref[i-1] == can[j-1]:
			k--
			indices[k] = i - 1
			i--
			j--
		case table[i][j-1] > table[i-1][j]:
			j--
		default:
			i--
		}
	}
	return indices
}
