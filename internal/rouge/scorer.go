//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//

package rouge

import (
	"context"
	"errors"
	"fmt"
)

// Scorer computes a fixed set of ROUGE types for target and prediction pairs.
// A Scorer is immutable after New and safe for concurrent use.
type Scorer struct {
	types          []Type
	tokenizer      Tokenizer
	splitSummaries bool
}

// New creates a Scorer. Without WithTypes it computes rouge1, rouge2 and rougeL.
func New(opt ...Option) (*Scorer, error) {
	opts := newOptions(opt...)
	for _, t := range opts.types {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}
	tok := opts.tokenizer
	if tok == nil {
		tok = newTokenizer(opts.useStemmer)
	}
	return &Scorer{
		types:          opts.types,
		tokenizer:      tok,
		splitSummaries: opts.splitSummaries,
	}, nil
}

// Types returns the configured ROUGE types in computation order.
func (s *Scorer) Types() []Type {
	return append([]Type(nil), s.types...)
}

// Score returns one Score per configured type for the target (reference) and
// prediction (candidate) texts.
func (s *Scorer) Score(ctx context.Context, target, prediction string) (map[Type]Score, error) {
	if ctx == nil {
		return nil, errors.New("context is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var targetTokens, predTokens []string
	if s.needsTokens() {
		targetTokens = s.tokenizer.Tokenize(target)
		predTokens = s.tokenizer.Tokenize(prediction)
	}

	result := make(map[Type]Score, len(s.types))
	for _, t := range s.types {
		switch t {
		case RougeL:
			result[t] = scoreLCS(targetTokens, predTokens)
		case RougeLsum:
			score, err := s.scoreSummaryLCS(target, prediction)
			if err != nil {
				return nil, fmt.Errorf("score %s: %w", t, err)
			}
			result[t] = score
		default:
			n, err := t.order()
			if err != nil {
				return nil, err
			}
			result[t] = scoreNGrams(targetTokens, predTokens, n)
		}
	}
	return result, nil
}

// needsTokens reports whether any configured type works on whole-text tokens.
func (s *Scorer) needsTokens() bool {
	for _, t := range s.types {
		if t != RougeLsum {
			return true
		}
	}
	return false
}

// scoreSummaryLCS tokenizes each sentence and computes summary-level LCS.
func (s *Scorer) scoreSummaryLCS(target, prediction string) (Score, error) {
	targetSents, err := sentencesOf(target, s.splitSummaries)
	if err != nil {
		return Score{}, err
	}
	predSents, err := sentencesOf(prediction, s.splitSummaries)
	if err != nil {
		return Score{}, err
	}
	return summaryLevelLCS(s.tokenizeAll(targetSents), s.tokenizeAll(predSents)), nil
}

func (s *Scorer) tokenizeAll(sents []string) [][]string {
	out := make([][]string, 0, len(sents))
	for _, sent := range sents {
		out = append(out, s.tokenizer.Tokenize(sent))
	}
	return out
}
