//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//

package rouge

import (
	"regexp"
	"strings"
)

var (
	// nonAlphaNumRE matches runs of characters outside [a-z0-9].
	nonAlphaNumRE = regexp.MustCompile(`[^a-z0-9]+`)
	// validTokenRE matches a token made only of lowercase ASCII letters and digits.
	validTokenRE = regexp.MustCompile(`^[a-z0-9]+$`)
)

// minStemLength is the shortest token length that is passed to the stemmer.
const minStemLength = 4

// Tokenizer splits text into tokens.
type Tokenizer interface {
	// Tokenize splits input text into tokens.
	Tokenize(text string) []string
}

// tokenizer lowercases, drops punctuation and optionally stems, the same way
// google-research/rouge tokenizes English text.
type tokenizer struct {
	useStemmer bool
}

func newTokenizer(useStemmer bool) *tokenizer {
	return &tokenizer{useStemmer: useStemmer}
}

// Tokenize implements Tokenizer.
func (t *tokenizer) Tokenize(text string) []string {
	text = nonAlphaNumRE.ReplaceAllString(strings.ToLower(text), " ")
	fields := strings.Fields(text)
	tokens := fields[:0]
	for _, tok := range fields {
		if t.useStemmer && len(tok) >= minStemLength {
			tok = stem(tok)
		}
		if tok == "" || !validTokenRE.MatchString(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
