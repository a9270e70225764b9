//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//

// Package sentence splits paragraphs into sentences and words.
//
// Sentence boundaries are whitespace runs that directly follow '.', '!' or
// '?'. The package is independent of ROUGE scoring.
package sentence

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// terminators end a sentence when followed by whitespace and are trimmed from sentence edges.
const terminators = ".?!"

// Split returns the sentences of paragraph with leading and trailing
// terminators removed. Empty pieces are dropped before trimming, so a
// sentence made only of terminators is returned as "".
func Split(paragraph string) []string {
	var sentences []string
	start := 0
	for i := 0; i < len(paragraph); {
		r, size := utf8.DecodeRuneInString(paragraph[i:])
		if !unicode.IsSpace(r) || i == 0 || !isTerminator(paragraph[i-1]) {
			i += size
			continue
		}
		sentences = appendSentence(sentences, paragraph[start:i])
		for i < len(paragraph) {
			r, size = utf8.DecodeRuneInString(paragraph[i:])
			if !unicode.IsSpace(r) {
				break
			}
			i += size
		}
		start = i
	}
	return appendSentence(sentences, paragraph[start:])
}

// Words returns the whitespace-separated words of every sentence in
// paragraph, in sentence order then word order.
func Words(paragraph string) []string {
	words := []string{}
	for _, s := range Split(paragraph) {
		words = append(words, strings.Fields(s)...)
	}
	return words
}

func appendSentence(sentences []string, s string) []string {
	if s == "" {
		return sentences
	}
	return append(sentences, strings.Trim(s, terminators))
}

func isTerminator(b byte) bool {
	return strings.IndexByte(terminators, b) >= 0
}
