//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//

package rouge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizer_IrregularForms(t *testing.T) {
	tokens := newTokenizer(true).Tokenize("skies dying lying tying innings outings cannings")
	assert.Equal(t, []string{"sky", "die", "lie", "tie", "inning", "outing", "canning"}, tokens)
}

func TestTokenizer_ExtensionRules(t *testing.T) {
	tokens := newTokenizer(true).Tokenize("dies died spied enjoy")
	assert.Equal(t, []string{"die", "die", "spi", "enjoy"}, tokens)
}

func TestTokenizer_CaseAndPunctuation(t *testing.T) {
	tokens := newTokenizer(false).Tokenize("Hello, WORLD! It's 2025.")
	assert.Equal(t, []string{"hello", "world", "it", "s", "2025"}, tokens)
}

func TestTokenizer_Empty(t *testing.T) {
	assert.Empty(t, newTokenizer(true).Tokenize(""))
	assert.Empty(t, newTokenizer(true).Tokenize(" .,;! "))
}

func TestTokenizer_WithStemmer(t *testing.T) {
	tokens := newTokenizer(true).Tokenize("the friends had a meeting")
	assert.Equal(t, []string{"the", "friend", "had", "a", "meet"}, tokens)
}

func TestTokenizer_ShortTokensAreNotStemmed(t *testing.T) {
	assert.Equal(t, []string{"cat", "run", "was"}, newTokenizer(true).Tokenize("cat run was"))
	assert.Equal(t, []string{"cat", "run"}, newTokenizer(true).Tokenize("cats running"))
}

func TestStem(t *testing.T) {
	cases := map[string]string{
		"cats":       "cat",
		"running":    "run",
		"hopping":    "hop",
		"hoping":     "hope",
		"caresses":   "caress",
		"ponies":     "poni",
		"relational": "relat",
		"agreed":     "agre",
		"happy":      "happi",
		"falling":    "fall",
		"news":       "news",
		"at":         "at",
	}
	for in, want := range cases {
		assert.Equal(t, want, stem(in), in)
	}
}

func TestMeasure(t *testing.T) {
	assert.Equal(t, 0, measure("tr"))
	assert.Equal(t, 0, measure("ee"))
	assert.Equal(t, 1, measure("trouble"))
	assert.Equal(t, 2, measure("troubles"))
}
