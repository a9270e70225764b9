//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//

package rouge

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	sentencesdata "github.com/neurosnap/sentences/data"
)

var (
	punktOnce      sync.Once
	punktTokenizer *sentences.DefaultSentenceTokenizer
	punktErr       error
)

// sentencesOf splits text for rougeLsum. With punkt it uses the English Punkt
// model, otherwise every line is a sentence. Empty sentences are dropped.
func sentencesOf(text string, punkt bool) ([]string, error) {
	var raw []string
	if punkt {
		list, err := punktSentences(text)
		if err != nil {
			return nil, err
		}
		raw = list
	} else {
		raw = strings.Split(text, "\n")
	}
	out := raw[:0]
	for _, s := range raw {
		if s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

// punktSentences splits English text the way NLTK's sent_tokenize does.
func punktSentences(text string) ([]string, error) {
	punktOnce.Do(func() {
		b, err := sentencesdata.Asset("data/english.json")
		if err != nil {
			punktErr = fmt.Errorf("load english punkt data: %w", err)
			return
		}
		training, err := sentences.LoadTraining(b)
		if err != nil {
			punktErr = fmt.Errorf("parse english punkt data: %w", err)
			return
		}
		punktTokenizer = sentences.NewSentenceTokenizer(training)
	})
	if punktErr != nil {
		return nil, punktErr
	}
	if punktTokenizer == nil {
		return nil, errors.New("english sentence tokenizer is nil")
	}

	var out []string
	for _, sent := range punktTokenizer.Tokenize(text) {
		for _, s := range splitLeadingPeriods(strings.TrimSpace(sent.Text)) {
			if s != "" {
				out = append(out, s)
			}
		}
	}
	return out, nil
}

// splitLeadingPeriods emits each leading standalone "." as its own sentence,
// matching NLTK's handling of ". ." runs.
func splitLeadingPeriods(s string) []string {
	var out []string
	for {
		s = strings.TrimLeft(s, asciiSpace)
		if s == "" || s[0] != '.' {
			break
		}
		if len(s) > 1 && !strings.ContainsRune(asciiSpace, rune(s[1])) {
			break
		}
		out = append(out, ".")
		s = s[1:]
	}
	if s != "" {
		out = append(out, s)
	}
	return out
}

const asciiSpace = " \t\n\r\v\f"
