//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//

package rouge

import "strings"

// irregularForms are the NLTK_EXTENSIONS exceptions applied before the Porter steps.
var irregularForms = map[string]string{
	"sky":      "sky",
	"skies":    "sky",
	"dying":    "die",
	"lying":    "lie",
	"tying":    "tie",
	"news":     "news",
	"inning":   "inning",
	"innings":  "inning",
	"outing":   "outing",
	"outings":  "outing",
	"canning":  "canning",
	"cannings": "canning",
	"howe":     "howe",
	"proceed":  "proceed",
	"exceed":   "exceed",
	"succeed":  "succeed",
}

// porterSteps run in order on every word that is not an irregular form.
var porterSteps = []func(string) string{
	step1a, step1b, step1c, step2, step3, step4, step5a, step5b,
}

// stem applies the NLTK_EXTENSIONS flavour of the Porter stemmer to a
// lowercase ASCII word.
func stem(word string) string {
	word = strings.ToLower(word)
	if len(word) <= 2 {
		return word
	}
	if base, ok := irregularForms[word]; ok {
		return base
	}
	for _, step := range porterSteps {
		word = step(word)
	}
	return word
}

// suffixRule rewrites suffix to replacement when cond accepts the remaining stem.
type suffixRule struct {
	suffix      string
	replacement string
	cond        func(stem string) bool
}

// applyRules applies the first rule whose suffix matches. When that rule's
// condition fails the word is returned unchanged and later rules are not tried.
func applyRules(word string, rules []suffixRule) string {
	for _, r := range rules {
		if !strings.HasSuffix(word, r.suffix) {
			continue
		}
		stem := word[:len(word)-len(r.suffix)]
		if r.cond == nil || r.cond(stem) {
			return stem + r.replacement
		}
		return word
	}
	return word
}

func isConsonant(word string, i int) bool {
	if i < 0 || i >= len(word) {
		return false
	}
	switch word[i] {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	case 'y':
		return i == 0 || !isConsonant(word, i-1)
	}
	return true
}

func containsVowel(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isConsonant(s, i) {
			return true
		}
	}
	return false
}

// measure returns the Porter m, the number of vowel-to-consonant transitions.
func measure(s string) int {
	m := 0
	prevVowel := false
	for i := 0; i < len(s); i++ {
		if isConsonant(s, i) {
			if prevVowel {
				m++
			}
			prevVowel = false
			continue
		}
		prevVowel = true
	}
	return m
}

func positiveMeasure(s string) bool { return measure(s) > 0 }

func measureAbove1(s string) bool { return measure(s) > 1 }

func endsDoubleConsonant(word string) bool {
	n := len(word)
	return n >= 2 && word[n-1] == word[n-2] && isConsonant(word, n-1)
}

// endsCVC reports a consonant-vowel-consonant ending whose last letter is not w, x or y.
func endsCVC(word string) bool {
	n := len(word)
	if n >= 3 && isConsonant(word, n-3) && !isConsonant(word, n-2) && isConsonant(word, n-1) {
		switch word[n-1] {
		case 'w', 'x', 'y':
		default:
			return true
		}
	}
	return n == 2 && !isConsonant(word, 0) && isConsonant(word, 1)
}

func step1a(word string) string {
	if len(word) == 4 && strings.HasSuffix(word, "ies") {
		return word[:1] + "ie"
	}
	return applyRules(word, []suffixRule{
		{suffix: "sses", replacement: "ss"},
		{suffix: "ies", replacement: "i"},
		{suffix: "ss", replacement: "ss"},
		{suffix: "s"},
	})
}

func step1b(word string) string {
	if strings.HasSuffix(word, "ied") {
		if len(word) == 4 {
			return word[:1] + "ie"
		}
		return word[:len(word)-3] + "i"
	}
	if strings.HasSuffix(word, "eed") {
		stem := word[:len(word)-3]
		if positiveMeasure(stem) {
			return stem + "ee"
		}
		return word
	}

	var stem string
	switch {
	case strings.HasSuffix(word, "ed") && containsVowel(word[:len(word)-2]):
		stem = word[:len(word)-2]
	case strings.HasSuffix(word, "ing") && containsVowel(word[:len(word)-3]):
		stem = word[:len(word)-3]
	default:
		return word
	}

	switch {
	case strings.HasSuffix(stem, "at"), strings.HasSuffix(stem, "bl"), strings.HasSuffix(stem, "iz"):
		return stem + "e"
	case endsDoubleConsonant(stem):
		switch stem[len(stem)-1] {
		case 'l', 's', 'z':
			return stem
		}
		return stem[:len(stem)-1]
	case measure(stem) == 1 && endsCVC(stem):
		return stem + "e"
	}
	return stem
}

func step1c(word string) string {
	return applyRules(word, []suffixRule{{
		suffix:      "y",
		replacement: "i",
		cond: func(stem string) bool {
			return len(stem) > 1 && isConsonant(stem, len(stem)-1)
		},
	}})
}

var step2Rules = []suffixRule{
	{"ational", "ate", positiveMeasure},
	{"tional", "tion", positiveMeasure},
	{"enci", "ence", positiveMeasure},
	{"anci", "ance", positiveMeasure},
	{"izer", "ize", positiveMeasure},
	{"bli", "ble", positiveMeasure},
	{"alli", "al", positiveMeasure},
	{"entli", "ent", positiveMeasure},
	{"eli", "e", positiveMeasure},
	{"ousli", "ous", positiveMeasure},
	{"ization", "ize", positiveMeasure},
	{"ation", "ate", positiveMeasure},
	{"ator", "ate", positiveMeasure},
	{"alism", "al", positiveMeasure},
	{"iveness", "ive", positiveMeasure},
	{"fulness", "ful", positiveMeasure},
	{"ousness", "ous", positiveMeasure},
	{"aliti", "al", positiveMeasure},
	{"iviti", "ive", positiveMeasure},
	{"biliti", "ble", positiveMeasure},
	{"fulli", "ful", positiveMeasure},
	// The measure for "logi" is taken on the stem including its "l".
	{"logi", "log", func(stem string) bool { return positiveMeasure(stem + "l") }},
}

func step2(word string) string {
	if strings.HasSuffix(word, "alli") && positiveMeasure(word[:len(word)-4]) {
		return step2(word[:len(word)-4] + "al")
	}
	return applyRules(word, step2Rules)
}

var step3Rules = []suffixRule{
	{"icate", "ic", positiveMeasure},
	{"ative", "", positiveMeasure},
	{"alize", "al", positiveMeasure},
	{"iciti", "ic", positiveMeasure},
	{"ical", "ic", positiveMeasure},
	{"ful", "", positiveMeasure},
	{"ness", "", positiveMeasure},
}

func step3(word string) string {
	return applyRules(word, step3Rules)
}

var step4Rules = []suffixRule{
	{"al", "", measureAbove1},
	{"ance", "", measureAbove1},
	{"ence", "", measureAbove1},
	{"er", "", measureAbove1},
	{"ic", "", measureAbove1},
	{"able", "", measureAbove1},
	{"ible", "", measureAbove1},
	{"ant", "", measureAbove1},
	{"ement", "", measureAbove1},
	{"ment", "", measureAbove1},
	{"ent", "", measureAbove1},
	{"ion", "", func(stem string) bool {
		n := len(stem)
		return measureAbove1(stem) && n > 0 && (stem[n-1] == 's' || stem[n-1] == 't')
	}},
	{"ou", "", measureAbove1},
	{"ism", "", measureAbove1},
	{"ate", "", measureAbove1},
	{"iti", "", measureAbove1},
	{"ous", "", measureAbove1},
	{"ive", "", measureAbove1},
	{"ize", "", measureAbove1},
}

func step4(word string) string {
	return applyRules(word, step4Rules)
}

func step5a(word string) string {
	if !strings.HasSuffix(word, "e") {
		return word
	}
	stem := word[:len(word)-1]
	m := measure(stem)
	if m > 1 || (m == 1 && !endsCVC(stem)) {
		return stem
	}
	return word
}

func step5b(word string) string {
	if strings.HasSuffix(word, "ll") && measureAbove1(word[:len(word)-1]) {
		return word[:len(word)-1]
	}
	return word
}
