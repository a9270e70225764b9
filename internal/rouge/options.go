//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//

package rouge

// options holds internal configuration for a Scorer.
type options struct {
	// types holds the requested ROUGE types in output order.
	types []Type
	// useStemmer enables Porter stemming in the built-in tokenizer.
	useStemmer bool
	// splitSummaries enables Punkt sentence splitting for rougeLsum.
	splitSummaries bool
	// tokenizer overrides the built-in tokenizer when provided.
	tokenizer Tokenizer
}

// Option configures a Scorer.
type Option func(*options)

func newOptions(opt ...Option) *options {
	opts := &options{}
	for _, o := range opt {
		o(opts)
	}
	if len(opts.types) == 0 {
		opts.types = append([]Type(nil), DefaultTypes...)
	}
	return opts
}

// WithTypes sets the ROUGE types to compute. Duplicates are ignored.
func WithTypes(types ...Type) Option {
	return func(o *options) {
		o.types = o.types[:0]
		seen := make(map[Type]struct{}, len(types))
		for _, t := range types {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			o.types = append(o.types, t)
		}
	}
}

// WithStemmer enables or disables Porter stemming in the built-in tokenizer.
// It is ignored when a custom tokenizer is set.
func WithStemmer(useStemmer bool) Option {
	return func(o *options) {
		o.useStemmer = useStemmer
	}
}

// WithSplitSummaries splits texts into sentences with the Punkt tokenizer for rougeLsum.
// Without it rougeLsum treats each line as a sentence.
func WithSplitSummaries(splitSummaries bool) Option {
	return func(o *options) {
		o.splitSummaries = splitSummaries
	}
}

// WithTokenizer overrides the built-in tokenizer.
func WithTokenizer(tokenizer Tokenizer) Option {
	return func(o *options) {
		o.tokenizer = tokenizer
	}
}
