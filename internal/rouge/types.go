//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//

package rouge

import (
	"fmt"
	"strconv"
	"strings"
)

// Type identifies a ROUGE variant such as "rouge1", "rougeL" or "rougeLsum".
type Type string

// Well-known ROUGE types.
const (
	// Rouge1 measures unigram overlap.
	Rouge1 Type = "rouge1"
	// Rouge2 measures bigram overlap.
	Rouge2 Type = "rouge2"
	// RougeL measures the longest common subsequence of the two token sequences.
	RougeL Type = "rougeL"
	// RougeLsum measures summary-level LCS over sentences.
	RougeLsum Type = "rougeLsum"
)

// DefaultTypes are the types computed when none are configured.
var DefaultTypes = []Type{Rouge1, Rouge2, RougeL}

// Validate reports whether t is a supported ROUGE type.
func (t Type) Validate() error {
	if t == RougeL || t == RougeLsum {
		return nil
	}
	_, err := t.order()
	return err
}

// order returns N for a rougeN type.
func (t Type) order() (int, error) {
	s := string(t)
	if !strings.HasPrefix(s, "rouge") {
		return 0, fmt.Errorf("invalid rouge type: %s", s)
	}
	nStr := strings.TrimPrefix(s, "rouge")
	if nStr == "" {
		return 0, fmt.Errorf("invalid rouge type: %s", s)
	}
	n, err := strconv.Atoi(nStr)
	if err != nil || n <= 0 || strconv.Itoa(n) != nStr {
		return 0, fmt.Errorf("invalid rouge type: %s", s)
	}
	return n, nil
}
