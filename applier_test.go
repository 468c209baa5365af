// Copyright 2015 Google Inc. All rights reserved
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sca

import (
	"errors"
	"testing"
)

func applyRuleString(t *testing.T, rule, input string, limit ApplicationLimit) (string, error) {
	t.Helper()
	rl := buildRuleLine(t, NewStore(), rule, SourcePos{Lineno: 1})
	out, err := ApplyRule(rl.Rule, BuildPhoneList(input), limit)
	if err != nil {
		return "", err
	}
	return PhonesToString(out), nil
}

func TestApplyRuleZeroLengthMatchAdvancesByOne(t *testing.T) {
	// (x) excluded is a zero-length match at every position after an "a";
	// each insertion has to still advance the scan past itself, or the
	// attempts limit would be exhausted rewriting the same spot forever.
	got, err := applyRuleString(t, "(x) >> y / a _", "aaa", ApplicationLimit{Kind: LimitAttempts, Attempts: 50})
	if err != nil {
		t.Fatalf("ApplyRule error = %v", err)
	}
	if got == "" {
		t.Fatalf("zero-length-friendly rule produced empty output")
	}
}

func TestApplyRuleBoundaryCoalescing(t *testing.T) {
	// Deleting the vowel between two boundary-adjacent consonants must not
	// leave a doubled boundary phone behind.
	got, err := applyRuleString(t, "a >> / # _ #", "p a t", DefaultApplicationLimit)
	if err != nil {
		t.Fatalf("ApplyRule error = %v", err)
	}
	if got != "p t" {
		t.Errorf("deleting the vowel between two boundaries = %q; want %q", got, "p t")
	}
}

func TestApplyRuleCoalescesAdjacentBoundariesAcrossSplice(t *testing.T) {
	got, err := applyRuleString(t, "a >> / _ #", "ba#", DefaultApplicationLimit)
	if err != nil {
		t.Fatalf("ApplyRule error = %v", err)
	}
	if got != "b#" {
		t.Errorf("deletion at a word boundary = %q; want %q (no doubled boundary)", got, "b#")
	}
}

func TestApplyRuleDirectionSymmetryForBoundaryFreeRules(t *testing.T) {
	ltr, err := applyRuleString(t, "a >> b", "aaa", DefaultApplicationLimit)
	if err != nil {
		t.Fatalf("LTR ApplyRule error = %v", err)
	}
	rtl, err := applyRuleString(t, "a << b", "aaa", DefaultApplicationLimit)
	if err != nil {
		t.Fatalf("RTL ApplyRule error = %v", err)
	}
	if ltr != "bbb" || rtl != "bbb" {
		t.Errorf("direction-agnostic literal replace: ltr=%q rtl=%q; want both %q", ltr, rtl, "bbb")
	}
}

func TestApplyRuleAttemptsLimitExceeded(t *testing.T) {
	_, err := applyRuleString(t, "{a, b} > {b, a}", "a", ApplicationLimit{Kind: LimitAttempts, Attempts: 5})
	if !errors.Is(err, ErrExceededLimit) {
		t.Fatalf("stay-rule under a 5-attempt limit error = %v; want ErrExceededLimit", err)
	}
}

func TestApplyRuleUnlimitedRunsToCompletion(t *testing.T) {
	got, err := applyRuleString(t, "a >> b", "aaaa", ApplicationLimit{Kind: LimitUnlimited})
	if err != nil {
		t.Fatalf("ApplyRule with an unlimited budget error = %v", err)
	}
	if got != "bbbb" {
		t.Errorf("ApplyRule with an unlimited budget = %q; want %q", got, "bbbb")
	}
}
