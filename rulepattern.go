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

// RulePattern wraps a rule's input pattern together with its condition
// alternatives and anti-condition blockers, driving the three nested
// loops described in spec.md §4.7: advance the input; for each yielded
// input match, try each cond (an OR of alternatives, each its own
// backtracking generator) in turn; for each cond binding, reject it if
// any anti-cond currently matches (anti-conds are a blanket AND of
// blockers, never contributing bindings).
//
// Grounded on original_source/src/matcher/rule_pattern.rs.
type RulePattern struct {
	Input     Pattern
	Conds     []*Condition
	AntiConds []*Condition
	Dir       Direction

	started    bool
	condIx     int
	matchStart int
	matchEnd   int
	afterInput Choices
}

// NewRulePattern builds a RulePattern. If conds is empty, the caller
// should first synthesize a single empty pattern-cond (an empty Left and
// Right under FocusPattern), per spec.md §4.7, so the rule fires
// unconditionally.
func NewRulePattern(input Pattern, conds, anticonds []*Condition, dir Direction) *RulePattern {
	return &RulePattern{Input: input, Conds: conds, AntiConds: anticonds, Dir: dir}
}

// NextMatch finds the rule's next accepted solution at the site anchored
// by view, relative to base bindings, returning the fully merged
// Choices and the matched span [matchStart, matchEnd) in phones'
// absolute indices.
func (rp *RulePattern) NextMatch(phones []Phone, anchor int, base Choices) (Choices, int, int, bool) {
	if !rp.started {
		rp.started = true
		if !rp.advanceInput(phones, anchor, base) {
			return Choices{}, 0, 0, false
		}
	}

	for {
		for rp.condIx < len(rp.Conds) {
			cond := rp.Conds[rp.condIx]
			dc, ok := cond.NextMatch(phones, rp.matchStart, rp.matchEnd, rp.afterInput)
			if !ok {
				rp.condIx++
				continue
			}

			merged := rp.afterInput.Merge(dc)
			blocked := false
			for _, ac := range rp.AntiConds {
				if ac.exists(phones, rp.matchStart, rp.matchEnd, merged) {
					blocked = true
					break
				}
			}
			if blocked {
				continue
			}
			return merged, rp.matchStart, rp.matchEnd, true
		}

		if !rp.advanceInput(phones, anchor, base) {
			return Choices{}, 0, 0, false
		}
	}
}

func (rp *RulePattern) advanceInput(phones []Phone, anchor int, base Choices) bool {
	view := NewPhoneView(phones, anchor, rp.Dir)
	d, ok := rp.Input.NextMatch(view, base)
	if !ok {
		return false
	}
	rp.afterInput = base.Merge(d)

	n := rp.Input.Len()
	if rp.Dir == LTR {
		rp.matchStart, rp.matchEnd = anchor, anchor+n
	} else {
		rp.matchStart, rp.matchEnd = anchor-n+1, anchor+1
	}

	for _, c := range rp.Conds {
		c.Reset()
	}
	for _, c := range rp.AntiConds {
		c.Reset()
	}
	rp.condIx = 0
	return true
}

// Len reports the currently matched input length.
func (rp *RulePattern) Len() int { return rp.Input.Len() }

func (rp *RulePattern) Reset() {
	rp.started = false
	rp.condIx = 0
	rp.Input.Reset()
	for _, c := range rp.Conds {
		c.Reset()
	}
	for _, c := range rp.AntiConds {
		c.Reset()
	}
}
