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

// Condition is one `/expr` or `//expr` clause, possibly chained with
// further `&expr`/`&!expr` links, per spec.md §4.6. Pattern-focus checks
// Left against the phones preceding the rewrite site and Right against
// the phones following; match-focus concretizes Left under the current
// bindings and matches Right against that concrete phone list, requiring
// equal length. And links the next clause in the chain; Negated marks
// that link as an and-not (it must have no solution, and contributes no
// bindings, per SPEC_FULL.md's Open Question decision #1).
//
// Grounded on original_source/src/rules/conditions.rs and
// src/matcher/patterns/cond.rs.
type Condition struct {
	Focus Focus
	Left  Pattern
	Right Pattern

	And     *Condition
	Negated bool

	selfStarted bool
	failed      bool
	concrete    []Phone
}

// BuildCondition lowers one checker Region into a Condition, splitting
// its tokens on the single focus marker.
func BuildCondition(r Region, pos SourcePos) (*Condition, error) {
	left, right, focus, err := splitFocus(r.Tokens, pos)
	if err != nil {
		return nil, err
	}
	// Unlabeled scopes of a condition hang off an anchor of their own (a
	// label name is never empty), so their structural IDs never coincide
	// with, and never agree with, the input's or output's.
	anchor := NamedScopeID("")
	ctr := &scopeCounters{}
	leftPat, err := buildWithCounters(left, ctr, &anchor, pos)
	if err != nil {
		return nil, err
	}
	rightPat, err := buildWithCounters(right, ctr, &anchor, pos)
	if err != nil {
		return nil, err
	}
	if focus == FocusPattern {
		// Left always scans the phones preceding the site right-to-left,
		// regardless of the rule's own shift direction, so its items are
		// paired with the reversed view the same way a right-to-left rule
		// pairs its whole input (spec.md §4.4's direction handling).
		reverseForRTL(leftPat)
	}
	return &Condition{Focus: focus, Left: leftPat, Right: rightPat}, nil
}

// BuildConditionChain lowers one cond/anticond chain (a BreakCond or
// BreakAnticond region followed by zero or more BreakAnd/BreakAndNot
// regions) into a linked Condition list.
func BuildConditionChain(chain []Region, pos SourcePos) (*Condition, error) {
	if len(chain) == 0 {
		return nil, pos.errorf("%w: empty condition chain", ErrMissingFocus)
	}
	root, err := BuildCondition(chain[0], pos)
	if err != nil {
		return nil, err
	}
	tail := root
	for _, r := range chain[1:] {
		c, err := BuildCondition(r, pos)
		if err != nil {
			return nil, err
		}
		c.Negated = r.Break.Kind == BreakAndNot
		tail.And = c
		tail = c
	}
	return root, nil
}

func splitFocus(tokens []Token, pos SourcePos) (left, right []Token, focus Focus, err error) {
	depth := 0
	for i, t := range tokens {
		switch t.Kind {
		case TokScopeStart:
			depth++
		case TokScopeEnd:
			depth--
		case TokFocus:
			if depth == 0 {
				return tokens[:i], tokens[i+1:], t.Focus, nil
			}
		}
	}
	return nil, nil, FocusNone, pos.errorf("%w", ErrMissingFocus)
}

// selfReset resets just this node's own matching state (not the rest of
// the chain).
func (c *Condition) selfReset() {
	c.selfStarted = false
	c.failed = false
	c.concrete = nil
	c.Left.Reset()
	c.Right.Reset()
}

// selfNextMatch advances this node's own (focus-only) match, ignoring
// And. Pattern-focus drives Left and Right as an independent two-stage
// pivot-recursion, exactly the shape ListPattern uses for concatenation,
// since a joint (left, right) solution is conjunctive in the same way.
func (c *Condition) selfNextMatch(phones []Phone, leftEnd, rightStart int, choices Choices) (OwnedChoices, bool) {
	if c.Focus == FocusMatch {
		return c.selfNextMatchConcrete(phones, choices)
	}
	return c.selfNextMatchPattern(phones, leftEnd, rightStart, choices)
}

func (c *Condition) selfNextMatchPattern(phones []Phone, leftEnd, rightStart int, choices Choices) (OwnedChoices, bool) {
	if !c.selfStarted {
		c.selfStarted = true
		c.Left.Reset()
		c.Right.Reset()
	}
	leftView := NewPhoneView(phones, leftEnd-1, RTL)
	rightView := NewPhoneView(phones, rightStart, LTR)

	for {
		dl, ok := c.Left.NextMatch(leftView, choices)
		if !ok {
			return OwnedChoices{}, false
		}
		merged := choices.Merge(dl)
		dr, ok := c.Right.NextMatch(rightView, merged)
		if ok {
			return mergeOwned(dl, dr), true
		}
		c.Right.Reset()
	}
}

func (c *Condition) selfNextMatchConcrete(phones []Phone, choices Choices) (OwnedChoices, bool) {
	if c.failed {
		return OwnedChoices{}, false
	}
	if !c.selfStarted {
		c.selfStarted = true
		concrete, ok := Concretize(c.Left, choices)
		if !ok {
			c.failed = true
			return OwnedChoices{}, false
		}
		c.concrete = concrete
		c.Right.Reset()
	}

	view := NewPhoneView(c.concrete, 0, LTR)
	for {
		d, ok := c.Right.NextMatch(view, choices)
		if !ok {
			c.failed = true
			return OwnedChoices{}, false
		}
		if c.Right.Len() == len(c.concrete) {
			return d, true
		}
	}
}

// exists drives c's own match exhaustively from a clean state, discards
// every binding it would have produced, and reports only whether a
// solution exists -- the evaluation mode an and-not link uses, per
// SPEC_FULL.md's Open Question decision #1.
func (c *Condition) exists(phones []Phone, leftEnd, rightStart int, choices Choices) bool {
	c.selfReset()
	_, ok := c.selfNextMatch(phones, leftEnd, rightStart, choices)
	c.selfReset()
	return ok
}

func resetChain(c *Condition) {
	for n := c; n != nil; n = n.And {
		n.selfReset()
	}
}

// NextMatch drives the whole chain: positive links backtrack and
// contribute bindings like List's concatenation; and-not links are
// existence gates that contribute nothing and, if a solution exists for
// them, force the predecessor to retry.
func (c *Condition) NextMatch(phones []Phone, leftEnd, rightStart int, choices Choices) (OwnedChoices, bool) {
	return chainNextMatch(c, phones, leftEnd, rightStart, choices)
}

func chainNextMatch(node *Condition, phones []Phone, leftEnd, rightStart int, choices Choices) (OwnedChoices, bool) {
	if node == nil {
		return OwnedChoices{}, true
	}

	if node.Negated {
		if node.exists(phones, leftEnd, rightStart, choices) {
			return OwnedChoices{}, false
		}
		return chainNextMatch(node.And, phones, leftEnd, rightStart, choices)
	}

	for {
		d, ok := node.selfNextMatch(phones, leftEnd, rightStart, choices)
		if !ok {
			return OwnedChoices{}, false
		}
		merged := choices.Merge(d)
		dRest, ok := chainNextMatch(node.And, phones, leftEnd, rightStart, merged)
		if ok {
			return mergeOwned(d, dRest), true
		}
		resetChain(node.And)
	}
}

func (c *Condition) Reset() { resetChain(c) }
