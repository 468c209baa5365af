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

import "github.com/golang/glog"

// scopeCounters is the ordinal triple (optional, selection, any) that the
// builder assigns to unlabeled scopes and Any tokens, per spec.md §4.4. A
// fresh instance is created for each input/output/condition region and for
// the body of every nested scope; the nested scope's own ScopeID becomes
// the parent of the IDs assigned inside it, so equal ordinals at different
// nesting depths never collide. A condition's IDs additionally hang off an
// anchor of their own (see BuildCondition), so only the input and output
// share structural IDs.
type scopeCounters struct {
	optional, selection, any int
}

// BuildPatternList lowers one region's checked token list into a pattern
// tree, with a fresh counter triple and no enclosing parent scope.
// Grounded on original_source/src/matcher/patterns/ir_to_patterns/mod.rs.
func BuildPatternList(tokens []Token, pos SourcePos) (Pattern, error) {
	return buildWithCounters(tokens, &scopeCounters{}, nil, pos)
}

// buildWithCounters is the shared entry point so that condition.go can
// thread one counter triple across a condition's left and right token
// lists (both sides of an expr share the same "condition scope").
func buildWithCounters(tokens []Token, ctr *scopeCounters, parent *ScopeID, pos SourcePos) (Pattern, error) {
	items, err := buildItems(tokens, ctr, parent, pos)
	if err != nil {
		return nil, err
	}
	if glog.V(2) {
		glog.Infof("%s: built pattern list of %d item(s)", pos, len(items))
	}
	return NewListPattern(items), nil
}

func buildItems(tokens []Token, ctr *scopeCounters, parent *ScopeID, pos SourcePos) ([]Pattern, error) {
	var items []Pattern
	var label string
	hasLabel := false

	takeLabel := func() (string, bool) {
		l, h := label, hasLabel
		label, hasLabel = "", false
		return l, h
	}

	i := 0
	for i < len(tokens) {
		t := tokens[i]
		switch t.Kind {
		case TokLabel:
			label, hasLabel = t.Label, true
			i++

		case TokPhone:
			items = append(items, NewPhonePattern(t.Phone))
			i++

		case TokAny:
			l, h := takeLabel()
			id := nextAnyID(ctr, parent, l, h)
			items = append(items, NewNonBoundPattern(&id))
			i++

		case TokGap:
			l, h := takeLabel()
			items = append(items, NewGapPattern(l, h))
			i++

		case TokScopeStart:
			end, err := matchingScopeEnd(tokens, i)
			if err != nil {
				return nil, pos.errorf("%w", err)
			}
			inner := tokens[i+1 : end]
			l, h := takeLabel()
			pat, err := buildScope(t.Scope, inner, ctr, parent, l, h, pos)
			if err != nil {
				return nil, err
			}
			items = append(items, pat)
			i = end + 1

		default:
			return nil, pos.errorf("%w: %v", ErrUnexpectedToken, t)
		}
	}

	if hasLabel {
		return nil, pos.errorf("%w: label %q", ErrLabelNotScope, label)
	}

	return items, nil
}

// matchingScopeEnd finds the TokScopeEnd closing the TokScopeStart at
// start, counting bracket depth generically (mixed-kind nesting, e.g.
// `([a,b])`, is legal per checkScopeBalance).
func matchingScopeEnd(tokens []Token, start int) (int, error) {
	depth := 0
	for i := start; i < len(tokens); i++ {
		switch tokens[i].Kind {
		case TokScopeStart:
			depth++
		case TokScopeEnd:
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return -1, ErrScopeImbalance
}

func buildScope(kind ScopeKind, inner []Token, ctr *scopeCounters, parent *ScopeID, label string, hasLabel bool, pos SourcePos) (Pattern, error) {
	switch kind {
	case ScopeOptional:
		id := nextOptionalID(ctr, parent, label, hasLabel)
		body, err := buildWithCounters(inner, &scopeCounters{}, &id, pos)
		if err != nil {
			return nil, err
		}
		return NewOptionalPattern(body, &id), nil

	case ScopeSelection:
		id := nextSelectionID(ctr, parent, label, hasLabel)
		options := splitOnArgSep(inner)
		if len(options) == 0 {
			options = [][]Token{nil}
		}
		opts := make([]Pattern, 0, len(options))
		for _, opt := range options {
			p, err := buildWithCounters(opt, &scopeCounters{}, &id, pos)
			if err != nil {
				return nil, err
			}
			opts = append(opts, p)
		}
		return NewSelectionPattern(opts, &id), nil

	case ScopeRepetition:
		return buildRepetition(inner, ctr, parent, label, hasLabel, pos)

	default:
		return nil, pos.errorf("%w: unknown scope kind", ErrUnexpectedToken)
	}
}

// splitOnArgSep splits a selection's inner tokens into options on the
// top-level (bracket-depth-0) arg-separator token.
func splitOnArgSep(tokens []Token) [][]Token {
	var options [][]Token
	var cur []Token
	depth := 0
	for _, t := range tokens {
		switch t.Kind {
		case TokScopeStart:
			depth++
		case TokScopeEnd:
			depth--
		}
		if depth == 0 && t.Kind == TokArgSep {
			options = append(options, cur)
			cur = nil
			continue
		}
		cur = append(cur, t)
	}
	options = append(options, cur)
	return options
}

// buildRepetition splits a `[...]` body on its first bracket-depth-0 '!'
// negation marker into the inclusive span and, if present, the exclusive
// span, per spec.md §4.4's "inclusive patterns up to an optional negation
// marker, then their exclusive patterns".
func buildRepetition(inner []Token, ctr *scopeCounters, parent *ScopeID, label string, hasLabel bool, pos SourcePos) (Pattern, error) {
	inclTokens, exclTokens, hasExcl := splitRepetitionBody(inner)
	if len(inclTokens) == 0 {
		return nil, pos.errorf("%w", ErrEmptyRepetition)
	}
	if hasExcl && len(exclTokens) == 0 {
		return nil, pos.errorf("%w", ErrEmptyExclusion)
	}

	// A structural id is assigned purely as a parent anchor for any nested
	// scopes inside inclusive/exclusive; repetition agreement itself goes
	// through the label-keyed Choices.repetition map, not a ScopeID.
	repID := StructuralScopeID(ctr.any, StructAny, parent)
	ctr.any++

	incl, err := buildWithCounters(inclTokens, &scopeCounters{}, &repID, pos)
	if err != nil {
		return nil, err
	}

	var excl Pattern
	if hasExcl {
		excl, err = buildWithCounters(exclTokens, &scopeCounters{}, &repID, pos)
		if err != nil {
			return nil, err
		}
	}

	return NewRepetitionPattern(incl, excl, label, hasLabel), nil
}

func splitRepetitionBody(tokens []Token) (incl, excl []Token, hasExcl bool) {
	depth := 0
	for i, t := range tokens {
		switch t.Kind {
		case TokScopeStart:
			depth++
		case TokScopeEnd:
			depth--
		case TokNegate:
			if depth == 0 {
				return tokens[:i], tokens[i+1:], true
			}
		}
	}
	return tokens, nil, false
}

func nextAnyID(ctr *scopeCounters, parent *ScopeID, label string, hasLabel bool) ScopeID {
	if hasLabel {
		return NamedScopeID(label)
	}
	id := StructuralScopeID(ctr.any, StructAny, parent)
	ctr.any++
	return id
}

func nextOptionalID(ctr *scopeCounters, parent *ScopeID, label string, hasLabel bool) ScopeID {
	if hasLabel {
		return NamedScopeID(label)
	}
	id := StructuralScopeID(ctr.optional, StructOptional, parent)
	ctr.optional++
	return id
}

func nextSelectionID(ctr *scopeCounters, parent *ScopeID, label string, hasLabel bool) ScopeID {
	if hasLabel {
		return NamedScopeID(label)
	}
	id := StructuralScopeID(ctr.selection, StructSelection, parent)
	ctr.selection++
	return id
}
