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

// SoundChangeRule is one fully built rule: a rule pattern to find sites,
// and an output pattern to concretize at each accepted site, per
// spec.md §3/§4.7.
type SoundChangeRule struct {
	Shift  Shift
	Output Pattern
	Match  *RulePattern
	Pos    SourcePos
}

// RuleLineKind tags a built RuleLine, mirroring the lexer's
// LineResultKind one stage further downstream.
type RuleLineKind int

const (
	RuleLineEmpty RuleLineKind = iota
	RuleLineIO
	RuleLineRule
)

// RuleLine is one fully processed source line: either nothing (a comment
// or blank line), an I/O event (PRINT/GET/GET_AS_CODE) already handled
// during lexing, or a built rule ready for the applier.
type RuleLine struct {
	Kind RuleLineKind
	IO   IOEvent
	Rule *SoundChangeRule
}

// BuildRuleLine checks and builds a lexed line into a RuleLine.
func BuildRuleLine(lr LineResult, pos SourcePos) (RuleLine, error) {
	switch lr.Kind {
	case ResultEmpty:
		return RuleLine{Kind: RuleLineEmpty}, nil
	case ResultIOEvent:
		return RuleLine{Kind: RuleLineIO, IO: lr.IO}, nil
	case ResultIR:
		cl, err := CheckTokens(lr.Tokens, pos)
		if err != nil {
			return RuleLine{}, err
		}
		rule, err := BuildRule(cl, pos)
		if err != nil {
			return RuleLine{}, err
		}
		return RuleLine{Kind: RuleLineRule, Rule: rule}, nil
	default:
		return RuleLine{}, pos.errorf("%w: unknown line result kind", ErrUnexpectedToken)
	}
}

// BuildRule lowers a checked line into a SoundChangeRule. Grounded on
// original_source/src/rules/sound_change_rule.rs and src/rules/mod.rs.
func BuildRule(cl CheckedLine, pos SourcePos) (*SoundChangeRule, error) {
	for _, t := range cl.Input {
		if t.Kind == TokGap {
			return nil, pos.errorf("%w", ErrGapOutsideCond)
		}
	}

	inputPat, err := BuildPatternList(cl.Input, pos)
	if err != nil {
		return nil, err
	}
	outputPat, err := BuildPatternList(cl.Output, pos)
	if err != nil {
		return nil, err
	}
	if cl.Shift.Dir == RTL {
		reverseForRTL(inputPat)
	}

	conds := make([]*Condition, 0, len(cl.Conds))
	for _, chain := range cl.Conds {
		c, err := BuildConditionChain(chain, pos)
		if err != nil {
			return nil, err
		}
		conds = append(conds, c)
	}
	if len(conds) == 0 {
		conds = []*Condition{emptyPatternCondition()}
	}

	anticonds := make([]*Condition, 0, len(cl.Anticonds))
	for _, chain := range cl.Anticonds {
		c, err := BuildConditionChain(chain, pos)
		if err != nil {
			return nil, err
		}
		anticonds = append(anticonds, c)
	}

	rp := NewRulePattern(inputPat, conds, anticonds, cl.Shift.Dir)
	return &SoundChangeRule{Shift: cl.Shift, Output: outputPat, Match: rp, Pos: pos}, nil
}

// emptyPatternCondition is the unconditional environment synthesized
// when a rule supplies no cond clauses, per spec.md §4.7.
func emptyPatternCondition() *Condition {
	return &Condition{Focus: FocusPattern, Left: NewListPattern(nil), Right: NewListPattern(nil)}
}
