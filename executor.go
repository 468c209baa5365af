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
	"strings"

	"github.com/golang/glog"
)

// noCopy marks a type unsafe to copy by value after first use, the same
// convention sync.WaitGroup documents itself with; go vet flags a copy
// of any type embedding it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// buildLines tokenizes and builds every logical line of rules into
// ruleLines, sharing store across lines, driving getter for any GET /
// GET_AS_CODE command encountered. lineOffset is the 1-based line number
// of the first physical line in rules, so Extend can continue numbering
// across a prior source. Grounded on
// original_source/src/executor/appliable_rules/mod.rs's
// build_rules_with_tokenization_data and
// original_source/src/executor/mod.rs's build_line.
func buildLines(filename, rules string, lineOffset int, store *Store, getter Getter) ([]RuleLine, []string, error) {
	physical := strings.Split(rules, "\n")
	src := &sliceLineSource{lines: physical}

	var ruleLines []RuleLine
	lineNum := lineOffset

	for src.i < len(src.lines) {
		first := src.lines[src.i]
		src.i++
		pos := SourcePos{Filename: filename, Lineno: lineNum, Line: first}

		lr, err := LexLine(first, src, store, pos)
		if err != nil {
			return nil, nil, err
		}

		if lr.Kind == ResultIOEvent && (lr.IO.Kind == IOGet || lr.IO.Kind == IOGetAsCode) {
			text, gerr := getter.GetIO(lr.IO.Message)
			if gerr != nil {
				return nil, nil, pos.errorf("%w: %v", ErrIOFailure, gerr)
			}
			store.SetVariable(lr.IO.VarName, text, lr.IO.Kind == IOGetAsCode)
			lineNum += lr.LineCount
			continue
		}

		rl, err := BuildRuleLine(lr, pos)
		if err != nil {
			return nil, nil, err
		}
		if rl.Kind != RuleLineEmpty {
			ruleLines = append(ruleLines, rl)
		}
		lineNum += lr.LineCount
	}

	return ruleLines, physical, nil
}

// applyLines runs every built rule line's side effect (PRINT via
// runtime.PutIO, or ApplyRule against phones) in source order. Grounded
// on original_source/src/executor/runtime.rs's RuntimeApplier::apply_line.
func applyLines(ruleLines []RuleLine, phones []Phone, runtime Runtime) ([]Phone, error) {
	for _, rl := range ruleLines {
		switch rl.Kind {
		case RuleLineEmpty:
			continue
		case RuleLineIO:
			if rl.IO.Kind == IOPrint {
				if err := runtime.PutIO(rl.IO.Message, phones); err != nil {
					return nil, err
				}
			}
		case RuleLineRule:
			limit := runtime.LineApplicationLimit()
			next, err := ApplyRule(rl.Rule, phones, limit)
			if err != nil {
				return nil, err
			}
			phones = next
		}
	}
	return phones, nil
}

// AppliableRules is a rule source built once and appliable to any number
// of inputs. It owns the Store backing every built rule's
// definition/variable lookups, so it must not be copied:
// copying would let two AppliableRules values share (and race on) the
// same Store pointer while each believes it has sole ownership. Grounded
// on original_source/src/executor/appliable_rules/mod.rs's AppliableRules.
type AppliableRules struct {
	_ noCopy

	store       *Store
	ruleLines   []RuleLine
	sourceLines []string
	filename    string
}

// BuildAppliableRules tokenizes and builds every line of rules once.
func BuildAppliableRules(filename, rules string, getter Getter) (*AppliableRules, error) {
	store := NewStore()
	return buildAppliableRulesWith(filename, rules, 1, store, getter)
}

func buildAppliableRulesWith(filename, rules string, lineOffset int, store *Store, getter Getter) (*AppliableRules, error) {
	ruleLines, sourceLines, err := buildLines(filename, rules, lineOffset, store, getter)
	if err != nil {
		return nil, err
	}
	return &AppliableRules{store: store, ruleLines: ruleLines, sourceLines: sourceLines, filename: filename}, nil
}

// Extend builds next as a continuation of the existing source, appending
// its rules to ar. The Store is shared, so definitions from prior
// sources remain visible to the new lines. If next fails to build, ar's
// rules and source lines are left unchanged, but definitions made by next's
// lines before the failing one stay in the shared Store. Grounded on
// appliable_rules/mod.rs's extend.
func (ar *AppliableRules) Extend(filename, next string, getter Getter) error {
	lineOffset := len(ar.sourceLines) + 1
	ruleLines, sourceLines, err := buildLines(filename, next, lineOffset, ar.store, getter)
	if err != nil {
		return err
	}
	ar.ruleLines = append(ar.ruleLines, ruleLines...)
	ar.sourceLines = append(ar.sourceLines, sourceLines...)
	return nil
}

// Apply runs every built rule line against input's phones, returning the
// rewritten text. Grounded on appliable_rules/mod.rs's apply_fallible.
func (ar *AppliableRules) Apply(input string, runtime Runtime) (string, error) {
	phones := BuildPhoneList(input)

	runtime.OnStart()
	defer runtime.OnEnd()

	phones, err := applyLines(ar.ruleLines, phones, runtime)
	if err != nil {
		return "", err
	}
	return PhonesToString(phones), nil
}

// ApplyOrString is Apply with errors rendered into the returned string
// instead of propagated, matching appliable_rules/mod.rs's infallible
// apply wrapper used by simple callers.
func (ar *AppliableRules) ApplyOrString(input string, runtime Runtime) string {
	out, err := ar.Apply(input, runtime)
	if err != nil {
		return err.Error()
	}
	return out
}

// Source returns the original rule text, reassembled from its physical
// lines.
func (ar *AppliableRules) Source() string {
	return strings.Join(ar.sourceLines, "\n")
}

// Warnings returns the recoverable oddities noticed while building ar's
// rules (e.g. a DEFINE shadowing an earlier one), for a front end to
// surface without treating them as a build failure.
func (ar *AppliableRules) Warnings() []string {
	return ar.store.Warnings()
}

// LineByLineExecutor builds and applies one rule line at a time,
// interleaving tokenization and application instead of building the
// whole rule set up front. Grounded on
// original_source/src/executor/mod.rs's LineByLineExecuter.
type LineByLineExecutor struct {
	Runtime Runtime
	Getter  Getter
}

// NewLineByLineExecutor builds a LineByLineExecutor.
func NewLineByLineExecutor(runtime Runtime, getter Getter) *LineByLineExecutor {
	return &LineByLineExecutor{Runtime: runtime, Getter: getter}
}

// Apply builds and applies rules against input in a single pass,
// returning the rewritten text.
func (ex *LineByLineExecutor) Apply(filename, input, rules string) (string, error) {
	store := NewStore()
	phones := BuildPhoneList(input)

	physical := strings.Split(rules, "\n")
	src := &sliceLineSource{lines: physical}
	lineNum := 1

	ex.Runtime.OnStart()
	defer ex.Runtime.OnEnd()

	for src.i < len(src.lines) {
		first := src.lines[src.i]
		src.i++
		pos := SourcePos{Filename: filename, Lineno: lineNum, Line: first}

		lr, err := LexLine(first, src, store, pos)
		if err != nil {
			return "", err
		}

		if lr.Kind == ResultIOEvent && (lr.IO.Kind == IOGet || lr.IO.Kind == IOGetAsCode) {
			text, gerr := ex.Getter.GetIO(lr.IO.Message)
			if gerr != nil {
				return "", pos.errorf("%w: %v", ErrIOFailure, gerr)
			}
			store.SetVariable(lr.IO.VarName, text, lr.IO.Kind == IOGetAsCode)
			lineNum += lr.LineCount
			continue
		}

		rl, err := BuildRuleLine(lr, pos)
		if err != nil {
			return "", err
		}

		phones, err = applyLines([]RuleLine{rl}, phones, ex.Runtime)
		if err != nil {
			return "", err
		}
		if glog.V(2) {
			glog.Infof("%s: applied, %d phone(s) remain", pos, len(phones))
		}
		lineNum += lr.LineCount
	}

	return PhonesToString(phones), nil
}
