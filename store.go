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
	"fmt"

	"github.com/golang/glog"
)

// defKind distinguishes the four shapes a stored name can hold, per
// spec.md §4.2.
type defKind int

const (
	defEager defKind = iota
	defLazy
	defVarCode
	defVarPhones
)

// definition is one entry of the Store, keyed by name.
type definition struct {
	kind   defKind
	tokens []Token // eager definitions and captured phone-mode variables
	source string  // lazy definitions (re-tokenized source fragment) and code-mode variables
}

// Store is the process-scoped definition/variable mapping described in
// spec.md §4.2. It owns every buffer that a Token's text slice might
// still be borrowing from (lazily tokenized DEFINE bodies, GET-captured
// input), so the Store must outlive any token or AppliableRules derived
// from it, generalized from "named string value" to "named token/source
// capture".
type Store struct {
	defs      map[string]*definition
	expanding []string // cycle guard for lazy-definition expansion
	warnings  []string // recoverable oddities surfaced to a CLI front end, e.g. shadowed definitions
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{defs: make(map[string]*definition)}
}

// Warnings returns the recoverable oddities noticed while building this
// Store's definitions, in the order they occurred. A front end may
// render these with a warning color hint (spec.md §7).
func (s *Store) Warnings() []string {
	return s.warnings
}

func (s *Store) warnRedefine(name string) {
	msg := fmt.Sprintf("redefining %q", name)
	glog.Warningf("%s", msg)
	s.warnings = append(s.warnings, msg)
}

// DefineEager stores name as an eagerly expanded token list (DEFINE).
func (s *Store) DefineEager(name string, tokens []Token) {
	if _, exists := s.defs[name]; exists {
		s.warnRedefine(name)
	}
	s.defs[name] = &definition{kind: defEager, tokens: tokens}
}

// DefineLazy stores name as a lazy definition: source is re-tokenized on
// every expansion, so forward references and self-modifying macros are
// possible, guarded against infinite recursion by a cycle stack.
func (s *Store) DefineLazy(name, source string) {
	if _, exists := s.defs[name]; exists {
		s.warnRedefine(name)
	}
	s.defs[name] = &definition{kind: defLazy, source: source}
}

// SetVariable stores the result of a GET (phones) or GET_AS_CODE (code)
// capture. The Store becomes the sole owner of text, outliving the
// source buffer that produced it, per spec.md §4.2.
func (s *Store) SetVariable(name, text string, asCode bool) {
	if asCode {
		s.defs[name] = &definition{kind: defVarCode, source: text}
		return
	}
	var tokens []Token
	for _, r := range BuildPhoneList(text) {
		tokens = append(tokens, Token{Kind: TokPhone, Phone: r})
	}
	s.defs[name] = &definition{kind: defVarPhones, tokens: tokens}
}

// Expand resolves a prefixed reference (@name, %name) to its token list.
// Lazy definitions are re-tokenized here, with cycle detection; eager
// definitions and captured variables are returned as stored.
func (s *Store) Expand(name string, pos SourcePos) ([]Token, error) {
	def, ok := s.defs[name]
	if !ok {
		return nil, pos.errorf("%w: %q", ErrUndefinedDefinition, name)
	}
	switch def.kind {
	case defEager, defVarPhones:
		return def.tokens, nil
	case defVarCode:
		return s.tokenizeFragment(name, def.source, pos)
	case defLazy:
		for _, expanding := range s.expanding {
			if expanding == name {
				return nil, pos.errorf("%w: %q", ErrRecursiveLazyDef, name)
			}
		}
		s.expanding = append(s.expanding, name)
		defer func() { s.expanding = s.expanding[:len(s.expanding)-1] }()
		return s.tokenizeFragment(name, def.source, pos)
	}
	return nil, pos.errorf("%w: %q", ErrUndefinedDefinition, name)
}

// tokenizeFragment lexes a stored source fragment as a standalone token
// sequence (no commands, no further line continuation).
func (s *Store) tokenizeFragment(name, source string, pos SourcePos) ([]Token, error) {
	l := newFragmentLexer(source, s, pos)
	toks, err := l.lexTokens()
	if err != nil {
		return nil, pos.errorf("expanding %q: %w", name, err)
	}
	return toks, nil
}
