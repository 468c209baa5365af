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

func TestStoreExpandUndefined(t *testing.T) {
	s := NewStore()
	_, err := s.Expand("nope", SourcePos{Lineno: 1})
	if !errors.Is(err, ErrUndefinedDefinition) {
		t.Fatalf("Expand of undefined name error = %v; want ErrUndefinedDefinition", err)
	}
}

func TestStoreDefineEagerExpand(t *testing.T) {
	s := NewStore()
	toks := []Token{phoneTok(NewPhone("a"), SourcePos{}), phoneTok(NewPhone("b"), SourcePos{})}
	s.DefineEager("V", toks)
	got, err := s.Expand("V", SourcePos{Lineno: 1})
	if err != nil {
		t.Fatalf("Expand(V) error = %v", err)
	}
	if len(got) != 2 || got[0].Phone.Symbol() != "a" || got[1].Phone.Symbol() != "b" {
		t.Fatalf("Expand(V) = %v; want [a b]", got)
	}
}

func TestStoreDefineLazyReexpandsOnEveryCall(t *testing.T) {
	s := NewStore()
	s.DefineLazy("L", "a")
	first, err := s.Expand("L", SourcePos{Lineno: 1})
	if err != nil {
		t.Fatalf("first Expand(L) error = %v", err)
	}
	if len(first) != 1 || first[0].Phone.Symbol() != "a" {
		t.Fatalf("first Expand(L) = %v; want [a]", first)
	}

	s.DefineLazy("L", "b")
	second, err := s.Expand("L", SourcePos{Lineno: 2})
	if err != nil {
		t.Fatalf("second Expand(L) error = %v", err)
	}
	if len(second) != 1 || second[0].Phone.Symbol() != "b" {
		t.Fatalf("second Expand(L) after redefinition = %v; want [b]", second)
	}
}

func TestStoreSetVariablePhonesVsCode(t *testing.T) {
	s := NewStore()
	s.SetVariable("raw", "a b", false)
	toks, err := s.Expand("raw", SourcePos{Lineno: 1})
	if err != nil {
		t.Fatalf("Expand(raw) error = %v", err)
	}
	if len(toks) != 3 {
		t.Fatalf("phone-mode variable expanded to %d tokens; want 3 (a, boundary, b)", len(toks))
	}

	s.SetVariable("code", "a >> b", true)
	toks2, err := s.Expand("code", SourcePos{Lineno: 2})
	if err != nil {
		t.Fatalf("Expand(code) error = %v", err)
	}
	var hasBreak bool
	for _, tok := range toks2 {
		if tok.Kind == TokBreak {
			hasBreak = true
		}
	}
	if !hasBreak {
		t.Fatalf("code-mode variable %q did not tokenize its shift arrow", "a >> b")
	}
}
