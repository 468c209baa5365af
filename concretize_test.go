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

import "testing"

func TestConcretizeLiteralList(t *testing.T) {
	list := NewListPattern([]Pattern{
		NewPhonePattern(NewPhone("a")),
		NewPhonePattern(NewPhone("b")),
	})
	phones, ok := Concretize(list, NewChoices())
	if !ok {
		t.Fatalf("Concretize of a literal list failed")
	}
	if got, want := PhonesToString(phones), "ab"; got != want {
		t.Errorf("Concretize literal list = %q; want %q", got, want)
	}
}

func TestConcretizeUnboundChoicePointFails(t *testing.T) {
	id := NamedScopeID("unbound")
	for _, p := range []Pattern{
		NewNonBoundPattern(&id),
		NewOptionalPattern(NewPhonePattern(NewPhone("a")), &id),
		NewSelectionPattern([]Pattern{NewPhonePattern(NewPhone("a"))}, &id),
		NewRepetitionPattern(NewPhonePattern(NewPhone("a")), nil, "unbound", true),
	} {
		if _, ok := Concretize(p, NewChoices()); ok {
			t.Errorf("Concretize(%T) with no binding succeeded; want failure", p)
		}
	}
}

func TestConcretizeResolvedChoicePoints(t *testing.T) {
	id := NamedScopeID("c")

	anyBound := NewChoices().Merge(WithAny(id, NewPhone("x")))
	if phones, ok := Concretize(NewNonBoundPattern(&id), anyBound); !ok || PhonesToString(phones) != "x" {
		t.Errorf("Concretize(NonBound, bound=x) = %v,%v; want [x],true", phones, ok)
	}

	optIncluded := NewChoices().Merge(WithOptional(id, true))
	inner := NewPhonePattern(NewPhone("y"))
	if phones, ok := Concretize(NewOptionalPattern(inner, &id), optIncluded); !ok || PhonesToString(phones) != "y" {
		t.Errorf("Concretize(Optional, included) = %v,%v; want [y],true", phones, ok)
	}

	optExcluded := NewChoices().Merge(WithOptional(id, false))
	if phones, ok := Concretize(NewOptionalPattern(inner, &id), optExcluded); !ok || len(phones) != 0 {
		t.Errorf("Concretize(Optional, excluded) = %v,%v; want [],true", phones, ok)
	}

	selBound := NewChoices().Merge(WithSelection(id, 1))
	sel := NewSelectionPattern([]Pattern{
		NewPhonePattern(NewPhone("p")),
		NewPhonePattern(NewPhone("t")),
	}, &id)
	if phones, ok := Concretize(sel, selBound); !ok || PhonesToString(phones) != "t" {
		t.Errorf("Concretize(Selection, index 1) = %v,%v; want [t],true", phones, ok)
	}

	repBound := NewChoices().Merge(WithRepetition("rep", 3))
	rep := NewRepetitionPattern(NewPhonePattern(NewPhone("-")), nil, "rep", true)
	if phones, ok := Concretize(rep, repBound); !ok || PhonesToString(phones) != "---" {
		t.Errorf("Concretize(Repetition, length 3) = %v,%v; want [---],true", phones, ok)
	}
}
