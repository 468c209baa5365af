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

func TestPhonePatternMatches(t *testing.T) {
	p := NewPhonePattern(NewPhone("a"))
	view := NewPhoneView(BuildPhoneList("a"), 0, LTR)
	if _, ok := p.NextMatch(view, NewChoices()); !ok {
		t.Fatalf("PhonePattern(a).NextMatch on \"a\" = false; want true")
	}
	if _, ok := p.NextMatch(view, NewChoices()); ok {
		t.Fatalf("PhonePattern.NextMatch after exhaustion = true; want false (single-shot)")
	}
	p.Reset()
	if _, ok := p.NextMatch(view, NewChoices()); !ok {
		t.Fatalf("PhonePattern.NextMatch after Reset = false; want true")
	}
}

func TestNonBoundPatternRejectsBound(t *testing.T) {
	p := NewNonBoundPattern(nil)
	view := NewPhoneView([]Phone{Bound}, 0, LTR)
	if _, ok := p.NextMatch(view, NewChoices()); ok {
		t.Fatalf("NonBoundPattern matched a Bound phone")
	}
}

func TestNonBoundPatternAgreement(t *testing.T) {
	id := NamedScopeID("x")
	choices := NewChoices().Merge(WithAny(id, NewPhone("a")))

	agree := NewNonBoundPattern(&id)
	view := NewPhoneView(BuildPhoneList("a"), 0, LTR)
	if _, ok := agree.NextMatch(view, choices); !ok {
		t.Fatalf("NonBoundPattern(id=x) bound to 'a' failed to match 'a'")
	}

	disagree := NewNonBoundPattern(&id)
	view2 := NewPhoneView(BuildPhoneList("b"), 0, LTR)
	if _, ok := disagree.NextMatch(view2, choices); ok {
		t.Fatalf("NonBoundPattern(id=x) bound to 'a' matched 'b'")
	}
}

func TestOptionalPatternTriesIncludedThenExcluded(t *testing.T) {
	inner := NewPhonePattern(NewPhone("a"))
	opt := NewOptionalPattern(inner, nil)
	view := NewPhoneView(BuildPhoneList("b"), 0, LTR)

	// The included form fails on 'b', so the first call falls through to
	// the excluded (empty) form.
	if _, ok := opt.NextMatch(view, NewChoices()); !ok {
		t.Fatalf("optional(a) on 'b' found no match; want the excluded form")
	}
	if opt.Len() != 0 {
		t.Fatalf("optional excluded Len() = %d; want 0", opt.Len())
	}
	if _, ok := opt.NextMatch(view, NewChoices()); ok {
		t.Fatalf("optional exhausted after excluded form still matched")
	}
}

func TestSelectionPatternAgreement(t *testing.T) {
	id := NamedScopeID("c")
	mk := func() Pattern {
		return NewSelectionPattern([]Pattern{
			NewPhonePattern(NewPhone("p")),
			NewPhonePattern(NewPhone("t")),
			NewPhonePattern(NewPhone("k")),
		}, &id)
	}

	first := mk()
	view := NewPhoneView(BuildPhoneList("t"), 0, LTR)
	delta, ok := first.NextMatch(view, NewChoices())
	if !ok {
		t.Fatalf("selection(p,t,k) failed to match 't'")
	}
	choices := NewChoices().Merge(delta)

	agree := mk()
	view2 := NewPhoneView(BuildPhoneList("t"), 0, LTR)
	if _, ok := agree.NextMatch(view2, choices); !ok {
		t.Fatalf("selection bound to index 1 failed to re-match 't'")
	}

	disagree := mk()
	view3 := NewPhoneView(BuildPhoneList("p"), 0, LTR)
	if _, ok := disagree.NextMatch(view3, choices); ok {
		t.Fatalf("selection bound to index 1 matched 'p'")
	}
}

func TestRepetitionPatternLengthAgreement(t *testing.T) {
	mk := func() Pattern {
		return NewRepetitionPattern(NewPhonePattern(NewPhone("-")), nil, "n", true)
	}
	first := mk()
	view := NewPhoneView(BuildPhoneList("--"), 0, LTR)
	// The repetition tries count 0 first and grows by one per call.
	delta, ok := first.NextMatch(view, NewChoices())
	for ok && first.Len() < 2 {
		delta, ok = first.NextMatch(view, NewChoices())
	}
	if !ok || first.Len() != 2 {
		t.Fatalf("repetition(-) on '--' matched=%v len=%d; want true,2", ok, first.Len())
	}
	choices := NewChoices().Merge(delta)

	agree := mk()
	view2 := NewPhoneView(BuildPhoneList("--"), 0, LTR)
	if _, ok := agree.NextMatch(view2, choices); !ok {
		t.Fatalf("repetition bound to length 2 failed to match '--'")
	}

	disagree := mk()
	view3 := NewPhoneView(BuildPhoneList("-"), 0, LTR)
	if _, ok := disagree.NextMatch(view3, choices); ok {
		t.Fatalf("repetition bound to length 2 matched '-' (length 1)")
	}
}

func TestRepetitionPatternExclusion(t *testing.T) {
	rep := NewRepetitionPattern(NewNonBoundPattern(nil), NewPhonePattern(NewPhone("x")), "", false)
	view := NewPhoneView(BuildPhoneList("aax"), 0, LTR)
	// widest possible span is 3, but the third phone matches the
	// exclusion, so the widest accepted count is 2.
	_, ok := rep.NextMatch(view, NewChoices())
	for ok && rep.Len() != 2 {
		if rep.Len() > 2 {
			t.Fatalf("repetition with exclusion matched a span containing the excluded phone, len=%d", rep.Len())
		}
		_, ok = rep.NextMatch(view, NewChoices())
	}
	if !ok {
		t.Fatalf("repetition with exclusion never found the expected length-2 span")
	}
}

func TestListPatternBacktracksAcrossItems(t *testing.T) {
	// a* followed by a literal "b": on "aab" the repetition tries its
	// shortest span first and must grow to length 2 for the list to succeed.
	items := []Pattern{
		NewRepetitionPattern(NewNonBoundPattern(nil), nil, "", false),
		NewPhonePattern(NewPhone("b")),
	}
	list := NewListPattern(items)
	view := NewPhoneView(BuildPhoneList("aab"), 0, LTR)

	found := false
	for {
		_, ok := list.NextMatch(view, NewChoices())
		if !ok {
			break
		}
		if list.Len() == 3 {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("ListPattern never found the full-length match spanning all of 'aab'")
	}
}
