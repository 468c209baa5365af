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

// RepetitionPattern matches a variable-length run in which every element
// matches Inclusive and, if Exclusive is set, no element matches it.
// Identified repetitions agree in length through Choices' repetition map,
// keyed by label name -- which a Gap of the same label also writes to,
// per SPEC_FULL.md's Open Question decision #3 (intentional aliasing).
//
// Grounded on original_source/src/matcher/patterns/repetition.rs.
type RepetitionPattern struct {
	Inclusive Pattern
	Exclusive Pattern // nil if no exclusion was given
	Label     string  // "" if unlabeled
	labeled   bool

	started      bool
	boundChecked bool
	count        int
	consumed     int
}

func NewRepetitionPattern(inclusive, exclusive Pattern, label string, labeled bool) *RepetitionPattern {
	return &RepetitionPattern{Inclusive: inclusive, Exclusive: exclusive, Label: label, labeled: labeled}
}

// tryCount attempts to match exactly count repetitions of Inclusive
// starting at view, rejecting any span where a unit also matches
// Exclusive.
func (r *RepetitionPattern) tryCount(view PhoneView, choices Choices, count int) (OwnedChoices, int, bool) {
	cur := view
	acc := OwnedChoices{}
	accChoices := choices
	consumed := 0

	for i := 0; i < count; i++ {
		r.Inclusive.Reset()
		d, ok := r.Inclusive.Matches(cur, accChoices)
		if !ok {
			return OwnedChoices{}, 0, false
		}
		n := r.Inclusive.Len()

		if r.Exclusive != nil {
			span := cur
			for k := 0; k < n; k++ {
				ph, nv := span.Next()
				r.Exclusive.Reset()
				single := NewPhoneView([]Phone{ph}, 0, LTR)
				if _, exMatch := r.Exclusive.Matches(single, accChoices); exMatch {
					return OwnedChoices{}, 0, false
				}
				span = nv
			}
		}

		accChoices = accChoices.Merge(d)
		acc = mergeOwned(acc, d)
		cur = cur.Skip(n)
		consumed += n
	}

	return acc, consumed, true
}

func (r *RepetitionPattern) Matches(view PhoneView, choices Choices) (OwnedChoices, bool) {
	if !r.started {
		return r.NextMatch(view, choices)
	}
	return r.tryCountOwned(view, choices, r.count)
}

func (r *RepetitionPattern) tryCountOwned(view PhoneView, choices Choices, count int) (OwnedChoices, bool) {
	delta, consumed, ok := r.tryCount(view, choices, count)
	if !ok {
		return OwnedChoices{}, false
	}
	r.count, r.consumed = count, consumed
	return delta, true
}

func (r *RepetitionPattern) NextMatch(view PhoneView, choices Choices) (OwnedChoices, bool) {
	if r.labeled {
		if bound, ok := choices.Repetition(r.Label); ok {
			if r.boundChecked {
				return OwnedChoices{}, false
			}
			r.boundChecked = true
			return r.tryCountOwned(view, choices, bound)
		}
	}

	next := 0
	if r.started {
		next = r.count + 1
	}
	r.started = true

	budget := view.Remaining()
	for next <= budget {
		delta, consumed, ok := r.tryCount(view, choices, next)
		if ok {
			r.count, r.consumed = next, consumed
			if r.labeled {
				delta = mergeOwned(delta, WithRepetition(r.Label, next))
			}
			return delta, true
		}
		next++
	}
	return OwnedChoices{}, false
}

func (r *RepetitionPattern) Len() int { return r.consumed }

func (r *RepetitionPattern) Reset() {
	r.started = false
	r.boundChecked = false
	r.count = 0
	r.consumed = 0
	r.Inclusive.Reset()
	if r.Exclusive != nil {
		r.Exclusive.Reset()
	}
}
