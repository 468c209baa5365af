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

// ListPattern is an ordered concatenation of sub-patterns, the composite
// driver behind every pattern region (spec.md §4.5/§4.6). Direction is
// handled entirely by the caller: a right-to-left list is built with its
// elements already reversed and is matched against a view that already
// steps right-to-left, so ListPattern itself is direction-agnostic.
//
// Grounded on original_source/src/matcher/patterns/list.rs.
type ListPattern struct {
	Items []Pattern

	started  bool
	consumed int
}

func NewListPattern(items []Pattern) *ListPattern {
	return &ListPattern{Items: items}
}

// currentMatch re-validates the currently selected match form of every
// item (without advancing any item's own enumeration) under choices,
// which may have changed since the selection was made.
func (l *ListPattern) currentMatch(view PhoneView, choices Choices) (OwnedChoices, bool) {
	cur := view
	acc := OwnedChoices{}
	accChoices := choices
	total := 0

	for _, it := range l.Items {
		d, ok := it.Matches(cur, accChoices)
		if !ok {
			return OwnedChoices{}, false
		}
		accChoices = accChoices.Merge(d)
		acc = mergeOwned(acc, d)
		cur = cur.Skip(it.Len())
		total += it.Len()
	}
	l.consumed = total
	return acc, true
}

func (l *ListPattern) Matches(view PhoneView, choices Choices) (OwnedChoices, bool) {
	if !l.started {
		return l.NextMatch(view, choices)
	}
	return l.currentMatch(view, choices)
}

func (l *ListPattern) NextMatch(view PhoneView, choices Choices) (OwnedChoices, bool) {
	if !l.started {
		l.started = true
		for _, it := range l.Items {
			it.Reset()
		}
	} else if len(l.Items) == 0 {
		// An empty list has exactly one match form, the empty one.
		return OwnedChoices{}, false
	}

	delta, ok := l.nextSubMatch(0, view, choices)
	if !ok {
		return OwnedChoices{}, false
	}

	total := 0
	for _, it := range l.Items {
		total += it.Len()
	}
	l.consumed = total
	return delta, true
}

// nextSubMatch implements the recursive pivot-at-index backtracking
// described in spec.md §4.5: advance the element at index to its next
// match form; on success, recurse into the suffix for its next joint
// solution; on suffix exhaustion, reset everything strictly after index
// and retry the pivot.
func (l *ListPattern) nextSubMatch(index int, view PhoneView, choices Choices) (OwnedChoices, bool) {
	if index >= len(l.Items) {
		return OwnedChoices{}, true
	}

	item := l.Items[index]
	for {
		d, ok := item.NextMatch(view, choices)
		if !ok {
			return OwnedChoices{}, false
		}

		merged := choices.Merge(d)
		if index == len(l.Items)-1 {
			return d, true
		}

		suffixView := view.Skip(item.Len())
		dSuffix, ok2 := l.nextSubMatch(index+1, suffixView, merged)
		if ok2 {
			return mergeOwned(d, dSuffix), true
		}

		for j := index + 1; j < len(l.Items); j++ {
			l.Items[j].Reset()
		}
	}
}

func (l *ListPattern) Len() int { return l.consumed }

func (l *ListPattern) Reset() {
	l.started = false
	l.consumed = 0
	for _, it := range l.Items {
		it.Reset()
	}
}
