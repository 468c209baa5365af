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

// Choices is the agreement binding environment threaded through a match
// attempt, per spec.md §3: selection->index, optional->inserted flag,
// repetition/gap length->count (a labeled repetition and a labeled gap
// intentionally alias the same entry, per SPEC_FULL.md's Open Question
// decision #3), and any->bound phone.
//
// Each field is a plain Go map (a reference type), so copying a Choices
// value shares the underlying maps cheaply -- the "borrow" half of the
// copy-on-write design in original_source/src/matcher/choices.rs. A
// pattern that wants to record a new binding never mutates these maps in
// place (a sibling in a backtracking search might still be reading them);
// instead it builds a delta with one of the With* helpers (an OwnedChoices
// holding just the new entry), and Merge copies only the maps that delta
// touches into a new Choices -- the "owned" half. OwnedChoices captures just the maps that changed, so List
// can fold a sub-pattern's delta back into its own Choices without paying
// for a full clone on every step.
type Choices struct {
	selection  map[string]int
	optional   map[string]bool
	repetition map[string]int
	any        map[string]Phone
}

// NewChoices returns an empty binding environment.
func NewChoices() Choices {
	return Choices{}
}

func (c Choices) Selection(id ScopeID) (int, bool) {
	v, ok := c.selection[id.Key()]
	return v, ok
}

func (c Choices) Optional(id ScopeID) (bool, bool) {
	v, ok := c.optional[id.Key()]
	return v, ok
}

func (c Choices) Repetition(label string) (int, bool) {
	v, ok := c.repetition[label]
	return v, ok
}

func (c Choices) Any(id ScopeID) (Phone, bool) {
	v, ok := c.any[id.Key()]
	return v, ok
}

// OwnedChoices is a delta: only the maps that a match step actually wrote
// are non-nil.
type OwnedChoices struct {
	selection  map[string]int
	optional   map[string]bool
	repetition map[string]int
	any        map[string]Phone
}

// Merge folds delta into c, returning the combined Choices. Maps delta did
// not touch are shared (not copied) with c.
func (c Choices) Merge(delta OwnedChoices) Choices {
	out := c
	if delta.selection != nil {
		out.selection = mergeMap(c.selection, delta.selection)
	}
	if delta.optional != nil {
		out.optional = mergeMap(c.optional, delta.optional)
	}
	if delta.repetition != nil {
		out.repetition = mergeMap(c.repetition, delta.repetition)
	}
	if delta.any != nil {
		out.any = mergeMap(c.any, delta.any)
	}
	return out
}

func mergeMap[K comparable, V any](base, delta map[K]V) map[K]V {
	out := make(map[K]V, len(base)+len(delta))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range delta {
		out[k] = v
	}
	return out
}

// WithSelection returns a delta recording that id chose index.
func WithSelection(id ScopeID, index int) OwnedChoices {
	return OwnedChoices{selection: map[string]int{id.Key(): index}}
}

// WithOptional returns a delta recording id's inserted flag.
func WithOptional(id ScopeID, inserted bool) OwnedChoices {
	return OwnedChoices{optional: map[string]bool{id.Key(): inserted}}
}

// WithRepetition returns a delta recording label's matched length.
func WithRepetition(label string, length int) OwnedChoices {
	return OwnedChoices{repetition: map[string]int{label: length}}
}

// WithAny returns a delta recording id's bound phone.
func WithAny(id ScopeID, p Phone) OwnedChoices {
	return OwnedChoices{any: map[string]Phone{id.Key(): p}}
}

func mergeOwned(a, b OwnedChoices) OwnedChoices {
	if b.selection != nil {
		a.selection = mergeMap(orEmpty(a.selection), b.selection)
	}
	if b.optional != nil {
		a.optional = mergeMap(orEmpty(a.optional), b.optional)
	}
	if b.repetition != nil {
		a.repetition = mergeMap(orEmpty(a.repetition), b.repetition)
	}
	if b.any != nil {
		a.any = mergeMap(orEmpty(a.any), b.any)
	}
	return a
}

func orEmpty[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return map[K]V{}
	}
	return m
}
