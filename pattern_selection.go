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

// SelectionPattern is `{a,b,c}`: it tries each option pattern in order.
// An identified selection agrees with other occurrences of the same id
// through Choices.selection (the chosen option's index), per spec.md
// §4.5.
type SelectionPattern struct {
	Options []Pattern
	id      *ScopeID

	next     int
	selected int
	bound    bool
	boundIx  int
}

func NewSelectionPattern(options []Pattern, id *ScopeID) *SelectionPattern {
	return &SelectionPattern{Options: options, id: id}
}

func (s *SelectionPattern) tryOption(view PhoneView, choices Choices, ix int) (OwnedChoices, bool) {
	opt := s.Options[ix]
	opt.Reset()
	delta, ok := opt.Matches(view, choices)
	if !ok {
		return OwnedChoices{}, false
	}
	if s.id != nil {
		delta = mergeOwned(delta, WithSelection(*s.id, ix))
	}
	return delta, true
}

func (s *SelectionPattern) Matches(view PhoneView, choices Choices) (OwnedChoices, bool) {
	if s.id != nil {
		if bound, ok := choices.Selection(*s.id); ok {
			return s.tryOption(view, choices, bound)
		}
	}
	return s.tryOption(view, choices, s.selected)
}

func (s *SelectionPattern) NextMatch(view PhoneView, choices Choices) (OwnedChoices, bool) {
	if s.id != nil {
		if bound, ok := choices.Selection(*s.id); ok {
			if s.bound && s.boundIx == bound {
				return OwnedChoices{}, false
			}
			s.bound, s.boundIx = true, bound
			return s.tryOption(view, choices, bound)
		}
	}

	for s.next < len(s.Options) {
		ix := s.next
		s.next++
		if delta, ok := s.tryOption(view, choices, ix); ok {
			s.selected = ix
			return delta, true
		}
	}
	return OwnedChoices{}, false
}

func (s *SelectionPattern) Len() int {
	if len(s.Options) == 0 {
		return 0
	}
	return s.Options[s.selected].Len()
}

func (s *SelectionPattern) Reset() {
	s.next = 0
	s.selected = 0
	s.bound = false
	for _, opt := range s.Options {
		opt.Reset()
	}
}
