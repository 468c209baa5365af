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

// NonBoundPattern matches any phone except a boundary; if identified, it
// binds (or agrees with) the bound phone, per spec.md §3/§4.5.
type NonBoundPattern struct {
	checkBox
	id   *ScopeID
	last Phone
}

func NewNonBoundPattern(id *ScopeID) *NonBoundPattern {
	return &NonBoundPattern{id: id}
}

func (p *NonBoundPattern) Matches(view PhoneView, choices Choices) (OwnedChoices, bool) {
	got, _ := view.Next()
	if got.IsBound() {
		return OwnedChoices{}, false
	}

	if p.id == nil {
		p.last = got
		return OwnedChoices{}, true
	}

	if bound, ok := choices.Any(*p.id); ok {
		if !bound.Equal(got) {
			return OwnedChoices{}, false
		}
		p.last = got
		return OwnedChoices{}, true
	}

	p.last = got
	return WithAny(*p.id, got), true
}

func (p *NonBoundPattern) NextMatch(view PhoneView, choices Choices) (OwnedChoices, bool) {
	if !p.arm() {
		return OwnedChoices{}, false
	}
	return p.Matches(view, choices)
}

func (p *NonBoundPattern) Len() int { return 1 }

func (p *NonBoundPattern) Reset() { p.checkBox.reset() }
