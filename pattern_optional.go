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

// OptionalPattern is `(pattern)`: it first tries including Inner, then
// tries the empty match. An identified optional agrees with other
// occurrences of the same id through Choices.optional, per spec.md §4.5.
type OptionalPattern struct {
	Inner Pattern
	id    *ScopeID

	attempt  int // 0 = haven't tried included form, 1 = tried included, 2 = tried excluded too
	selected bool
	bound    bool
	boundVal bool
}

func NewOptionalPattern(inner Pattern, id *ScopeID) *OptionalPattern {
	return &OptionalPattern{Inner: inner, id: id}
}

func (o *OptionalPattern) tryIncluded(view PhoneView, choices Choices) (OwnedChoices, bool) {
	o.Inner.Reset()
	delta, ok := o.Inner.Matches(view, choices)
	if !ok {
		return OwnedChoices{}, false
	}
	if o.id != nil {
		delta = mergeOwned(delta, WithOptional(*o.id, true))
	}
	return delta, true
}

func (o *OptionalPattern) tryExcluded() (OwnedChoices, bool) {
	var delta OwnedChoices
	if o.id != nil {
		delta = WithOptional(*o.id, false)
	}
	return delta, true
}

func (o *OptionalPattern) Matches(view PhoneView, choices Choices) (OwnedChoices, bool) {
	if o.id != nil {
		if bound, ok := choices.Optional(*o.id); ok {
			if bound {
				return o.tryIncluded(view, choices)
			}
			return o.tryExcluded()
		}
	}
	if o.selected {
		return o.tryIncluded(view, choices)
	}
	return o.tryExcluded()
}

func (o *OptionalPattern) NextMatch(view PhoneView, choices Choices) (OwnedChoices, bool) {
	if o.id != nil {
		if bound, ok := choices.Optional(*o.id); ok {
			if o.bound && o.boundVal == bound {
				return OwnedChoices{}, false
			}
			o.bound, o.boundVal = true, bound
			if bound {
				return o.tryIncluded(view, choices)
			}
			return o.tryExcluded()
		}
	}

	switch o.attempt {
	case 0:
		o.attempt = 1
		if delta, ok := o.tryIncluded(view, choices); ok {
			o.selected = true
			return delta, true
		}
		fallthrough
	case 1:
		o.attempt = 2
		o.selected = false
		return o.tryExcluded()
	default:
		return OwnedChoices{}, false
	}
}

func (o *OptionalPattern) Len() int {
	if o.selected {
		return o.Inner.Len()
	}
	return 0
}

func (o *OptionalPattern) Reset() {
	o.attempt = 0
	o.selected = false
	o.bound = false
	o.Inner.Reset()
}
