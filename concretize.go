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

// Concretize reduces a pattern to a concrete phone sequence under
// choices' current bindings, used both to splice a rule's output onto
// the phone vector (spec.md §4.8) and to concretize a match-focus
// condition's left side (spec.md §4.6). It fails whenever the pattern
// contains a choice point with no binding to resolve it: an unidentified
// non-bound, optional, selection, or repetition/gap has no concrete
// form, since nothing fixes which branch or length it denotes.
func Concretize(p Pattern, choices Choices) ([]Phone, bool) {
	switch v := p.(type) {
	case *PhonePattern:
		return []Phone{v.phone}, true

	case *NonBoundPattern:
		if v.id == nil {
			return nil, false
		}
		ph, ok := choices.Any(*v.id)
		if !ok {
			return nil, false
		}
		return []Phone{ph}, true

	case *ListPattern:
		out := make([]Phone, 0, len(v.Items))
		for _, it := range v.Items {
			ph, ok := Concretize(it, choices)
			if !ok {
				return nil, false
			}
			out = append(out, ph...)
		}
		return out, true

	case *OptionalPattern:
		if v.id == nil {
			return nil, false
		}
		included, ok := choices.Optional(*v.id)
		if !ok {
			return nil, false
		}
		if !included {
			return nil, true
		}
		return Concretize(v.Inner, choices)

	case *SelectionPattern:
		if v.id == nil {
			return nil, false
		}
		ix, ok := choices.Selection(*v.id)
		if !ok || ix < 0 || ix >= len(v.Options) {
			return nil, false
		}
		return Concretize(v.Options[ix], choices)

	case *RepetitionPattern:
		if !v.labeled {
			return nil, false
		}
		n, ok := choices.Repetition(v.Label)
		if !ok {
			return nil, false
		}
		out := make([]Phone, 0, n)
		for i := 0; i < n; i++ {
			ph, ok := Concretize(v.Inclusive, choices)
			if !ok {
				return nil, false
			}
			out = append(out, ph...)
		}
		return out, true

	case *GapPattern:
		return Concretize(v.rep, choices)

	default:
		return nil, false
	}
}
