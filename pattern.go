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

// Pattern is the non-deterministic state-machine interface implemented by
// every node of the pattern tree (phone, nonbound, repetition, gap,
// optional, selection, list), per spec.md §4.5.
//
//   - Matches tests (without enumerating alternatives) whether the
//     pattern accepts at the view's current cursor under choices,
//     returning the new bindings it made (if any) and whether it
//     succeeded.
//   - NextMatch advances the pattern to its next distinct match form and
//     re-tests, returning false once exhausted.
//   - Len reports how many phones the currently selected match form
//     consumes.
//   - Reset returns the pattern to its initial state.
type Pattern interface {
	Matches(view PhoneView, choices Choices) (OwnedChoices, bool)
	NextMatch(view PhoneView, choices Choices) (OwnedChoices, bool)
	Len() int
	Reset()
}

// checkBox wraps a pattern that may produce at most one successful match
// per "arming" (Phone and NonBound, per spec.md §4.5): NextMatch succeeds
// once, then is exhausted until Reset re-arms it.
type checkBox struct {
	checked bool
}

// arm reports whether the box may still attempt a match, and marks it
// checked regardless. Call once per NextMatch.
func (c *checkBox) arm() bool {
	if c.checked {
		return false
	}
	c.checked = true
	return true
}

func (c *checkBox) reset() {
	c.checked = false
}
