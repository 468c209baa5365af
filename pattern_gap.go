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

// GapPattern is an identified repetition over a non-boundary any, with no
// exclusion: `..` and `$label ..` forms. It is built as a thin wrapper over
// RepetitionPattern so that a Gap and a Repetition sharing a label
// identifier agree through the same Choices.repetition entry, per
// SPEC_FULL.md's Open Question decision #3.
type GapPattern struct {
	rep *RepetitionPattern
}

func NewGapPattern(label string, labeled bool) *GapPattern {
	return &GapPattern{rep: NewRepetitionPattern(NewNonBoundPattern(nil), nil, label, labeled)}
}

func (g *GapPattern) Matches(view PhoneView, choices Choices) (OwnedChoices, bool) {
	return g.rep.Matches(view, choices)
}

func (g *GapPattern) NextMatch(view PhoneView, choices Choices) (OwnedChoices, bool) {
	return g.rep.NextMatch(view, choices)
}

func (g *GapPattern) Len() int { return g.rep.Len() }

func (g *GapPattern) Reset() { g.rep.Reset() }
