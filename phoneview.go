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

// PhoneView is a cheap cursor over a phone vector: a slice, an index, and
// a step (+1 for LTR, -1 for RTL). next returns the phone at the cursor
// and advances it, with a synthetic Bound once the cursor runs off either
// end, per spec.md §4.5. Being a plain value (no pointers into shared
// mutable state beyond the backing slice, which is never written through
// a PhoneView), copying a PhoneView is cheap, a plain value-copy cursor.
type PhoneView struct {
	phones []Phone
	index  int
	step   int
}

// NewPhoneView builds a view starting at index scanning in dir.
func NewPhoneView(phones []Phone, index int, dir Direction) PhoneView {
	step := 1
	if dir == RTL {
		step = -1
	}
	return PhoneView{phones: phones, index: index, step: step}
}

// Direction reports the view's scan direction.
func (v PhoneView) Direction() Direction {
	if v.step < 0 {
		return RTL
	}
	return LTR
}

// Next returns the phone at the cursor (Bound if off either end of the
// backing slice) and returns a new view with the cursor advanced by one
// step.
func (v PhoneView) Next() (Phone, PhoneView) {
	nv := v
	if v.index < 0 || v.index >= len(v.phones) {
		nv.index += v.step
		return Bound, nv
	}
	p := v.phones[v.index]
	nv.index += v.step
	return p, nv
}

// Skip advances the view by n phones, used by List to hand the suffix of
// a concatenation the phones past what the prefix already consumed.
func (v PhoneView) Skip(n int) PhoneView {
	nv := v
	nv.index += v.step * n
	return nv
}

// Remaining is the number of real (non-synthetic) phones left under the
// cursor, bounding how far a Repetition/Gap may extend.
func (v PhoneView) Remaining() int {
	if v.step > 0 {
		if v.index >= len(v.phones) {
			return 0
		}
		if v.index < 0 {
			return len(v.phones)
		}
		return len(v.phones) - v.index
	}
	if v.index < 0 {
		return 0
	}
	if v.index >= len(v.phones) {
		return len(v.phones)
	}
	return v.index + 1
}
