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

import (
	"time"

	"github.com/golang/glog"
)

// ApplyRule scans phones for every site the rule's direction visits,
// rewriting each accepted match, per spec.md §4.8. It returns the final
// phone vector, or ErrExceededLimit if limit is breached.
func ApplyRule(rule *SoundChangeRule, phones []Phone, limit ApplicationLimit) ([]Phone, error) {
	dir := rule.Shift.Dir
	idx := startIndex(dir, len(phones))
	deadline := time.Now().Add(limit.Duration)
	attempts := 0

	for idx >= 0 && idx < len(phones) {
		rule.Match.Reset()
		merged, matchStart, matchEnd, ok := rule.Match.NextMatch(phones, idx, NewChoices())

		if ok {
			outPhones, convOK := Concretize(rule.Output, merged)
			if !convOK {
				return nil, rule.Pos.errorf("%w", ErrNotConvertible)
			}

			inputLen := matchEnd - matchStart
			newPhones, next, replaceLen := spliceAndAdvance(phones, matchStart, matchEnd, outPhones, dir, rule.Shift.Kind, idx, inputLen)
			if glog.V(2) {
				glog.Infof("%s: rewrote [%d,%d) with %d phone(s), next=%d", rule.Pos, matchStart, matchEnd, replaceLen, next)
			}
			phones = newPhones
			idx = next
		} else {
			idx = stepIndex(dir, idx)
		}

		attempts++
		if limit.Kind == LimitAttempts && attempts > limit.Attempts {
			return nil, rule.Pos.errorf("%w", ErrExceededLimit)
		}
		if limit.Kind == LimitTime && time.Now().After(deadline) {
			return nil, rule.Pos.errorf("%w", ErrExceededLimit)
		}
	}

	return phones, nil
}

func startIndex(dir Direction, n int) int {
	if dir == LTR {
		return 0
	}
	return n - 1
}

func stepIndex(dir Direction, idx int) int {
	if dir == LTR {
		return idx + 1
	}
	return idx - 1
}

// spliceAndAdvance splices outPhones (after internal boundary
// coalescing) in place of phones[matchStart:matchEnd] and computes the
// next scan index per the table in spec.md §4.8.1.
func spliceAndAdvance(phones []Phone, matchStart, matchEnd int, outPhones []Phone, dir Direction, kind ShiftKind, current, inputLen int) (newPhones []Phone, next, replaceLen int) {
	prefix := phones[:matchStart]
	suffix := phones[matchEnd:]

	out := coalesceInternal(outPhones)
	prefixJoined := coalesceJoin(prefix, out)
	replaceLen = len(prefixJoined) - len(prefix)
	joined := coalesceJoin(prefixJoined, suffix)

	newLength := len(joined)

	if inputLen == 0 && replaceLen == 0 {
		return joined, stepIndex(dir, current), replaceLen
	}
	if dir == LTR {
		if kind == ShiftMove {
			return joined, current + replaceLen, replaceLen
		}
		return joined, current, replaceLen
	}
	// RTL
	if current >= newLength {
		return joined, newLength - 1, replaceLen
	}
	if kind == ShiftMove {
		return joined, current - inputLen, replaceLen
	}
	return joined, current, replaceLen
}

// coalesceInternal collapses adjacent boundary phones within a single
// slice to one, per spec.md §4.8.2.
func coalesceInternal(phones []Phone) []Phone {
	out := make([]Phone, 0, len(phones))
	for _, p := range phones {
		if p.IsBound() && len(out) > 0 && out[len(out)-1].IsBound() {
			continue
		}
		out = append(out, p)
	}
	return out
}

// coalesceJoin concatenates a and b, dropping b's leading boundary if a
// already ends in one, so the seam never doubles a boundary.
func coalesceJoin(a, b []Phone) []Phone {
	if len(a) > 0 && len(b) > 0 && a[len(a)-1].IsBound() && b[0].IsBound() {
		b = b[1:]
	}
	out := make([]Phone, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}
