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
	"strings"
	"unicode"
)

// BoundChar is the rendering of a word-boundary phone when phones are
// flattened back to text.
const BoundChar = '#'

const escapeChar = '\\'

// Phone is either a word-boundary sentinel or a symbol borrowing a slice
// of the original source text. Phones built from input text by
// BuildPhoneList are character-level, one rune each; a phone written in a
// rule holds the whole run of characters the lexer accumulated between
// separators, '\' escapes included.
//
// Grounded on original_source/src/phones.rs (Phone enum + matches).
type Phone struct {
	bound  bool
	symbol string
}

// Bound is the word-boundary phone.
var Bound = Phone{bound: true}

// NewPhone builds a phone from a symbol, collapsing an all-whitespace or
// empty symbol to Bound.
func NewPhone(symbol string) Phone {
	if strings.TrimSpace(symbol) == "" {
		return Bound
	}
	return Phone{symbol: symbol}
}

// IsBound reports whether p is the word-boundary sentinel.
func (p Phone) IsBound() bool { return p.bound }

// Symbol returns p's underlying text, or BoundChar for a boundary.
func (p Phone) Symbol() string {
	if p.bound {
		return string(BoundChar)
	}
	return p.symbol
}

func (p Phone) String() string { return p.Symbol() }

// Equal is strict structural equality (no escape/whitespace folding).
func (p Phone) Equal(o Phone) bool {
	return p.bound == o.bound && p.symbol == o.symbol
}

// Matches implements the asymmetric matching relation used throughout the
// matcher: p (usually a pattern phone) matches o (usually an input phone)
// if, after removing one layer of '\' escaping from p and folding
// whitespace runs in p onto a Bound or onto whitespace in o, the two
// texts agree rune for rune.
//
// Ported from original_source/src/phones.rs Phone::matches.
func (p Phone) Matches(o Phone) bool {
	symbol := p.Symbol()
	other := o.Symbol()

	otherRunes := []rune(other)
	oi := 0

	escape := false
	inWhitespace := false

	for _, ch := range symbol {
		if ch == escapeChar && !escape {
			escape = true
			continue
		}
		escape = false

		if inWhitespace && isSpace(ch) {
			continue
		}

		if oi >= len(otherRunes) {
			return false
		}
		oc := otherRunes[oi]

		if isSpace(ch) {
			if string(oc) == string(BoundChar) || isSpace(oc) {
				inWhitespace = true
				oi++
				continue
			}
			return false
		}
		inWhitespace = false

		if ch != oc {
			return false
		}
		oi++
	}

	return oi == len(otherRunes)
}

// isSpace matches the original's fold onto Rust's char::is_whitespace,
// so non-ASCII whitespace (NBSP, ideographic space, ...) normalizes to a
// Bound the same way ' ' and '\t' do.
func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// BuildPhoneList splits input into a character-level phone slice,
// replacing whitespace runs between words with a single Bound and
// folding an embedded newline into Bound, Symbol("\n"), Bound so that
// multi-line input keeps its line breaks visible in the output.
//
// Ported from original_source/src/phones.rs build_phone_list.
func BuildPhoneList(input string) []Phone {
	var phones []Phone
	runStart := -1
	flushRun := func() {
		if runStart < 0 {
			return
		}
		phones = append(phones, Bound)
		runStart = -1
	}

	runes := []rune(input)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\n' {
			flushRun()
			phones = append(phones, Bound, Phone{symbol: "\n"}, Bound)
			continue
		}
		if isSpace(r) {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		flushRun()
		phones = append(phones, Phone{symbol: string(r)})
	}
	flushRun()

	return coalesceBounds(phones)
}

// coalesceBounds collapses adjacent Bound phones to a single Bound,
// satisfying the boundary-normalization invariant in spec.md §8.
func coalesceBounds(phones []Phone) []Phone {
	out := phones[:0:0]
	for _, p := range phones {
		if p.IsBound() && len(out) > 0 && out[len(out)-1].IsBound() {
			continue
		}
		out = append(out, p)
	}
	return out
}

// PhonesToString flattens a phone slice back to text, rendering Bound as
// a single space (except leading/trailing bounds, which are trimmed) and
// leaving embedded newline phones as real newlines.
func PhonesToString(phones []Phone) string {
	var b strings.Builder
	for i, p := range phones {
		if p.IsBound() {
			if i == 0 || i == len(phones)-1 {
				continue
			}
			if phones[i-1].symbol == "\n" || (i+1 < len(phones) && phones[i+1].symbol == "\n") {
				continue
			}
			b.WriteByte(' ')
			continue
		}
		b.WriteString(p.symbol)
	}
	return b.String()
}
