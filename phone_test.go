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

import "testing"

func TestBuildPhoneListRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{in: "pata", want: "pata"},
		{in: "pata takan", want: "pata takan"},
		{in: "  pata   takan  ", want: "pata takan"},
		{in: "", want: ""},
	} {
		phones := BuildPhoneList(tc.in)
		if got := PhonesToString(phones); got != tc.want {
			t.Errorf("BuildPhoneList(%q) round trip got=%q; want=%q", tc.in, got, tc.want)
		}
	}
}

func TestBuildPhoneListBoundaryNormalization(t *testing.T) {
	phones := BuildPhoneList("  pata   takan  ")
	for i := 1; i < len(phones); i++ {
		if phones[i-1].IsBound() && phones[i].IsBound() {
			t.Fatalf("adjacent boundary phones at %d,%d in %v", i-1, i, phones)
		}
	}
}

func TestBuildPhoneListEmbeddedNewline(t *testing.T) {
	phones := BuildPhoneList("a\nb")
	var syms []string
	for _, p := range phones {
		syms = append(syms, p.Symbol())
	}
	want := []string{"a", "#", "\n", "#", "b"}
	if len(syms) != len(want) {
		t.Fatalf("BuildPhoneList(%q) = %v; want %v", "a\nb", syms, want)
	}
	for i := range want {
		if syms[i] != want[i] {
			t.Errorf("BuildPhoneList(%q)[%d] = %q; want %q", "a\nb", i, syms[i], want[i])
		}
	}
}

func TestPhoneMatches(t *testing.T) {
	for _, tc := range []struct {
		pattern string
		input   Phone
		want    bool
	}{
		{pattern: "a", input: Phone{symbol: "a"}, want: true},
		{pattern: "a", input: Phone{symbol: "b"}, want: false},
		{pattern: "\\a", input: Phone{symbol: "a"}, want: true},
		{pattern: " ", input: Bound, want: true},
		{pattern: " ", input: Phone{symbol: "a"}, want: false},
	} {
		p := NewPhone(tc.pattern)
		if got := p.Matches(tc.input); got != tc.want {
			t.Errorf("NewPhone(%q).Matches(%v) = %v; want %v", tc.pattern, tc.input, got, tc.want)
		}
	}
}

func TestNewPhoneCollapsesWhitespaceToBound(t *testing.T) {
	for _, in := range []string{"", " ", "\t", "   "} {
		if p := NewPhone(in); !p.Equal(Bound) {
			t.Errorf("NewPhone(%q) = %v; want Bound", in, p)
		}
	}
}
