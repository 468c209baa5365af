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
	"errors"
	"strings"
	"testing"
)

type noMoreLines struct{}

func (noMoreLines) NextLine() (string, bool) { return "", false }

func lexString(t *testing.T, line string) LineResult {
	t.Helper()
	lr, err := LexLine(line, noMoreLines{}, NewStore(), SourcePos{Filename: "t", Lineno: 1})
	if err != nil {
		t.Fatalf("LexLine(%q) error = %v", line, err)
	}
	return lr
}

func TestLexLineTokenRoundTripForLiteralPhones(t *testing.T) {
	for _, in := range []string{"a", "abc", "a b c", "p t k"} {
		lr := lexString(t, in)
		if lr.Kind != ResultIR {
			t.Fatalf("LexLine(%q).Kind = %v; want ResultIR", in, lr.Kind)
		}
		var b strings.Builder
		for i, tok := range lr.Tokens {
			if tok.Kind != TokPhone {
				t.Fatalf("LexLine(%q) token %d = %v; want TokPhone", in, i, tok)
			}
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(tok.Phone.Symbol())
		}
		want := strings.Join(strings.Fields(in), " ")
		if got := b.String(); got != want {
			t.Errorf("LexLine(%q) phones = %q; want %q", in, got, want)
		}
	}
}

func TestLexLineEmptyAndComment(t *testing.T) {
	for _, in := range []string{"", "   ", "## a comment"} {
		lr := lexString(t, in)
		if lr.Kind != ResultEmpty {
			t.Errorf("LexLine(%q).Kind = %v; want ResultEmpty", in, lr.Kind)
		}
	}
}

func TestLexLineContinuation(t *testing.T) {
	src := &sliceLineSource{lines: []string{"b >> c"}}
	lr, err := LexLine(`a \`, src, NewStore(), SourcePos{Lineno: 1})
	if err != nil {
		t.Fatalf("LexLine continuation error = %v", err)
	}
	if lr.LineCount != 2 {
		t.Errorf("LexLine continuation LineCount = %d; want 2", lr.LineCount)
	}
	if lr.Kind != ResultIR {
		t.Fatalf("LexLine continuation Kind = %v; want ResultIR", lr.Kind)
	}
}

func TestLexLineCommands(t *testing.T) {
	for _, tc := range []struct {
		in      string
		kind    IOEventKind
		varName string
		msg     string
	}{
		{in: "PRINT hello there", kind: IOPrint, msg: "hello there"},
		{in: "GET name what is your name", kind: IOGet, varName: "name", msg: "what is your name"},
		{in: "GET_AS_CODE code enter a rule", kind: IOGetAsCode, varName: "code", msg: "enter a rule"},
	} {
		lr := lexString(t, tc.in)
		if lr.Kind != ResultIOEvent {
			t.Fatalf("LexLine(%q).Kind = %v; want ResultIOEvent", tc.in, lr.Kind)
		}
		if lr.IO.Kind != tc.kind {
			t.Errorf("LexLine(%q).IO.Kind = %v; want %v", tc.in, lr.IO.Kind, tc.kind)
		}
		if lr.IO.VarName != tc.varName {
			t.Errorf("LexLine(%q).IO.VarName = %q; want %q", tc.in, lr.IO.VarName, tc.varName)
		}
		if lr.IO.Message != tc.msg {
			t.Errorf("LexLine(%q).IO.Message = %q; want %q", tc.in, lr.IO.Message, tc.msg)
		}
	}
}

func TestLexLineSpecialTokens(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want []TokKind
	}{
		{in: "(a)", want: []TokKind{TokScopeStart, TokPhone, TokScopeEnd}},
		{in: "{a,b}", want: []TokKind{TokScopeStart, TokPhone, TokArgSep, TokPhone, TokScopeEnd}},
		{in: "[a]", want: []TokKind{TokScopeStart, TokPhone, TokScopeEnd}},
		{in: "* _ =", want: []TokKind{TokAny, TokFocus, TokFocus}},
		{in: "..", want: []TokKind{TokGap}},
		{in: "#", want: []TokKind{TokPhone}},
		{in: ">>", want: []TokKind{TokBreak}},
		{in: "<<", want: []TokKind{TokBreak}},
		{in: "/", want: []TokKind{TokBreak}},
		{in: "//", want: []TokKind{TokBreak}},
		{in: "&", want: []TokKind{TokBreak}},
		{in: "&!", want: []TokKind{TokBreak}},
		{in: "$x", want: []TokKind{TokLabel}},
	} {
		lr := lexString(t, tc.in)
		if lr.Kind != ResultIR {
			t.Fatalf("LexLine(%q).Kind = %v; want ResultIR", tc.in, lr.Kind)
		}
		if len(lr.Tokens) != len(tc.want) {
			t.Fatalf("LexLine(%q) tokens = %v; want kinds %v", tc.in, lr.Tokens, tc.want)
		}
		for i, k := range tc.want {
			if lr.Tokens[i].Kind != k {
				t.Errorf("LexLine(%q) token %d kind = %v; want %v", tc.in, i, lr.Tokens[i].Kind, k)
			}
		}
	}
}

func TestLexLineEscape(t *testing.T) {
	lr := lexString(t, `\#`)
	if lr.Kind != ResultIR || len(lr.Tokens) != 1 || lr.Tokens[0].Kind != TokPhone {
		t.Fatalf(`LexLine("\#") = %+v; want one escaped phone token`, lr)
	}
	if lr.Tokens[0].Phone.Symbol() != `\#` {
		t.Errorf(`LexLine("\#") phone = %q; want %q`, lr.Tokens[0].Phone.Symbol(), `\#`)
	}
}

func TestLexLineDanglingEscapeErrors(t *testing.T) {
	_, err := LexLine(`a\`, noMoreLines{}, NewStore(), SourcePos{Lineno: 1})
	if !errors.Is(err, ErrBadEscape) {
		t.Fatalf(`LexLine("a\\") error = %v; want ErrBadEscape`, err)
	}
}

func TestLexLineDefineAndExpand(t *testing.T) {
	store := NewStore()
	lr, err := LexLine("DEFINE V a, e, i", noMoreLines{}, store, SourcePos{Lineno: 1})
	if err != nil {
		t.Fatalf("DEFINE error = %v", err)
	}
	if lr.Kind != ResultEmpty {
		t.Fatalf("DEFINE result kind = %v; want ResultEmpty", lr.Kind)
	}
	lr, err = LexLine("@V", noMoreLines{}, store, SourcePos{Lineno: 2})
	if err != nil {
		t.Fatalf("@V expansion error = %v", err)
	}
	if lr.Kind != ResultIR {
		t.Fatalf("@V expansion kind = %v; want ResultIR", lr.Kind)
	}
	if len(lr.Tokens) == 0 {
		t.Fatalf("@V expansion produced no tokens")
	}
}

func TestLexLineUndefinedReferenceErrors(t *testing.T) {
	_, err := LexLine("@Nope", noMoreLines{}, NewStore(), SourcePos{Lineno: 1})
	if !errors.Is(err, ErrUndefinedDefinition) {
		t.Fatalf("LexLine(@Nope) error = %v; want ErrUndefinedDefinition", err)
	}
}

func TestLexLineRecursiveLazyDefinitionErrors(t *testing.T) {
	store := NewStore()
	if _, err := LexLine("DEFINE_LAZY R @R", noMoreLines{}, store, SourcePos{Lineno: 1}); err != nil {
		t.Fatalf("DEFINE_LAZY error = %v", err)
	}
	_, err := LexLine("@R", noMoreLines{}, store, SourcePos{Lineno: 2})
	if !errors.Is(err, ErrRecursiveLazyDef) {
		t.Fatalf("recursive @R error = %v; want ErrRecursiveLazyDef", err)
	}
}
