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
	"fmt"
)

// SourcePos locates a line within a rule-file source.
type SourcePos struct {
	Filename string
	Lineno   int
	Line     string
}

func (p SourcePos) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("line %d", p.Lineno)
	}
	return fmt.Sprintf("%s:%d", p.Filename, p.Lineno)
}

// errorf builds a SourceError rooted at p.
func (p SourcePos) errorf(f string, args ...interface{}) error {
	return &SourceError{
		Pos: p,
		Err: fmt.Errorf(f, args...),
	}
}

// wrap turns err into a SourceError rooted at p, unless it already is one.
func (p SourcePos) wrap(err error) error {
	if err == nil {
		return nil
	}
	var se *SourceError
	if errors.As(err, &se) {
		return se
	}
	return &SourceError{Pos: p, Err: err}
}

// SourceError is an error produced while lexing, checking, building, or
// applying a rule line. It always carries the offending line number and
// source text.
type SourceError struct {
	Pos SourcePos
	Err error
}

func (e *SourceError) Error() string {
	if e.Pos.Line != "" {
		return fmt.Sprintf("%s: %v\n  %s", e.Pos, e.Err, e.Pos.Line)
	}
	return fmt.Sprintf("%s: %v", e.Pos, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// Sentinel error kinds, matched with errors.Is against the wrapped Err.
// Grouped per the taxonomy in spec.md §7.
var (
	// Lexical
	ErrUndefinedDefinition = errors.New("undefined definition or variable")
	ErrEmptyPrefix         = errors.New("empty prefix")
	ErrEmptyDefineHeader   = errors.New("empty definition header")
	ErrRecursiveLazyDef    = errors.New("recursive lazy definition")
	ErrBadEscape           = errors.New("bad escape sequence")
	ErrReservedChar        = errors.New("unescaped reserved character")
	ErrMalformedGet        = errors.New("malformed GET header")

	// Structural
	ErrScopeImbalance     = errors.New("unbalanced or mismatched scope")
	ErrMisplacedSeparator = errors.New("argument separator outside a selection")
	ErrLabelMisplaced     = errors.New("label before a non-labelable token")
	ErrShiftCount         = errors.New("rule must contain exactly one shift")
	ErrAntiCondBeforeCond = errors.New("anti-condition before condition")
	ErrFocusCount         = errors.New("condition must contain exactly one focus")
	ErrGapOutsideCond     = errors.New("gap outside a condition")
	ErrAndOutsideCond     = errors.New("'&' outside a condition")

	// Build
	ErrLabelNotScope      = errors.New("label not followed by a labelable scope")
	ErrEmptyRepetition    = errors.New("empty repetition")
	ErrEmptyExclusion     = errors.New("empty exclusion")
	ErrUnexpectedToken    = errors.New("unexpected token")
	ErrMissingFocus       = errors.New("missing condition focus")
	ErrUnknownScopeInOut  = errors.New("scope identifier used on output is not bound on input or in every condition")

	// Apply
	ErrUnmatchedScopeID   = errors.New("unmatched scope identifier in output")
	ErrInvalidSelectionIx = errors.New("invalid selection index in output")
	ErrGapOutsideCondApply = errors.New("gap outside a condition at apply time")
	ErrNotConvertible     = errors.New("pattern cannot be converted to phones")
	ErrExceededLimit      = errors.New("exceeded time or attempt limit")

	// Executor
	ErrIOFailure = errors.New("io failure")
)
