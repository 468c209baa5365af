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

import "fmt"

// StructuralKind distinguishes which scope shape a structural ScopeID was
// assigned for.
type StructuralKind int

const (
	StructOptional StructuralKind = iota
	StructSelection
	StructAny // unlabeled Any, or a repetition's own anchor
)

// ScopeID identifies a scope so that multiple occurrences can agree, per
// spec.md §3. It is either a user-given label name, or a structural tuple
// (ordinal, kind, parent) assigned deterministically during pattern
// building. Parent links a nested anonymous scope to its enclosing one so
// that two structurally-identical nestings at different depths don't
// collide; it is represented with a plain pointer to the enclosing ScopeID
// rather than Rust's Rc, since Go's GC already gives us shared ownership
// for free.
//
// Grounded on original_source/src/tokens.rs (ScopeId).
type ScopeID struct {
	named bool
	name  string

	ordinal int
	kind    StructuralKind
	parent  *ScopeID
}

// NamedScopeID builds a user-labeled ScopeID ($name).
func NamedScopeID(name string) ScopeID {
	return ScopeID{named: true, name: name}
}

// StructuralScopeID builds a deterministic structural ScopeID for an
// unlabeled scope.
func StructuralScopeID(ordinal int, kind StructuralKind, parent *ScopeID) ScopeID {
	return ScopeID{ordinal: ordinal, kind: kind, parent: parent}
}

// Key returns a value suitable for use as a Go map key: ScopeID contains a
// pointer field (parent), so two structurally-equal IDs built from
// different arena nodes would otherwise compare unequal as map keys. Key
// flattens the parent chain into a comparable string, which is what
// Choices actually uses internally.
func (id ScopeID) Key() string {
	if id.named {
		return "$" + id.name
	}
	parent := ""
	if id.parent != nil {
		parent = id.parent.Key()
	}
	return fmt.Sprintf("#%d:%d>%s", id.kind, id.ordinal, parent)
}

func (id ScopeID) String() string {
	if id.named {
		return "$" + id.name
	}
	return fmt.Sprintf("<scope %s>", id.Key())
}
