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

// Package sca implements an interpreter for cscsca, a small language of
// historical sound-change rules: rewrite rules applied in order over a
// sequence of phones.
//
// A program is tokenized line by line (lexer.go), lowered into a tree of
// rule patterns (builder.go), and applied against a mutable phone vector
// by a backtracking matcher (pattern*.go, rulepattern.go) driven by
// ApplyRule (applier.go). The line-by-line executor and AppliableRules
// (executor.go) are the top-level drivers.
package sca
