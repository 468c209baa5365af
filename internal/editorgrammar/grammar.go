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

// Package editorgrammar generates a TextMate-style syntax grammar for
// the source language, so editors can highlight rule files. Grounded on
// original_source/src/tooling_gen/vscode_grammar/mod.rs, reworked from
// that file's hand-built JSON strings into a struct marshaled with
// yaml.v3 (a TextMate grammar may be authored as YAML; most editor
// tooling converts it to JSON at packaging time).
package editorgrammar

import (
	"gopkg.in/yaml.v3"
)

// Rule is one repository pattern entry: a named capture with its scope
// name(s) and match regex.
type Rule struct {
	Name  string `yaml:"-"`
	Scope string `yaml:"name"`
	Match string `yaml:"match"`
}

// Grammar is the top-level TextMate grammar document.
type Grammar struct {
	Schema     string          `yaml:"$schema"`
	Name       string          `yaml:"name"`
	ScopeName  string          `yaml:"scopeName"`
	Patterns   []includeRef    `yaml:"patterns"`
	Repository map[string]Rule `yaml:"repository"`
}

type includeRef struct {
	Include string `yaml:"include"`
}

// LanguageConfig is the editor's bracket/comment configuration, the
// counterpart to vscode_grammar::build_config.
type LanguageConfig struct {
	Comments         commentConfig `yaml:"comments"`
	Brackets         [][2]string   `yaml:"brackets"`
	AutoClosingPairs [][2]string   `yaml:"autoClosingPairs"`
	SurroundingPairs [][2]string   `yaml:"surroundingPairs"`
}

type commentConfig struct {
	LineComment string `yaml:"lineComment"`
}

const (
	groupStart = "("
	groupEnd   = ")"
	lineStart  = "^"
	lineEnd    = "$"
	whitespace = `\s`
	nonSpace   = `\S`
	or         = "|"
	anyChar    = "."
	repAny     = "*"
	repOnce    = "+"
	maybeOnce  = "?"
)

func breakAhead() string {
	return groupStart + "?=" + groupStart + breakingChars() + groupEnd + groupEnd
}

// breakingChars is the character class a token may not be immediately
// followed by without ending, mirroring vscode_grammar::breaking_chars,
// rebuilt against this rework's own keywords.go escape/bound set instead
// of transcribing the original's.
func breakingChars() string {
	return groupStart + whitespace + or + lineStart + or + lineEnd +
		or + `>>` + or + `<<` + or + `/` + or + `&` + or + `@` + or +
		`\$` + or + `%` + or + `\#` + or + `,` + or + `\*` + or +
		`\(` + or + `\)` + or + `\{` + or + `\}` + or + `\.` + or
		"_" + groupEnd
}

// rules returns the grammar's named capture rules, grounded on
// keywords.go's literal keyword/symbol set rather than the original's
// (this rework's grammar diverges slightly in its symbol inventory).
func rules() []Rule {
	escapedComment := `\#\#`
	return []Rule{
		{Name: "comment", Scope: "comment.line.number-sign.cscsca",
			Match: groupStart + lineStart + or + escapedComment + groupEnd + anyChar + repAny + maybeOnce + lineEnd},
		{Name: "statement", Scope: "keyword.cscsca strong.cscsca",
			Match: lineStart + groupStart + "DEFINE" + or + "DEFINE_LAZY" + or + "PRINT" + or + "GET_AS_CODE" + or + "GET" + groupEnd},
		{Name: "definition_call", Scope: "entity.name.type.cscsca",
			Match: `@` + nonSpace + repOnce + maybeOnce + breakAhead()},
		{Name: "variable_call", Scope: "entity.name.type.cscsca emphasis.cscsca",
			Match: `%` + nonSpace + repOnce + maybeOnce + breakAhead()},
		{Name: "label", Scope: "entity.name.function.cscsca emphasis.cscsca",
			Match: `\$` + nonSpace + repOnce + maybeOnce + breakAhead()},
		{Name: "breaks", Scope: "keyword.control.cscsca",
			Match: `>>` + or + `>` + or + `<<` + or + `<` + or + `/` + or + `//` + or + `&!` + or + `&`},
		{Name: "punctuation", Scope: "punctuation.separator.cscsca",
			Match: `,`},
		{Name: "scope_bound", Scope: "punctuation.bound.cscsca",
			Match: `\(` + or + `\)` + or + `\{` + or + `\}`},
		{Name: "phone", Scope: "variable.phone.cscsca",
			Match: nonSpace + repOnce + maybeOnce + breakAhead()},
	}
}

// Build assembles the full grammar document.
func Build() *Grammar {
	repoRules := rules()

	g := &Grammar{
		Schema:     "https://raw.githubusercontent.com/martinring/tmlanguage/master/tmlanguage.json",
		Name:       "CSCSCA",
		ScopeName:  "source.sca",
		Repository: make(map[string]Rule, len(repoRules)),
	}
	for _, r := range repoRules {
		g.Patterns = append(g.Patterns, includeRef{Include: "#" + r.Name})
		g.Repository[r.Name] = r
	}
	return g
}

// Marshal renders the grammar as YAML.
func (g *Grammar) Marshal() ([]byte, error) {
	return yaml.Marshal(g)
}

// BuildConfig assembles the bracket/comment language configuration.
func BuildConfig() *LanguageConfig {
	pairs := [][2]string{{"(", ")"}, {"{", "}"}}
	return &LanguageConfig{
		Comments:         commentConfig{LineComment: "##"},
		Brackets:         pairs,
		AutoClosingPairs: pairs,
		SurroundingPairs: pairs,
	}
}

// MarshalConfig renders the language config as YAML.
func (c *LanguageConfig) MarshalConfig() ([]byte, error) {
	return yaml.Marshal(c)
}
