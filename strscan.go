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

import "strings"

// trailingBackslashes counts the run of '\' characters at the end of s.
func trailingBackslashes(s string) int {
	n := 0
	for i := len(s) - 1; i >= 0 && s[i] == '\\'; i-- {
		n++
	}
	return n
}

// needsContinuation reports whether line ends in an unescaped trailing
// backslash (an odd-length run), per spec.md §4.1.
func needsContinuation(line string) bool {
	return trailingBackslashes(line)%2 == 1
}

// stripContinuation removes exactly one trailing backslash.
func stripContinuation(line string) string {
	return line[:len(line)-1]
}

// isNameRune reports whether r can appear in a DEFINE/variable/label name.
func isNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		return true
	default:
		return false
	}
}

// firstWord splits s on the first run of whitespace, returning the word
// and the (left-trimmed) remainder. Grounded on kati/strutil.go's
// firstWord-style helpers.
func firstWord(s string) (string, string) {
	s = strings.TrimLeft(s, " \t\r\n")
	i := strings.IndexAny(s, " \t\r\n")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeft(s[i:], " \t\r\n")
}

func hasPrefixWord(s, word string) bool {
	if !strings.HasPrefix(s, word) {
		return false
	}
	rest := s[len(word):]
	return rest == "" || isSpace(rune(rest[0]))
}
