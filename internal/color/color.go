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

// Package color renders CLI output hints (errors, warnings, applied
// phones) the way spec.md §7 asks for: "a color hint in the CLI front
// end", without forcing escape codes onto a non-terminal or
// NO_COLOR-requesting caller. Built on termenv, which the retrieval
// pack's cogentcore-core module tree carries for exactly this purpose.
package color

import (
	"fmt"

	"github.com/muesli/termenv"
)

var profile = termenv.ColorProfile()

// Error colors msg red, the hint spec.md §7 asks for when surfacing a
// SourceError.
func Error(msg string) string {
	return termenv.String(msg).Foreground(profile.Color("1")).String()
}

// Warning colors msg yellow, used for recoverable oddities such as a
// lazy definition shadowing an existing one.
func Warning(msg string) string {
	return termenv.String(msg).Foreground(profile.Color("3")).String()
}

// Phones colors a PRINT event's phone output blue, matching
// original_source/src/color.rs's BLUE hint for the same event.
func Phones(msg string) string {
	return termenv.String(msg).Foreground(profile.Color("4")).String()
}

// Disable forces every helper in this package back to plain text,
// honoring --no-color or a non-terminal output stream.
func Disable() {
	profile = termenv.Ascii
}

// Errorf formats like fmt.Sprintf, then applies Error.
func Errorf(format string, args ...interface{}) string {
	return Error(fmt.Sprintf(format, args...))
}
