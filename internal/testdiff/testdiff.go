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

// Package testdiff renders a readable mismatch between a got and a want
// string for test failures and for `sca chars --diff`, the way
// run_test.go renders a mismatch between rkati and ckati output.
package testdiff

import "github.com/sergi/go-diff/diffmatchpatch"

// Render returns a human-readable diff of got against want, semantically
// cleaned up the way run_test.go's check helper does before reporting a
// test failure.
func Render(want, got string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs)
}

// Equal reports whether want and got are identical, and if not, a
// rendered diff suitable for a test failure message.
func Equal(want, got string) (ok bool, diff string) {
	if want == got {
		return true, ""
	}
	return false, Render(want, got)
}
