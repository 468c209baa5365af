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

// Keywords and special characters of the source grammar (spec.md §6).
// Grounded on original_source/src/keywords.rs.
const (
	kwComment        = "##"
	kwDefine         = "DEFINE"
	kwDefineLazy     = "DEFINE_LAZY" // implementation-defined lazy-define header, per spec.md §6
	kwPrint          = "PRINT"
	kwGet            = "GET"
	kwGetAsCode      = "GET_AS_CODE"
	definitionPrefix = '@'
	variablePrefix   = '%'
	labelPrefix      = '$'
)

func isSpecialChar(r rune) bool {
	switch r {
	case '(', ')', '{', '}', '*', ',', '#', '=', '_', '.', '>', '<', '/', '&', '!':
		return true
	default:
		return false
	}
}
