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

// reverseForRTL mutates every ListPattern nested anywhere under p so its
// Items run in the opposite order, pairing a right-to-left pattern tree
// with a right-to-left phone view, per spec.md §4.4's direction
// handling. It recurses into every pattern kind that owns sub-patterns;
// Phone and NonBound have none and are order-irrelevant (length 1).
func reverseForRTL(p Pattern) {
	switch v := p.(type) {
	case *ListPattern:
		for _, it := range v.Items {
			reverseForRTL(it)
		}
		for i, j := 0, len(v.Items)-1; i < j; i, j = i+1, j-1 {
			v.Items[i], v.Items[j] = v.Items[j], v.Items[i]
		}
	case *OptionalPattern:
		reverseForRTL(v.Inner)
	case *SelectionPattern:
		for _, o := range v.Options {
			reverseForRTL(o)
		}
	case *RepetitionPattern:
		reverseForRTL(v.Inclusive)
		if v.Exclusive != nil {
			reverseForRTL(v.Exclusive)
		}
	case *GapPattern:
		reverseForRTL(v.rep)
	}
}
