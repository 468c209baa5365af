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

// PhonePattern matches one phone exactly under Phone.Matches, per
// spec.md §3/§4.5. Grounded on original_source/src/matcher/pattern.rs's
// Phone variant.
type PhonePattern struct {
	checkBox
	phone Phone
}

func NewPhonePattern(p Phone) *PhonePattern { return &PhonePattern{phone: p} }

func (p *PhonePattern) Matches(view PhoneView, _ Choices) (OwnedChoices, bool) {
	got, _ := view.Next()
	if !p.phone.Matches(got) {
		return OwnedChoices{}, false
	}
	return OwnedChoices{}, true
}

func (p *PhonePattern) NextMatch(view PhoneView, choices Choices) (OwnedChoices, bool) {
	if !p.arm() {
		return OwnedChoices{}, false
	}
	return p.Matches(view, choices)
}

func (p *PhonePattern) Len() int { return 1 }

func (p *PhonePattern) Reset() { p.checkBox.reset() }
