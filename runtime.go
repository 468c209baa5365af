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

import "time"

// LimitKind tags how an ApplicationLimit bounds a single rule line's
// application loop, per spec.md §6.
type LimitKind int

const (
	LimitUnlimited LimitKind = iota
	LimitTime
	LimitAttempts
)

// ApplicationLimit bounds how long ApplyRule may keep searching and
// rewriting a single line, guarding against a rule whose input can
// always match again. Grounded on
// original_source/src/executor/runtime.rs's LineApplicationLimit.
type ApplicationLimit struct {
	Kind     LimitKind
	Duration time.Duration
	Attempts int
}

// DefaultApplicationLimit mirrors runtime.rs's
// DEFAULT_LINE_APPLICATION_LIMIT.
var DefaultApplicationLimit = ApplicationLimit{Kind: LimitAttempts, Attempts: 10000}

// Runtime is the host capability an Executor calls into while applying a
// built rule set: PutIO serves PRINT, and LineApplicationLimit bounds
// every rule line's application loop. OnStart/OnEnd bracket a whole
// apply pass. Grounded on
// original_source/src/executor/runtime.rs's Runtime trait.
type Runtime interface {
	PutIO(msg string, phones []Phone) error
	OnStart()
	OnEnd()
	LineApplicationLimit() ApplicationLimit
}

// Getter is the host capability an Executor calls into while tokenizing
// GET/GET_AS_CODE lines. Grounded on
// original_source/src/executor/getter.rs's IoGetter trait.
type Getter interface {
	GetIO(prompt string) (string, error)
}

// NopRuntime discards PRINT output and applies a fixed limit. Useful as
// a default when a caller only wants AppliableRules.Apply's return value.
type NopRuntime struct {
	Limit ApplicationLimit
}

// NewNopRuntime builds a NopRuntime with the default application limit.
func NewNopRuntime() *NopRuntime {
	return &NopRuntime{Limit: DefaultApplicationLimit}
}

func (r *NopRuntime) PutIO(msg string, phones []Phone) error { return nil }
func (r *NopRuntime) OnStart()                                {}
func (r *NopRuntime) OnEnd()                                  {}
func (r *NopRuntime) LineApplicationLimit() ApplicationLimit  { return r.Limit }

// LogRuntime records every PutIO call instead of writing anywhere,
// clearing its log at the start of each apply pass. Grounded on
// runtime.rs's LogRuntime.
type LogRuntime struct {
	Limit ApplicationLimit
	logs  []IOLogEntry
}

// IOLogEntry is one recorded PutIO call.
type IOLogEntry struct {
	Message string
	Phones  string
}

// NewLogRuntime builds a LogRuntime with the default application limit.
func NewLogRuntime() *LogRuntime {
	return &LogRuntime{Limit: DefaultApplicationLimit}
}

func (r *LogRuntime) PutIO(msg string, phones []Phone) error {
	r.logs = append(r.logs, IOLogEntry{Message: msg, Phones: PhonesToString(phones)})
	return nil
}

func (r *LogRuntime) OnStart() { r.logs = nil }
func (r *LogRuntime) OnEnd()   {}

func (r *LogRuntime) LineApplicationLimit() ApplicationLimit { return r.Limit }

// Logs returns the entries recorded since the last OnStart.
func (r *LogRuntime) Logs() []IOLogEntry { return r.logs }

// FlushLogs returns the recorded entries and clears them.
func (r *LogRuntime) FlushLogs() []IOLogEntry {
	logs := r.logs
	r.logs = nil
	return logs
}
