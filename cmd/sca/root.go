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

package main

import (
	"fmt"
	"os"

	"github.com/cfeyen/cscsca-sub000/internal/color"
	"github.com/spf13/cobra"
)

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "sca",
	Short: "sca applies cscsca sound-change rules to text",
	Long:  "sca interprets cscsca, a small language of historical sound-change rules, applying a chain of rule files to input text.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.Disable()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command, exiting the process with a non-zero
// status on argument or execution errors, per SPEC_FULL.md §6's exit
// status convention (1 for argument errors, 2 for execution/SourceErrors).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.Errorf("%v", err))
		if code, ok := err.(exitCoder); ok {
			os.Exit(code.ExitCode())
		}
		os.Exit(1)
	}
}

// exitCoder lets a command's returned error carry a specific exit
// status, distinguishing an argument error (1) from a run-time
// SourceError (2).
type exitCoder interface {
	ExitCode() int
}

type execError struct{ err error }

func (e execError) Error() string { return e.err.Error() }
func (e execError) ExitCode() int { return 2 }
func (e execError) Unwrap() error { return e.err }
