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
	"io"
	"os"
	"time"

	sca "github.com/cfeyen/cscsca-sub000"
	"github.com/cfeyen/cscsca-sub000/internal/color"
	"github.com/spf13/cobra"
)

var (
	runIn            string
	runOut           string
	runQuiet         bool
	runLimitAttempts int
	runLimitTime     time.Duration
)

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runIn, "in", "", "read input text from file instead of stdin")
	runCmd.Flags().StringVar(&runOut, "out", "", "write output text to file instead of stdout")
	runCmd.Flags().BoolVar(&runQuiet, "quiet", false, "suppress PRINT output")
	runCmd.Flags().IntVar(&runLimitAttempts, "limit-attempts", 0, "override the per-line application attempt limit")
	runCmd.Flags().DurationVar(&runLimitTime, "limit-time", 0, "override the per-line application time limit")
}

var runCmd = &cobra.Command{
	Use:   "run [files...]",
	Short: "apply one or more rule files to input text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRules(args)
	},
}

func runRules(files []string) error {
	getter := cliGetter{}

	var rules *sca.AppliableRules
	for i, f := range files {
		src, err := os.ReadFile(f)
		if err != nil {
			return execError{err}
		}
		if i == 0 {
			rules, err = sca.BuildAppliableRules(f, string(src), getter)
		} else {
			err = rules.Extend(f, string(src), getter)
		}
		if err != nil {
			return execError{err}
		}
	}

	for _, w := range rules.Warnings() {
		fmt.Fprintln(os.Stderr, color.Warning(w))
	}

	input, err := readInput(runIn)
	if err != nil {
		return execError{err}
	}

	rt := cliRuntime{quiet: runQuiet, limit: applicationLimit()}
	out, err := rules.Apply(input, rt)
	if err != nil {
		return execError{err}
	}

	return writeOutput(runOut, out)
}

func applicationLimit() sca.ApplicationLimit {
	if runLimitTime > 0 {
		return sca.ApplicationLimit{Kind: sca.LimitTime, Duration: runLimitTime}
	}
	if runLimitAttempts > 0 {
		return sca.ApplicationLimit{Kind: sca.LimitAttempts, Attempts: runLimitAttempts}
	}
	return sca.DefaultApplicationLimit
}

func readInput(path string) (string, error) {
	if path == "" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

func writeOutput(path, text string) error {
	if path == "" {
		_, err := fmt.Println(text)
		return err
	}
	return os.WriteFile(path, []byte(text+"\n"), 0o644)
}

// cliRuntime is a Runtime backed by stdout, colorizing PRINT output the
// way spec.md §7 asks the CLI front end to.
type cliRuntime struct {
	quiet bool
	limit sca.ApplicationLimit
}

func (r cliRuntime) PutIO(msg string, phones []sca.Phone) error {
	if r.quiet {
		return nil
	}
	_, err := fmt.Printf("%s '%s'\n", msg, color.Phones(sca.PhonesToString(phones)))
	return err
}

func (r cliRuntime) OnStart() {}
func (r cliRuntime) OnEnd()   {}

func (r cliRuntime) LineApplicationLimit() sca.ApplicationLimit { return r.limit }

// cliGetter reads GET/GET_AS_CODE prompts from stdin.
type cliGetter struct{}

func (cliGetter) GetIO(prompt string) (string, error) {
	if prompt != "" {
		fmt.Print(prompt + " ")
	}
	var line string
	_, err := fmt.Scanln(&line)
	if err != nil && err != io.EOF {
		return "", err
	}
	return line, nil
}
