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
	"strings"

	sca "github.com/cfeyen/cscsca-sub000"
	"github.com/cfeyen/cscsca-sub000/internal/testdiff"
	"github.com/spf13/cobra"
)

var charsDiffAgainst string

func init() {
	rootCmd.AddCommand(charsCmd)
	charsCmd.Flags().StringVar(&charsDiffAgainst, "diff", "", "compare the phone dump against a second file's phone dump")
}

var charsCmd = &cobra.Command{
	Use:   "chars",
	Short: "dump the phone-level tokenization of stdin, one phone per line",
	RunE: func(cmd *cobra.Command, args []string) error {
		return dumpChars()
	},
}

func dumpChars() error {
	input, err := readInput(runIn)
	if err != nil {
		return execError{err}
	}
	got := charDump(input)

	if charsDiffAgainst == "" {
		fmt.Print(got)
		return nil
	}

	wantSrc, err := os.ReadFile(charsDiffAgainst)
	if err != nil {
		return execError{err}
	}
	want := charDump(string(wantSrc))

	ok, diff := testdiff.Equal(want, got)
	if ok {
		fmt.Print(got)
		return nil
	}
	fmt.Println(diff)
	return execError{fmt.Errorf("phone dump differs from %s", charsDiffAgainst)}
}

func charDump(text string) string {
	var b strings.Builder
	for _, p := range sca.BuildPhoneList(text) {
		if p.IsBound() {
			b.WriteString("#\n")
			continue
		}
		b.WriteString(p.Symbol())
		b.WriteByte('\n')
	}
	return b.String()
}
