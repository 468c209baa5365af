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

	"github.com/cfeyen/cscsca-sub000/internal/editorgrammar"
	"github.com/spf13/cobra"
)

var grammarConfig bool

func init() {
	grammarCmd.Flags().BoolVar(&grammarConfig, "config", false, "emit the language configuration (brackets/comments) instead of the syntax grammar")
	rootCmd.AddCommand(grammarCmd)
}

var grammarCmd = &cobra.Command{
	Use:   "grammar",
	Short: "emit an editor syntax grammar for rule files",
	Long:  "grammar writes a TextMate-style YAML syntax grammar for cscsca rule files to stdout, for editors that want highlighting. Pass --config for the companion bracket/comment language configuration instead.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			out []byte
			err error
		)
		if grammarConfig {
			out, err = editorgrammar.BuildConfig().MarshalConfig()
		} else {
			out, err = editorgrammar.Build().Marshal()
		}
		if err != nil {
			return execError{err}
		}
		fmt.Fprint(os.Stdout, string(out))
		return nil
	},
}
