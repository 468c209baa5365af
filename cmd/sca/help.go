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

	"github.com/spf13/cobra"
)

var helpTopics = map[string]string{
	"grammar": `rule line:   input >> output / cond & cond ...
direction:   >> is left-to-right, << is right-to-left
focus:       the match point inside a cond's pattern, marked '_'
anticond:    // introduces a blocking condition (the rule may not fire)
scopes:      {a, b} selection, (a) optional, [a!b] repetition with exclusion
labels:      $name before a scope binds it for reuse via agreement
references:  @name expands a DEFINE, %name expands a GET/GET_AS_CODE capture`,
	"commands": `DEFINE name body        eagerly expand body wherever @name appears
DEFINE_LAZY name body   re-expand body on every @name reference
PRINT msg               write msg and the current phones to the runtime
GET var msg             prompt msg, bind var to the raw text (phones)
GET_AS_CODE var msg     prompt msg, bind var to the text re-tokenized as code`,
}

func init() {
	rootCmd.AddCommand(helpCmd)
}

var helpCmd = &cobra.Command{
	Use:   "help [topic]",
	Short: "print grammar or keyword help text",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Println("topics: grammar, commands")
			return nil
		}
		text, ok := helpTopics[args[0]]
		if !ok {
			return execError{fmt.Errorf("unknown help topic %q (try: grammar, commands)", args[0])}
		}
		fmt.Println(text)
		return nil
	},
}
