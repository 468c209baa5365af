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

// Command sca runs the cscsca sound-change interpreter.
package main

import (
	"flag"

	"github.com/golang/glog"
)

func main() {
	defer glog.Flush()
	// glog registers its -v/-logtostderr flags on the stdlib flag
	// package; Parse it once with no extra args so glog.V works under
	// cobra, which owns the rest of the command line via pflag.
	_ = flag.CommandLine.Parse(nil)

	Execute()
}
