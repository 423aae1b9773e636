// Copyright 2020-2025 Buf Technologies, Inc.
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

// Command oxide is the command-line front end for the oxide parser.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/oxidelang/oxide/cmd/oxide/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.Execute(ctx)
	stop()
	if err != nil {
		if !cmd.IsReported(err) {
			fmt.Fprintf(os.Stderr, "oxide: %v\n", err)
		}
		os.Exit(cmd.ExitCode(err))
	}
}
