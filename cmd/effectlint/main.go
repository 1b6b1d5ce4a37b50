// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Command effectlint reports JavaScript and TypeScript hook dependencies recreated on every render.
//
// Usage:
//
//	effectlint scan [--config file] [--format json|text] [--db file] [--upload s3://bucket/key] [--fail] [paths...]
//	effectlint history [--db file] [--limit n] [--run id]
//	effectlint config init [file]
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCmd(newApp(os.Stdout, os.Stderr, os.Getenv))

	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errFindings) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}

		os.Exit(1)
	}
}
