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

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"fillmore-labs.com/effectdeps/internal/publish"
)

// errFindings is returned by scan --fail when findings were reported.
var errFindings = errors.New("findings reported")

// app holds the flag values and environment of a command line invocation.
type app struct {
	stdout, stderr io.Writer
	getenv         func(string) string
	logger         *slog.Logger

	// newUploader creates the S3 client for --upload.
	newUploader func() (publish.PutObjectAPI, error)

	db      string
	format  string
	verbose bool
}

func newApp(stdout, stderr io.Writer, getenv func(string) string) *app {
	a := &app{stdout: stdout, stderr: stderr, getenv: getenv}
	a.newUploader = func() (publish.PutObjectAPI, error) {
		return publish.ClientFromEnv(a.getenv)
	}

	return a
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "effectlint",
		Short:         "Find hook dependencies recreated on every render",
		Long:          "effectlint parses JavaScript and TypeScript sources with tree-sitter and reports object, array and function literals in hook dependency lists.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}

			a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

			return validateFormat(a.format)
		},
	}

	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.PersistentFlags().StringVar(&a.db, "db", "", "SQLite database recording scan runs")
	root.PersistentFlags().StringVar(&a.format, "format", "text", "output format: json|text")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log per-file diagnostics")

	root.AddCommand(newScanCmd(a), newHistoryCmd(a), newConfigCmd(a))

	return root
}

func validateFormat(format string) error {
	switch format {
	case "json", "text":
		return nil

	default:
		return fmt.Errorf("invalid --format %q: must be json or text", format)
	}
}
