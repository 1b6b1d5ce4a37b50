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
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"fillmore-labs.com/effectdeps/scan"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the scan configuration",
	}

	var force bool

	initCmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := scan.DefaultConfigFile
			if len(args) > 0 {
				path = args[0]
			}

			data, err := scan.DefaultConfig().Marshal()
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}

			flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
			if !force {
				flags |= os.O_EXCL
			}

			f, err := os.OpenFile(path, flags, 0o644)
			if errors.Is(err, fs.ErrExist) {
				return fmt.Errorf("%s exists, use --force to overwrite", path)
			}

			if err != nil {
				return fmt.Errorf("create config: %w", err)
			}

			if _, err := f.Write(data); err != nil {
				_ = f.Close()

				return fmt.Errorf("write config: %w", err)
			}

			if err := f.Close(); err != nil {
				return fmt.Errorf("write config: %w", err)
			}

			fmt.Fprintf(a.stderr, "Wrote %s\n", path)

			return nil
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	cmd.AddCommand(initCmd)

	return cmd
}
