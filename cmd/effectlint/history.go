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
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"fillmore-labs.com/effectdeps/internal/findings"
)

func newHistoryCmd(a *app) *cobra.Command {
	var (
		limit int
		runID int64
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded scan runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.db == "" {
				return errors.New("--db is required")
			}

			store, err := findings.Open(a.db)
			if err != nil {
				return err
			}
			defer store.Close()

			if runID != 0 {
				found, err := store.Findings(cmd.Context(), runID)
				if err != nil {
					return err
				}

				if a.format == "json" {
					return a.writeJSON(found)
				}

				for _, f := range found {
					fmt.Fprintln(a.stdout, f)
				}

				return nil
			}

			runs, err := store.Runs(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if a.format == "json" {
				if runs == nil {
					runs = []findings.Summary{}
				}

				return a.writeJSON(runs)
			}

			tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSTARTED\tFINDINGS\tROOTS")

			for _, r := range runs {
				fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", r.ID, r.StartedAt.Local().Format(time.DateTime), r.Findings, strings.Join(r.Roots, ","))
			}

			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs, 0 for all")
	cmd.Flags().Int64Var(&runID, "run", 0, "show the findings of this run")

	return cmd
}

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
