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
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"fillmore-labs.com/effectdeps/internal/findings"
	"fillmore-labs.com/effectdeps/internal/publish"
	"fillmore-labs.com/effectdeps/scan"
)

// scanReport is the JSON output of a scan.
type scanReport struct {
	RunID     int64          `json:"run_id,omitempty"`
	StartedAt time.Time      `json:"started_at"`
	Roots     []string       `json:"roots"`
	Findings  []scan.Finding `json:"findings"`
}

func newScanCmd(a *app) *cobra.Command {
	var (
		configPath string
		upload     string
		fail       bool
	)

	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Scan sources for unstable hook dependencies",
		Long:  "Scans .js, .jsx, .ts and .tsx files below the given paths (default: current directory), skipping node_modules.",
		RunE: func(cmd *cobra.Command, args []string) error {
			roots := args
			if len(roots) == 0 {
				roots = []string{"."}
			}

			cfg, err := scan.LoadConfig(configPath)
			if err != nil {
				return err
			}

			report := scanReport{StartedAt: time.Now().UTC(), Roots: roots}

			s := scan.New(cfg, scan.WithLogger(a.logger))

			report.Findings, err = s.Paths(cmd.Context(), roots...)
			if err != nil {
				return err
			}

			if report.Findings == nil {
				report.Findings = []scan.Finding{}
			}

			if a.db != "" {
				if report.RunID, err = a.record(cmd, report); err != nil {
					return err
				}
			}

			if upload != "" {
				if err := a.upload(cmd, upload, report); err != nil {
					return err
				}
			}

			if err := a.writeReport(report); err != nil {
				return err
			}

			if fail && len(report.Findings) > 0 {
				fmt.Fprintf(a.stderr, "%d findings\n", len(report.Findings))

				return errFindings
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", scan.DefaultConfigFile, "YAML configuration file")
	cmd.Flags().StringVar(&upload, "upload", "", "publish the JSON report to s3://bucket/key")
	cmd.Flags().BoolVar(&fail, "fail", false, "exit with status 1 when findings are reported")

	return cmd
}

func (a *app) record(cmd *cobra.Command, report scanReport) (int64, error) {
	store, err := findings.Open(a.db)
	if err != nil {
		return 0, err
	}
	defer store.Close()

	id, err := store.Record(cmd.Context(), findings.Run{
		StartedAt: report.StartedAt,
		Roots:     report.Roots,
		Findings:  report.Findings,
	})
	if err != nil {
		return 0, fmt.Errorf("record run: %w", err)
	}

	a.logger.Debug("Recorded run", slog.Int64("run", id), slog.String("db", a.db))

	return id, nil
}

func (a *app) upload(cmd *cobra.Command, rawURL string, report scanReport) error {
	if _, err := publish.ParseURL(rawURL); err != nil {
		return err
	}

	client, err := a.newUploader()
	if err != nil {
		return err
	}

	loc, err := publish.New(client).Publish(cmd.Context(), rawURL, report)
	if err != nil {
		return err
	}

	a.logger.Info("Published report", slog.String("location", loc.String()))

	return nil
}

func (a *app) writeReport(report scanReport) error {
	if a.format == "json" {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(report)
	}

	for _, f := range report.Findings {
		fmt.Fprintln(a.stdout, f)
	}

	return nil
}
