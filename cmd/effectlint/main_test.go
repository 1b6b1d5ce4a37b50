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
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/effectdeps/internal/findings"
	"fillmore-labs.com/effectdeps/internal/publish"
)

const source = `import { useEffect } from "react";

export function View({ id }) {
  useEffect(() => load(id), [id, { id }]);
  useEffect(() => load(id), [id]);
  return null;
}
`

type fakeS3 struct {
	input *s3.PutObjectInput
	body  []byte
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}

	f.input, f.body = params, body

	return &s3.PutObjectOutput{}, nil
}

func writeSource(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "view.jsx"), []byte(source), 0o600))

	return dir
}

func run(t *testing.T, a *app, args ...string) error {
	t.Helper()

	cmd := newRootCmd(a)
	cmd.SetArgs(args)

	return cmd.ExecuteContext(t.Context())
}

func newTestApp() (*app, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer

	return newApp(&stdout, &stderr, func(string) string { return "" }), &stdout, &stderr
}

func TestScanText(t *testing.T) {
	t.Parallel()

	dir := writeSource(t)
	a, stdout, _ := newTestApp()

	require.NoError(t, run(t, a, "scan", "--config", filepath.Join(dir, "missing.yaml"), dir))

	assert.Contains(t, stdout.String(), "view.jsx:4:34: Object literal at index 1 in the dependencies of useEffect")
	assert.Equal(t, 1, bytes.Count(stdout.Bytes(), []byte("\n")))
}

func TestScanJSON(t *testing.T) {
	t.Parallel()

	dir := writeSource(t)
	a, stdout, _ := newTestApp()

	require.NoError(t, run(t, a, "scan", "--format", "json", "--config", filepath.Join(dir, "missing.yaml"), dir))

	var report scanReport
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))

	assert.Equal(t, []string{dir}, report.Roots)
	require.Len(t, report.Findings, 1)
	assert.Equal(t, "useEffect", report.Findings[0].Hook)
	assert.Zero(t, report.RunID)
}

func TestScanFail(t *testing.T) {
	t.Parallel()

	dir := writeSource(t)
	a, _, stderr := newTestApp()

	err := run(t, a, "scan", "--fail", "--config", filepath.Join(dir, "missing.yaml"), dir)
	require.ErrorIs(t, err, errFindings)
	assert.Contains(t, stderr.String(), "1 findings")
}

func TestScanInvalidFormat(t *testing.T) {
	t.Parallel()

	a, _, _ := newTestApp()

	err := run(t, a, "scan", "--format", "xml", t.TempDir())
	assert.ErrorContains(t, err, "invalid --format")
}

func TestScanHistory(t *testing.T) {
	t.Parallel()

	dir := writeSource(t)
	db := filepath.Join(t.TempDir(), "runs.db")
	cfg := filepath.Join(dir, "missing.yaml")

	a, _, _ := newTestApp()
	require.NoError(t, run(t, a, "scan", "--db", db, "--config", cfg, dir))

	a, _, _ = newTestApp()
	require.NoError(t, run(t, a, "scan", "--db", db, "--config", cfg, dir))

	a, stdout, _ := newTestApp()
	require.NoError(t, run(t, a, "history", "--db", db, "--format", "json"))

	var runs []findings.Summary
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &runs))
	require.Len(t, runs, 2)
	assert.Equal(t, int64(2), runs[0].ID)
	assert.Equal(t, 1, runs[0].Findings)

	a, stdout, _ = newTestApp()
	require.NoError(t, run(t, a, "history", "--db", db, "--limit", "1"))
	assert.Contains(t, stdout.String(), "ID")
	assert.Contains(t, stdout.String(), "FINDINGS")
	assert.Equal(t, 2, bytes.Count(stdout.Bytes(), []byte("\n")))

	a, stdout, _ = newTestApp()
	require.NoError(t, run(t, a, "history", "--db", db, "--run", "1"))
	assert.Contains(t, stdout.String(), "view.jsx:4:34:")

	a, _, _ = newTestApp()
	err := run(t, a, "history", "--db", db, "--run", "9")
	assert.ErrorIs(t, err, findings.ErrNotFound)
}

func TestHistoryRequiresDB(t *testing.T) {
	t.Parallel()

	a, _, _ := newTestApp()

	err := run(t, a, "history")
	assert.ErrorContains(t, err, "--db is required")
}

func TestScanUpload(t *testing.T) {
	t.Parallel()

	dir := writeSource(t)
	client := &fakeS3{}

	a, _, _ := newTestApp()
	a.newUploader = func() (publish.PutObjectAPI, error) { return client, nil }

	require.NoError(t, run(t, a, "scan", "--upload", "s3://reports/ci/run.json", "--config", filepath.Join(dir, "missing.yaml"), dir))

	require.NotNil(t, client.input)
	assert.Equal(t, "reports", aws.ToString(client.input.Bucket))
	assert.Equal(t, "ci/run.json", aws.ToString(client.input.Key))

	var report scanReport
	require.NoError(t, json.Unmarshal(client.body, &report))
	assert.Len(t, report.Findings, 1)
}

func TestScanUploadInvalidURL(t *testing.T) {
	t.Parallel()

	a, _, _ := newTestApp()
	a.newUploader = func() (publish.PutObjectAPI, error) {
		t.Fatal("uploader created for invalid url")

		return nil, nil
	}

	err := run(t, a, "scan", "--upload", "https://reports/run.json", t.TempDir())
	assert.ErrorIs(t, err, publish.ErrInvalidURL)
}

func TestScanUploadMissingEnvironment(t *testing.T) {
	t.Parallel()

	dir := writeSource(t)
	a, _, _ := newTestApp()

	err := run(t, a, "scan", "--upload", "s3://reports/run.json", "--config", filepath.Join(dir, "missing.yaml"), dir)
	assert.ErrorIs(t, err, publish.ErrMissingEnvironment)
}

func TestConfigInit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "effectlint.yaml")

	a, _, stderr := newTestApp()
	require.NoError(t, run(t, a, "config", "init", path))
	assert.Contains(t, stderr.String(), "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "useEffect")

	a, _, _ = newTestApp()
	err = run(t, a, "config", "init", path)
	require.ErrorContains(t, err, "use --force")

	a, _, _ = newTestApp()
	require.NoError(t, run(t, a, "config", "init", "--force", path))
}
