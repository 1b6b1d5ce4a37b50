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

// Package publish uploads scan reports to S3.
package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	// ErrInvalidURL is returned for report destinations that are not s3://bucket/key URLs.
	ErrInvalidURL = errors.New("invalid s3 url")

	// ErrMissingEnvironment is returned when the environment lacks a region or credentials.
	ErrMissingEnvironment = errors.New("missing aws environment")
)

// PutObjectAPI is the part of *[s3.Client] used by a [Publisher].
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Location is a parsed s3://bucket/key destination.
type Location struct {
	Bucket string
	Key    string
}

// String returns the s3 URL of the location.
func (l Location) String() string {
	return "s3://" + l.Bucket + "/" + l.Key
}

// ParseURL parses an s3://bucket/key URL.
func ParseURL(raw string) (Location, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Location{}, fmt.Errorf("%w %q: %w", ErrInvalidURL, raw, err)
	}

	if u.Scheme != "s3" {
		return Location{}, fmt.Errorf("%w %q: scheme must be s3", ErrInvalidURL, raw)
	}

	key := strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" || strings.HasSuffix(key, "/") {
		return Location{}, fmt.Errorf("%w %q: expected s3://bucket/key", ErrInvalidURL, raw)
	}

	return Location{Bucket: u.Host, Key: key}, nil
}

// Publisher uploads JSON reports.
type Publisher struct {
	client PutObjectAPI
	now    func() time.Time
}

// New creates a [Publisher] using client.
func New(client PutObjectAPI) *Publisher {
	return &Publisher{client: client, now: time.Now}
}

// Publish uploads report as indented JSON to the s3://bucket/key URL.
func (p *Publisher) Publish(ctx context.Context, rawURL string, report any) (Location, error) {
	loc, err := ParseURL(rawURL)
	if err != nil {
		return Location{}, err
	}

	body, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return Location{}, fmt.Errorf("encode report: %w", err)
	}

	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(loc.Bucket),
		Key:           aws.String(loc.Key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String("application/json"),
		Metadata: map[string]string{
			"upload-time": p.now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return Location{}, fmt.Errorf("s3 upload to %s failed: %w", loc, err)
	}

	return loc, nil
}

// ClientFromEnv creates an S3 client from AWS_REGION (or AWS_DEFAULT_REGION), AWS_ACCESS_KEY_ID,
// AWS_SECRET_ACCESS_KEY, the optional AWS_SESSION_TOKEN and an optional AWS_ENDPOINT_URL_S3
// (or AWS_ENDPOINT_URL) for S3 compatible stores.
func ClientFromEnv(getenv func(string) string) (*s3.Client, error) {
	region := firstNonEmpty(getenv("AWS_REGION"), getenv("AWS_DEFAULT_REGION"))
	if region == "" {
		return nil, fmt.Errorf("%w: AWS_REGION not set", ErrMissingEnvironment)
	}

	creds := aws.Credentials{
		AccessKeyID:     getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: getenv("AWS_SECRET_ACCESS_KEY"),
		SessionToken:    getenv("AWS_SESSION_TOKEN"),
		Source:          "Environment",
	}
	if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
		return nil, fmt.Errorf("%w: AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY required", ErrMissingEnvironment)
	}

	opts := s3.Options{
		Region: region,
		Credentials: aws.NewCredentialsCache(aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
			return creds, nil
		})),
	}

	if endpoint := firstNonEmpty(getenv("AWS_ENDPOINT_URL_S3"), getenv("AWS_ENDPOINT_URL")); endpoint != "" {
		opts.BaseEndpoint = aws.String(endpoint)
		opts.UsePathStyle = true
	}

	return s3.New(opts), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
