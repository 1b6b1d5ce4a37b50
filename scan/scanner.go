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

package scan

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/effectdeps/deps"
)

// ErrUnsupported is returned for files of an unknown language.
var ErrUnsupported = errors.New("unsupported language")

// hookQuery captures calls of plain and member callees with their argument list.
const hookQuery = `
(call_expression
  function: [
    (identifier) @hook
    (member_expression property: (property_identifier) @hook)
  ]
  arguments: (arguments) @args)
`

// Finding is a dependency list entry recreated on every render.
type Finding struct {
	Path    string    `json:"path"`
	Line    int       `json:"line"`
	Column  int       `json:"column"`
	Hook    string    `json:"hook"`
	Index   int       `json:"index"`
	Kind    deps.Kind `json:"kind"`
	Message string    `json:"message"`
}

// String formats the finding like a compiler diagnostic.
func (f Finding) String() string {
	return fmt.Sprintf("%s:%d:%d: %s", f.Path, f.Line, f.Column, f.Message)
}

// Scanner finds unstable dependency list entries.
type Scanner struct {
	cfg    Config
	hooks  map[string]bool
	logger *slog.Logger
}

// Option configures a [Scanner].
type Option func(*Scanner)

// WithLogger sets the logger for per-file diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scanner) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a [Scanner] for the configuration.
func New(cfg Config, opts ...Option) *Scanner {
	s := &Scanner{
		cfg:    cfg,
		hooks:  make(map[string]bool, len(cfg.Hooks)),
		logger: slog.Default(),
	}

	for _, hook := range cfg.Hooks {
		s.hooks[hook] = true
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// File scans the source of a single file. The language is determined by the path's extension.
func (s *Scanner) File(ctx context.Context, path string, src []byte) ([]Finding, error) {
	lang, ok := LanguageForFile(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, path)
	}

	grammar, ok := grammarFor(lang)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, lang)
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(grammar)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	defer tree.Close()

	q, err := sitter.NewQuery([]byte(hookQuery), grammar)
	if err != nil {
		return nil, fmt.Errorf("hook query for %s: %w", lang, err)
	}
	defer q.Close()

	cursor := sitter.NewQueryCursor()
	defer cursor.Close()
	cursor.Exec(q, tree.RootNode())

	var findings []Finding

	for {
		match, ok := cursor.NextMatch()
		if !ok {
			break
		}

		var hook string

		var args *sitter.Node

		for _, capture := range match.Captures {
			switch q.CaptureNameForId(capture.Index) {
			case "hook":
				hook = capture.Node.Content(src)

			case "args":
				args = capture.Node
			}
		}

		if !s.hooks[hook] || args == nil {
			continue
		}

		findings = s.appendFindings(findings, path, hook, args)
	}

	slices.SortStableFunc(findings, compareFindings)

	s.logger.Debug("Scanned file", slog.String("path", path), slog.String("language", lang), slog.Int("findings", len(findings)))

	return findings, nil
}

// appendFindings reports the unstable entries of the array literal passed as second argument.
func (s *Scanner) appendFindings(findings []Finding, path, hook string, args *sitter.Node) []Finding {
	list := namedChildren(args)
	if len(list) < 2 {
		return findings
	}

	deplist := unparen(list[1])
	if deplist.Type() != "array" {
		return findings
	}

	for i, elem := range namedChildren(deplist) {
		kind, description, ok := classify(unparen(elem))
		if !ok || !s.enabled(kind) {
			continue
		}

		start := elem.StartPoint()
		findings = append(findings, Finding{
			Path:    path,
			Line:    int(start.Row) + 1,
			Column:  int(start.Column) + 1,
			Hook:    hook,
			Index:   i,
			Kind:    kind,
			Message: fmt.Sprintf("%s at index %d in the dependencies of %s is recreated on every render", description, i, hook),
		})
	}

	return findings
}

func (s *Scanner) enabled(kind deps.Kind) bool {
	switch kind {
	case deps.Array:
		return s.cfg.Kinds.Arrays

	case deps.Object:
		return s.cfg.Kinds.Objects

	case deps.Function:
		return s.cfg.Kinds.Functions

	default:
		return false
	}
}

// classify returns the kind of value a dependency list entry creates on every evaluation.
func classify(n *sitter.Node) (deps.Kind, string, bool) {
	switch n.Type() {
	case "array":
		return deps.Array, "Array literal", true

	case "object":
		return deps.Object, "Object literal", true

	case "new_expression":
		return deps.Object, "New instance", true

	case "arrow_function", "function", "function_expression":
		return deps.Function, "Inline function", true

	default:
		return deps.Primitive, "", false
	}
}

// unparen strips parentheses and TypeScript type assertions.
func unparen(n *sitter.Node) *sitter.Node {
	for {
		switch n.Type() {
		case "parenthesized_expression", "as_expression", "satisfies_expression", "non_null_expression":
			children := namedChildren(n)
			if len(children) == 0 {
				return n
			}

			n = children[0]

		default:
			return n
		}
	}
}

// namedChildren returns the named children of n, without comments.
func namedChildren(n *sitter.Node) []*sitter.Node {
	count := int(n.NamedChildCount())
	children := make([]*sitter.Node, 0, count)

	for i := range count {
		child := n.NamedChild(i)
		if child == nil || child.Type() == "comment" {
			continue
		}

		children = append(children, child)
	}

	return children
}

// Paths scans all supported files below the roots, in parallel.
// Directories named node_modules and paths matching [Config.Ignore] are skipped.
func (s *Scanner) Paths(ctx context.Context, roots ...string) ([]Finding, error) {
	var files []string

	for _, root := range roots {
		found, err := s.collect(root)
		if err != nil {
			return nil, err
		}

		files = append(files, found...)
	}

	if len(files) == 0 {
		return nil, nil
	}

	numWorkers := s.cfg.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	numWorkers = min(numWorkers, len(files))

	workCh := make(chan string, len(files))
	for _, file := range files {
		workCh <- file
	}
	close(workCh)

	type result struct {
		path     string
		findings []Finding
		err      error
	}

	resultCh := make(chan result, len(files))

	var wg sync.WaitGroup
	for range numWorkers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for path := range workCh {
				if err := ctx.Err(); err != nil {
					resultCh <- result{path: path, err: err}

					continue
				}

				findings, err := s.scanFile(ctx, path)
				resultCh <- result{path: path, findings: findings, err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	var (
		findings []Finding
		errs     []error
	)

	for res := range resultCh {
		if res.err != nil {
			errs = append(errs, fmt.Errorf("scan %s: %w", res.path, res.err))

			continue
		}

		findings = append(findings, res.findings...)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	slices.SortStableFunc(findings, compareFindings)

	return findings, nil
}

func compareFindings(a, b Finding) int {
	return cmp.Or(
		cmp.Compare(a.Path, b.Path),
		cmp.Compare(a.Line, b.Line),
		cmp.Compare(a.Column, b.Column),
	)
}

func (s *Scanner) scanFile(ctx context.Context, path string) ([]Finding, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return s.File(ctx, path, src)
}

// collect returns the supported files below root.
func (s *Scanner) collect(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}

		if d.IsDir() {
			if path != root && (d.Name() == "node_modules" || s.ignored(rel, d.Name())) {
				return filepath.SkipDir
			}

			return nil
		}

		if _, ok := LanguageForFile(path); !ok || s.ignored(rel, d.Name()) {
			return nil
		}

		files = append(files, path)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	return files, nil
}

func (s *Scanner) ignored(rel, name string) bool {
	rel = filepath.ToSlash(rel)

	for _, pattern := range s.cfg.Ignore {
		if ok, _ := filepath.Match(pattern, rel); ok {
			return true
		}

		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}

	return false
}
