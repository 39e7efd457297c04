// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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

package run

import (
	"context"
	"fmt"
	"go/token"
	"os"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/observerguard/internal/astutil"
	"fillmore-labs.com/observerguard/internal/collect"
	"fillmore-labs.com/observerguard/internal/config"
	"fillmore-labs.com/observerguard/internal/jsast"
	"fillmore-labs.com/observerguard/internal/report"
	"fillmore-labs.com/observerguard/internal/verify"
)

// Result summarizes a run over one pass.
type Result struct {
	// Files is the number of analyzed script files.
	Files int
	// Skipped is the number of generated or nolint files.
	Skipped int
	// Reported is the number of reported diagnostics.
	Reported int
}

// Run executes the observerguard pipeline on every script file of the pass.
//
// Script files are taken from [analysis.Pass.OtherFiles]; each file is a
// separate unit with its own collected state.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "ObserverGuard")
	defer task.End()

	trace.Log(ctx, "rule", r.Rule.String())

	collector := collect.New(r.ObserverTypes...)
	result := &Result{}

	for _, name := range p.OtherFiles {
		if !jsast.IsScript(name) {
			continue
		}

		src, err := readFile(p, name)
		if err != nil {
			return nil, fmt.Errorf("observerguard: %w", err)
		}

		if err := r.runFile(ctx, p, collector, name, src, result); err != nil {
			return nil, fmt.Errorf("observerguard: %w", err)
		}
	}

	return result, nil
}

func (r *Options) runFile(ctx context.Context, p *analysis.Pass, collector collect.Collector, name string, src []byte, result *Result) error {
	tree, err := jsast.Parse(ctx, name, src)
	if err != nil {
		return err
	}
	defer tree.Close()

	root := tree.RootNode()

	currentFile := astutil.NewCurrentFile(p.Fset, name, src, root)
	if !currentFile.Valid() {
		astutil.InternalError(p, token.NoPos, "File %s without valid info", name)

		return nil
	}

	// Skip generated files and files with nolint comment
	if (currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated)) ||
		(currentFile.NoLint() && r.Behavior.Enabled(config.HonorNoLint)) {
		result.Skipped++

		return nil
	}

	result.Files++

	// Stage 1: Collect observer declarations, aliases and method invocations
	state, err := collector.Collect(ctx, root, src)
	if err != nil {
		return err
	}

	// Stage 2: Verify the collected state
	findings := verify.Verify(state, r.Rule)

	// Stage 3: Report diagnostics
	result.Reported += report.ProcessFindings(ctx, p, currentFile, findings, r.Behavior)

	return nil
}

func readFile(p *analysis.Pass, name string) ([]byte, error) {
	if p.ReadFile != nil {
		return p.ReadFile(name)
	}

	return os.ReadFile(name)
}
