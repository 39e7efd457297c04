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

// Package driver runs observerguard analyzers on script files outside of the
// Go package loading machinery.
//
// Files are grouped per directory; each directory becomes one [analysis.Pass]
// whose OtherFiles are the script files of that directory.
package driver

import (
	"cmp"
	"context"
	"fmt"
	"go/token"
	"go/types"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/trace"
	"slices"

	"golang.org/x/tools/go/analysis"
)

// Diagnostic is a reported finding with a resolved position.
type Diagnostic struct {
	Analyzer string         `json:"analyzer"`
	Rule     string         `json:"rule"`
	Pos      token.Position `json:"pos"`
	End      token.Position `json:"end"`
	Message  string         `json:"message"`
}

// String formats the diagnostic like the Go vet tools do.
func (d Diagnostic) String() string {
	if d.Rule == "" {
		return fmt.Sprintf("%s: %s", d.Pos, d.Message)
	}

	return fmt.Sprintf("%s: %s (%s)", d.Pos, d.Message, d.Rule)
}

// Driver runs analyzers over script files.
type Driver struct {
	Analyzers []*analysis.Analyzer
	Logger    *slog.Logger
}

// New creates a [Driver] after validating the analyzers.
func New(logger *slog.Logger, analyzers ...*analysis.Analyzer) (*Driver, error) {
	if err := analysis.Validate(analyzers); err != nil {
		return nil, fmt.Errorf("invalid analyzers: %w", err)
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Driver{Analyzers: analyzers, Logger: logger}, nil
}

// Run analyzes the given files and returns all diagnostics sorted by position and rule.
//
// Cancellation is checked between directories; diagnostics of a directory
// are only returned when all analyzers completed on it.
func (d *Driver) Run(ctx context.Context, files []string) ([]Diagnostic, error) {
	ctx, task := trace.NewTask(ctx, "Driver")
	defer task.End()

	var diagnostics []Diagnostic

	for _, dir := range groupByDir(files) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ds, err := d.runDir(ctx, dir.path, dir.files)
		if err != nil {
			return nil, err
		}

		diagnostics = append(diagnostics, ds...)
	}

	slices.SortStableFunc(diagnostics, compareDiagnostics)

	d.Logger.LogAttrs(ctx, slog.LevelInfo, "analysis finished",
		slog.Int("files", len(files)), slog.Int("diagnostics", len(diagnostics)))

	return diagnostics, nil
}

func (d *Driver) runDir(ctx context.Context, dir string, files []string) ([]Diagnostic, error) {
	defer trace.StartRegion(ctx, "Directory").End()

	fset := token.NewFileSet()
	pkg := types.NewPackage(filepath.ToSlash(dir), filepath.Base(dir))

	var diagnostics []Diagnostic

	for _, a := range d.Analyzers {
		pass := &analysis.Pass{
			Analyzer:   a,
			Fset:       fset,
			OtherFiles: files,
			Pkg:        pkg,
			TypesInfo:  &types.Info{},
			TypesSizes: types.SizesFor("gc", runtime.GOARCH),
			ResultOf:   make(map[*analysis.Analyzer]any),
			ReadFile:   os.ReadFile,
			Report: func(diag analysis.Diagnostic) {
				diagnostics = append(diagnostics, Diagnostic{
					Analyzer: a.Name,
					Rule:     diag.Category,
					Pos:      fset.Position(diag.Pos),
					End:      fset.Position(diag.End),
					Message:  diag.Message,
				})
			},
		}

		result, err := a.Run(pass)
		if err != nil {
			return nil, fmt.Errorf("%s on %s: %w", a.Name, dir, err)
		}

		d.Logger.LogAttrs(ctx, slog.LevelDebug, "analyzed directory",
			slog.String("dir", dir), slog.String("analyzer", a.Name), slog.Any("result", result))
	}

	return diagnostics, nil
}

type dirFiles struct {
	path  string
	files []string
}

func groupByDir(files []string) []dirFiles {
	index := make(map[string]int)

	var dirs []dirFiles

	for _, f := range files {
		dir := filepath.Dir(f)

		i, ok := index[dir]
		if !ok {
			i = len(dirs)
			index[dir] = i
			dirs = append(dirs, dirFiles{path: dir})
		}

		dirs[i].files = append(dirs[i].files, f)
	}

	return dirs
}

func compareDiagnostics(a, b Diagnostic) int {
	return cmp.Or(
		cmp.Compare(a.Pos.Filename, b.Pos.Filename),
		cmp.Compare(a.Pos.Offset, b.Pos.Offset),
		cmp.Compare(a.Rule, b.Rule),
	)
}
