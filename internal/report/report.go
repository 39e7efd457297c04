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

// Package report turns verification findings into [analysis.Diagnostic] values.
package report

import (
	"context"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/observerguard/internal/astutil"
	"fillmore-labs.com/observerguard/internal/config"
	"fillmore-labs.com/observerguard/internal/verify"
)

// url of the rule documentation.
const url = "https://pkg.go.dev/fillmore-labs.com/observerguard/analyzer"

// ProcessFindings reports findings of one file to the analysis framework.
//
// Findings on a line carrying a nolint comment for the rule are dropped
// when [config.HonorNoLint] is enabled.
func ProcessFindings(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, findings []verify.Finding, behavior config.Behavior) int {
	defer trace.StartRegion(ctx, "Report").End()

	honorNoLint := behavior.Enabled(config.HonorNoLint)

	reported := 0

	for _, f := range findings {
		rule := f.Rule.String()

		if honorNoLint && currentFile.NoLintComment(f.Loc.Start, rule) {
			continue
		}

		p.Report(Diagnostic(currentFile, f))
		reported++
	}

	return reported
}

// Diagnostic converts a single finding.
func Diagnostic(currentFile astutil.CurrentFile, f verify.Finding) analysis.Diagnostic {
	rule := f.Rule.String()

	return analysis.Diagnostic{
		Pos:      currentFile.Pos(f.Loc.Start),
		End:      currentFile.Pos(f.Loc.End),
		Category: rule,
		Message:  f.Message(),
		URL:      url,
	}
}
