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

// Command observerguard checks JavaScript and TypeScript sources for observers
// that are never unobserved or disconnected.
//
// Usage:
//
//	observerguard [flags] [path ...]
//
// Paths may be files or directories and default to the current directory.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/observerguard/analyzer"
	"fillmore-labs.com/observerguard/internal/config"
	"fillmore-labs.com/observerguard/internal/driver"
	"fillmore-labs.com/observerguard/internal/logging"
	"fillmore-labs.com/observerguard/internal/verify"
)

// Exit codes.
const (
	exitOK       = 0
	exitFindings = 1
	exitFailure  = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}

type flags struct {
	config        string
	changed       bool
	json          bool
	logLevel      string
	logFormat     string
	generated     bool
	nolint        bool
	observerTypes string
	severities    map[verify.Rule]*config.Severity
	set           map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*flags, []string, error) {
	flagSet := flag.NewFlagSet("observerguard", flag.ContinueOnError)
	flagSet.SetOutput(stderr)

	f := &flags{severities: make(map[verify.Rule]*config.Severity), set: make(map[string]bool)}

	flagSet.StringVar(&f.config, "config", "", "configuration file (default "+config.DefaultFileName+" if present)")
	flagSet.BoolVar(&f.changed, "changed", false, "only check files changed in the git work tree")
	flagSet.BoolVar(&f.json, "json", false, "print diagnostics as JSON")
	flagSet.StringVar(&f.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flagSet.StringVar(&f.logFormat, "log-format", "text", "log format (text, json)")
	flagSet.BoolVar(&f.generated, "generated", false, "check generated files")
	flagSet.BoolVar(&f.nolint, "nolint", true, "honor nolint comments")
	flagSet.StringVar(&f.observerTypes, "observer-types", "", "comma-separated list of additional observer constructors")

	for _, r := range verify.Rules {
		s := config.Error
		f.severities[r] = &s
		flagSet.Var(&s, "rule."+r.String(), "severity of "+r.String()+" (off, warn, error)")
	}

	if err := flagSet.Parse(args); err != nil {
		return nil, nil, err
	}

	flagSet.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })

	return f, flagSet.Args(), nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	f, roots, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitFailure
	}

	level, err := logging.ParseLevel(f.logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid log level %q: %v\n", f.logLevel, err)
		return exitFailure
	}

	format, err := logging.ParseFormat(f.logFormat)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid log format %q: %v\n", f.logFormat, err)
		return exitFailure
	}

	logger := logging.New(stderr, level, format)

	code, err := check(ctx, logger, f, roots, stdout)
	if err != nil {
		logger.Error("observerguard failed", "error", err)
		fmt.Fprintf(stderr, "observerguard: %v\n", err)

		return exitFailure
	}

	return code
}

func check(ctx context.Context, logger *slog.Logger, f *flags, roots []string, stdout io.Writer) (int, error) {
	file, err := loadConfig(f.config)
	if err != nil {
		return exitFailure, err
	}

	severities, err := file.Severities()
	if err != nil {
		return exitFailure, err
	}

	for r, s := range f.severities {
		if f.set["rule."+r.String()] {
			severities[r] = *s
		}
	}

	opts := options(file, f)
	logger.Debug("configured", "options", opts)

	analyzers := make([]*analysis.Analyzer, 0, len(verify.Rules))
	for _, r := range verify.Rules {
		if severities[r].Enabled() {
			analyzers = append(analyzers, analyzer.New(r, opts))
		}
	}

	if len(analyzers) == 0 {
		logger.Warn("all rules are disabled")
		return exitOK, nil
	}

	if len(roots) == 0 {
		roots = []string{"."}
	}

	files, err := driver.Discover(roots...)
	if err != nil {
		return exitFailure, err
	}

	if f.changed {
		changed, err := driver.ChangedIn(ctx, roots...)
		if err != nil {
			return exitFailure, err
		}

		files = driver.Filter(files, changed)
	}

	if len(files) == 0 {
		logger.Warn("nothing to check", "error", driver.ErrNoFiles)
		return exitOK, nil
	}

	logger.Info("checking files", "count", len(files))

	d, err := driver.New(logger, analyzers...)
	if err != nil {
		return exitFailure, err
	}

	diagnostics, err := d.Run(ctx, files)
	if err != nil {
		return exitFailure, err
	}

	if err := printDiagnostics(stdout, diagnostics, f.json); err != nil {
		return exitFailure, err
	}

	for _, diag := range diagnostics {
		r, err := verify.ParseRule(diag.Rule)
		if err != nil || severities[r] == config.Error {
			return exitFindings, nil
		}
	}

	return exitOK, nil
}

func loadConfig(path string) (config.File, error) {
	if path != "" {
		return config.Load(path)
	}

	file, err := config.Load(config.DefaultFileName)
	if errors.Is(err, fs.ErrNotExist) {
		return config.File{}, nil
	}

	return file, err
}

func options(file config.File, f *flags) analyzer.Options {
	opts := analyzer.Options{analyzer.WithObserverTypes(file.ObserverTypes...)}

	if file.Generated != nil {
		opts = append(opts, analyzer.WithGenerated(*file.Generated))
	}

	if f.set["generated"] {
		opts = append(opts, analyzer.WithGenerated(f.generated))
	}

	opts = append(opts, analyzer.WithNoLint(f.nolint))

	var types []string
	for t := range strings.SplitSeq(f.observerTypes, ",") {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}

	if len(types) > 0 {
		opts = append(opts, analyzer.WithObserverTypes(types...))
	}

	return opts
}

func printDiagnostics(w io.Writer, diagnostics []driver.Diagnostic, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if diagnostics == nil {
			diagnostics = []driver.Diagnostic{}
		}

		return enc.Encode(diagnostics)
	}

	for _, d := range diagnostics {
		if _, err := fmt.Fprintln(w, d); err != nil {
			return err
		}
	}

	return nil
}
