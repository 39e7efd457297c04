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

package driver

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"fillmore-labs.com/observerguard/internal/jsast"
)

// ErrNoFiles signals that no script files were found.
var ErrNoFiles = errors.New("no script files found")

// skipDirs are directory names never descended into.
var skipDirs = []string{"node_modules", "bower_components", "vendor", "dist", "build", "coverage"}

// Discover returns all script files below the given roots, sorted and without duplicates.
//
// Roots may name files or directories. Hidden directories, dependency and
// build output directories and minified files are skipped.
func Discover(roots ...string) ([]string, error) {
	var files []string

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("discover: %w", err)
		}

		if !info.IsDir() {
			if jsast.IsScript(root) {
				files = append(files, filepath.Clean(root))
			}

			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && skipDir(d.Name()) {
					return filepath.SkipDir
				}

				return nil
			}

			if jsast.IsScript(path) && !minified(d.Name()) {
				files = append(files, path)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("discover %s: %w", root, err)
		}
	}

	slices.Sort(files)

	return slices.Compact(files), nil
}

func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || slices.Contains(skipDirs, name)
}

func minified(name string) bool {
	return strings.Contains(name, ".min.")
}

// Filter keeps the files contained in keep. Paths are compared in absolute form.
func Filter(files, keep []string) []string {
	set := make(map[string]struct{}, len(keep))
	for _, k := range keep {
		if abs, err := filepath.Abs(k); err == nil {
			set[abs] = struct{}{}
		}
	}

	return slices.DeleteFunc(slices.Clone(files), func(f string) bool {
		abs, err := filepath.Abs(f)
		if err != nil {
			return true
		}

		_, ok := set[abs]

		return !ok
	})
}
