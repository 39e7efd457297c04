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
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/go-git/go-git/v5"
)

// Changed returns the absolute paths of files modified, added or untracked
// in the git work tree containing path. Deleted files are not reported.
func Changed(ctx context.Context, path string) ([]string, error) {
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		path = filepath.Dir(path)
	}

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository at %s: %w", path, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("work tree: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}

	root := wt.Filesystem.Root()

	var changed []string

	for name, s := range status {
		if s.Worktree == git.Deleted || s.Staging == git.Deleted {
			continue
		}

		if s.Worktree == git.Unmodified && s.Staging == git.Unmodified {
			continue
		}

		changed = append(changed, filepath.Join(root, filepath.FromSlash(name)))
	}

	slices.Sort(changed)

	return changed, nil
}

// ChangedIn merges the changed files of the work trees containing each root.
// Roots may live in different repositories; every root must be inside one.
func ChangedIn(ctx context.Context, roots ...string) ([]string, error) {
	var changed []string

	for _, root := range roots {
		files, err := Changed(ctx, root)
		if err != nil {
			return nil, err
		}

		changed = append(changed, files...)
	}

	slices.Sort(changed)

	return slices.Compact(changed), nil
}
