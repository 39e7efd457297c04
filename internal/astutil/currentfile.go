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

package astutil

import (
	"go/token"
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/observerguard/internal/jsast"
)

// observerguard is the name of the linter.
const observerguard = "observerguard"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	handle    *token.File
	comments  map[int][]string
	generated bool
	noLint    bool
}

// NewCurrentFile creates a new [CurrentFile] for a parsed script file.
//
// The file is registered in fset, so that byte offsets of the syntax tree
// can be converted to [token.Pos] values. A file already registered under
// the same name and size is reused.
func NewCurrentFile(fset *token.FileSet, name string, src []byte, root *sitter.Node) CurrentFile {
	if fset == nil || root == nil {
		return CurrentFile{}
	}

	handle := registeredFile(fset, name, len(src))
	if handle == nil {
		handle = fset.AddFile(name, -1, len(src))
		handle.SetLinesForContent(src)
	}

	c := CurrentFile{handle: handle, comments: make(map[int][]string)}

	leading := true

	for i := range int(root.NamedChildCount()) {
		child := root.NamedChild(i)
		if child.Type() != jsast.Comment {
			leading = false
			continue
		}

		if !leading {
			continue
		}

		text := child.Content(src)
		if generatedPattern.MatchString(text) {
			c.generated = true
		}

		if CommentHasNoLint(text) {
			c.noLint = true
		}
	}

	collectComments(root, src, func(n *sitter.Node, text string) {
		line := c.Line(n.StartByte())
		c.comments[line] = append(c.comments[line], text)
	})

	return c
}

func registeredFile(fset *token.FileSet, name string, size int) *token.File {
	var found *token.File

	fset.Iterate(func(f *token.File) bool {
		if f.Name() == name && f.Size() == size {
			found = f
			return false
		}

		return true
	})

	return found
}

func collectComments(root *sitter.Node, src []byte, yield func(*sitter.Node, string)) {
	cursor := sitter.NewTreeCursor(root)
	defer cursor.Close()

	for {
		n := cursor.CurrentNode()
		if n.Type() == jsast.Comment {
			yield(n, n.Content(src))
		} else if cursor.GoToFirstChild() {
			continue
		}

		for !cursor.GoToNextSibling() {
			if !cursor.GoToParent() {
				return
			}
		}
	}
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid file handle.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Name returns the registered file name.
func (c CurrentFile) Name() string {
	return c.handle.Name()
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// NoLint returns true if a leading comment disables the linter for the whole file.
func (c CurrentFile) NoLint() bool {
	return c.noLint
}

// Pos converts a byte offset of the syntax tree into a [token.Pos].
func (c CurrentFile) Pos(offset uint32) token.Pos {
	o := int(offset)
	if o > c.handle.Size() {
		o = c.handle.Size()
	}

	return c.handle.Pos(o)
}

// Line returns the 1-based line of a byte offset.
func (c CurrentFile) Line(offset uint32) int {
	return c.handle.PositionFor(c.Pos(offset), false).Line
}

// NoLintComment checks if the line of a byte offset carries a nolint comment
// for observerguard, all linters or the given rule.
func (c CurrentFile) NoLintComment(offset uint32, rule string) bool {
	for _, text := range c.comments[c.Line(offset)] {
		if commentHasNoLint(text, rule) {
			return true
		}
	}

	return false
}

var (
	nolintPattern    = regexp.MustCompile(`^(?://|/\*)\s*nolint:([a-zA-Z0-9,_-]+)`)
	generatedPattern = regexp.MustCompile(`^// Code generated .* DO NOT EDIT\.$`)
)

// CommentHasNoLint checks if the provided comment contains a `// nolint:observerguard` directive.
func CommentHasNoLint(comment string) bool {
	return commentHasNoLint(comment, "")
}

func commentHasNoLint(comment, rule string) bool {
	matches := nolintPattern.FindStringSubmatch(comment)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		l := strings.ToLower(strings.TrimSpace(linter))
		if l == observerguard || l == "all" || (rule != "" && l == rule) {
			return true
		}
	}

	return false
}
