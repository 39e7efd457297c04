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

package jsast

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// ErrUnsupportedFile is returned when a file extension has no known grammar.
var ErrUnsupportedFile = errors.New("unsupported script file")

// Dialect selects the grammar used for a file.
type Dialect uint8

//go:generate go tool stringer -type Dialect -linecomment
const (
	// NoDialect is used for files that are not script files.
	NoDialect Dialect = iota // none
	// JavaScript covers ECMAScript including JSX.
	JavaScript // javascript
	// TypeScript covers TypeScript without JSX.
	TypeScript // typescript
	// TSX covers TypeScript with JSX.
	TSX // tsx
)

// DialectOf returns the [Dialect] for a file name, based on its extension.
func DialectOf(path string) Dialect {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".js", ".jsx", ".mjs", ".cjs":
		return JavaScript

	case ".ts", ".mts", ".cts":
		return TypeScript

	case ".tsx":
		return TSX

	default:
		return NoDialect
	}
}

// IsScript reports whether the file name has a supported script extension.
func IsScript(path string) bool {
	return DialectOf(path) != NoDialect
}

func (d Dialect) language() *sitter.Language {
	switch d {
	case JavaScript:
		return javascript.GetLanguage()

	case TypeScript:
		return typescript.GetLanguage()

	case TSX:
		return tsx.GetLanguage()

	default:
		return nil
	}
}

// Parse parses the source of a script file.
//
// The caller is responsible for closing the returned tree.
// Syntax errors do not fail the parse; tree-sitter recovers and marks
// erroneous regions, which simply do not match any tracked shape.
func Parse(ctx context.Context, path string, src []byte) (*sitter.Tree, error) {
	lang := DialectOf(path).language()
	if lang == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
	}

	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(lang)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return tree, nil
}
