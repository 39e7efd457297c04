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

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/observerguard/internal/verify"
)

// DefaultFileName is the configuration file looked up in the working directory.
const DefaultFileName = ".observerguard.yaml"

// ErrUnknownPreset is returned for unknown "extends" values.
var ErrUnknownPreset = errors.New("unknown preset")

// presets mirror the shareable configurations of the ESLint plugin.
var presets = map[string]map[verify.Rule]Severity{
	"recommended": {verify.MissingUnobserve: Error, verify.MatchingTarget: Error},
	"strict":      {verify.MissingUnobserve: Error, verify.MatchingTarget: Error},
}

// File is the content of a configuration file.
type File struct {
	// Extends selects a preset as the base rule configuration.
	Extends string `yaml:"extends,omitempty"`
	// Rules overrides rule severities by rule identifier.
	Rules map[string]Severity `yaml:"rules,omitempty"`
	// ObserverTypes adds constructor names recognized as observers.
	ObserverTypes []string `yaml:"observer-types,omitempty"`
	// Generated enables analysis of generated files.
	Generated *bool `yaml:"generated,omitempty"`
}

// Load reads a configuration file. Unknown fields are rejected.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read config: %w", err)
	}

	f, err := Decode(bytes.NewReader(data))
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Decode parses a configuration from r. An empty document yields the zero [File].
func Decode(r io.Reader) (File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("decode config: %w", err)
	}

	return f, nil
}

// Severities returns the effective severity of every rule.
//
// Without a preset all rules default to [Error]; explicit rule entries win.
func (f File) Severities() (map[verify.Rule]Severity, error) {
	result := make(map[verify.Rule]Severity, len(verify.Rules))
	for _, r := range verify.Rules {
		result[r] = Error
	}

	if f.Extends != "" {
		preset, ok := presets[f.Extends]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, f.Extends)
		}

		for r, s := range preset {
			result[r] = s
		}
	}

	for id, s := range f.Rules {
		r, err := verify.ParseRule(id)
		if err != nil {
			return nil, err
		}

		result[r] = s
	}

	return result, nil
}
