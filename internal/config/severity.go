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
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSeverity is returned for unknown severity names.
var ErrInvalidSeverity = errors.New("invalid severity")

// Severity of a rule, as selected by the host.
type Severity uint8

//go:generate go tool stringer -type Severity -linecomment
const (
	// Off disables a rule.
	Off Severity = iota // off
	// Warn reports diagnostics without failing the run.
	Warn // warn
	// Error reports diagnostics and fails the run.
	Error // error
)

// ParseSeverity parses "off", "warn" or "error" (and the ESLint numbers 0, 1, 2).
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "0":
		return Off, nil

	case "warn", "warning", "1":
		return Warn, nil

	case "error", "2":
		return Error, nil
	}

	return Off, fmt.Errorf("%w: %q", ErrInvalidSeverity, s)
}

// Set implements [flag.Value].
func (s *Severity) Set(value string) error {
	v, err := ParseSeverity(value)
	if err != nil {
		return err
	}

	*s = v

	return nil
}

// Enabled reports whether the rule runs at all.
func (s Severity) Enabled() bool { return s != Off }

// UnmarshalYAML implements [yaml.Unmarshaler].
func (s *Severity) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w: expected a scalar", value.Line, ErrInvalidSeverity)
	}

	if err := s.Set(value.Value); err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}

	return nil
}

// MarshalYAML implements [yaml.Marshaler].
func (s Severity) MarshalYAML() (any, error) {
	return s.String(), nil
}
