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

// Package analyzer implements the observerguard static analysis passes.
//
// # Overview
//
// observerguard checks JavaScript and TypeScript sources for lifecycle misuse
// of ResizeObserver, MutationObserver and IntersectionObserver objects.
// Every rule is exposed as its own [analysis.Analyzer]:
//
//   - no-missing-unobserve-or-disconnect: every observed receiver must be
//     unobserved or disconnected somewhere in the same file.
//   - matching-unobserve-target: when a receiver is unobserved, every observed
//     target must be unobserved.
//
// The analyzers inspect the script files listed in [analysis.Pass.OtherFiles].
// The observerguard command discovers script files and builds passes for them.
//
// # Example
//
//	class Panel extends React.Component {
//	  componentDidMount() {
//	    this.ro = new ResizeObserver(this.onResize);
//	    this.ro.observe(this.header);
//	    this.ro.observe(this.body);   // matching-unobserve-target
//	  }
//
//	  componentWillUnmount() {
//	    this.ro.unobserve(this.header);
//	  }
//	}
//
// An observer constructed into a local and stored into a field afterwards is
// followed for one hop:
//
//	const temp = new IntersectionObserver(cb);
//	temp.observe(this.el);
//	this.io = temp;           // later: this.io.disconnect()
//
// # Suppressing diagnostics
//
// A "// nolint:observerguard" comment (or "nolint:<rule>") on the line of the
// observe call suppresses its diagnostic; the same comment leading the file
// skips the whole file.
package analyzer
