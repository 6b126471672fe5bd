// Copyright 2024 The tformbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchlog

import (
	"regexp"
	"strings"
)

// A Dialect identifies one of the recognized log text formats.
type Dialect int

const (
	// DialectUsrtime is the resource report printed by GNU time -v.
	DialectUsrtime Dialect = iota
	// DialectStrace is the syscall summary table printed by strace -c.
	DialectStrace
)

// String returns the file-name suffix of the dialect.
func (d Dialect) String() string {
	switch d {
	case DialectUsrtime:
		return "usrtime"
	case DialectStrace:
		return "strace"
	}
	return "unknown"
}

// An Identity is the structured form of a log file's name: which
// variant of the tool was measured, at which optional revision,
// transforming which source dataset, recorded in which dialect.
type Identity struct {
	Variant  string
	Revision string // 7-character build hash, or ""
	Source   string // source file name, including its own extension
	Dialect  Dialect
}

// FileName reconstructs the log file name the Identity was resolved
// from.
func (id Identity) FileName() string {
	var b strings.Builder
	b.WriteString(id.Variant)
	if id.Revision != "" {
		b.WriteByte('-')
		b.WriteString(id.Revision)
	}
	b.WriteByte('_')
	b.WriteString(id.Source)
	b.WriteByte('.')
	b.WriteString(id.Dialect.String())
	return b.String()
}

// A Resolver maps log file names to Identities. Names follow the
// grammar
//
//	<variant>[-<revision>]_<source><ext>.<usrtime|strace>
//
// where the revision is exactly 7 lowercase-alphanumeric characters
// and ext is the source files' native extension, configured at
// construction. The source keeps its extension; only the trailing
// dialect suffix is stripped.
type Resolver struct {
	ext string
	re  *regexp.Regexp
}

// NewResolver returns a Resolver for source files with the given
// extension, e.g. ".bim".
func NewResolver(sourceExt string) *Resolver {
	return &Resolver{
		ext: sourceExt,
		re: regexp.MustCompile(
			`^([^_]+?)(?:-([a-z0-9]{7}))?_(.+` + regexp.QuoteMeta(sourceExt) + `)\.(usrtime|strace)$`),
	}
}

// Resolve parses name into an Identity. The second return value
// reports whether the name matched the grammar; a failure is not an
// error, callers are expected to skip such files.
func (r *Resolver) Resolve(name string) (Identity, bool) {
	m := r.re.FindStringSubmatch(name)
	if m == nil {
		return Identity{}, false
	}
	id := Identity{Variant: m[1], Revision: m[2], Source: m[3]}
	if m[4] == "strace" {
		id.Dialect = DialectStrace
	}
	return id, true
}

// Candidate reports whether name ends in a known dialect suffix.
// Directory listings contain plenty of unrelated entries; only
// candidates that then fail to Resolve are worth a diagnostic.
func (r *Resolver) Candidate(name string) bool {
	return strings.HasSuffix(name, ".usrtime") || strings.HasSuffix(name, ".strace")
}
