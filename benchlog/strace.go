// Copyright 2024 The tformbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchlog

import (
	"strconv"
	"strings"
)

// straceHeader opens the strace -c summary table:
//
//	% time     seconds  usecs/call     calls    errors syscall
const straceHeader = "% time"

// Strace returns a Parser for the syscall summary table printed by
// strace -c. Only the named syscalls contribute metrics, each mapped
// to the seconds spent in it; an empty selection parses any
// well-formed file to an empty MetricSet. No metric is mandatory.
func Strace(syscalls []string) *Parser {
	selected := make(map[string]bool, len(syscalls))
	for _, name := range syscalls {
		selected[name] = true
	}
	rule := Rule{
		Match: func(line string) (string, string, bool) {
			// Table rows are percent, seconds, usecs/call, calls,
			// errors, syscall. The errors column is blank when no
			// call failed, so rows carry five or six fields.
			f := strings.Fields(line)
			if len(f) != 5 && len(f) != 6 {
				return "", "", false
			}
			name := f[len(f)-1]
			if !selected[name] {
				return "", "", false
			}
			if _, err := strconv.ParseFloat(f[0], 64); err != nil {
				return "", "", false
			}
			return name, f[1], true
		},
		Convert: Decimal,
	}
	start := func(line string) bool {
		return strings.HasPrefix(strings.TrimSpace(line), straceHeader)
	}
	return NewParser(DialectStrace, start, []Rule{rule}, nil)
}
