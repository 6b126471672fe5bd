// Copyright 2024 The tformbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchlog

import "strings"

// GNU time -v labels. The report opens with the "Command being timed"
// line; every statistic after it is a tab-indented "label: value"
// line.
const (
	usrtimeStart = "Command being timed:"

	labelWallClock  = "Elapsed (wall clock) time (h:mm:ss or m:ss):"
	labelUserTime   = "User time (seconds):"
	labelSystemTime = "System time (seconds):"
	labelMaxRSS     = "Maximum resident set size (kbytes):"
)

// Usrtime returns a Parser for the resource report printed by
// GNU time -v. The wall-clock time is mandatory: a report without it
// is a partial capture.
func Usrtime() *Parser {
	rules := []Rule{
		labelRule(MetricWallClock, labelWallClock, DurationSeconds),
		labelRule(MetricUserTime, labelUserTime, Decimal),
		labelRule(MetricSystemTime, labelSystemTime, Decimal),
		labelRule(MetricMaxRSS, labelMaxRSS, Decimal),
	}
	start := func(line string) bool {
		return strings.HasPrefix(strings.TrimLeft(line, " \t"), usrtimeStart)
	}
	return NewParser(DialectUsrtime, start, rules, []string{MetricWallClock})
}

// labelRule matches a tab-indented "label: value" statistic line and
// names its metric statically.
func labelRule(name, label string, convert func(string) (float64, error)) Rule {
	return Rule{
		Match: func(line string) (string, string, bool) {
			rest, ok := strings.CutPrefix(strings.TrimLeft(line, " \t"), label)
			if !ok {
				return "", "", false
			}
			return name, strings.TrimSpace(rest), true
		},
		Convert: convert,
	}
}
