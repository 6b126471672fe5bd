// Copyright 2024 The tformbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchlog parses the measurement logs written by benchmark
// runs of the transformation tool.
//
// Two log dialects are understood: the resource report printed by
// GNU time -v ("usrtime" files) and the syscall summary table printed
// by strace -c ("strace" files). A Resolver maps a log file's name to
// the variant, revision, source dataset, and dialect it describes; a
// Parser scans the file's contents and extracts named metrics.
//
// Parsers are line-oriented two-state scanners: they seek the
// dialect's start marker, then match each following line against a
// table of field rules. This package is designed to be used with the
// higher-level package benchagg, which merges parsed metrics into a
// queryable dataset.
package benchlog

// Metric names extracted by the usrtime dialect. The strace dialect
// contributes one metric per selected syscall, named after the
// syscall; the two dialects' name sets never overlap, which is what
// makes per-field merging in benchagg safe.
const (
	MetricWallClock  = "wall_clock_time"
	MetricUserTime   = "user_time"
	MetricSystemTime = "system_time"
	MetricMaxRSS     = "max_rss"
)

// A MetricSet maps a metric name to its value. Times are in seconds;
// MetricMaxRSS is in kilobytes.
type MetricSet map[string]float64
