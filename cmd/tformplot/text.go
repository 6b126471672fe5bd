// Copyright 2024 The tformbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/tformlab/tformbench/benchagg"
	"github.com/tformlab/tformbench/benchlog"
)

// metricOrder lists the fixed metrics in display order; syscall
// metrics follow, sorted by name.
var metricOrder = []string{
	benchlog.MetricWallClock,
	benchlog.MetricUserTime,
	benchlog.MetricSystemTime,
	benchlog.MetricMaxRSS,
}

// sortedMetrics returns the metrics observed in a comparison, fixed
// metrics first.
func sortedMetrics(cmp *benchagg.Comparison) []string {
	fixed := make(map[string]bool, len(metricOrder))
	var out []string
	for _, m := range metricOrder {
		fixed[m] = true
		if _, ok := cmp.Max[m]; ok {
			out = append(out, m)
		}
	}
	var syscalls []string
	for m := range cmp.Max {
		if !fixed[m] {
			syscalls = append(syscalls, m)
		}
	}
	sort.Strings(syscalls)
	return append(out, syscalls...)
}

// sourceContext describes the annotation attached to a source, or ""
// if there is none.
func sourceContext(sd *benchagg.SourceDataset) string {
	switch {
	case sd.RecordCount > 0 && sd.SizeBytes > 0:
		return fmt.Sprintf("%d records, %d bytes", sd.RecordCount, sd.SizeBytes)
	case sd.RecordCount > 0:
		return fmt.Sprintf("%d records", sd.RecordCount)
	case sd.SizeBytes > 0:
		return fmt.Sprintf("%d bytes", sd.SizeBytes)
	}
	return ""
}

func formatMeasure(m benchagg.Measure) string {
	return fmt.Sprintf("%.2f (×%.2f)", m.Value, m.Ratio)
}

// formatText prints one table per source: a row per metric, a column
// per compared variant, each cell holding the absolute value and its
// ratio to the cross-variant maximum.
func formatText(w io.Writer, d *benchagg.Dataset, comparisons map[string]*benchagg.Comparison, variants []string) {
	for _, src := range d.SourceNames() {
		sd := d.Sources[src]
		cmp := comparisons[src]

		if ctx := sourceContext(sd); ctx != "" {
			fmt.Fprintf(w, "%s (%s)\n", src, ctx)
		} else {
			fmt.Fprintf(w, "%s\n", src)
		}

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprint(tw, "metric")
		for _, v := range variants {
			fmt.Fprintf(tw, "\t%s", v)
		}
		fmt.Fprintln(tw)
		for _, metric := range sortedMetrics(cmp) {
			fmt.Fprint(tw, metric)
			for _, v := range variants {
				if m, ok := cmp.Variants[v][metric]; ok {
					fmt.Fprintf(tw, "\t%s", formatMeasure(m))
				} else {
					fmt.Fprint(tw, "\t-")
				}
			}
			fmt.Fprintln(tw)
		}
		tw.Flush()
		fmt.Fprintln(w)
	}
}
