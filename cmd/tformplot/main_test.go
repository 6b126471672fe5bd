// Copyright 2024 The tformbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tformlab/tformbench/benchagg"
	"github.com/tformlab/tformbench/benchlog"
)

func testDataset(t *testing.T) (*benchagg.Dataset, map[string]*benchagg.Comparison, []string) {
	t.Helper()
	d := benchagg.NewDataset()
	d.Ingest(benchlog.Identity{Variant: "oldtform", Source: "data.bim"},
		benchlog.MetricSet{benchlog.MetricWallClock: 10.0, "write": 0.5})
	d.Ingest(benchlog.Identity{Variant: "selectfrom", Source: "data.bim"},
		benchlog.MetricSet{benchlog.MetricWallClock: 4.0})
	d.Sources["data.bim"].RecordCount = 42

	variants := []string{"oldtform", "selectfrom"}
	cmp, err := benchagg.Compare(d.Sources["data.bim"].Runs, variants)
	if err != nil {
		t.Fatal(err)
	}
	return d, map[string]*benchagg.Comparison{"data.bim": cmp}, variants
}

func TestFormatText(t *testing.T) {
	d, comparisons, variants := testDataset(t)
	var buf bytes.Buffer
	formatText(&buf, d, comparisons, variants)
	out := buf.String()

	for _, want := range []string{
		"data.bim (42 records)",
		"wall_clock_time",
		"10.00 (×1.00)",
		"4.00 (×0.40)",
		"write",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	// selectfrom never observed write time.
	if !strings.Contains(out, "-") {
		t.Errorf("output missing placeholder for absent metric:\n%s", out)
	}
}

func TestFormatHTML(t *testing.T) {
	d, comparisons, variants := testDataset(t)
	var buf bytes.Buffer
	if err := formatHTML(&buf, d, comparisons, variants); err != nil {
		t.Fatalf("formatHTML failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"<caption>data.bim (42 records)</caption>",
		"<th>oldtform</th>",
		"wall_clock_time",
		"0.40",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"oldtform,selectfrom", []string{"oldtform", "selectfrom"}},
		{" a , b ", []string{"a", "b"}},
		{"", nil},
		{",", nil},
	}
	for _, test := range tests {
		got := splitList(test.in)
		if len(got) != len(test.want) {
			t.Errorf("splitList(%q) = %v, want %v", test.in, got, test.want)
			continue
		}
		for i := range got {
			if got[i] != test.want[i] {
				t.Errorf("splitList(%q) = %v, want %v", test.in, got, test.want)
				break
			}
		}
	}
}
