// Copyright 2024 The tformbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchagg

import (
	"errors"
	"testing"

	"github.com/tformlab/tformbench/benchlog"
)

func runWith(variant string, metrics benchlog.MetricSet) *Run {
	return &Run{Variant: variant, Metrics: metrics}
}

func TestCompare(t *testing.T) {
	runs := map[string]*Run{
		"oldtform":   runWith("oldtform", benchlog.MetricSet{benchlog.MetricWallClock: 10.0, benchlog.MetricMaxRSS: 200.0}),
		"selectfrom": runWith("selectfrom", benchlog.MetricSet{benchlog.MetricWallClock: 4.0}),
		"newtform":   runWith("newtform", benchlog.MetricSet{benchlog.MetricWallClock: 100.0}),
	}
	// newtform is not compared; its values must not influence maxima.
	cmp, err := Compare(runs, []string{"oldtform", "selectfrom"})
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if got := cmp.Max[benchlog.MetricWallClock]; got != 10.0 {
		t.Errorf("max wall_clock_time = %v, want 10.0", got)
	}
	// max_rss is absent from selectfrom: it is excluded from that
	// run's contribution, not counted as zero.
	if got := cmp.Max[benchlog.MetricMaxRSS]; got != 200.0 {
		t.Errorf("max max_rss = %v, want 200.0", got)
	}
	if got := cmp.Variants["selectfrom"][benchlog.MetricWallClock]; got != (Measure{4.0, 0.4}) {
		t.Errorf("selectfrom wall_clock_time = %+v, want {4 0.4}", got)
	}
	if got := cmp.Variants["oldtform"][benchlog.MetricMaxRSS]; got != (Measure{200.0, 1.0}) {
		t.Errorf("oldtform max_rss = %+v, want {200 1}", got)
	}
	if _, ok := cmp.Variants["selectfrom"][benchlog.MetricMaxRSS]; ok {
		t.Error("selectfrom has a max_rss measure it never observed")
	}
	if _, ok := cmp.Variants["newtform"]; ok {
		t.Error("variant outside the comparison set was included")
	}
}

func TestCompareMissingVariant(t *testing.T) {
	runs := map[string]*Run{
		"oldtform": runWith("oldtform", benchlog.MetricSet{benchlog.MetricWallClock: 10.0}),
	}
	cmp, err := Compare(runs, []string{"oldtform", "selectfrom"})
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if len(cmp.Variants) != 1 {
		t.Errorf("Variants = %v, want oldtform only", cmp.Variants)
	}
}

func TestCompareZeroMaximum(t *testing.T) {
	runs := map[string]*Run{
		"oldtform":   runWith("oldtform", benchlog.MetricSet{"write": 0.0}),
		"selectfrom": runWith("selectfrom", benchlog.MetricSet{"write": 0.0}),
	}
	_, err := Compare(runs, []string{"oldtform", "selectfrom"})
	var zero *ZeroMaximumError
	if !errors.As(err, &zero) {
		t.Fatalf("Compare error = %v, want *ZeroMaximumError", err)
	}
	if zero.Metric != "write" {
		t.Errorf("Metric = %q, want %q", zero.Metric, "write")
	}
}
