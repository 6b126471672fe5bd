// Copyright 2024 The tformbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchagg

import "fmt"

// A Measure pairs a metric's absolute value with its ratio to the
// cross-variant maximum for that metric.
type Measure struct {
	Value float64
	Ratio float64
}

// A Comparison is a derived, read-only snapshot of how a source's
// runs compare across an allow-listed set of variants. It is
// recomputed fresh on each call to Compare and never mutated.
type Comparison struct {
	// Max holds, per metric, the maximum value across the compared
	// runs. A run lacking a metric simply does not contribute to
	// that metric's maximum.
	Max map[string]float64

	// Variants maps variant -> metric -> Measure for every metric
	// present in that variant's run.
	Variants map[string]map[string]Measure
}

// A ZeroMaximumError reports a metric whose maximum across the
// compared variants is zero. The ratio is undefined; producing NaN or
// Inf here would be silently plotted downstream, so Compare fails
// fast instead.
type ZeroMaximumError struct {
	Metric string
}

func (e *ZeroMaximumError) Error() string {
	return fmt.Sprintf("metric %s: maximum across compared variants is zero, ratio undefined", e.Metric)
}

// Compare computes per-metric maxima across the runs whose variants
// appear in variants, then the ratio of each run's value to that
// maximum. Variants without a run are skipped. Ratios are
// scale-invariant: scaling every run's value for a metric by a
// positive constant leaves them unchanged.
func Compare(runs map[string]*Run, variants []string) (*Comparison, error) {
	max := make(map[string]float64)
	for _, v := range variants {
		run := runs[v]
		if run == nil {
			continue
		}
		for name, val := range run.Metrics {
			if cur, ok := max[name]; !ok || val > cur {
				max[name] = val
			}
		}
	}

	cmp := &Comparison{Max: max, Variants: make(map[string]map[string]Measure)}
	for _, v := range variants {
		run := runs[v]
		if run == nil {
			continue
		}
		measures := make(map[string]Measure, len(run.Metrics))
		for name, val := range run.Metrics {
			m := max[name]
			if m == 0 {
				return nil, &ZeroMaximumError{name}
			}
			measures[name] = Measure{Value: val, Ratio: val / m}
		}
		cmp.Variants[v] = measures
	}
	return cmp, nil
}
