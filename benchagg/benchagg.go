// Copyright 2024 The tformbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchagg merges parsed measurement logs into a dataset
// keyed by source dataset and tool variant, and computes
// cross-variant comparisons over it.
//
// A Run accumulates metrics for one (source, variant) pair across any
// number of log files: a usrtime file and an strace file for the same
// pair contribute disjoint metric names into the same Run. Merging is
// a per-field overwrite, so the final dataset does not depend on the
// order files are read in.
package benchagg

import "github.com/tformlab/tformbench/benchlog"

// A Run is the accumulated observation for one (source, variant)
// pair. Runs are created on first sighting of the pair and mutated in
// place as further files for it are ingested.
type Run struct {
	Variant  string
	Revision string // from the first file that named this pair
	Metrics  benchlog.MetricSet
}

// Merge copies metrics into the run field by field. A field already
// present is overwritten; the two dialects' field names are disjoint,
// so in practice files only ever add fields.
func (r *Run) Merge(metrics benchlog.MetricSet) {
	for name, v := range metrics {
		r.Metrics[name] = v
	}
}

// A SourceDataset holds every run observed for one source dataset,
// plus opaque display context attached by Annotate.
type SourceDataset struct {
	Source      string
	SizeBytes   int64 // size of the source file, 0 if unknown
	RecordCount int64 // records in the source, 0 if unknown
	Runs        map[string]*Run
}

// A Dataset is the aggregate of an ingestion pass: one SourceDataset
// per source, in first-seen order.
type Dataset struct {
	Sources map[string]*SourceDataset
	order   []string
}

// NewDataset returns an empty Dataset.
func NewDataset() *Dataset {
	return &Dataset{Sources: make(map[string]*SourceDataset)}
}

// Ingest merges one file's metrics into the dataset, creating the
// SourceDataset and Run as needed.
func (d *Dataset) Ingest(id benchlog.Identity, metrics benchlog.MetricSet) {
	sd := d.Sources[id.Source]
	if sd == nil {
		sd = &SourceDataset{Source: id.Source, Runs: make(map[string]*Run)}
		d.Sources[id.Source] = sd
		d.order = append(d.order, id.Source)
	}
	run := sd.Runs[id.Variant]
	if run == nil {
		run = &Run{Variant: id.Variant, Revision: id.Revision, Metrics: make(benchlog.MetricSet)}
		sd.Runs[id.Variant] = run
	}
	run.Merge(metrics)
}

// SourceNames returns the sources in the order they were first seen.
func (d *Dataset) SourceNames() []string {
	return d.order
}
