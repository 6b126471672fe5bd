// Copyright 2024 The tformbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchagg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tformlab/tformbench/benchlog"
)

type countMap map[string]int64

func (m countMap) RecordCount(source string) (int64, error) {
	return m[source], nil
}

func TestAnnotate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bim")
	if err := os.WriteFile(path, make([]byte, 1234), 0666); err != nil {
		t.Fatal(err)
	}

	d := NewDataset()
	d.Ingest(benchlog.Identity{Variant: "oldtform", Source: "data.bim"},
		benchlog.MetricSet{benchlog.MetricWallClock: 1.0})
	d.Ingest(benchlog.Identity{Variant: "oldtform", Source: "other.bim"},
		benchlog.MetricSet{benchlog.MetricWallClock: 2.0})

	paths := func(source string) (string, bool) {
		if source == "data.bim" {
			return path, true
		}
		return "", false
	}
	if err := d.Annotate(paths, countMap{"data.bim": 42}); err != nil {
		t.Fatalf("Annotate failed: %v", err)
	}

	sd := d.Sources["data.bim"]
	if sd.SizeBytes != 1234 || sd.RecordCount != 42 {
		t.Errorf("data.bim context = %d bytes, %d records; want 1234, 42", sd.SizeBytes, sd.RecordCount)
	}
	// Sources the lookups don't know stay at zero.
	if other := d.Sources["other.bim"]; other.SizeBytes != 0 || other.RecordCount != 0 {
		t.Errorf("other.bim context = %d bytes, %d records; want 0, 0", other.SizeBytes, other.RecordCount)
	}
}
