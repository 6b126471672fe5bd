// Copyright 2024 The tformbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchagg

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/tformlab/tformbench/benchlog"
)

// An Ingester reads a sequence of log files into a Dataset.
//
// Files are processed strictly one at a time: each is opened, fully
// scanned, and closed before the next is touched. Unrecognized file
// names and incomplete captures are reported through Warnf and
// skipped; a missing start marker, a malformed value, or an I/O error
// aborts the pass with the offending file name attached.
type Ingester struct {
	Resolver *benchlog.Resolver
	Usrtime  *benchlog.Parser
	Strace   *benchlog.Parser
	Dataset  *Dataset

	// Variants is the allow-list of variants worth aggregating.
	// Files for other variants are skipped silently, before
	// parsing.
	Variants map[string]bool

	// Warnf reports non-fatal conditions. If nil, log.Printf.
	Warnf func(format string, args ...interface{})
}

func (in *Ingester) warnf(format string, args ...interface{}) {
	if in.Warnf != nil {
		in.Warnf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// IngestDir ingests every candidate log file in dir, in directory
// order. Order does not affect the final dataset.
func (in *Ingester) IngestDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() || !in.Resolver.Candidate(e.Name()) {
			continue
		}
		if err := in.IngestFile(filepath.Join(dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

// IngestFile ingests a single log file. A nil return means the file
// was merged into the dataset or legitimately skipped; a non-nil
// return means the pass must stop.
func (in *Ingester) IngestFile(path string) error {
	id, ok := in.Resolver.Resolve(filepath.Base(path))
	if !ok {
		in.warnf("bad file name: %s", path)
		return nil
	}
	if !in.Variants[id.Variant] {
		return nil
	}

	metrics, err := in.parseFile(path, id.Dialect)
	if err != nil {
		var inc *benchlog.IncompleteCapture
		if errors.As(err, &inc) {
			in.warnf("bad file: %v", err)
			return nil
		}
		return err
	}
	in.Dataset.Ingest(id, metrics)
	return nil
}

// parseFile opens, parses, and closes one file. The handle is
// released even when parsing aborts.
func (in *Ingester) parseFile(path string, dialect benchlog.Dialect) (benchlog.MetricSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch dialect {
	case benchlog.DialectUsrtime:
		return in.Usrtime.Parse(f, path)
	case benchlog.DialectStrace:
		return in.Strace.Parse(f, path)
	}
	return nil, fmt.Errorf("%s: unknown dialect %v", path, dialect)
}
