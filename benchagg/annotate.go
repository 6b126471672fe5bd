// Copyright 2024 The tformbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchagg

import "os"

// A PathLookup maps a source identifier to the file it was read from.
// It reports false for sources it does not know, which is not an
// error.
type PathLookup func(source string) (path string, ok bool)

// A RecordCounter reports how many records a source contains,
// typically backed by an external store. Unknown sources should
// report 0, not an error.
type RecordCounter interface {
	RecordCount(source string) (int64, error)
}

// Annotate attaches display context to every SourceDataset: the
// source file's size via paths, and its record count via counts.
// Either may be nil to skip that annotation. The values are opaque
// context for presentation; they never participate in comparisons.
func (d *Dataset) Annotate(paths PathLookup, counts RecordCounter) error {
	for _, name := range d.order {
		sd := d.Sources[name]
		if paths != nil {
			if p, ok := paths(sd.Source); ok {
				fi, err := os.Stat(p)
				if err != nil {
					return err
				}
				sd.SizeBytes = fi.Size()
			}
		}
		if counts != nil {
			n, err := counts.RecordCount(sd.Source)
			if err != nil {
				return err
			}
			sd.RecordCount = n
		}
	}
	return nil
}
