// Copyright 2024 The tformbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Tformplot aggregates transformation benchmark logs and reports how
// the tool's variants compare.
//
// Usage:
//
//	tformplot [-dir directory] [-variants list] [-syscalls list]
//	          [-o chart.png] [-html report.html] [-db dsn] [-paths pairs]
//
// Tformplot reads every log file in the directory whose name matches
//
//	<variant>[-<revision>]_<source>.bim.<usrtime|strace>
//
// merges repeated observations for the same source and variant, and
// prints a table of metric values with their ratios to the largest
// value among the compared variants. It can also write the table as
// HTML and render per-source bar charts to a PNG.
//
// Files with unrecognized names or incomplete captures are reported
// and skipped. A log file that never reaches its dialect's data
// marker aborts the whole run: such a file means a broken measurement
// capture, and comparing against it would silently skew every ratio.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"

	"github.com/tformlab/tformbench/benchagg"
	"github.com/tformlab/tformbench/benchchart"
	"github.com/tformlab/tformbench/benchlog"
	"github.com/tformlab/tformbench/recordstore"
)

var (
	flagDir       = flag.String("dir", ".", "read log files from `directory`")
	flagVariants  = flag.String("variants", "oldtform,selectfrom", "compare this comma-separated `list` of variants, in display order")
	flagSyscalls  = flag.String("syscalls", "", "extract this comma-separated `list` of syscalls from strace logs")
	flagSourceExt = flag.String("source-ext", ".bim", "source datasets carry this file `extension`")
	flagMetric    = flag.String("metric", benchlog.MetricWallClock, "chart this `metric`")
	flagPNG       = flag.String("o", "graph.png", "write the chart to `file`, or nothing if empty")
	flagHTML      = flag.String("html", "", "write an HTML report to `file`")
	flagDBDriver  = flag.String("db-driver", "sqlite3", "record store database `driver` (sqlite3 or mysql)")
	flagDB        = flag.String("db", "", "record store `dsn`; record counts are skipped if empty")
	flagPaths     = flag.String("paths", "", "comma-separated source=path `pairs` used to size source files")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: tformplot [options]\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("tformplot: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 0 {
		usage()
	}

	variants := splitList(*flagVariants)
	if len(variants) == 0 {
		log.Fatal("no variants selected")
	}
	allowed := make(map[string]bool, len(variants))
	for _, v := range variants {
		allowed[v] = true
	}

	in := &benchagg.Ingester{
		Resolver: benchlog.NewResolver(*flagSourceExt),
		Usrtime:  benchlog.Usrtime(),
		Strace:   benchlog.Strace(splitList(*flagSyscalls)),
		Dataset:  benchagg.NewDataset(),
		Variants: allowed,
	}
	if err := in.IngestDir(*flagDir); err != nil {
		log.Fatal(err)
	}
	if len(in.Dataset.SourceNames()) == 0 {
		log.Fatal("no benchmark logs found in ", *flagDir)
	}

	var counts benchagg.RecordCounter
	if *flagDB != "" {
		db, err := recordstore.OpenSQL(*flagDBDriver, *flagDB)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		counts = db
	}
	if err := in.Dataset.Annotate(pathLookup(*flagPaths), counts); err != nil {
		log.Fatal(err)
	}

	comparisons := make(map[string]*benchagg.Comparison)
	for _, src := range in.Dataset.SourceNames() {
		cmp, err := benchagg.Compare(in.Dataset.Sources[src].Runs, variants)
		if err != nil {
			log.Fatalf("%s: %v", src, err)
		}
		comparisons[src] = cmp
	}

	formatText(os.Stdout, in.Dataset, comparisons, variants)

	if *flagHTML != "" {
		f, err := os.Create(*flagHTML)
		if err != nil {
			log.Fatal(err)
		}
		err = formatHTML(f, in.Dataset, comparisons, variants)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			log.Fatal(err)
		}
	}

	if *flagPNG != "" {
		if err := benchchart.Save(in.Dataset, variants, *flagMetric, *flagPNG); err != nil {
			log.Fatal(err)
		}
	}
}

// splitList splits a comma-separated flag value, dropping empty
// elements so that "" means "none".
func splitList(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// pathLookup parses the -paths flag ("source=path,source=path") into
// a lookup over the pairs it names.
func pathLookup(s string) benchagg.PathLookup {
	paths := make(map[string]string)
	for _, pair := range splitList(s) {
		if i := strings.Index(pair, "="); i > 0 {
			paths[pair[:i]] = pair[i+1:]
		} else {
			log.Fatalf("malformed -paths entry %q, want source=path", pair)
		}
	}
	if len(paths) == 0 {
		return nil
	}
	return func(source string) (string, bool) {
		p, ok := paths[source]
		return p, ok
	}
}
