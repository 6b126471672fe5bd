// Copyright 2024 The tformbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchlog

import (
	"bufio"
	"fmt"
	"io"
)

// A Rule recognizes one kind of statistic line and converts its value.
type Rule struct {
	// Match reports whether line carries a statistic this rule
	// understands, returning the metric name and the raw textual
	// value. Rules for fixed statistics return a constant name;
	// the strace rule derives the name from the line itself.
	Match func(line string) (name, raw string, ok bool)

	// Convert turns the raw text into a numeric value. A failure
	// here means the grammar accepted text it should not have, so
	// it surfaces as a *SyntaxError rather than being skipped.
	Convert func(raw string) (float64, error)
}

// A Parser extracts a MetricSet from one log dialect.
//
// Parsing is a two-state scan: the parser seeks the dialect's start
// marker, ignoring everything before it, then matches each following
// line against its rule table. Lines matching no rule are ignored;
// both dialects embed free text between statistic lines.
type Parser struct {
	dialect   Dialect
	start     func(line string) bool
	rules     []Rule
	mandatory []string // metric names that must be captured
}

// NewParser returns a Parser for the given grammar: a start-marker
// predicate, a rule table, and the names of metrics whose absence
// makes the capture incomplete.
func NewParser(dialect Dialect, start func(string) bool, rules []Rule, mandatory []string) *Parser {
	return &Parser{dialect: dialect, start: start, rules: rules, mandatory: mandatory}
}

// Dialect returns the dialect this parser understands.
func (p *Parser) Dialect() Dialect { return p.dialect }

// Parse scans r and extracts the dialect's metrics. fileName is used
// in error messages; it is purely diagnostic.
//
// If the input ends before the start marker is seen, Parse returns a
// *MissingStartMarker: the capture is presumed truncated and callers
// should treat this as fatal to the whole ingestion pass. If a
// mandatory metric was never captured, Parse returns an
// *IncompleteCapture, which callers may handle by skipping the file.
// A matched value that fails conversion returns a *SyntaxError.
func (p *Parser) Parse(r io.Reader, fileName string) (MetricSet, error) {
	s := bufio.NewScanner(r)
	metrics := make(MetricSet)
	extracting := false
	line := 0
	for s.Scan() {
		line++
		text := s.Text()
		if !extracting {
			if p.start(text) {
				extracting = true
			}
			continue
		}
		for _, rule := range p.rules {
			name, raw, ok := rule.Match(text)
			if !ok {
				continue
			}
			v, err := rule.Convert(raw)
			if err != nil {
				return nil, &SyntaxError{fileName, line, fmt.Sprintf("parsing %s: %v", name, err)}
			}
			metrics[name] = v
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("%s:%d: %w", fileName, line, err)
	}
	if !extracting {
		return nil, &MissingStartMarker{fileName, p.dialect}
	}
	for _, name := range p.mandatory {
		if _, ok := metrics[name]; !ok {
			return nil, &IncompleteCapture{fileName, name}
		}
	}
	return metrics, nil
}

// A MissingStartMarker error reports a log file whose content never
// reached the dialect's "data begins" marker. It indicates a broken
// measurement capture; comparing against it would silently skew
// results, so callers must abort the ingestion pass.
type MissingStartMarker struct {
	FileName string
	Dialect  Dialect
}

func (e *MissingStartMarker) Error() string {
	return fmt.Sprintf("%s: no %s start marker; capture is truncated or corrupt", e.FileName, e.Dialect)
}

// An IncompleteCapture error reports a log file whose start marker was
// found but which never produced a mandatory metric. The file must be
// excluded from aggregation; other files can still be processed.
type IncompleteCapture struct {
	FileName string
	Missing  string // name of the metric that was never captured
}

func (e *IncompleteCapture) Error() string {
	return fmt.Sprintf("%s: incomplete capture: %s never seen", e.FileName, e.Missing)
}

// A SyntaxError reports a statistic line whose value could not be
// converted to its expected numeric form.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}
