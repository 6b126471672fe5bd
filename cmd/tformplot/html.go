// Copyright 2024 The tformbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/google/safehtml/template"

	"github.com/tformlab/tformbench/benchagg"
)

const reportTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>transformation benchmarks</title>
<style>
body { font-family: sans-serif; }
table { border-collapse: collapse; margin-bottom: 1.5em; }
th, td { border: 1px solid #ccc; padding: 0.3em 0.6em; text-align: right; }
th.metric, td.metric { text-align: left; }
caption { font-weight: bold; text-align: left; padding-bottom: 0.3em; }
span.ratio { color: #666; }
</style>
</head>
<body>
<h1>transformation time (lower is better)</h1>
{{range .Sources}}
<table>
<caption>{{.Name}}{{with .Context}} ({{.}}){{end}}</caption>
<tr><th class="metric">metric</th>{{range .Variants}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}
<tr><td class="metric">{{.Metric}}</td>{{range .Cells}}<td>{{if .Present}}{{printf "%.2f" .Value}} <span class="ratio">(&times;{{printf "%.2f" .Ratio}})</span>{{else}}-{{end}}</td>{{end}}</tr>
{{end}}
</table>
{{end}}
</body>
</html>
`

var htmlTemplate = template.Must(
	template.New("report").Parse(template.MakeTrustedTemplate(reportTemplate)))

type reportData struct {
	Sources []reportSource
}

type reportSource struct {
	Name     string
	Context  string
	Variants []string
	Rows     []reportRow
}

type reportRow struct {
	Metric string
	Cells  []reportCell
}

type reportCell struct {
	Present bool
	Value   float64
	Ratio   float64
}

// formatHTML writes the comparison tables as a standalone HTML page.
func formatHTML(w io.Writer, d *benchagg.Dataset, comparisons map[string]*benchagg.Comparison, variants []string) error {
	var data reportData
	for _, src := range d.SourceNames() {
		sd := d.Sources[src]
		cmp := comparisons[src]
		rs := reportSource{Name: src, Context: sourceContext(sd), Variants: variants}
		for _, metric := range sortedMetrics(cmp) {
			row := reportRow{Metric: metric}
			for _, v := range variants {
				if m, ok := cmp.Variants[v][metric]; ok {
					row.Cells = append(row.Cells, reportCell{true, m.Value, m.Ratio})
				} else {
					row.Cells = append(row.Cells, reportCell{})
				}
			}
			rs.Rows = append(rs.Rows, row)
		}
		data.Sources = append(data.Sources, rs)
	}
	return htmlTemplate.Execute(w, data)
}
