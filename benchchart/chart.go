// Copyright 2024 The tformbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart renders an aggregated benchmark dataset as bar
// charts, one chart per source dataset, tiled onto a single PNG.
// It is a presentation layer only: it consumes the dataset and
// computes nothing.
package benchchart

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/tformlab/tformbench/benchagg"
)

// Save renders one bar chart per source in d, with one bar per
// variant (in the given display order) that observed metric, and
// writes the tiled result to file as a PNG. Sources appear in
// first-seen order. Variants missing the metric are left out of that
// source's chart rather than drawn as zero.
func Save(d *benchagg.Dataset, variants []string, metric, file string) error {
	sources := d.SourceNames()
	if len(sources) == 0 {
		return fmt.Errorf("nothing to plot: dataset is empty")
	}

	var plots []*plot.Plot
	for _, name := range sources {
		sd := d.Sources[name]
		var values plotter.Values
		var labels []string
		for _, v := range variants {
			run := sd.Runs[v]
			if run == nil {
				continue
			}
			val, ok := run.Metrics[metric]
			if !ok {
				continue
			}
			values = append(values, val)
			labels = append(labels, v)
		}

		pl := plot.New()
		pl.Title.Text = chartTitle(sd)
		pl.Y.Label.Text = yLabel(metric)
		pl.X.Tick.Label.Rotation = -math.Pi / 4
		pl.X.Tick.Label.YAlign = draw.YTop
		pl.X.Tick.Label.XAlign = draw.XLeft

		bars, err := plotter.NewBarChart(values, vg.Points(25))
		if err != nil {
			return err
		}
		bars.Color = color.NRGBA{0x33, 0x66, 0xCC, 0xFF}
		pl.Add(bars)
		pl.NominalX(labels...)
		pl.Y.Min = 0

		plots = append(plots, pl)
	}

	const widthPer, height = 9, 12 // centimeters
	canvas := vgimg.NewWith(
		vgimg.UseWH(vg.Length(widthPer*len(plots))*vg.Centimeter, height*vg.Centimeter),
		vgimg.UseDPI(150),
		vgimg.UseBackgroundColor(color.White),
	)
	dc := draw.New(vgimg.PngCanvas{Canvas: canvas})
	tiles := draw.Tiles{
		Rows: 1,
		Cols: len(plots),
		PadX: vg.Millimeter * 4,
		PadY: vg.Millimeter * 4,
	}
	for i, pl := range plots {
		pl.Draw(tiles.At(dc, i, 0))
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// chartTitle names a source with whatever display context Annotate
// attached.
func chartTitle(sd *benchagg.SourceDataset) string {
	title := sd.Source
	switch {
	case sd.RecordCount > 0 && sd.SizeBytes > 0:
		title += fmt.Sprintf(" (%d records, %s)", sd.RecordCount, formatBytes(sd.SizeBytes))
	case sd.RecordCount > 0:
		title += fmt.Sprintf(" (%d records)", sd.RecordCount)
	case sd.SizeBytes > 0:
		title += fmt.Sprintf(" (%s)", formatBytes(sd.SizeBytes))
	}
	return title
}

func yLabel(metric string) string {
	if metric == "max_rss" {
		return "memory (kilobytes)"
	}
	return "time (seconds)"
}

func formatBytes(n int64) string {
	switch {
	case n >= 1<<30:
		return fmt.Sprintf("%.1f GiB", float64(n)/(1<<30))
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	}
	return fmt.Sprintf("%d B", n)
}
