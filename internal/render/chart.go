package render

import (
	"github.com/dustin/go-humanize"
	"github.com/jgoulah/rentaldash/pkg/models"
)

// Chart geometry, in SVG user units
const (
	chartWidth   = 640.0
	chartHeight  = 320.0
	plotLeft     = 70.0
	plotRight    = 20.0
	plotTop      = 20.0
	plotBottom   = 60.0
	barGapRatio  = 0.25
	gridDivision = 4
)

const (
	barColor       = "#1f77b4"
	highlightColor = "#174e7d"
)

// Chart is a bar chart laid out for the dashboard template
type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Width  float64
	Height float64
	Bars   []Bar
	Grid   []GridLine
	Empty  bool
	Total  string

	// plot area, for axis lines
	Left, Right, Top, Bottom float64
}

// Bar is one rectangle of a chart
type Bar struct {
	Label  string
	Value  string
	X      float64
	Y      float64
	Width  float64
	Height float64
	Color  string
	// LabelX is the horizontal center of the bar
	LabelX float64
}

// GridLine is a horizontal value guide
type GridLine struct {
	Y     float64
	Label string
}

// NewChart lays out summary as vertical bars scaled to its largest total.
// Zero totals produce zero-height bars; with highlightMax the tallest bar gets
// the accent color.
func NewChart(title, xLabel, yLabel string, summary models.Summary, highlightMax bool) Chart {
	c := Chart{
		Title:  title,
		XLabel: xLabel,
		YLabel: yLabel,
		Width:  chartWidth,
		Height: chartHeight,
		Empty:  len(summary) == 0,
		Total:  humanize.Comma(summary.Total()),
		Left:   plotLeft,
		Right:  chartWidth - plotRight,
		Top:    plotTop,
		Bottom: chartHeight - plotBottom,
	}
	if c.Empty {
		return c
	}

	var peak int64
	for _, e := range summary {
		if e.Total > peak {
			peak = e.Total
		}
	}
	plotHeight := c.Bottom - c.Top
	slot := (c.Right - c.Left) / float64(len(summary))
	barWidth := slot * (1 - barGapRatio)

	best := -1
	if highlightMax {
		best = summary.Max()
	}

	for i, e := range summary {
		h := 0.0
		if peak > 0 {
			h = plotHeight * float64(e.Total) / float64(peak)
		}
		x := c.Left + float64(i)*slot + (slot-barWidth)/2
		color := barColor
		if i == best {
			color = highlightColor
		}
		c.Bars = append(c.Bars, Bar{
			Label:  e.Label,
			Value:  humanize.Comma(e.Total),
			X:      x,
			Y:      c.Bottom - h,
			Width:  barWidth,
			Height: h,
			Color:  color,
			LabelX: x + barWidth/2,
		})
	}

	for i := 1; i <= gridDivision; i++ {
		value := peak * int64(i) / gridDivision
		c.Grid = append(c.Grid, GridLine{
			Y:     c.Bottom - plotHeight*float64(i)/gridDivision,
			Label: humanize.Comma(value),
		})
	}

	return c
}
