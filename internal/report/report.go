// Package report loads both rental tables and summarizes them for a requested window.
package report

import (
	"time"

	"github.com/jgoulah/rentaldash/internal/aggregate"
	"github.com/jgoulah/rentaldash/internal/loader"
	"github.com/jgoulah/rentaldash/internal/window"
	"github.com/jgoulah/rentaldash/pkg/models"
)

// Result is a report plus the span of data it was clamped against
type Result struct {
	models.Report
	Span models.DateWindow
}

// Build loads both tables from src, clamps the requested bounds to the data
// span and runs every aggregation. Nil bounds default to the span edges.
func Build(src loader.Source, start, end *time.Time) (Result, error) {
	daily, err := src.LoadDailyRecords()
	if err != nil {
		return Result{}, err
	}
	hourly, err := src.LoadHourlyRecords()
	if err != nil {
		return Result{}, err
	}

	span, _ := loader.DateSpan(daily)
	w := window.Clamp(start, end, span)

	return Result{
		Report: aggregate.Summarize(daily, hourly, w),
		Span:   span,
	}, nil
}

// Parse reads optional start and end strings and builds the report
func Parse(src loader.Source, start, end string, now time.Time) (Result, error) {
	s, err := window.ParseOptional(start, now)
	if err != nil {
		return Result{}, err
	}
	e, err := window.ParseOptional(end, now)
	if err != nil {
		return Result{}, err
	}
	return Build(src, s, e)
}
