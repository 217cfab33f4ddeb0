// Package loader supplies the raw rental tables the dashboard aggregates.
package loader

import (
	"fmt"
	"sync"

	"github.com/jgoulah/rentaldash/pkg/models"
)

// Source provides the daily and hourly rental tables
type Source interface {
	LoadDailyRecords() ([]models.DailyRecord, error)
	LoadHourlyRecords() ([]models.HourlyRecord, error)
}

// LoadError reports raw data that is missing or malformed
type LoadError struct {
	Path string
	Line int // 0 when the failure is not tied to a row
	Err  error
}

func (e *LoadError) Error() string {
	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("loading %s: line %d: %v", e.Path, e.Line, e.Err)
	case e.Path != "":
		return fmt.Sprintf("loading %s: %v", e.Path, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("loading data: line %d: %v", e.Line, e.Err)
	default:
		return fmt.Sprintf("loading data: %v", e.Err)
	}
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// cachedSource loads each table at most once. Failures are remembered as well,
// the backing data does not change while the process runs.
type cachedSource struct {
	src Source

	dailyOnce sync.Once
	daily     []models.DailyRecord
	dailyErr  error

	hourlyOnce sync.Once
	hourly     []models.HourlyRecord
	hourlyErr  error
}

// Cached wraps src so that both tables are loaded once and shared afterwards.
// Callers must treat the returned slices as read-only.
func Cached(src Source) Source {
	return &cachedSource{src: src}
}

func (c *cachedSource) LoadDailyRecords() ([]models.DailyRecord, error) {
	c.dailyOnce.Do(func() {
		c.daily, c.dailyErr = c.src.LoadDailyRecords()
	})
	return c.daily, c.dailyErr
}

func (c *cachedSource) LoadHourlyRecords() ([]models.HourlyRecord, error) {
	c.hourlyOnce.Do(func() {
		c.hourly, c.hourlyErr = c.src.LoadHourlyRecords()
	})
	return c.hourly, c.hourlyErr
}

// DateSpan returns the earliest and latest day in the table; ok is false when it is empty
func DateSpan(records []models.DailyRecord) (span models.DateWindow, ok bool) {
	for i, r := range records {
		d := models.Day(r.Date)
		if i == 0 || d.Before(span.Start) {
			span.Start = d
		}
		if i == 0 || d.After(span.End) {
			span.End = d
		}
	}
	return span, len(records) > 0
}
