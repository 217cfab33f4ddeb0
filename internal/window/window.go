// Package window turns user-supplied dates into a valid inclusive date window.
package window

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jgoulah/rentaldash/pkg/models"
)

// ParseDate parses a date string in either YYYY-MM-DD format or relative format (e.g., "7d")
func ParseDate(dateStr string, now time.Time) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)

	// Try absolute date format first
	t, err := time.Parse(models.DateLayout, dateStr)
	if err == nil {
		return t, nil
	}

	// Try relative format (e.g., "7d" for 7 days ago)
	if len(dateStr) > 1 && dateStr[len(dateStr)-1] == 'd' {
		days, err := strconv.Atoi(dateStr[:len(dateStr)-1])
		if err == nil && days >= 0 {
			return models.Day(now.AddDate(0, 0, -days)), nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid date format: %s (use YYYY-MM-DD or Nd for N days ago)", dateStr)
}

// ParseOptional parses dateStr, returning nil for an empty string
func ParseOptional(dateStr string, now time.Time) (*time.Time, error) {
	if strings.TrimSpace(dateStr) == "" {
		return nil, nil
	}
	t, err := ParseDate(dateStr, now)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Clamp builds the window to aggregate over from optional requested bounds and
// the observed span of the data. A missing start defaults to the first day of
// data and a missing end to the last. Both bounds are clamped into the span,
// and an end before the start is raised to the start.
func Clamp(start, end *time.Time, span models.DateWindow) models.DateWindow {
	w := span
	if start != nil {
		w.Start = clampDay(*start, span)
	}
	if end != nil {
		w.End = clampDay(*end, span)
	}
	if w.End.Before(w.Start) {
		w.End = w.Start
	}
	return w
}

func clampDay(t time.Time, span models.DateWindow) time.Time {
	d := models.Day(t)
	if d.Before(span.Start) {
		return span.Start
	}
	if d.After(span.End) {
		return span.End
	}
	return d
}
