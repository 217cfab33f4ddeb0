// Package aggregate turns raw rental records into the ordered summaries the
// dashboard charts consume. Every function here is pure: inputs are never
// modified and no state survives a call.
package aggregate

import "github.com/jgoulah/rentaldash/pkg/models"

// FilterHourly returns the hourly records dated inside the window, bounds included
func FilterHourly(records []models.HourlyRecord, w models.DateWindow) []models.HourlyRecord {
	filtered := make([]models.HourlyRecord, 0, len(records))
	for _, r := range records {
		if w.Contains(r.Date) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// FilterDaily returns the daily records dated inside the window, bounds included
func FilterDaily(records []models.DailyRecord, w models.DateWindow) []models.DailyRecord {
	filtered := make([]models.DailyRecord, 0, len(records))
	for _, r := range records {
		if w.Contains(r.Date) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
