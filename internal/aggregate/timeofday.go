package aggregate

import "github.com/jgoulah/rentaldash/pkg/models"

// TimeOfDaySummary sums hourly rentals per bucket inside the window.
// The result always has one entry per bucket in Morning, Afternoon, Evening,
// Night order; buckets without records report zero.
func TimeOfDaySummary(records []models.HourlyRecord, w models.DateWindow) models.Summary {
	totals := make(map[models.TimeOfDay]int64)
	for _, r := range FilterHourly(records, w) {
		totals[r.TimeOfDay] += int64(r.Rentals)
	}

	summary := make(models.Summary, len(models.TimeOfDayOrder))
	for i, bucket := range models.TimeOfDayOrder {
		summary[i] = models.Entry{
			Category: bucket.String(),
			Label:    bucket.Label(),
			Total:    totals[bucket],
		}
	}
	return summary
}
