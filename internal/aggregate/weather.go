package aggregate

import "github.com/jgoulah/rentaldash/pkg/models"

// WeatherSummary sums daily rentals per weather condition inside the window,
// ordered by ascending condition code. Conditions absent from the window are
// omitted.
func WeatherSummary(records []models.DailyRecord, w models.DateWindow) models.Summary {
	totals := make(map[int]int64)
	for _, r := range FilterDaily(records, w) {
		totals[int(r.Weather)] += int64(r.Rentals)
	}
	return sortedSummary(totals, func(code int) string {
		return models.WeatherCondition(code).String()
	})
}
