package aggregate

import "github.com/jgoulah/rentaldash/pkg/models"

// Summarize runs all three aggregations over the same window
func Summarize(daily []models.DailyRecord, hourly []models.HourlyRecord, w models.DateWindow) models.Report {
	return models.Report{
		Window:    w,
		TimeOfDay: TimeOfDaySummary(hourly, w),
		Factors:   DayFactorSummary(daily, w),
		Weather:   WeatherSummary(daily, w),
	}
}
