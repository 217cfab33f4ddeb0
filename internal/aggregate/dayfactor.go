package aggregate

import (
	"sort"
	"strconv"

	"github.com/jgoulah/rentaldash/pkg/models"
)

// DayFactorSummary breaks daily rentals inside the window down by working day,
// holiday and weekday. Each breakdown is sorted by category value; values with
// no records in the window are left out rather than reported as zero.
func DayFactorSummary(records []models.DailyRecord, w models.DateWindow) models.DayFactors {
	filtered := FilterDaily(records, w)

	byWorking := make(map[int]int64)
	byHoliday := make(map[int]int64)
	byWeekday := make(map[int]int64)
	for _, r := range filtered {
		byWorking[boolCode(r.WorkingDay)] += int64(r.Rentals)
		byHoliday[boolCode(r.Holiday)] += int64(r.Rentals)
		byWeekday[int(r.Weekday)] += int64(r.Rentals)
	}

	return models.DayFactors{
		ByWorkingDay: sortedSummary(byWorking, workingDayLabel),
		ByHoliday:    sortedSummary(byHoliday, holidayLabel),
		ByWeekday: sortedSummary(byWeekday, func(code int) string {
			return models.Weekday(code).String()
		}),
	}
}

func boolCode(b bool) int {
	if b {
		return 1
	}
	return 0
}

func workingDayLabel(code int) string {
	if code == 1 {
		return "Working day"
	}
	return "Non-working day"
}

func holidayLabel(code int) string {
	if code == 1 {
		return "Holiday"
	}
	return "Non-holiday"
}

// sortedSummary turns grouped totals into a summary ordered by ascending code
func sortedSummary(totals map[int]int64, label func(int) string) models.Summary {
	codes := make([]int, 0, len(totals))
	for code := range totals {
		codes = append(codes, code)
	}
	sort.Ints(codes)

	summary := make(models.Summary, 0, len(codes))
	for _, code := range codes {
		summary = append(summary, models.Entry{
			Category: strconv.Itoa(code),
			Label:    label(code),
			Total:    totals[code],
		})
	}
	return summary
}
