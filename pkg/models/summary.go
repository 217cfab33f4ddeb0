package models

// Entry is one bar of a chart: a category and the rentals summed for it
type Entry struct {
	Category string `json:"category"` // stable key, e.g. "Morning" or "1"
	Label    string `json:"label"`    // display text
	Total    int64  `json:"total"`
}

// Summary is the ordered output of an aggregation; order is part of the result
type Summary []Entry

// Total returns the sum over all entries
func (s Summary) Total() int64 {
	var total int64
	for _, e := range s {
		total += e.Total
	}
	return total
}

// Max returns the index of the largest entry, or -1 when all totals are zero
func (s Summary) Max() int {
	idx := -1
	var best int64
	for i, e := range s {
		if e.Total > best {
			best = e.Total
			idx = i
		}
	}
	return idx
}

// DayFactors holds the three independent day-type breakdowns
type DayFactors struct {
	ByWorkingDay Summary `json:"by_working_day"`
	ByHoliday    Summary `json:"by_holiday"`
	ByWeekday    Summary `json:"by_weekday"`
}

// Report bundles every chart's summary for one window
type Report struct {
	Window    DateWindow `json:"window"`
	TimeOfDay Summary    `json:"time_of_day"`
	Factors   DayFactors `json:"day_factors"`
	Weather   Summary    `json:"weather"`
}
