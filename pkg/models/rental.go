package models

import "time"

// DateLayout is the calendar-day layout used across CSV files, the database and flags
const DateLayout = "2006-01-02"

// HourlyRecord represents the rentals counted in one hour of one day, already bucketed
type HourlyRecord struct {
	Date      time.Time `json:"date"`
	TimeOfDay TimeOfDay `json:"time_of_day"`
	Rentals   int       `json:"total_rentals"`
}

// DailyRecord represents a single day's rentals along with its calendar and weather factors
type DailyRecord struct {
	Date       time.Time        `json:"date"`
	WorkingDay bool             `json:"working_day"`
	Holiday    bool             `json:"holiday"`
	Weekday    Weekday          `json:"weekday"`
	Weather    WeatherCondition `json:"weather"`
	Rentals    int              `json:"total_rentals"`
}

// DateWindow is an inclusive range of calendar days
type DateWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateWindow builds a window from two dates, dropping any time-of-day component
func NewDateWindow(start, end time.Time) DateWindow {
	return DateWindow{Start: Day(start), End: Day(end)}
}

// Contains reports whether the calendar day of t falls inside the window, bounds included
func (w DateWindow) Contains(t time.Time) bool {
	d := Day(t)
	return !d.Before(w.Start) && !d.After(w.End)
}

func (w DateWindow) String() string {
	return w.Start.Format(DateLayout) + " to " + w.End.Format(DateLayout)
}

// Day truncates t to midnight UTC of its calendar day
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
