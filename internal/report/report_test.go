package report

import (
	"errors"
	"testing"
	"time"

	"github.com/jgoulah/rentaldash/internal/loader"
	"github.com/jgoulah/rentaldash/pkg/models"
)

type staticSource struct {
	daily  []models.DailyRecord
	hourly []models.HourlyRecord
	err    error
}

func (s staticSource) LoadDailyRecords() ([]models.DailyRecord, error) {
	return s.daily, s.err
}

func (s staticSource) LoadHourlyRecords() ([]models.HourlyRecord, error) {
	return s.hourly, s.err
}

func day(d int) time.Time {
	return time.Date(2011, 1, d, 0, 0, 0, 0, time.UTC)
}

func sample() staticSource {
	return staticSource{
		daily: []models.DailyRecord{
			{Date: day(1), Weather: models.Clear, Rentals: 100},
			{Date: day(2), WorkingDay: true, Weekday: models.Monday, Weather: models.Mist, Rentals: 50},
			{Date: day(3), WorkingDay: true, Weekday: models.Tuesday, Weather: models.Clear, Rentals: 25},
		},
		hourly: []models.HourlyRecord{
			{Date: day(1), TimeOfDay: models.Morning, Rentals: 60},
			{Date: day(1), TimeOfDay: models.Night, Rentals: 40},
			{Date: day(3), TimeOfDay: models.Evening, Rentals: 25},
		},
	}
}

func TestBuildDefaultsToSpan(t *testing.T) {
	res, err := Build(sample(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	if !res.Span.Start.Equal(day(1)) || !res.Span.End.Equal(day(3)) {
		t.Errorf("unexpected span %s", res.Span)
	}
	if res.Window != res.Span {
		t.Errorf("expected window to equal span, got %s", res.Window)
	}
	if got := res.TimeOfDay.Total(); got != 125 {
		t.Errorf("expected 125 hourly rentals, got %d", got)
	}
	if got := res.Weather.Total(); got != 175 {
		t.Errorf("expected 175 daily rentals, got %d", got)
	}
}

func TestBuildClampsBounds(t *testing.T) {
	start := time.Date(2010, 6, 1, 0, 0, 0, 0, time.UTC)
	end := day(2)

	res, err := Build(sample(), &start, &end)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Window.Start.Equal(day(1)) || !res.Window.End.Equal(day(2)) {
		t.Errorf("unexpected window %s", res.Window)
	}
	if got := res.Weather.Total(); got != 150 {
		t.Errorf("expected 150, got %d", got)
	}
}

func TestBuildLoadError(t *testing.T) {
	src := staticSource{err: &loader.LoadError{Path: "day.csv", Err: errors.New("boom")}}

	_, err := Build(src, nil, nil)
	var loadErr *loader.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected LoadError, got %v", err)
	}
}

func TestParseRejectsBadDate(t *testing.T) {
	if _, err := Parse(sample(), "yesterday", "", day(10)); err == nil {
		t.Error("expected error for bad start date")
	}
}

func TestParse(t *testing.T) {
	res, err := Parse(sample(), "2011-01-02", "2011-01-03", day(10))
	if err != nil {
		t.Fatal(err)
	}
	if got := res.TimeOfDay.Total(); got != 25 {
		t.Errorf("expected 25, got %d", got)
	}
}
