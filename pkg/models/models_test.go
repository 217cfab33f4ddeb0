package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimeOfDayForHour(t *testing.T) {
	tests := []struct {
		hour int
		want TimeOfDay
	}{
		{0, Night},
		{5, Night},
		{6, Morning},
		{11, Morning},
		{12, Afternoon},
		{17, Afternoon},
		{18, Evening},
		{23, Evening},
	}

	for _, test := range tests {
		got, err := TimeOfDayForHour(test.hour)
		if err != nil {
			t.Errorf("hour %d: unexpected error %v", test.hour, err)
			continue
		}
		if got != test.want {
			t.Errorf("hour %d: expected %s, got %s", test.hour, test.want, got)
		}
	}

	for _, hour := range []int{-1, 24} {
		if _, err := TimeOfDayForHour(hour); err == nil {
			t.Errorf("hour %d: expected error", hour)
		}
	}
}

func TestTimeOfDayLabels(t *testing.T) {
	want := []string{"Morning (6-12)", "Afternoon (12-18)", "Evening (18-24)", "Night (0-6)"}
	for i, bucket := range TimeOfDayOrder {
		if got := bucket.Label(); got != want[i] {
			t.Errorf("expected %q, got %q", want[i], got)
		}
	}
}

func TestTimeOfDayText(t *testing.T) {
	b, err := json.Marshal(HourlyRecord{TimeOfDay: Evening})
	if err != nil {
		t.Fatal(err)
	}

	var rec HourlyRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		t.Fatal(err)
	}
	if rec.TimeOfDay != Evening {
		t.Errorf("expected Evening, got %s", rec.TimeOfDay)
	}

	if _, err := ParseTimeOfDay("dusk"); err == nil {
		t.Error("expected error for unknown bucket")
	}
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		in      string
		want    Weekday
		wantErr bool
	}{
		{in: "0", want: Sunday},
		{in: "6", want: Saturday},
		{in: "monday", want: Monday},
		{in: "Fri", want: Friday},
		{in: "7", wantErr: true},
		{in: "someday", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			got, err := ParseWeekday(test.in)
			if test.wantErr {
				if err == nil {
					t.Errorf("expected error, got %s", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != test.want {
				t.Errorf("expected %s, got %s", test.want, got)
			}
		})
	}
}

func TestParseWeatherCondition(t *testing.T) {
	tests := []struct {
		in      string
		want    WeatherCondition
		wantErr bool
	}{
		{in: "1", want: Clear},
		{in: "4", want: HeavyPrecipitation},
		{in: "Misty", want: Mist},
		{in: "light_rainsnow", want: LightPrecipitation},
		{in: "0", wantErr: true},
		{in: "hail", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			got, err := ParseWeatherCondition(test.in)
			if test.wantErr {
				if err == nil {
					t.Errorf("expected error, got %s", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != test.want {
				t.Errorf("expected %s, got %s", test.want, got)
			}
		})
	}
}

func TestDateWindowContains(t *testing.T) {
	w := NewDateWindow(time.Date(2011, 1, 1, 15, 0, 0, 0, time.UTC), time.Date(2011, 1, 3, 0, 0, 0, 0, time.UTC))

	if !w.Contains(time.Date(2011, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("start day should be included")
	}
	if !w.Contains(time.Date(2011, 1, 3, 23, 59, 0, 0, time.UTC)) {
		t.Error("end day should be included")
	}
	if w.Contains(time.Date(2011, 1, 4, 0, 0, 0, 0, time.UTC)) {
		t.Error("day after end should be excluded")
	}
	if got := w.String(); got != "2011-01-01 to 2011-01-03" {
		t.Errorf("unexpected string %q", got)
	}
}

func TestSummaryMax(t *testing.T) {
	s := Summary{{Total: 3}, {Total: 9}, {Total: 9}}
	if got := s.Max(); got != 1 {
		t.Errorf("expected first largest entry, got %d", got)
	}
	if got := (Summary{{Total: 0}}).Max(); got != -1 {
		t.Errorf("expected -1 for all zero, got %d", got)
	}
	if got := s.Total(); got != 21 {
		t.Errorf("expected 21, got %d", got)
	}
}
