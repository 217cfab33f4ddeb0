package models

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is one of the four fixed buckets an hour of the day falls into
type TimeOfDay int

const (
	Morning TimeOfDay = iota
	Afternoon
	Evening
	Night
)

// TimeOfDayOrder is the canonical display order of the buckets
var TimeOfDayOrder = []TimeOfDay{Morning, Afternoon, Evening, Night}

var timeOfDayNames = [...]string{"Morning", "Afternoon", "Evening", "Night"}

// hour ranges are [start, end)
var timeOfDayHours = [...][2]int{{6, 12}, {12, 18}, {18, 24}, {0, 6}}

func (t TimeOfDay) String() string {
	if t < Morning || t > Night {
		return fmt.Sprintf("TimeOfDay(%d)", int(t))
	}
	return timeOfDayNames[t]
}

// Hours returns the start and end hour of the bucket
func (t TimeOfDay) Hours() (int, int) {
	if t < Morning || t > Night {
		return 0, 0
	}
	r := timeOfDayHours[t]
	return r[0], r[1]
}

// Label returns the bucket name with its defining hour range, e.g. "Morning (6-12)"
func (t TimeOfDay) Label() string {
	from, to := t.Hours()
	return fmt.Sprintf("%s (%d-%d)", t, from, to)
}

// MarshalText lets buckets appear by name in JSON
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText is the inverse of MarshalText
func (t *TimeOfDay) UnmarshalText(b []byte) error {
	v, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ParseTimeOfDay parses a bucket name (case-insensitive)
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	for i, name := range timeOfDayNames {
		if strings.EqualFold(s, name) {
			return TimeOfDay(i), nil
		}
	}
	return 0, fmt.Errorf("unknown time of day %q", s)
}

// TimeOfDayForHour maps an hour (0-23) onto its bucket
func TimeOfDayForHour(hour int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour %d out of range", hour)
	}
	for _, t := range TimeOfDayOrder {
		from, to := t.Hours()
		if hour >= from && hour < to {
			return t, nil
		}
	}
	return 0, fmt.Errorf("hour %d has no bucket", hour)
}

// Weekday follows the 0=Sunday convention of the source data
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func (d Weekday) String() string {
	if d < Sunday || d > Saturday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// ParseWeekday accepts a code 0-6, a full English day name or its three-letter abbreviation
func ParseWeekday(s string) (Weekday, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 6 {
			return 0, fmt.Errorf("weekday %d out of range", n)
		}
		return Weekday(n), nil
	}
	for i, name := range weekdayNames {
		if strings.EqualFold(s, name) || strings.EqualFold(s, name[:3]) {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

// WeatherCondition is the weather situation code of a day (1 = best, 4 = worst)
type WeatherCondition int

const (
	Clear WeatherCondition = iota + 1
	Mist
	LightPrecipitation
	HeavyPrecipitation
)

var weatherNames = map[WeatherCondition]string{
	Clear:              "Clear",
	Mist:               "Mist",
	LightPrecipitation: "Light Snow/Rain",
	HeavyPrecipitation: "Heavy Rain/Snow",
}

// alternative spellings seen in cleaned exports
var weatherAliases = map[string]WeatherCondition{
	"clear":           Clear,
	"clear/partly":    Clear,
	"mist":            Mist,
	"misty":           Mist,
	"cloudy":          Mist,
	"mist/cloudy":     Mist,
	"light snow/rain": LightPrecipitation,
	"light_rainsnow":  LightPrecipitation,
	"light rain":      LightPrecipitation,
	"light snow":      LightPrecipitation,
	"heavy rain/snow": HeavyPrecipitation,
	"heavy_rainsnow":  HeavyPrecipitation,
	"heavy rain":      HeavyPrecipitation,
	"heavy snow":      HeavyPrecipitation,
}

func (c WeatherCondition) String() string {
	if name, ok := weatherNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Weather(%d)", int(c))
}

// ParseWeatherCondition accepts a code 1-4 or one of the known condition names
func ParseWeatherCondition(s string) (WeatherCondition, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		c := WeatherCondition(n)
		if c < Clear || c > HeavyPrecipitation {
			return 0, fmt.Errorf("weather code %d out of range", n)
		}
		return c, nil
	}
	if c, ok := weatherAliases[strings.ToLower(s)]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("unknown weather condition %q", s)
}
