package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jgoulah/rentaldash/pkg/models"
)

// CSVSource reads the cleaned day and hour exports from disk
type CSVSource struct {
	DayPath  string
	HourPath string
}

// NewCSVSource creates a source for the two CSV files
func NewCSVSource(dayPath, hourPath string) *CSVSource {
	return &CSVSource{DayPath: dayPath, HourPath: hourPath}
}

// LoadDailyRecords reads and parses the day file
func (s *CSVSource) LoadDailyRecords() ([]models.DailyRecord, error) {
	f, err := os.Open(s.DayPath)
	if err != nil {
		return nil, &LoadError{Path: s.DayPath, Err: err}
	}
	defer f.Close()

	records, err := ParseDaily(f)
	return records, withPath(err, s.DayPath)
}

// LoadHourlyRecords reads and parses the hour file
func (s *CSVSource) LoadHourlyRecords() ([]models.HourlyRecord, error) {
	f, err := os.Open(s.HourPath)
	if err != nil {
		return nil, &LoadError{Path: s.HourPath, Err: err}
	}
	defer f.Close()

	records, err := ParseHourly(f)
	return records, withPath(err, s.HourPath)
}

func withPath(err error, path string) error {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		loadErr.Path = path
	}
	return err
}

// Column aliases, first match wins. The cleaned exports rename cnt to
// total_rentals and replace hr with a time_of_day bucket; the raw names are
// accepted too.
var (
	dateColumns      = []string{"dteday", "date"}
	rentalsColumns   = []string{"total_rentals", "cnt", "count"}
	timeOfDayColumns = []string{"time_of_day"}
	hourColumns      = []string{"hr", "hour"}
	workingColumns   = []string{"workingday", "working_day"}
	holidayColumns   = []string{"holiday"}
	weekdayColumns   = []string{"weekday"}
	weatherColumns   = []string{"weathersit", "weather", "weather_condition"}
)

// ParseDaily parses a day table. Any malformed row or repeated date fails the whole load.
func ParseDaily(r io.Reader) ([]models.DailyRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	cols, err := readHeader(reader)
	if err != nil {
		return nil, err
	}

	dateCol := cols.find(dateColumns)
	rentalsCol := cols.find(rentalsColumns)
	workingCol := cols.find(workingColumns)
	holidayCol := cols.find(holidayColumns)
	weekdayCol := cols.find(weekdayColumns)
	weatherCol := cols.find(weatherColumns)
	if err := cols.require(map[string]int{
		"date":       dateCol,
		"rentals":    rentalsCol,
		"workingday": workingCol,
		"holiday":    holidayCol,
		"weekday":    weekdayCol,
		"weathersit": weatherCol,
	}); err != nil {
		return nil, err
	}

	var results []models.DailyRecord
	seen := make(map[time.Time]int)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, rowError(err)
		}
		line, _ := reader.FieldPos(0)
		if blank(row) {
			continue
		}

		var rec models.DailyRecord
		if rec.Date, err = parseDate(row[dateCol]); err != nil {
			return nil, &LoadError{Line: line, Err: err}
		}
		if first, dup := seen[rec.Date]; dup {
			return nil, &LoadError{Line: line, Err: fmt.Errorf("duplicate date %s (first seen on line %d)", rec.Date.Format(models.DateLayout), first)}
		}
		seen[rec.Date] = line
		if rec.Rentals, err = parseRentals(row[rentalsCol]); err != nil {
			return nil, &LoadError{Line: line, Err: err}
		}
		if rec.WorkingDay, err = parseFlag(row[workingCol]); err != nil {
			return nil, &LoadError{Line: line, Err: fmt.Errorf("workingday: %w", err)}
		}
		if rec.Holiday, err = parseFlag(row[holidayCol]); err != nil {
			return nil, &LoadError{Line: line, Err: fmt.Errorf("holiday: %w", err)}
		}
		if rec.Weekday, err = models.ParseWeekday(row[weekdayCol]); err != nil {
			return nil, &LoadError{Line: line, Err: err}
		}
		if rec.Weather, err = models.ParseWeatherCondition(row[weatherCol]); err != nil {
			return nil, &LoadError{Line: line, Err: err}
		}

		results = append(results, rec)
	}

	return results, nil
}

// ParseHourly parses an hour table. Rows are bucketed from time_of_day, or
// from the hour column when the export still carries raw hours.
func ParseHourly(r io.Reader) ([]models.HourlyRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	cols, err := readHeader(reader)
	if err != nil {
		return nil, err
	}

	dateCol := cols.find(dateColumns)
	rentalsCol := cols.find(rentalsColumns)
	bucketCol := cols.find(timeOfDayColumns)
	hourCol := cols.find(hourColumns)
	if err := cols.require(map[string]int{
		"date":    dateCol,
		"rentals": rentalsCol,
	}); err != nil {
		return nil, err
	}
	if bucketCol == -1 && hourCol == -1 {
		return nil, &LoadError{Err: fmt.Errorf("missing time_of_day (or hr) column in header %v", cols.header)}
	}

	var results []models.HourlyRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, rowError(err)
		}
		line, _ := reader.FieldPos(0)
		if blank(row) {
			continue
		}

		var rec models.HourlyRecord
		if rec.Date, err = parseDate(row[dateCol]); err != nil {
			return nil, &LoadError{Line: line, Err: err}
		}
		if rec.Rentals, err = parseRentals(row[rentalsCol]); err != nil {
			return nil, &LoadError{Line: line, Err: err}
		}
		if bucketCol != -1 {
			rec.TimeOfDay, err = models.ParseTimeOfDay(row[bucketCol])
		} else {
			rec.TimeOfDay, err = bucketForHour(row[hourCol])
		}
		if err != nil {
			return nil, &LoadError{Line: line, Err: err}
		}

		results = append(results, rec)
	}

	return results, nil
}

type columns struct {
	header []string
	index  map[string]int
}

func readHeader(reader *csv.Reader) (*columns, error) {
	header, err := reader.Read()
	if err == io.EOF {
		return nil, &LoadError{Err: errors.New("empty file")}
	}
	if err != nil {
		return nil, &LoadError{Line: 1, Err: fmt.Errorf("reading CSV header: %w", err)}
	}

	cols := &columns{header: header, index: make(map[string]int, len(header))}
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := cols.index[key]; !dup {
			cols.index[key] = i
		}
	}
	// every data row must be wide enough for any column we index
	reader.FieldsPerRecord = len(header)
	return cols, nil
}

func (c *columns) find(names []string) int {
	for _, name := range names {
		if i, ok := c.index[name]; ok {
			return i
		}
	}
	return -1
}

func (c *columns) require(found map[string]int) error {
	var missing []string
	for name, idx := range found {
		if idx == -1 {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return &LoadError{Err: fmt.Errorf("missing required columns %v in header %v", missing, c.header)}
}

func rowError(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &LoadError{Line: parseErr.Line, Err: fmt.Errorf("reading CSV row: %w", parseErr.Err)}
	}
	return &LoadError{Err: fmt.Errorf("reading CSV row: %w", err)}
}

func blank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

var dateLayouts = []string{
	models.DateLayout,
	"2006-01-02 15:04:05",
	time.RFC3339,
	"1/2/2006",
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return models.Day(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable date %q", s)
}

func parseRentals(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		// pandas writes integer columns with NaNs as floats
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != float64(int(f)) {
			return 0, fmt.Errorf("unparsable rental count %q", s)
		}
		n = int(f)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative rental count %d", n)
	}
	return n, nil
}

func parseFlag(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y":
		return true, nil
	case "0", "false", "no", "n":
		return false, nil
	}
	return false, fmt.Errorf("unparsable flag %q", s)
}

func bucketForHour(s string) (models.TimeOfDay, error) {
	hour, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("unparsable hour %q", s)
	}
	return models.TimeOfDayForHour(hour)
}
