package loader

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/jgoulah/rentaldash/pkg/models"
)

const dayCSV = `instant,dteday,season,yr,mnth,holiday,weekday,workingday,weathersit,temp,casual,registered,total_rentals
1,2011-01-01,1,0,1,0,6,0,2,0.34,331,654,985
2,2011-01-02,1,0,1,0,0,0,2,0.36,131,670,801
3,2011-01-03,1,0,1,0,1,1,1,0.19,120,1229,1349
`

const hourCSV = `instant,dteday,hr,time_of_day,total_rentals
1,2011-01-01,0,Night,16
2,2011-01-01,7,Morning,3
3,2011-01-01,13,Afternoon,52
4,2011-01-01,19,Evening,37
`

func TestParseDaily(t *testing.T) {
	records, err := ParseDaily(strings.NewReader(dayCSV))
	if err != nil {
		t.Fatal(err)
	}

	expected := []models.DailyRecord{
		{Date: time.Date(2011, 1, 1, 0, 0, 0, 0, time.UTC), WorkingDay: false, Holiday: false, Weekday: models.Saturday, Weather: models.Mist, Rentals: 985},
		{Date: time.Date(2011, 1, 2, 0, 0, 0, 0, time.UTC), WorkingDay: false, Holiday: false, Weekday: models.Sunday, Weather: models.Mist, Rentals: 801},
		{Date: time.Date(2011, 1, 3, 0, 0, 0, 0, time.UTC), WorkingDay: true, Holiday: false, Weekday: models.Monday, Weather: models.Clear, Rentals: 1349},
	}
	if !reflect.DeepEqual(records, expected) {
		t.Errorf("got %+v, want %+v", records, expected)
	}
}

func TestParseDailyNamedCategories(t *testing.T) {
	input := "dteday,workingday,holiday,weekday,weathersit,cnt\n" +
		"2011-01-07,Yes,No,Fri,Misty,1510\n" +
		"2011-01-08,no,no,Saturday,Light_rainsnow,959\n"

	records, err := ParseDaily(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if !records[0].WorkingDay || records[0].Weekday != models.Friday || records[0].Weather != models.Mist {
		t.Errorf("unexpected first record %+v", records[0])
	}
	if records[1].Weather != models.LightPrecipitation || records[1].Rentals != 959 {
		t.Errorf("unexpected second record %+v", records[1])
	}
}

func TestParseHourly(t *testing.T) {
	records, err := ParseHourly(strings.NewReader(hourCSV))
	if err != nil {
		t.Fatal(err)
	}

	want := []models.TimeOfDay{models.Night, models.Morning, models.Afternoon, models.Evening}
	if len(records) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(records))
	}
	for i, bucket := range want {
		if records[i].TimeOfDay != bucket {
			t.Errorf("record %d: got %v, want %v", i, records[i].TimeOfDay, bucket)
		}
	}
}

func TestParseHourlyFromRawHours(t *testing.T) {
	input := "dteday,hr,cnt\n2011-01-01,5,1\n2011-01-01,6,2\n2011-01-01,23,3\n"

	records, err := ParseHourly(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	want := []models.TimeOfDay{models.Night, models.Morning, models.Evening}
	for i, bucket := range want {
		if records[i].TimeOfDay != bucket {
			t.Errorf("hour row %d: got %v, want %v", i, records[i].TimeOfDay, bucket)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		daily bool
		line  int
	}{
		{
			name:  "Empty file",
			input: "",
			daily: true,
		},
		{
			name:  "Missing rentals column",
			input: "dteday,workingday,holiday,weekday,weathersit\n2011-01-01,0,0,6,1\n",
			daily: true,
		},
		{
			name:  "Unparsable date",
			input: "dteday,workingday,holiday,weekday,weathersit,cnt\n2011-01-01,0,0,6,1,5\nnot-a-date,0,0,6,1,5\n",
			daily: true,
			line:  3,
		},
		{
			name:  "Repeated date",
			input: "dteday,workingday,holiday,weekday,weathersit,cnt\n2011-01-01,0,0,6,1,100\n2011-01-02,0,0,0,1,20\n2011-01-01 00:00:00,0,0,6,1,50\n",
			daily: true,
			line:  4,
		},
		{
			name:  "Negative count",
			input: "dteday,time_of_day,total_rentals\n2011-01-01,Morning,-4\n",
			line:  2,
		},
		{
			name:  "Unknown bucket",
			input: "dteday,time_of_day,total_rentals\n2011-01-01,Dusk,4\n",
			line:  2,
		},
		{
			name:  "Short row",
			input: "dteday,time_of_day,total_rentals\n2011-01-01,Morning\n",
			line:  2,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var err error
			if test.daily {
				_, err = ParseDaily(strings.NewReader(test.input))
			} else {
				_, err = ParseHourly(strings.NewReader(test.input))
			}

			var loadErr *LoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("expected *LoadError, got %v", err)
			}
			if loadErr.Line != test.line {
				t.Errorf("expected line %d, got %d (%v)", test.line, loadErr.Line, err)
			}
		})
	}
}

func TestCSVSourceMissingFile(t *testing.T) {
	dir := t.TempDir()
	src := NewCSVSource(filepath.Join(dir, "day.csv"), filepath.Join(dir, "hour.csv"))

	_, err := src.LoadDailyRecords()
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped not-exist error, got %v", err)
	}
	if loadErr.Path != src.DayPath {
		t.Errorf("expected path %s, got %s", src.DayPath, loadErr.Path)
	}
}

func TestCSVSourceSetsPathOnParseError(t *testing.T) {
	dir := t.TempDir()
	hourPath := filepath.Join(dir, "hour.csv")
	if err := os.WriteFile(hourPath, []byte("dteday,total_rentals\n2011-01-01,4\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := NewCSVSource("", hourPath).LoadHourlyRecords()
	var loadErr *LoadError
	if !errors.As(err, &loadErr) || loadErr.Path != hourPath {
		t.Fatalf("expected load error for %s, got %v", hourPath, err)
	}
}
