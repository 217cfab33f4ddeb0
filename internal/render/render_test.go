package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/jgoulah/rentaldash/pkg/models"
)

func timeOfDaySample() models.Summary {
	return models.Summary{
		{Category: "Morning", Label: "Morning (6-12)", Total: 1200},
		{Category: "Afternoon", Label: "Afternoon (12-18)", Total: 2400},
		{Category: "Evening", Label: "Evening (18-24)", Total: 0},
		{Category: "Night", Label: "Night (0-6)", Total: 300},
	}
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	if err := Table(&buf, "Rentals by time of day", timeOfDaySample()); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"Rentals by time of day:", "Afternoon (12-18)", "2,400", "Total: 3,900 rentals (4 categories)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Table(&buf, "Weather", nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No rentals in the selected range") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestNewChart(t *testing.T) {
	c := NewChart("t", "x", "y", timeOfDaySample(), true)

	if len(c.Bars) != 4 {
		t.Fatalf("expected 4 bars, got %d", len(c.Bars))
	}
	tallest := c.Bars[1]
	if tallest.Height != c.Bottom-c.Top {
		t.Errorf("largest bar should fill the plot, got height %v", tallest.Height)
	}
	if tallest.Color != highlightColor {
		t.Errorf("largest bar should be highlighted, got %s", tallest.Color)
	}
	if c.Bars[0].Color != barColor {
		t.Errorf("other bars keep the base color, got %s", c.Bars[0].Color)
	}
	if c.Bars[2].Height != 0 || c.Bars[2].Y != c.Bottom {
		t.Errorf("zero total should be a zero-height bar on the axis, got %+v", c.Bars[2])
	}
	if c.Bars[0].Height != tallest.Height/2 {
		t.Errorf("bars should scale linearly, got %v", c.Bars[0].Height)
	}
	if len(c.Grid) != gridDivision || c.Grid[gridDivision-1].Label != "2,400" {
		t.Errorf("unexpected grid %+v", c.Grid)
	}
}

func TestNewChartAllZero(t *testing.T) {
	zero := models.Summary{{Label: "a"}, {Label: "b"}}
	c := NewChart("t", "x", "y", zero, true)

	if c.Empty {
		t.Error("all-zero summary still has categories to draw")
	}
	for _, b := range c.Bars {
		if b.Height != 0 || b.Color != barColor {
			t.Errorf("unexpected bar %+v", b)
		}
	}
}

func TestDashboard(t *testing.T) {
	data := DashboardData{
		Window:    models.NewDateWindow(time.Date(2011, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2011, 1, 31, 0, 0, 0, 0, time.UTC)),
		Span:      models.NewDateWindow(time.Date(2011, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2012, 12, 31, 0, 0, 0, 0, time.UTC)),
		TimeOfDay: timeOfDaySample(),
		Factors: models.DayFactors{
			ByWorkingDay: models.Summary{{Category: "1", Label: "Working day", Total: 10}},
		},
		Interactive: true,
	}

	var buf bytes.Buffer
	if err := Dashboard(&buf, data); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		"Bike Rentals by Time of Day",
		"Bike Rentals by Day of Week",
		"Bike Users by Weather Condition",
		`name="start" value="2011-01-01"`,
		`max="2012-12-31"`,
		"Afternoon (12-18): 2,400",
		"No data in the selected range",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in dashboard", want)
		}
	}
	if strings.Count(out, "<svg") != 5 {
		t.Errorf("expected 5 charts, got %d", strings.Count(out, "<svg"))
	}
}

func TestDashboardLoadError(t *testing.T) {
	var buf bytes.Buffer
	if err := Dashboard(&buf, DashboardData{LoadError: "loading day.csv: file not found", Interactive: true}); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "Error loading data: loading day.csv: file not found") {
		t.Errorf("expected warning in output:\n%s", out)
	}
	if strings.Contains(out, "<svg") || strings.Contains(out, "<form") {
		t.Error("no charts or inputs should render after a load failure")
	}
}
