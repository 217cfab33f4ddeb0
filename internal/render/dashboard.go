package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/jgoulah/rentaldash/pkg/models"
)

//go:embed templates/dashboard.html.tmpl
var templates embed.FS

var dashboardTmpl = template.Must(template.New("dashboard.html.tmpl").Funcs(template.FuncMap{
	"date": func(w models.DateWindow, end bool) string {
		if end {
			return w.End.Format(models.DateLayout)
		}
		return w.Start.Format(models.DateLayout)
	},
	"px": func(f float64) string { return fmt.Sprintf("%.1f", f) },
}).ParseFS(templates, "templates/dashboard.html.tmpl"))

// DashboardData is everything the dashboard page shows. When LoadError is set
// the page carries only the warning and no charts.
type DashboardData struct {
	Window    models.DateWindow
	Span      models.DateWindow
	TimeOfDay models.Summary
	Factors   models.DayFactors
	Weather   models.Summary
	LoadError string
	// Interactive adds the date picker form; snapshots leave it out
	Interactive bool
}

type section struct {
	Heading string
	Charts  []Chart
}

type dashboardView struct {
	DashboardData
	Sections []section
}

// sections builds the three dashboard sections from the summaries
func (d DashboardData) sections() []section {
	if d.LoadError != "" {
		return nil
	}
	return []section{
		{
			Heading: "Bike Rentals by Time of Day",
			Charts: []Chart{
				NewChart("Bike Rentals by Time of Day", "Time Period", "Number of Rentals", d.TimeOfDay, true),
			},
		},
		{
			Heading: "Bike Rentals by Day Factors",
			Charts: []Chart{
				NewChart("Bike Rentals by Working Day", "Working Day (0 = Off, 1 = Working)", "Total Rentals", d.Factors.ByWorkingDay, false),
				NewChart("Bike Rentals by Holiday", "Holiday (0 = No, 1 = Yes)", "Total Rentals", d.Factors.ByHoliday, false),
				NewChart("Bike Rentals by Day of Week", "Day of Week (0 = Sunday, 6 = Saturday)", "Total Rentals", d.Factors.ByWeekday, false),
			},
		},
		{
			Heading: "Bike Rentals by Weather Condition",
			Charts: []Chart{
				NewChart("Bike Users by Weather Condition", "Weather Condition", "Number of Bike Users", d.Weather, false),
			},
		},
	}
}

// Dashboard writes the HTML dashboard page
func Dashboard(w io.Writer, data DashboardData) error {
	view := dashboardView{DashboardData: data, Sections: data.sections()}
	if err := dashboardTmpl.Execute(w, view); err != nil {
		return fmt.Errorf("executing dashboard template: %w", err)
	}
	return nil
}
