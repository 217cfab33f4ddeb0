package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jgoulah/rentaldash/internal/render"
	"github.com/jgoulah/rentaldash/internal/report"
	"github.com/jgoulah/rentaldash/pkg/models"
)

var (
	summarySince  string
	summaryUntil  string
	summarySource string
	summaryJSON   bool
)

var summaryCmd = &cobra.Command{
	Use:   "summary [time-of-day|day-factors|weather|all]",
	Short: "Print rental summaries for a date window",
	Long: `Aggregates the rental data over the requested window and prints one table per chart.
Without --since/--until the whole data span is used; dates outside it are clamped.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"time-of-day", "day-factors", "weather", "all"},
	RunE:      runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summarySince, "since", "", "Start date (YYYY-MM-DD or relative like 7d)")
	summaryCmd.Flags().StringVar(&summaryUntil, "until", "", "End date (YYYY-MM-DD or relative like 7d)")
	summaryCmd.Flags().StringVar(&summarySource, "source", "", "Data source: csv or db (default from config)")
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "Print JSON instead of tables")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	which := "all"
	if len(args) == 1 {
		which = args[0]
	}
	switch which {
	case "time-of-day", "day-factors", "weather", "all":
	default:
		return fmt.Errorf("unknown summary: %s (available: time-of-day, day-factors, weather, all)", which)
	}

	// Load config
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	src, closeSrc, err := openSource(cfg, summarySource)
	if err != nil {
		return err
	}
	defer closeSrc()

	res, err := report.Parse(src, summarySince, summaryUntil, time.Now())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if summaryJSON {
		var v interface{} = res.Report
		switch which {
		case "time-of-day":
			v = res.TimeOfDay
		case "day-factors":
			v = res.Factors
		case "weather":
			v = res.Weather
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	fmt.Fprintf(out, "Rentals from %s\n", res.Window)

	tables := []struct {
		group   string
		title   string
		summary models.Summary
	}{
		{"time-of-day", "Time of Day", res.TimeOfDay},
		{"day-factors", "Working Day", res.Factors.ByWorkingDay},
		{"day-factors", "Holiday", res.Factors.ByHoliday},
		{"day-factors", "Day of Week", res.Factors.ByWeekday},
		{"weather", "Weather Condition", res.Weather},
	}

	for _, t := range tables {
		if which != "all" && which != t.group {
			continue
		}
		if err := render.Table(out, t.title, t.summary); err != nil {
			return fmt.Errorf("printing %s: %w", t.title, err)
		}
	}

	return nil
}
