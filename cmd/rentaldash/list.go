package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jgoulah/rentaldash/pkg/models"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show what is stored in the database",
	Long:  `Displays the record counts and the date span of the imported rental data.`,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	// Load config so .env overrides such as RENTALDASH_DB apply
	if _, err := loadConfig(); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Open database
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	stats, err := db.Stats()
	if err != nil {
		return fmt.Errorf("reading stats: %w", err)
	}

	if stats.DailyCount == 0 && stats.HourlyCount == 0 {
		fmt.Println("No data found (run 'rentaldash import' first)")
		return nil
	}

	fmt.Println("----------------------------------------")
	fmt.Printf("%-24s  %12s\n", "Daily records", humanize.Comma(int64(stats.DailyCount)))
	fmt.Printf("%-24s  %12s\n", "Hourly records", humanize.Comma(int64(stats.HourlyCount)))
	if stats.DailyCount > 0 {
		fmt.Printf("%-24s  %12s\n", "First day", stats.Span.Start.Format(models.DateLayout))
		fmt.Printf("%-24s  %12s\n", "Last day", stats.Span.End.Format(models.DateLayout))
	}
	fmt.Println("----------------------------------------")

	return nil
}
