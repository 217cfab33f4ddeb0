package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jgoulah/rentaldash/internal/loader"
	"github.com/jgoulah/rentaldash/internal/log"
)

var (
	importDay  string
	importHour string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import rental CSV files into the database",
	Long: `Reads the cleaned day and hour CSV files and stores them in the local SQLite database.
Existing rows are replaced, so the database always mirrors the last import.`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importDay, "day", "", "Day CSV file (default from config)")
	importCmd.Flags().StringVar(&importHour, "hour", "", "Hour CSV file (default from config)")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	fmt.Printf("=== Import started at %s ===\n", time.Now().Format("2006-01-02 15:04:05 MST"))

	// Load config
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	dayPath, hourPath := cfg.GetDayCSV(), cfg.GetHourCSV()
	if importDay != "" {
		dayPath = importDay
	}
	if importHour != "" {
		hourPath = importHour
	}

	// Parse both files before touching the database
	src := loader.NewCSVSource(dayPath, hourPath)
	daily, err := src.LoadDailyRecords()
	if err != nil {
		return err
	}
	hourly, err := src.LoadHourlyRecords()
	if err != nil {
		return err
	}
	log.Debugw("parsed rental files", "daily", len(daily), "hourly", len(hourly))

	// Open database
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if err := db.ReplaceDaily(daily); err != nil {
		return fmt.Errorf("storing daily rentals: %w", err)
	}
	if err := db.ReplaceHourly(hourly); err != nil {
		return fmt.Errorf("storing hourly rentals: %w", err)
	}

	log.Infow("imported rental data", "daily", len(daily), "hourly", len(hourly), "db", getDBPath())
	fmt.Printf("✓ Imported %d daily and %d hourly records into %s\n", len(daily), len(hourly), getDBPath())
	return nil
}
