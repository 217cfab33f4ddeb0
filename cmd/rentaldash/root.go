package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jgoulah/rentaldash/internal/config"
	"github.com/jgoulah/rentaldash/internal/database"
	"github.com/jgoulah/rentaldash/internal/loader"
	"github.com/jgoulah/rentaldash/internal/log"
)

var (
	cfgFile string
	dbPath  string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "rentaldash",
	Short: "Summarize bike rental activity by time of day, day type and weather",
	Long: `RentalDash reads cleaned daily and hourly bike rental tables and summarizes
them over a date window. Summaries can be printed, rendered as an HTML or PNG
dashboard, served over HTTP, or published to MQTT and Home Assistant.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return log.Init(debug)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database file (default is ./rentals.db)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// getConfigPath returns the config file path
func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}

// getDBPath returns the database file path (local directory)
func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return config.DefaultDBPath()
}

// loadConfig loads the configuration file
func loadConfig() (*config.Config, error) {
	return config.Load(getConfigPath())
}

// openDB opens the database connection
func openDB() (*database.DB, error) {
	path := getDBPath()

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	return database.New(path)
}

// openSource returns the configured rental data source wrapped so each table
// loads once. kind overrides the config when non-empty. The returned func
// releases the database handle, if one was opened.
func openSource(cfg *config.Config, kind string) (loader.Source, func(), error) {
	if kind == "" {
		kind = cfg.GetSource()
		if cfg.Data.Source != "" && cfg.Data.Source != kind {
			log.Warnw("unknown data source in config, using csv", "source", cfg.Data.Source)
		}
	}

	switch kind {
	case "csv":
		log.Debugw("reading rental data from CSV", "day", cfg.GetDayCSV(), "hour", cfg.GetHourCSV())
		return loader.Cached(loader.NewCSVSource(cfg.GetDayCSV(), cfg.GetHourCSV())), func() {}, nil
	case "db":
		db, err := openDB()
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		log.Debugw("reading rental data from database", "path", getDBPath())
		return loader.Cached(db), func() { db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown source: %s (available: csv, db)", kind)
	}
}
