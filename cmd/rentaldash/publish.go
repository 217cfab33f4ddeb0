package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jgoulah/rentaldash/internal/publisher"
	"github.com/jgoulah/rentaldash/internal/report"
)

var (
	publishSince  string
	publishUntil  string
	publishSource string
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish rental summaries to MQTT and/or Home Assistant",
	Long: `Summarizes the rental data over the requested window and publishes the result as
retained JSON messages to MQTT and/or as a sensor state through the Home Assistant HTTP API.`,
	RunE: runPublish,
}

func init() {
	publishCmd.Flags().StringVar(&publishSince, "since", "", "Start date (YYYY-MM-DD or relative like 7d)")
	publishCmd.Flags().StringVar(&publishUntil, "until", "", "End date (YYYY-MM-DD or relative like 7d)")
	publishCmd.Flags().StringVar(&publishSource, "source", "", "Data source: csv or db (default from config)")
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	fmt.Printf("=== Publish started at %s ===\n", time.Now().Format("2006-01-02 15:04:05 MST"))

	// Load config
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Create publisher
	pub, err := publisher.New(cfg.MQTT, cfg.GetTopicPrefix(), cfg.HomeAssistant)
	if err != nil {
		return fmt.Errorf("creating publisher: %w", err)
	}
	defer pub.Close()

	src, closeSrc, err := openSource(cfg, publishSource)
	if err != nil {
		return err
	}
	defer closeSrc()

	res, err := report.Parse(src, publishSince, publishUntil, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Publishing summaries for %s (%s rentals)... ", res.Window, humanize.Comma(res.TimeOfDay.Total()))
	if err := pub.Publish(res.Report); err != nil {
		fmt.Println("FAILED")
		return fmt.Errorf("publishing: %w", err)
	}
	fmt.Println("✓")

	return nil
}
