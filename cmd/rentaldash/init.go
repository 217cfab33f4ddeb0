package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jgoulah/rentaldash/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default settings",
	Long:  `Creates config.yaml (or the file given by --config) populated with the default data paths, server port and render settings.`,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := getConfigPath()

	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	var empty config.Config
	width, height := empty.GetRenderSize()
	cfg := &config.Config{
		Data: config.DataConfig{
			DayCSV:  empty.GetDayCSV(),
			HourCSV: empty.GetHourCSV(),
			Source:  empty.GetSource(),
		},
		Server: config.ServerConfig{
			ListenAddr: empty.GetListenAddr(),
			Port:       empty.GetPort(),
		},
		MQTT: config.MQTTConfig{
			TopicPrefix: empty.GetTopicPrefix(),
		},
		Render: config.RenderConfig{
			Width:          width,
			Height:         height,
			TimeoutSeconds: int(empty.GetRenderTimeout().Seconds()),
		},
	}

	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("✓ Wrote %s\n", path)
	return nil
}
