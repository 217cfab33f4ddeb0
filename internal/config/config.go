package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	Data          DataConfig   `yaml:"data"`
	Server        ServerConfig `yaml:"server,omitempty"`
	MQTT          MQTTConfig   `yaml:"mqtt,omitempty"`
	HomeAssistant HAConfig     `yaml:"home_assistant,omitempty"`
	Render        RenderConfig `yaml:"render,omitempty"`
}

// DataConfig says where the rental tables come from
type DataConfig struct {
	DayCSV  string `yaml:"day_csv,omitempty"`  // default: dashboard/cleaned_day_data.csv
	HourCSV string `yaml:"hour_csv,omitempty"` // default: dashboard/cleaned_hour_data.csv
	Source  string `yaml:"source,omitempty"`   // "csv" (default) or "db"
}

// ServerConfig holds HTTP dashboard settings
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr,omitempty"`
	Port       int    `yaml:"port,omitempty"`
}

// MQTTConfig holds MQTT broker settings for publishing summaries
type MQTTConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Broker      string `yaml:"broker"`                 // host:port
	Username    string `yaml:"username,omitempty"`
	Password    string `yaml:"password,omitempty"`
	TopicPrefix string `yaml:"topic_prefix,omitempty"` // default: rentaldash
}

// HAConfig holds Home Assistant HTTP API configuration
type HAConfig struct {
	Enabled  bool   `yaml:"enabled"`
	URL      string `yaml:"url"`       // e.g., "http://homeassistant.local:8123"
	Token    string `yaml:"token"`     // Long-lived access token
	EntityID string `yaml:"entity_id"` // e.g., "sensor.bike_rentals"
}

// RenderConfig controls the headless browser used for PNG output
type RenderConfig struct {
	Width          int `yaml:"width,omitempty"`
	Height         int `yaml:"height,omitempty"`
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`
}

// Environment variables that override file settings. They may also come from a .env file.
const (
	EnvDayCSV       = "RENTALDASH_DAY_CSV"
	EnvHourCSV      = "RENTALDASH_HOUR_CSV"
	EnvDB           = "RENTALDASH_DB"
	EnvHAToken      = "RENTALDASH_HA_TOKEN"
	EnvMQTTPassword = "RENTALDASH_MQTT_PASSWORD"
)

// Load reads the config file and applies environment overrides
func Load(configPath string) (*Config, error) {
	cfg, err := readFile(configPath)
	if err != nil {
		return nil, err
	}

	_ = godotenv.Load()
	cfg.applyEnv()

	return cfg, nil
}

func readFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty config if file doesn't exist
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDayCSV); v != "" {
		c.Data.DayCSV = v
	}
	if v := os.Getenv(EnvHourCSV); v != "" {
		c.Data.HourCSV = v
	}
	if v := os.Getenv(EnvHAToken); v != "" {
		c.HomeAssistant.Token = v
	}
	if v := os.Getenv(EnvMQTTPassword); v != "" {
		c.MQTT.Password = v
	}
}

// Save writes the config to file
func Save(configPath string, cfg *Config) error {
	// Ensure directory exists
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// DefaultConfigPath returns the default config file path (local directory)
func DefaultConfigPath() string {
	return "config.yaml"
}

// DefaultDBPath returns the database path, honoring RENTALDASH_DB
func DefaultDBPath() string {
	if v := os.Getenv(EnvDB); v != "" {
		return v
	}
	return "rentals.db"
}

// GetDayCSV returns the day table path
func (c *Config) GetDayCSV() string {
	if c.Data.DayCSV == "" {
		return filepath.Join("dashboard", "cleaned_day_data.csv")
	}
	return c.Data.DayCSV
}

// GetHourCSV returns the hour table path
func (c *Config) GetHourCSV() string {
	if c.Data.HourCSV == "" {
		return filepath.Join("dashboard", "cleaned_hour_data.csv")
	}
	return c.Data.HourCSV
}

// GetSource returns the configured data source, "csv" unless set to "db"
func (c *Config) GetSource() string {
	if c.Data.Source == "db" {
		return "db"
	}
	return "csv"
}

// GetListenAddr returns the server address, listening on all interfaces by default
func (c *Config) GetListenAddr() string {
	if c.Server.ListenAddr == "" {
		return "0.0.0.0"
	}
	return c.Server.ListenAddr
}

// GetPort returns the server port with a default of 8501
func (c *Config) GetPort() int {
	if c.Server.Port <= 0 {
		return 8501
	}
	return c.Server.Port
}

// GetTopicPrefix returns the MQTT topic prefix
func (c *Config) GetTopicPrefix() string {
	if c.MQTT.TopicPrefix == "" {
		return "rentaldash"
	}
	return c.MQTT.TopicPrefix
}

// GetRenderSize returns the browser viewport used for screenshots
func (c *Config) GetRenderSize() (int, int) {
	w, h := c.Render.Width, c.Render.Height
	if w <= 0 {
		w = 1280
	}
	if h <= 0 {
		h = 900
	}
	return w, h
}

// GetRenderTimeout returns how long a screenshot may take, 30 seconds by default
func (c *Config) GetRenderTimeout() time.Duration {
	if c.Render.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.Render.TimeoutSeconds) * time.Second
}
