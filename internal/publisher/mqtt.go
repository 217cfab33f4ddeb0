package publisher

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/jgoulah/rentaldash/internal/config"
	"github.com/jgoulah/rentaldash/internal/log"
	"github.com/jgoulah/rentaldash/pkg/models"
)

// Publisher pushes dashboard summaries to MQTT and/or Home Assistant
type Publisher struct {
	client      mqtt.Client
	topicPrefix string
	haConfig    config.HAConfig
	httpClient  *http.Client
}

// New creates a new publisher (supports both MQTT and HA HTTP API)
func New(mqttCfg config.MQTTConfig, topicPrefix string, haCfg config.HAConfig) (*Publisher, error) {
	// Validate HA config if enabled
	if haCfg.Enabled {
		if haCfg.URL == "" {
			return nil, fmt.Errorf("Home Assistant URL is required when enabled")
		}
		if haCfg.Token == "" {
			return nil, fmt.Errorf("Home Assistant token is required when enabled")
		}
		if haCfg.EntityID == "" {
			return nil, fmt.Errorf("Home Assistant entity_id is required when enabled")
		}
	}

	if !mqttCfg.Enabled && !haCfg.Enabled {
		return nil, fmt.Errorf("neither MQTT nor Home Assistant publishing is enabled in config")
	}

	var client mqtt.Client
	if mqttCfg.Enabled {
		if mqttCfg.Broker == "" {
			return nil, fmt.Errorf("MQTT broker address is required when enabled")
		}

		// Configure MQTT client options
		opts := mqtt.NewClientOptions()
		opts.AddBroker(fmt.Sprintf("tcp://%s", mqttCfg.Broker))
		opts.SetClientID("rentaldash-" + uuid.NewString()[:8])
		opts.SetAutoReconnect(true)
		opts.SetConnectRetry(true)
		opts.SetConnectTimeout(10 * time.Second)

		if mqttCfg.Username != "" {
			opts.SetUsername(mqttCfg.Username)
		}
		if mqttCfg.Password != "" {
			opts.SetPassword(mqttCfg.Password)
		}

		// Create and connect client
		client = mqtt.NewClient(opts)
		if token := client.Connect(); token.Wait() && token.Error() != nil {
			return nil, fmt.Errorf("connecting to MQTT broker: %w", token.Error())
		}
	}

	return &Publisher{
		client:      client,
		topicPrefix: topicPrefix,
		haConfig:    haCfg,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// Publish sends the report to every enabled destination
func (p *Publisher) Publish(report models.Report) error {
	if p.client != nil {
		if err := p.publishMQTT(report); err != nil {
			return err
		}
	}
	if p.haConfig.Enabled {
		if err := p.publishHA(report); err != nil {
			return err
		}
	}
	return nil
}

// Messages maps each MQTT topic to the JSON payload published on it
func Messages(prefix string, report models.Report) (map[string][]byte, error) {
	parts := map[string]interface{}{
		"time_of_day": report.TimeOfDay,
		"day_factors": report.Factors,
		"weather":     report.Weather,
		"window":      report.Window,
	}

	messages := make(map[string][]byte, len(parts))
	for name, v := range parts {
		body, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", name, err)
		}
		messages[prefix+"/"+name] = body
	}
	return messages, nil
}

func (p *Publisher) publishMQTT(report models.Report) error {
	messages, err := Messages(p.topicPrefix, report)
	if err != nil {
		return err
	}

	for topic, body := range messages {
		// retained so late subscribers see the last summary
		token := p.client.Publish(topic, 1, true, body)
		if !token.WaitTimeout(10 * time.Second) {
			return fmt.Errorf("publishing to %s: timed out", topic)
		}
		if err := token.Error(); err != nil {
			return fmt.Errorf("publishing to %s: %w", topic, err)
		}
		log.Debugw("published summary", "topic", topic, "bytes", len(body))
	}
	return nil
}

// HAPayload matches the Home Assistant state API request body
type HAPayload struct {
	State      string                 `json:"state"`
	Attributes map[string]interface{} `json:"attributes"`
}

// NewHAPayload reports the total rentals in the window as the entity state,
// with the per-bucket totals as attributes
func NewHAPayload(report models.Report) HAPayload {
	attrs := map[string]interface{}{
		"unit_of_measurement": "rentals",
		"friendly_name":       "Bike rentals",
		"start_date":          report.Window.Start.Format(models.DateLayout),
		"end_date":            report.Window.End.Format(models.DateLayout),
	}
	for _, e := range report.TimeOfDay {
		attrs[fmt.Sprintf("time_of_day_%s", e.Category)] = e.Total
	}
	for _, e := range report.Weather {
		attrs[fmt.Sprintf("weather_%s", e.Category)] = e.Total
	}

	return HAPayload{
		State:      fmt.Sprintf("%d", report.TimeOfDay.Total()),
		Attributes: attrs,
	}
}

func (p *Publisher) publishHA(report models.Report) error {
	apiURL := fmt.Sprintf("%s/api/states/%s", p.haConfig.URL, p.haConfig.EntityID)

	body, err := json.Marshal(NewHAPayload(report))
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	req, err := http.NewRequest("POST", apiURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+p.haConfig.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()

	// 201 when the entity is created, 200 when updated
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("HTTP error: status %d, response: %s", resp.StatusCode, string(respBody))
	}

	return nil
}

// Close disconnects from the MQTT broker
func (p *Publisher) Close() {
	if p.client != nil && p.client.IsConnected() {
		p.client.Disconnect(250)
	}
}
