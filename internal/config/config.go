// Package config loads the LED manager settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration document.
type Config struct {
	Presets       PresetsConfig       `yaml:"presets"`
	HTTP          HTTPConfig          `yaml:"http"`
	MQTT          MQTTConfig          `yaml:"mqtt"`
	HomeAssistant HomeAssistantConfig `yaml:"homeassistant"`
	Translator    TranslatorConfig    `yaml:"translator"`
	Log           LogConfig           `yaml:"log"`
}

// PresetsConfig points at the per-node preset file.
type PresetsConfig struct {
	Path string `yaml:"path"`
}

// HTTPConfig contains the input/admin API settings.
type HTTPConfig struct {
	Enabled      bool   `yaml:"enabled"`
	Addr         string `yaml:"addr"`
	ReadTimeout  int    `yaml:"read_timeout"`
	WriteTimeout int    `yaml:"write_timeout"`
}

// MQTTConfig contains MQTT broker connection settings.
type MQTTConfig struct {
	Enabled     bool                `yaml:"enabled"`
	Broker      MQTTBrokerConfig    `yaml:"broker"`
	Auth        MQTTAuthConfig      `yaml:"auth"`
	QoS         int                 `yaml:"qos"`
	Reconnect   MQTTReconnectConfig `yaml:"reconnect"`
	TopicPrefix string              `yaml:"topic_prefix"`
}

type MQTTBrokerConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	TLS      bool   `yaml:"tls"`
	ClientID string `yaml:"client_id"`
}

type MQTTAuthConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// MQTTReconnectConfig holds delays in seconds.
type MQTTReconnectConfig struct {
	InitialDelay int `yaml:"initial_delay"`
	MaxDelay     int `yaml:"max_delay"`
}

// HomeAssistantConfig enables direct service calls against a Home Assistant
// instance. Both URL and Token must be set for the sink to be wired.
type HomeAssistantConfig struct {
	URL     string `yaml:"url"`
	Token   string `yaml:"token"`
	Timeout int    `yaml:"timeout"`
}

// TranslatorConfig tunes the parameter translation.
type TranslatorConfig struct {
	// HueFormula rescales a 0-360 hue (variable x) to the switch's 0-255 range.
	HueFormula string `yaml:"hue_formula"`
}

type LogConfig struct {
	Level  string        `yaml:"level"`
	Format string        `yaml:"format"`
	Output string        `yaml:"output"`
	File   FileLogConfig `yaml:"file"`
}

// FileLogConfig is used when Output is "file". Sizes are in megabytes, ages in days.
type FileLogConfig struct {
	Path       string `yaml:"path"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Compress   bool   `yaml:"compress"`
}

// Load reads the YAML file at path, expanding ${VAR} references against the
// environment, and applies the env overrides on top. A missing file is not an
// error: the defaults plus environment are used.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Default returns a Config with every default filled in.
func Default() *Config {
	return &Config{
		Presets: PresetsConfig{Path: "/app/presets.json"},
		HTTP: HTTPConfig{
			Enabled:      true,
			Addr:         ":8080",
			ReadTimeout:  15,
			WriteTimeout: 15,
		},
		MQTT: MQTTConfig{
			Broker: MQTTBrokerConfig{
				Host:     "localhost",
				Port:     1883,
				ClientID: "inovelli-led-manager",
			},
			QoS: 1,
			Reconnect: MQTTReconnectConfig{
				InitialDelay: 1,
				MaxDelay:     60,
			},
			TopicPrefix: "inovelli",
		},
		HomeAssistant: HomeAssistantConfig{Timeout: 10},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
	}
}

func (c *Config) setDefaults() {
	if c.MQTT.Broker.ClientID == "" {
		c.MQTT.Broker.ClientID = "inovelli-led-manager"
	}
	if c.MQTT.TopicPrefix == "" {
		c.MQTT.TopicPrefix = "inovelli"
	}
	c.MQTT.TopicPrefix = strings.TrimRight(c.MQTT.TopicPrefix, "/")
	if c.HomeAssistant.Timeout <= 0 {
		c.HomeAssistant.Timeout = 10
	}
	c.HomeAssistant.URL = strings.TrimRight(c.HomeAssistant.URL, "/")
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Log.Output == "" {
		c.Log.Output = "stdout"
	}
	if c.Log.Output == "file" {
		if c.Log.File.MaxSize == 0 {
			c.Log.File.MaxSize = 10
		}
		if c.Log.File.MaxBackups == 0 {
			c.Log.File.MaxBackups = 3
		}
		if c.Log.File.MaxAge == 0 {
			c.Log.File.MaxAge = 28
		}
	}
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PRESETS_PATH"); v != "" {
		c.Presets.Path = v
	}
	if v := os.Getenv("HASS_URL"); v != "" {
		c.HomeAssistant.URL = v
	}
	if v := os.Getenv("HASS_TOKEN"); v != "" {
		c.HomeAssistant.Token = v
	}
	if v := os.Getenv("MQTT_HOST"); v != "" {
		c.MQTT.Broker.Host = v
	}
	if v := os.Getenv("MQTT_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.MQTT.Broker.Port = port
		}
	}
	if v := os.Getenv("MQTT_USERNAME"); v != "" {
		c.MQTT.Auth.Username = v
	}
	if v := os.Getenv("MQTT_PASSWORD"); v != "" {
		c.MQTT.Auth.Password = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []string

	if c.Presets.Path == "" {
		errs = append(errs, "presets.path is required")
	}
	if c.HTTP.Enabled && c.HTTP.Addr == "" {
		errs = append(errs, "http.addr is required when http is enabled")
	}
	if c.MQTT.Enabled {
		if c.MQTT.Broker.Host == "" {
			errs = append(errs, "mqtt.broker.host is required when mqtt is enabled")
		}
		if c.MQTT.Broker.Port < 1 || c.MQTT.Broker.Port > 65535 {
			errs = append(errs, "mqtt.broker.port must be between 1 and 65535")
		}
	}
	if c.MQTT.QoS < 0 || c.MQTT.QoS > 2 {
		errs = append(errs, "mqtt.qos must be 0, 1, or 2")
	}
	if !c.HTTP.Enabled && !c.MQTT.Enabled {
		errs = append(errs, "at least one of http or mqtt must be enabled")
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Sprintf("log.format %q must be json or text", c.Log.Format))
	}
	switch strings.ToLower(c.Log.Output) {
	case "stdout", "stderr":
	case "file":
		if c.Log.File.Path == "" {
			errs = append(errs, "log.file.path is required when log.output is file")
		}
	default:
		errs = append(errs, fmt.Sprintf("log.output %q must be stdout, stderr or file", c.Log.Output))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}
	return nil
}

// HomeAssistantEnabled reports whether both URL and token are present.
func (c *Config) HomeAssistantEnabled() bool {
	return c.HomeAssistant.URL != "" && c.HomeAssistant.Token != ""
}

func (c *Config) HTTPReadTimeout() time.Duration {
	return time.Duration(c.HTTP.ReadTimeout) * time.Second
}

func (c *Config) HTTPWriteTimeout() time.Duration {
	return time.Duration(c.HTTP.WriteTimeout) * time.Second
}

func (c *Config) HomeAssistantTimeout() time.Duration {
	return time.Duration(c.HomeAssistant.Timeout) * time.Second
}

// LoadDotEnv loads KEY=value pairs from path into the process environment
// without overriding variables that are already set. A missing file is ignored.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}
