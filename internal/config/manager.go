// Package config loads and saves the user's persistent configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds the user's persistent configuration preferences. Values are
// applied as environment defaults; explicit environment variables win.
type Config struct {
	Provider          string `json:"provider,omitempty"`           // azure or anthropic
	APIKey            string `json:"api_key,omitempty"`            // API key for the selected provider
	Endpoint          string `json:"endpoint,omitempty"`           // Azure OpenAI resource endpoint
	Deployment        string `json:"deployment,omitempty"`         // Azure deployment name
	APIVersion        string `json:"api_version,omitempty"`        // Azure API version
	TelemetryEndpoint string `json:"telemetry_endpoint,omitempty"` // OTLP/gRPC collector endpoint
	ServiceName       string `json:"service_name,omitempty"`       // Service name on exported spans
	MaxSteps          int    `json:"max_steps,omitempty"`          // Agent step bound
}

// Manager handles loading and saving the configuration.
type Manager struct {
	configDir string
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user config dir: %w", err)
	}

	return &Manager{
		configDir: filepath.Join(configDir, "scout"),
	}, nil
}

// GetConfigPath returns the absolute path to the config.json file.
func (m *Manager) GetConfigPath() string {
	return filepath.Join(m.configDir, "config.json")
}

// Load reads the configuration from disk.
// If the file does not exist, it returns an empty Config and no error.
func (m *Manager) Load() (*Config, error) {
	path := m.GetConfigPath()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config json: %w", err)
	}

	return &cfg, nil
}

// Save writes the configuration to disk with restricted permissions (0600).
func (m *Manager) Save(cfg *Config) error {
	if err := os.MkdirAll(m.configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := m.GetConfigPath()
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Exists checks if the configuration file has been created.
func (m *Manager) Exists() bool {
	_, err := os.Stat(m.GetConfigPath())
	return !os.IsNotExist(err)
}

// ApplyToEnv projects the config onto the process environment, skipping any
// variable already set so explicit env always wins.
func (cfg *Config) ApplyToEnv() {
	setIfUnset("LLM_PROVIDER", cfg.Provider)
	setIfUnset("AZURE_OPENAI_ENDPOINT", cfg.Endpoint)
	setIfUnset("AZURE_OPENAI_DEPLOYMENT_NAME", cfg.Deployment)
	setIfUnset("AZURE_OPENAI_API_VERSION", cfg.APIVersion)
	setIfUnset("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.TelemetryEndpoint)
	setIfUnset("OTEL_SERVICE_NAME", cfg.ServiceName)
	if cfg.MaxSteps > 0 {
		setIfUnset("AGENT_MAX_STEPS", strconv.Itoa(cfg.MaxSteps))
	}

	switch cfg.Provider {
	case "anthropic":
		setIfUnset("ANTHROPIC_API_KEY", cfg.APIKey)
	default:
		setIfUnset("AZURE_OPENAI_API_KEY", cfg.APIKey)
	}
}

func setIfUnset(key, value string) {
	if value == "" {
		return
	}
	if _, ok := os.LookupEnv(key); !ok {
		os.Setenv(key, value)
	}
}
