package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Config holds the unified application configuration
type Config struct {
	EventDirs       []string `json:"event_dirs"`
	AdjustmentsFile string   `json:"adjustments_file"`
	FirstDayOfWeek  int      `json:"first_day_of_week"` // ISO, Monday=1..Sunday=7
	WeeksInView     int      `json:"weeks_in_view"`
	MinDate         string   `json:"min_date"` // Hijri "1400-01-01"
	MaxDate         string   `json:"max_date"`
	DefaultView     string   `json:"default_view"` // month, year, decade
}

// Settings represents the config file structure
type Settings struct {
	EventDirs       []string `json:"event_dirs"`
	AdjustmentsFile string   `json:"adjustments_file,omitempty"`
	FirstDayOfWeek  int      `json:"first_day_of_week,omitempty"`
	WeeksInView     int      `json:"weeks_in_view,omitempty"`
	MinDate         string   `json:"min_date,omitempty"`
	MaxDate         string   `json:"max_date,omitempty"`
	DefaultView     string   `json:"default_view,omitempty"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	EventDirs   []string
	DefaultView string
}

var globalConfig *Config

// Load loads configuration with priority: CLI flags > env vars > config file > defaults
func Load(flags CLIFlags) (*Config, error) {
	cfg := &Config{
		FirstDayOfWeek: 7,
		WeeksInView:    6,
		DefaultView:    "month",
	}

	// Config file supplies base values
	if configPath, err := getConfigPath(); err == nil {
		if fileConfig, err := loadConfigFile(configPath); err == nil {
			if len(fileConfig.EventDirs) > 0 {
				cfg.EventDirs = expandPaths(fileConfig.EventDirs)
			}
			if fileConfig.AdjustmentsFile != "" {
				cfg.AdjustmentsFile = expandPath(fileConfig.AdjustmentsFile)
			}
			if fileConfig.FirstDayOfWeek >= 1 && fileConfig.FirstDayOfWeek <= 7 {
				cfg.FirstDayOfWeek = fileConfig.FirstDayOfWeek
			}
			if fileConfig.WeeksInView > 0 {
				cfg.WeeksInView = fileConfig.WeeksInView
			}
			if fileConfig.MinDate != "" {
				cfg.MinDate = fileConfig.MinDate
			}
			if fileConfig.MaxDate != "" {
				cfg.MaxDate = fileConfig.MaxDate
			}
			if fileConfig.DefaultView != "" {
				cfg.DefaultView = fileConfig.DefaultView
			}
		}
	}

	// Environment variables override the config file
	if envDirs := os.Getenv("HIJRICAL_EVENT_DIRS"); envDirs != "" {
		cfg.EventDirs = expandPaths(parseColonSeparated(envDirs))
	}
	if envAdj := os.Getenv("HIJRICAL_ADJUSTMENTS"); envAdj != "" {
		cfg.AdjustmentsFile = expandPath(envAdj)
	}
	if envView := os.Getenv("HIJRICAL_VIEW"); envView != "" {
		cfg.DefaultView = envView
	}

	// CLI flags override everything
	if len(flags.EventDirs) > 0 {
		cfg.EventDirs = expandPaths(flags.EventDirs)
	}
	if flags.DefaultView != "" {
		cfg.DefaultView = flags.DefaultView
	}

	globalConfig = cfg
	return cfg, nil
}

// Get returns the loaded config
func Get() *Config {
	return globalConfig
}

// getConfigPath returns the path to the configuration file
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "hijrical", "config.json"), nil
}

// loadConfigFile loads configuration from the settings file
func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	settings := Settings{
		EventDirs:      []string{},
		FirstDayOfWeek: 7,
		WeeksInView:    6,
		DefaultView:    "month",
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// ParseCommaSeparated splits a comma-separated string into a slice
func ParseCommaSeparated(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func parseColonSeparated(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ":")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

func expandPaths(paths []string) []string {
	result := make([]string, len(paths))
	for i, p := range paths {
		result[i] = expandPath(p)
	}
	return result
}
