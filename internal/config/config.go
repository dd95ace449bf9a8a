package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Input tables
	ClassSchedulePath string `yaml:"classSchedulePath" validate:"required"`
	StudentShiftsPath string `yaml:"studentShiftsPath" validate:"required"`
	RoomsPath         string `yaml:"roomsPath" validate:"required"`
	// Optional; used only to locate unchecked rooms on output
	CoordinatesPath string `yaml:"coordinatesPath,omitempty"`

	// OutputDir receives the assignment and unchecked-room tables
	OutputDir string `yaml:"outputDir" validate:"required"`

	// TermStart is the Monday of week 1, used to expand weekday shifts
	// into calendar dates on output rows. Optional; without it output
	// rows carry weekday labels only.
	TermStart string `yaml:"termStart,omitempty" validate:"omitempty,datetime=2006-01-02"`

	// ShiftBufferMinutes is trimmed from each shift before checks are
	// scheduled. The per-room check durations are fixed constants, not
	// configuration.
	ShiftBufferMinutes int `yaml:"shiftBufferMinutes,omitempty" validate:"min=0"`
}

// Buffer returns the shift buffer as a duration.
func (c *Config) Buffer() time.Duration {
	return time.Duration(c.ShiftBufferMinutes) * time.Minute
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// LoadWithEnv loads and validates the configuration for the given
// environment. The ROOMCHECK_CONFIG environment variable overrides the
// search; otherwise roomcheck_<env>.yaml is looked up in the current
// directory, then the user's home directory.
func LoadWithEnv(env string) (*Config, error) {
	if override := os.Getenv("ROOMCHECK_CONFIG"); override != "" {
		return LoadFromPath(override)
	}

	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// findConfigFile searches for roomcheck_<env>.yaml in the current
// directory and the user's home directory
func findConfigFile(env string) (string, error) {
	configFileName := fmt.Sprintf("roomcheck_%s.yaml", env)

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file %s not found in current directory or home directory", configFileName)
}
