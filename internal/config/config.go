package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Player struct {
		Name           string          `yaml:"name"`
		Age            int             `yaml:"age"`
		City           string          `yaml:"city"`
		EducationPath  string          `yaml:"education_path"`
		RiskAttitude   string          `yaml:"risk_attitude"`
		StartingSaving float64         `yaml:"starting_savings"`
		StartingDebt   float64         `yaml:"starting_debt"`
		Aspirations    map[string]bool `yaml:"aspirations"`
	} `yaml:"player"`
	Game struct {
		Seed      int64 `yaml:"seed"`
		MaxMonths int   `yaml:"max_months"`
	} `yaml:"game"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("LIFESIM_PLAYER_NAME"); v != "" {
		cfg.Player.Name = v
	}
	if v := os.Getenv("LIFESIM_CITY"); v != "" {
		cfg.Player.City = v
	}
	if v := os.Getenv("LIFESIM_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Game.Seed = seed
		}
	}
	if v := os.Getenv("LIFESIM_SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.Player.Name == "" {
		cfg.Player.Name = "Player"
	}
	if cfg.Player.Age == 0 {
		cfg.Player.Age = 22
	}
	if cfg.Player.City == "" {
		cfg.Player.City = "Helsinki"
	}
	if cfg.Player.EducationPath == "" {
		cfg.Player.EducationPath = "university"
	}
	if cfg.Player.RiskAttitude == "" {
		cfg.Player.RiskAttitude = "balanced"
	}
	if cfg.Game.MaxMonths == 0 {
		cfg.Game.MaxMonths = 24
	}

	return cfg, nil
}

// Validate checks that all required fields are sensible.
func (c *Config) Validate() error {
	if c.Player.Age < 15 || c.Player.Age > 35 {
		return fmt.Errorf("player.age must be between 15 and 35, got %d", c.Player.Age)
	}
	if c.Player.StartingSaving < 0 {
		return fmt.Errorf("player.starting_savings must not be negative")
	}
	if c.Player.StartingDebt < 0 {
		return fmt.Errorf("player.starting_debt must not be negative")
	}
	if c.Game.MaxMonths < 1 {
		return fmt.Errorf("game.max_months must be at least 1")
	}
	return nil
}
