package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Player.Name != "Player" {
		t.Errorf("Player.Name = %q, want %q", cfg.Player.Name, "Player")
	}
	if cfg.Player.Age != 22 {
		t.Errorf("Player.Age = %d, want 22", cfg.Player.Age)
	}
	if cfg.Player.City != "Helsinki" {
		t.Errorf("Player.City = %q, want %q", cfg.Player.City, "Helsinki")
	}
	if cfg.Player.EducationPath != "university" {
		t.Errorf("Player.EducationPath = %q, want %q", cfg.Player.EducationPath, "university")
	}
	if cfg.Player.RiskAttitude != "balanced" {
		t.Errorf("Player.RiskAttitude = %q, want %q", cfg.Player.RiskAttitude, "balanced")
	}
	if cfg.Game.MaxMonths != 24 {
		t.Errorf("Game.MaxMonths = %d, want 24", cfg.Game.MaxMonths)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
player:
  name: Aino
  age: 25
  city: Tampere
  education_path: vocational
  risk_attitude: averse
  starting_savings: 3000
game:
  seed: 42
  max_months: 36
database:
  sqlite_path: /tmp/lifesim.db
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Player.Name != "Aino" {
		t.Errorf("Player.Name = %q, want %q", cfg.Player.Name, "Aino")
	}
	if cfg.Player.Age != 25 {
		t.Errorf("Player.Age = %d, want 25", cfg.Player.Age)
	}
	if cfg.Player.City != "Tampere" {
		t.Errorf("Player.City = %q, want %q", cfg.Player.City, "Tampere")
	}
	if cfg.Player.StartingSaving != 3000 {
		t.Errorf("Player.StartingSaving = %v, want 3000", cfg.Player.StartingSaving)
	}
	if cfg.Game.Seed != 42 {
		t.Errorf("Game.Seed = %d, want 42", cfg.Game.Seed)
	}
	if cfg.Game.MaxMonths != 36 {
		t.Errorf("Game.MaxMonths = %d, want 36", cfg.Game.MaxMonths)
	}
	if cfg.Database.SQLitePath != "/tmp/lifesim.db" {
		t.Errorf("Database.SQLitePath = %q, want %q", cfg.Database.SQLitePath, "/tmp/lifesim.db")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LIFESIM_PLAYER_NAME", "Ville")
	t.Setenv("LIFESIM_CITY", "Oulu")
	t.Setenv("LIFESIM_SEED", "99")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Player.Name != "Ville" {
		t.Errorf("Player.Name = %q, want %q", cfg.Player.Name, "Ville")
	}
	if cfg.Player.City != "Oulu" {
		t.Errorf("Player.City = %q, want %q", cfg.Player.City, "Oulu")
	}
	if cfg.Game.Seed != 99 {
		t.Errorf("Game.Seed = %d, want 99", cfg.Game.Seed)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"age too low", func(c *Config) { c.Player.Age = 12 }, true},
		{"age too high", func(c *Config) { c.Player.Age = 40 }, true},
		{"negative savings", func(c *Config) { c.Player.StartingSaving = -1 }, true},
		{"negative debt", func(c *Config) { c.Player.StartingDebt = -100 }, true},
		{"zero months", func(c *Config) { c.Game.MaxMonths = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
			if err != nil {
				t.Fatal(err)
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
