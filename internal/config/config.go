// Package config loads the restaurant configuration from a YAML file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Restaurant struct {
		Name string `yaml:"name"`
	} `yaml:"restaurant"`
	LogLevel string `yaml:"log_level"`
	Metrics  struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"metrics"`
	Staff     []StaffSeed     `yaml:"staff"`
	Menu      []MenuSeed      `yaml:"menu"`
	Inventory []InventorySeed `yaml:"inventory"`
}

// StaffSeed describes one staff member to register at startup.
type StaffSeed struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Role string `yaml:"role"`
}

// MenuSeed describes one menu item to register at startup. Kind selects the
// variant: entree, drink or dessert.
type MenuSeed struct {
	ID          string   `yaml:"id"`
	Kind        string   `yaml:"kind"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Price       float64  `yaml:"price"`
	Dietary     string   `yaml:"dietary"`
	Ingredients []string `yaml:"ingredients"`
	PrepMinutes int      `yaml:"prep_minutes"`
	Alcoholic   bool     `yaml:"alcoholic"`
	Allergens   []string `yaml:"allergens"`
}

// InventorySeed describes one stocked ingredient. ItemID links the stock
// record to the menu item with the same id.
type InventorySeed struct {
	ItemID    string `yaml:"item_id"`
	Name      string `yaml:"name"`
	Level     int    `yaml:"level"`
	Threshold int    `yaml:"threshold"`
	Capacity  int    `yaml:"capacity"`
	Unit      string `yaml:"unit"`
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the loaded configuration for obvious mistakes before any
// store is seeded from it.
func (c *Config) Validate() error {
	if c.Restaurant.Name == "" {
		return fmt.Errorf("restaurant.name is required")
	}
	for _, s := range c.Staff {
		switch strings.ToUpper(s.Role) {
		case "MANAGER", "WAITER", "CHEF":
		default:
			return fmt.Errorf("staff %q: unknown role %q", s.ID, s.Role)
		}
	}
	for _, m := range c.Menu {
		switch strings.ToLower(m.Kind) {
		case "entree", "drink", "dessert":
		default:
			return fmt.Errorf("menu item %q: unknown kind %q", m.ID, m.Kind)
		}
		if m.Price < 0 {
			return fmt.Errorf("menu item %q: negative price", m.ID)
		}
	}
	for _, inv := range c.Inventory {
		if inv.Level < 0 || inv.Capacity < inv.Level {
			return fmt.Errorf("inventory %q: level must be within [0, capacity]", inv.ItemID)
		}
	}
	return nil
}

// SlogLevel maps the configured log_level onto a slog level, defaulting to
// info for unknown or empty values.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
