package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadParsesFullConfig(t *testing.T) {
	path := writeConfig(t, `
restaurant:
  name: Maison Verte
log_level: debug
metrics:
  enabled: true
staff:
  - {id: m1, name: Alice, role: MANAGER}
  - {id: w1, name: Bob, role: waiter}
menu:
  - id: i1
    kind: entree
    name: Pasta
    description: Fresh pasta
    price: 12.0
    dietary: REGULAR
    ingredients: [flour, sauce]
    prep_minutes: 10
  - {id: i3, kind: drink, name: Cola, description: Fizzy, price: 3.0}
inventory:
  - {item_id: i1, name: Pasta, level: 10, threshold: 2, capacity: 20, unit: portions}
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "Maison Verte", cfg.Restaurant.Name)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.True(t, cfg.Metrics.Enabled)
	require.Len(t, cfg.Staff, 2)
	assert.Equal(t, "MANAGER", cfg.Staff[0].Role)
	require.Len(t, cfg.Menu, 2)
	assert.Equal(t, []string{"flour", "sauce"}, cfg.Menu[0].Ingredients)
	require.Len(t, cfg.Inventory, 1)
	assert.Equal(t, 20, cfg.Inventory[0].Capacity)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateRejectsUnknownRole(t *testing.T) {
	path := writeConfig(t, `
restaurant:
  name: Maison Verte
staff:
  - {id: x1, name: Eve, role: SOMMELIER}
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown role")
}

func TestValidateRejectsUnknownMenuKind(t *testing.T) {
	path := writeConfig(t, `
restaurant:
  name: Maison Verte
menu:
  - {id: i9, kind: amuse, name: Mystery, price: 1.0}
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown kind")
}

func TestValidateRejectsLevelAboveCapacity(t *testing.T) {
	path := writeConfig(t, `
restaurant:
  name: Maison Verte
inventory:
  - {item_id: i1, name: Pasta, level: 30, threshold: 2, capacity: 20}
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "capacity")
}

func TestSlogLevelDefaultsToInfo(t *testing.T) {
	cfg := &Config{LogLevel: "verbose"}
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}
