package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mspro-labs/menuboard/internal/models"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menuboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadMenuConfig(t *testing.T) {
	path := writeConfig(t, `
source_url: "https://example.com/pub?output=csv"
items_per_screen: 12
fetch_timeout: 5s
badges:
  beertype=sour: sour.png
columns:
  name: ["Наименование"]
order_card:
  title: "Order online"
`)

	cfg, err := LoadMenuConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "https://example.com/pub?output=csv", cfg.SourceURL)
	assert.Equal(t, 12, cfg.ItemsPerScreen)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.Equal(t, map[string]string{"beertype=sour": "sour.png"}, cfg.Badges)
	assert.Equal(t, "Order online", cfg.OrderCard.Title)
	// untouched keys fall back to defaults
	assert.Equal(t, "menu", cfg.ContainerID)
	assert.Equal(t, "₽", cfg.Currency)
	assert.Equal(t, "Спросите у бармена", cfg.OrderCard.Text)

	cols, err := cfg.ColumnMap()
	require.NoError(t, err)
	assert.Equal(t, []string{"Наименование"}, cols[models.FieldName])
	assert.Equal(t, []string{"Цена₽", "Цена"}, cols[models.FieldBasePrice])
}

func TestLoadMenuConfigErrors(t *testing.T) {
	_, err := LoadMenuConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadMenuConfig(writeConfig(t, "items_per_screen: [oops"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*MenuConfig)
	}{
		{"negative page size", func(c *MenuConfig) { c.ItemsPerScreen = -1 }},
		{"empty container", func(c *MenuConfig) { c.ContainerID = "" }},
		{"non-http source", func(c *MenuConfig) { c.SourceURL = "ftp://example.com/menu.csv" }},
		{"negative timeout", func(c *MenuConfig) { c.FetchTimeout = -time.Second }},
		{"unknown column", func(c *MenuConfig) { c.Columns = map[string][]string{"colour": {"x"}} }},
	}

	require.NoError(t, Default().Validate())
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(AppConfig{ConfigPath: defaultConfigPath, SourceURL: "https://example.com/x.csv"})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/x.csv", cfg.SourceURL)
	assert.Equal(t, 15, cfg.ItemsPerScreen)
	assert.Len(t, cfg.Badges, 6)

	_, err = Load(AppConfig{ConfigPath: "elsewhere.yaml"})
	assert.Error(t, err)
}

func TestGetAppConfig(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("PORT", "9090")
	t.Setenv("MENU_SOURCE_URL", "https://example.com/menu.csv")

	app, err := GetAppConfig()
	require.NoError(t, err)
	assert.Equal(t, defaultConfigPath, app.ConfigPath)
	assert.Equal(t, ":9090", app.Addr)
	assert.Equal(t, "https://example.com/menu.csv", app.SourceURL)
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
