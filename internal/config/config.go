package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"mspro-labs/menuboard/internal/menu"
	"mspro-labs/menuboard/internal/models"
)

const (
	defaultConfigPath = "menuboard.yaml"
	defaultSourceURL  = "https://docs.google.com/spreadsheets/d/e/2PACX-1vRcUeH0R2aQgSWh0hhjkHEF2j3vSmWaFn-vpEvdl3wmgZavajJXslZR7zB8a8Wk3r2cKkXolnIXrq14/pub?gid=0&single=true&output=csv"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// AppConfig holds infrastructure config from standard env vars
type AppConfig struct {
	ConfigPath string // Path to the YAML config file
	SourceURL  string // Overrides source_url when set
	Addr       string
}

// MenuConfig holds everything about the menu board (from YAML)
type MenuConfig struct {
	SourceURL      string              `yaml:"source_url"`
	BrowserFetch   bool                `yaml:"browser_fetch"`
	FetchTimeout   time.Duration       `yaml:"fetch_timeout"`
	ItemsPerScreen int                 `yaml:"items_per_screen"`
	ContainerID    string              `yaml:"container_id"`
	AssetPath      string              `yaml:"asset_path"`
	AssetsDir      string              `yaml:"assets_dir"`
	Currency       string              `yaml:"currency"`
	GravityUnit    string              `yaml:"gravity_unit"`
	PendingLabel   string              `yaml:"pending_label"`
	Title          string              `yaml:"title"`
	Stylesheet     string              `yaml:"stylesheet"`
	RefreshSeconds int                 `yaml:"refresh_seconds"`
	Badges         map[string]string   `yaml:"badges"`
	Columns        map[string][]string `yaml:"columns"`
	OrderCard      OrderCard           `yaml:"order_card"`
}

// OrderCard is the fixed content of the trailing "order elsewhere" card.
type OrderCard struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
	URL   string `yaml:"url"`
}

// GetAppConfig reads basic infrastructure settings from environment variables.
func GetAppConfig() (AppConfig, error) {
	configPath := os.Getenv("CONFIG_PATH")
	port := os.Getenv("PORT")

	// Set defaults if not provided
	if configPath == "" {
		configPath = defaultConfigPath
	}
	if port == "" {
		port = "8080"
	}

	return AppConfig{
		ConfigPath: configPath,
		SourceURL:  os.Getenv("MENU_SOURCE_URL"),
		Addr:       ":" + port,
	}, nil
}

// Default returns the built-in board settings.
func Default() *MenuConfig {
	cfg := &MenuConfig{}
	cfg.applyDefaults()
	return cfg
}

// LoadMenuConfig reads the YAML file and fills in defaults for anything it leaves out.
func LoadMenuConfig(path string) (*MenuConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file at '%s': %w", path, err)
	}
	var cfg MenuConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Load resolves the menu config for app: the YAML file when present, the
// built-in defaults when the default path does not exist, then env overrides.
func Load(app AppConfig) (*MenuConfig, error) {
	cfg, err := LoadMenuConfig(app.ConfigPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) || app.ConfigPath != defaultConfigPath {
			return nil, err
		}
		cfg = Default()
	}
	if app.SourceURL != "" {
		cfg.SourceURL = app.SourceURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *MenuConfig) applyDefaults() {
	if c.SourceURL == "" {
		c.SourceURL = defaultSourceURL
	}
	if c.ItemsPerScreen == 0 {
		c.ItemsPerScreen = 15
	}
	if c.ContainerID == "" {
		c.ContainerID = "menu"
	}
	if c.AssetPath == "" {
		c.AssetPath = "img"
	}
	if c.Currency == "" {
		c.Currency = "₽"
	}
	if c.GravityUnit == "" {
		c.GravityUnit = "°P"
	}
	if c.PendingLabel == "" {
		c.PendingLabel = "В пути"
	}
	if c.Title == "" {
		c.Title = "Меню"
	}
	if c.Badges == nil {
		c.Badges = menu.DefaultBadgeFiles()
	}
	if c.OrderCard.Title == "" {
		c.OrderCard.Title = "Под заказ"
	}
	if c.OrderCard.Text == "" {
		c.OrderCard.Text = "Спросите у бармена"
	}
}

// Validate checks the settings the pipeline cannot work without.
func (c *MenuConfig) Validate() error {
	if c.SourceURL == "" {
		return fmt.Errorf("%w: source_url is required (or set MENU_SOURCE_URL)", ErrInvalidConfig)
	}
	if u, err := url.Parse(c.SourceURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: source_url %q is not an http(s) URL", ErrInvalidConfig, c.SourceURL)
	}
	if c.ItemsPerScreen < 1 {
		return fmt.Errorf("%w: items_per_screen must be positive, got %d", ErrInvalidConfig, c.ItemsPerScreen)
	}
	if c.ContainerID == "" {
		return fmt.Errorf("%w: container_id is required", ErrInvalidConfig)
	}
	if c.FetchTimeout < 0 {
		return fmt.Errorf("%w: fetch_timeout must not be negative", ErrInvalidConfig)
	}
	if _, err := c.ColumnMap(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// ColumnMap merges the configured column overrides over the defaults.
func (c *MenuConfig) ColumnMap() (models.Columns, error) {
	return models.DefaultColumns().Merge(c.Columns)
}

// MenuOptions converts the display settings for the card transforms.
func (c *MenuConfig) MenuOptions() menu.Options {
	return menu.Options{
		Currency:     c.Currency,
		GravityUnit:  c.GravityUnit,
		PendingLabel: c.PendingLabel,
		Badges: menu.Badges{
			AssetPath: c.AssetPath,
			Files:     c.Badges,
		},
	}
}
