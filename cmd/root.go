// Package cmd holds the menuboard command line.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"mspro-labs/menuboard/internal/board"
	"mspro-labs/menuboard/internal/config"
	"mspro-labs/menuboard/internal/metrics"
)

var (
	configPath string
	verbose    bool

	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "menuboard",
	Short: "Beverage menu board built from a published spreadsheet",
	Long: `menuboard fetches the published CSV of the bar's spreadsheet and renders
it as paginated screens of beverage cards.

Each screen shows a fixed number of items; the last screen ends with an
"order elsewhere" card.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the YAML config (default: $CONFIG_PATH or menuboard.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig resolves env settings, the --config flag and the YAML file.
func loadConfig() (config.AppConfig, *config.MenuConfig, error) {
	appCfg, err := config.GetAppConfig()
	if err != nil {
		return appCfg, nil, fmt.Errorf("config error: %w", err)
	}
	if configPath != "" {
		appCfg.ConfigPath = configPath
	}
	menuCfg, err := config.Load(appCfg)
	if err != nil {
		return appCfg, nil, err
	}
	logger.Debug("Loaded config",
		zap.String("path", appCfg.ConfigPath),
		zap.String("source", menuCfg.SourceURL),
		zap.Int("items_per_screen", menuCfg.ItemsPerScreen))
	return appCfg, menuCfg, nil
}

// newBoard builds the pipeline for the loaded config.
func newBoard(m *metrics.Metrics) (config.AppConfig, *board.Board, error) {
	appCfg, menuCfg, err := loadConfig()
	if err != nil {
		return appCfg, nil, err
	}
	b, err := board.NewFromConfig(menuCfg, m, logger)
	if err != nil {
		return appCfg, nil, fmt.Errorf("failed to build board: %w", err)
	}
	return appCfg, b, nil
}
