package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tilekit/tilekit/internal/config"
	"github.com/tilekit/tilekit/internal/log"
)

var (
	version = "dev"
	cfgFile string
	debug   bool
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "tilekit",
	Short: "Compose rectangular text blocks from tileset documents",
	Long: `tilekit renders tileset documents: YAML files that name rectangular
text blocks (tiles) and templates that compose them with @{name} references.

Templates expand recursively, so a template may reference tiles and other
templates defined earlier in the document. Rendered output can be framed
with configurable border glyphs and interior spacing.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .tilekit/config.yaml, then ~/.config/tilekit/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"write debug logs to the configured log file")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("frame.horizontal", defaults.Frame.Horizontal)
	viper.SetDefault("frame.vertical", defaults.Frame.Vertical)
	viper.SetDefault("frame.width_spacing", defaults.Frame.WidthSpacing)
	viper.SetDefault("frame.height_spacing", defaults.Frame.HeightSpacing)
	viper.SetDefault("watch.debounce_ms", defaults.Watch.DebounceMS)
	viper.SetDefault("log_file", defaults.LogFile)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .tilekit/config.yaml (current directory)
		// 2. ~/.config/tilekit/config.yaml (user config)
		if _, err := os.Stat(".tilekit/config.yaml"); err == nil {
			viper.SetConfigFile(".tilekit/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "tilekit"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .tilekit/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".tilekit/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
	if err := config.Validate(cfg); err != nil {
		log.Warn(log.CatConfig, "invalid config, falling back to defaults", "error", err)
		cfg = defaults
	}

	if debug {
		if _, err := log.Init(cfg.LogFile); err == nil {
			log.SetEnabled(true)
			log.SetMinLevel(log.LevelDebug)
		}
	}
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
