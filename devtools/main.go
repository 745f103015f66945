package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"devtools.znkr.io/devtools/config"
	"devtools.znkr.io/devtools/i18n"
)

var (
	configPath string
	langName   string
	verbose    bool

	logger *zap.Logger
	cfg    *config.Config
	cat    *i18n.Catalog
)

var rootCmd = &cobra.Command{
	Use:           "devtools [command]",
	Short:         "String comparator and string inspector",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("initializing logger: %v", err)
		}

		explicit := cmd.Flags().Changed("config")
		path := configPath
		if !explicit {
			path = defaultConfigPath()
		}
		cfg, err = config.Load(path, explicit)
		if err != nil {
			return err
		}
		logger.Debug("Loaded config", zap.String("path", path), zap.Any("config", cfg))

		name := cfg.Language
		if cmd.Flags().Changed("lang") {
			name = langName
		}
		lang, err := i18n.ParseLanguage(name)
		if err != nil {
			return err
		}
		cat, err = i18n.For(lang)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// defaultConfigPath returns the path of the config file in the user's config directory, or the
// empty string if there is none.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "devtools", "config.yaml")
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/devtools/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&langName, "lang", "", "language of the output (en, zh-TW)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
