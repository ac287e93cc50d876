package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bigredeye/studreg/internal/config"
	"github.com/bigredeye/studreg/internal/registry"
	zlog "github.com/bigredeye/studreg/pkg/log"
)

var (
	log    *zap.Logger = zap.NewNop()
	store  *registry.Store
	reg    registry.Registry
	cached *registry.Cached

	configPath string
	dataPath   string
)

var rootCmd = &cobra.Command{
	Use:               "studreg",
	Short:             "Text file backed student registry",
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return setup() },
	PersistentPostRun: func(cmd *cobra.Command, args []string) { teardown() },
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd)
	},
}

func setup() error {
	cfg, err := config.ParseConfig(configPath)
	if err != nil {
		return err
	}
	if dataPath != "" {
		cfg.Storage.Path = dataPath
	}

	log = zlog.Init(cfg.Log.Dev, cfg.Log.Level, zlog.FileOptions{
		Path:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})

	store, err = registry.New(cfg.Storage.Path, log)
	if err != nil {
		return err
	}
	reg = store
	if cfg.Cache.Size > 0 {
		cached = registry.NewCached(store, cfg.Cache.Size, cfg.Cache.TTL)
		reg = cached
	}

	log.Debug("Registry ready",
		zap.String("path", cfg.Storage.Path),
		zap.Bool("cache", cached != nil),
	)
	return nil
}

func teardown() {
	if cached != nil {
		cached.Close()
	}
	zlog.Sync()
}

func initCommands() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "Path to the registry file, overrides storage.path")

	rootCmd.AddCommand(makeMenuCommand())
	rootCmd.AddCommand(makeEnrollCommand())
	rootCmd.AddCommand(makeListCommand())
	rootCmd.AddCommand(makeFindCommand())
	rootCmd.AddCommand(makeSearchCommand())
	rootCmd.AddCommand(makeDumpCommand())
	rootCmd.AddCommand(makeStatsCommand())
	rootCmd.AddCommand(makeBackupCommand())
	rootCmd.AddCommand(makeRestoreCommand())
}

func init() {
	initCommands()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Command failed: %s\n", err.Error())
		os.Exit(1)
	}
}
