package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/plantquiz/internal/config"
	"github.com/abhisek/plantquiz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "plantquiz",
	Short: "Which plant are you? A forest walk in your terminal",
	Long: "plantquiz walks you through ten questions in a deepening forest and tells you which " +
		"of six plant personalities you are.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/plantquiz/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PLANTQUIZ_DB env var)")
	rootCmd.PersistentFlags().String("content", "", "Path to a question bank JSON file (default: built-in bank)")
	rootCmd.PersistentFlags().String("log", "", "Write logs to this file (overrides PLANTQUIZ_LOG env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file then applies flag overrides, which win
// over both the file and the environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if p, _ := cmd.Flags().GetString("content"); p != "" {
		cfg.Content = p
	}
	if p, _ := cmd.Flags().GetString("log"); p != "" {
		cfg.Logging.File = p
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// resolveDBPath returns the configured database path (--db flag, then
// PLANTQUIZ_DB, then the config file), falling back to the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore opens the result journal named by cfg.
func openStore(cfg *config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
