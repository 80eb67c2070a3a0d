package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/plantquiz/internal/app"
	"github.com/abhisek/plantquiz/internal/content"
	"github.com/abhisek/plantquiz/internal/logging"
)

// runApp loads config and content, opens the journal, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Lookup("no-journal") != nil {
		if off, _ := cmd.Flags().GetBool("no-journal"); off {
			cfg.NoJournal = true
		}
	}

	log, err := logging.New(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = log.Sync() }()

	bank, err := content.Resolve(cfg.Content)
	if err != nil {
		return err
	}
	q, err := bank.Quiz()
	if err != nil {
		return err
	}
	timings, err := cfg.ChoreoTimings()
	if err != nil {
		return err
	}

	opts := app.Options{
		Quiz:    q,
		Timings: &timings,
		Logger:  log,
	}
	if cmd.Flags().Lookup("skip-welcome") != nil {
		opts.SkipWelcome, _ = cmd.Flags().GetBool("skip-welcome")
	}

	if !cfg.NoJournal {
		st, err := openStore(cfg)
		if err != nil {
			// The quiz still works without a journal.
			fmt.Fprintln(os.Stderr, "Result journal unavailable:", err)
			log.Warn("journal disabled", zap.Error(err))
		} else {
			defer st.Close()
			opts.Results = st.ResultRepo()
		}
	}

	log.Info("starting",
		zap.String("content", cfg.Content),
		zap.String("bank_version", bank.Version),
		zap.Bool("journal", opts.Results != nil))
	return app.Run(opts)
}
