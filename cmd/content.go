package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/plantquiz/internal/content"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect question banks",
}

var contentValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a question bank (default: the built-in bank)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		bank, err := content.Resolve(path)
		if err != nil {
			var verr *content.ValidationError
			if errors.As(err, &verr) {
				return fmt.Errorf("%s is not valid: %w", verr.Source, verr.Err)
			}
			return err
		}
		q, err := bank.Quiz()
		if err != nil {
			return err
		}
		if path == "" {
			path = "built-in bank"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: OK (version %s, %d questions)\n", path, bank.Version, q.Len())
		return nil
	},
}

var contentShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the questions of the configured bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		bank, err := content.Resolve(cfg.Content)
		if err != nil {
			return err
		}
		q, err := bank.Quiz()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i := range q.Len() {
			question, err := q.Question(i)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%2d. %s\n", i+1, question.Prompt)
			for j, opt := range question.Options {
				fmt.Fprintf(out, "      %d) %-50s [%s]\n", j+1, opt.Label, opt.Category)
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	contentCmd.AddCommand(contentValidateCmd)
	contentCmd.AddCommand(contentShowCmd)
}
