package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/plantquiz/internal/content"
	"github.com/abhisek/plantquiz/internal/quiz"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		repo := st.ResultRepo()
		records, err := repo.Recent(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query results: %w", err)
		}
		out := cmd.OutOrStdout()
		if len(records) == 0 {
			fmt.Fprintln(out, "No results yet.")
			return nil
		}

		fmt.Fprintf(out, "%-5s  %-19s  %-8s  %-10s  %s\n", "ID", "Completed", "Duration", "Plant", "Tally")
		fmt.Fprintln(out, strings.Repeat("─", 80))
		for _, r := range records {
			p, _ := content.ProfileFor(r.Category)
			d := r.CompletedAt.Sub(r.StartedAt)
			fmt.Fprintf(out, "%-5d  %-19s  %5d:%02d  %-10s  %s\n",
				r.ID,
				r.CompletedAt.Local().Format("2006-01-02 15:04:05"),
				int(d.Minutes()), int(d.Seconds())%60,
				p.Name,
				formatTally(r.Tally))
		}

		counts, err := repo.Counts(cmd.Context())
		if err != nil {
			return fmt.Errorf("count results: %w", err)
		}
		fmt.Fprintln(out)
		var parts []string
		for _, c := range quiz.AllCategories() {
			if n := counts[c]; n > 0 {
				parts = append(parts, fmt.Sprintf("%s %d", c, n))
			}
		}
		fmt.Fprintf(out, "%d results  (%s)\n", len(records), strings.Join(parts, ", "))
		return nil
	},
}

func formatTally(t quiz.Tally) string {
	var parts []string
	for _, c := range quiz.AllCategories() {
		if n := t.Get(c); n > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", c, n))
		}
	}
	return strings.Join(parts, " ")
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of results to show (0 for all)")
}
