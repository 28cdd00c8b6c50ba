package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/longdiv/internal/app"
	"github.com/abhisek/longdiv/internal/division"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the interactive worksheet",
	Long: `Open the interactive worksheet. Without flags a difficulty menu is shown;
with --divisor and --dividend the worksheet opens on that problem.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().Int("divisor", 0, "Divisor of a fixed problem")
	playCmd.Flags().Int("dividend", 0, "Dividend of a fixed problem")
	playCmd.MarkFlagsRequiredTogether("divisor", "dividend")
}

func runPlay(cmd *cobra.Command, args []string) error {
	opts := app.Options{Config: cfg, Logger: logger}

	if cmd.Flags().Changed("divisor") {
		divisor, _ := cmd.Flags().GetInt("divisor")
		dividend, _ := cmd.Flags().GetInt("dividend")
		p, err := division.NewProblem(divisor, dividend)
		if err != nil {
			return fmt.Errorf("invalid problem: %w", err)
		}
		opts.Problem = &p
	}

	return app.Run(opts)
}
