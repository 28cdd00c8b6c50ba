package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/longdiv/internal/problemgen"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print random problems for a difficulty",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().String("difficulty", "", "easy, medium or hard (default: from config)")
	generateCmd.Flags().Int("count", 5, "Number of problems to print")
	generateCmd.Flags().Uint64("seed", 0, "Seed for reproducible output (0 picks a random seed)")
	generateCmd.Flags().Bool("answers", false, "Print the quotient and remainder")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	if count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", count)
	}
	seed, _ := cmd.Flags().GetUint64("seed")
	answers, _ := cmd.Flags().GetBool("answers")

	constraints := cfg.Problem.Constraints()
	if d, _ := cmd.Flags().GetString("difficulty"); d != "" {
		diff, err := problemgen.ParseDifficulty(d)
		if err != nil {
			return err
		}
		constraints = problemgen.ConstraintsFor(diff)
	}

	gen := problemgen.New()
	if seed != 0 {
		gen = problemgen.NewWithSource(rand.NewPCG(seed, seed))
	}

	w := cmd.OutOrStdout()
	for range count {
		p, err := gen.Generate(constraints)
		if err != nil {
			return err
		}
		if answers {
			fmt.Fprintf(w, "%d ÷ %d = %d R %d\n", p.Dividend, p.Divisor, p.Quotient, p.Remainder)
		} else {
			fmt.Fprintf(w, "%d ÷ %d\n", p.Dividend, p.Divisor)
		}
	}
	logger.Debug("generated problems",
		zap.String("difficulty", string(constraints.Difficulty)),
		zap.Int("count", count),
	)
	return nil
}
