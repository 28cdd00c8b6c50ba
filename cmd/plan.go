package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/longdiv/internal/division"
)

var planCmd = &cobra.Command{
	Use:   "plan <divisor> <dividend>",
	Short: "Print the worked steps for a division problem",
	Args:  cobra.ExactArgs(2),
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().String("format", "table", "Output format: table, json or yaml")
}

type planOutput struct {
	Divisor   int          `json:"divisor" yaml:"divisor"`
	Dividend  int          `json:"dividend" yaml:"dividend"`
	Quotient  int          `json:"quotient" yaml:"quotient"`
	Remainder int          `json:"remainder" yaml:"remainder"`
	Steps     []stepOutput `json:"steps" yaml:"steps"`
}

type stepOutput struct {
	Number    int    `json:"number" yaml:"number"`
	Operation string `json:"operation" yaml:"operation"`
	Cycle     int    `json:"cycle" yaml:"cycle"`
	Position  int    `json:"position" yaml:"position"`
	Value     int    `json:"value" yaml:"value"`
	Answer    int    `json:"answer" yaml:"answer"`
}

func runPlan(cmd *cobra.Command, args []string) error {
	divisor, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("divisor %q is not a number", args[0])
	}
	dividend, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("dividend %q is not a number", args[1])
	}
	format, _ := cmd.Flags().GetString("format")

	steps, err := division.Plan(divisor, dividend)
	if err != nil {
		return err
	}
	logger.Debug("planned problem",
		zap.Int("divisor", divisor),
		zap.Int("dividend", dividend),
		zap.Int("steps", len(steps)),
	)

	return writePlan(cmd.OutOrStdout(), newPlanOutput(divisor, dividend, steps), format)
}

func newPlanOutput(divisor, dividend int, steps []division.Step) planOutput {
	out := planOutput{
		Divisor:   divisor,
		Dividend:  dividend,
		Quotient:  division.Quotient(steps),
		Remainder: division.Remainder(steps),
		Steps:     make([]stepOutput, 0, len(steps)),
	}
	for _, s := range steps {
		out.Steps = append(out.Steps, stepOutput{
			Number:    s.Number,
			Operation: string(s.Operation),
			Cycle:     s.Cycle,
			Position:  s.Position,
			Value:     s.Value,
			Answer:    s.CorrectAnswer,
		})
	}
	return out
}

func writePlan(w io.Writer, out planOutput, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "table":
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("#", "OPERATION", "CYCLE", "DIGIT", "WORKING ON", "ANSWER")
		for _, s := range out.Steps {
			t.Row(
				strconv.Itoa(s.Number),
				s.Operation,
				strconv.Itoa(s.Cycle),
				strconv.Itoa(s.Position),
				strconv.Itoa(s.Value),
				strconv.Itoa(s.Answer),
			)
		}
		_, err := fmt.Fprintf(w, "%d ÷ %d = %d R %d\n%s\n",
			out.Dividend, out.Divisor, out.Quotient, out.Remainder, t.String())
		return err
	}
	return fmt.Errorf("unknown format %q: must be table, json or yaml", format)
}
