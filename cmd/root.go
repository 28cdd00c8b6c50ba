package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/longdiv/internal/config"
	"github.com/abhisek/longdiv/internal/logging"
)

var (
	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "longdiv",
	Short: "Practice long division in the terminal",
	Long: `longdiv walks through long division one step at a time: divide,
multiply, subtract and bring down. Every value is checked as it is entered
and a hint is shown for wrong answers.`,
	SilenceUsage: true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runPlay,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Assigned here: setup refers back to rootCmd.
	rootCmd.PersistentPreRunE = setup

	rootCmd.PersistentFlags().String("config", "", "Path to longdiv.yaml (default: search user config dir, then .)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration and builds the logger for every command.
func setup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		loaded.Log.Level = lvl
		if err := config.Validate(loaded); err != nil {
			return err
		}
	}
	cfg = loaded

	// The worksheet owns the terminal, so it only logs to a file.
	build := logging.New
	if isInteractive(cmd) {
		build = logging.ForUI
	}
	l, err := build(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger = l
	logger.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("difficulty", cfg.Problem.Difficulty),
		zap.String("log_level", cfg.Log.Level),
	)
	return nil
}

func isInteractive(cmd *cobra.Command) bool {
	return cmd == rootCmd || cmd == playCmd
}
