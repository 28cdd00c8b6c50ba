package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped by release builds:
//
//	go build -ldflags "-X github.com/abhisek/longdiv/cmd.version=v1.2.0"
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the longdiv version",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func runVersion(cmd *cobra.Command, _ []string) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "longdiv %s\n", version)
	return err
}
