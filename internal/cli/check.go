package cli

import (
	"github.com/spf13/cobra"

	"github.com/AI2HU/mongoping/internal/db/mongodb"
	"github.com/AI2HU/mongoping/internal/probe"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check connectivity to MONGODB_URI (default command)",
	Long:  `Open a client, run isMaster on the admin database once and print the result.`,
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&failExitCode, "fail-exit-code", false, "exit with status 1 when the check fails")
}

func runCheck(cmd *cobra.Command, args []string) error {
	res := probe.Run(cmd.Context(), mongodb.New(cfg), cfg.URI, cmd.OutOrStdout())
	if !res.OK && failExitCode {
		return ErrCheckFailed
	}
	return nil
}
