package cli

import (
	"github.com/spf13/cobra"

	"github.com/powerctl/nutctl/internal/nut"
)

var loadOnCmd = &cobra.Command{
	Use:   "load-on",
	Short: "Switch the UPS load on",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLoadCommand(cmd, nut.CommandLoadOn)
	},
}

var loadOffCmd = &cobra.Command{
	Use:   "load-off",
	Short: "Switch the UPS load off",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLoadCommand(cmd, nut.CommandLoadOff)
	},
}

func init() {
	rootCmd.AddCommand(loadOnCmd, loadOffCmd)
}

// runLoadCommand dials the server and issues one instant command.
// Success is silent; any failure propagates to the caller.
func runLoadCommand(cmd *cobra.Command, command string) error {
	cfg, err := connectionConfig()
	if err != nil {
		return err
	}

	session, err := dialSession(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = session.Close() }()

	return session.RunCommand(cmd.Context(), upsNameFlag, command)
}
