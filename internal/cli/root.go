// Package cli implements the nutctl command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/powerctl/nutctl/internal/nut"
)

var (
	// Global flags
	serverFlag   string
	portFlag     int
	upsNameFlag  string
	usernameFlag string
	passwordFlag string
	debugFlag    bool
)

var rootCmd = &cobra.Command{
	Use:   "nutctl",
	Short: "Control and query a UPS through a NUT server",
	Long: `nutctl talks to a Network UPS Tools (NUT) server to switch the UPS
load on or off and to report electrical metrics such as input/output
voltage, output current, and derived power.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&serverFlag, "server", "s", "", "NUT server host name")
	rootCmd.PersistentFlags().IntVarP(&portFlag, "port", "p", 0, "NUT server TCP port")
	rootCmd.PersistentFlags().StringVarP(&upsNameFlag, "ups-name", "u", "", "Name of the UPS")
	rootCmd.PersistentFlags().StringVarP(&usernameFlag, "username", "n", "", "NUT user with permission to run instant commands")
	rootCmd.PersistentFlags().StringVarP(&passwordFlag, "password", "w", "", "NUT server password")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false, "Trace raw network traffic on stderr")
}

// dialSession opens the NUT session for one invocation. Tests swap this
// out for a fake.
var dialSession = func(cfg nut.Config) (nut.Session, error) {
	return nut.Dial(cfg)
}

// connectionConfig validates the connection flags and assembles a
// nut.Config. The device subcommands require server, port, and UPS name.
func connectionConfig() (nut.Config, error) {
	if serverFlag == "" {
		return nut.Config{}, fmt.Errorf("--server is required")
	}
	if portFlag <= 0 {
		return nut.Config{}, fmt.Errorf("--port is required")
	}
	if upsNameFlag == "" {
		return nut.Config{}, fmt.Errorf("--ups-name is required")
	}
	return nut.Config{
		Host:     serverFlag,
		Port:     portFlag,
		Username: usernameFlag,
		Password: passwordFlag,
		Debug:    debugFlag,
	}, nil
}

// Execute runs the root command. Cobra prints the failing error to
// stderr; the caller decides the exit code.
func Execute() error {
	return rootCmd.Execute()
}
