package cli

import (
	"github.com/spf13/cobra"

	"github.com/powerctl/nutctl/internal/usage"
)

var usageCmd = &cobra.Command{
	Use:   "usage [usage_types...]",
	Short: "Report UPS electrical metrics",
	Long: `Report one metric per argument, in the order given. Accepted usage
types and their synonyms:

  vin, volt_in, voltage_in     input voltage
  vout, volt_out, voltage_out  output voltage
  cout, cur_out, current_out   output current
  pwr, power                   derived power (output voltage x current)

Power is computed from the output voltage and current and printed with
two decimal places; all other metrics print the server's value verbatim.`,
	RunE: runUsage,
}

func init() {
	rootCmd.AddCommand(usageCmd)
}

func runUsage(cmd *cobra.Command, args []string) error {
	// Resolve every token before touching the network; one bad token
	// fails the whole command.
	types, err := usage.ParseTypes(args)
	if err != nil {
		return err
	}

	cfg, err := connectionConfig()
	if err != nil {
		return err
	}

	session, err := dialSession(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = session.Close() }()

	reporter := &usage.Reporter{
		Session: session,
		UPS:     upsNameFlag,
		Out:     cmd.OutOrStdout(),
	}
	return reporter.Report(cmd.Context(), types)
}
