package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bimmerbailey/timegate/internal/clock"
	"github.com/bimmerbailey/timegate/internal/match"
	"github.com/bimmerbailey/timegate/internal/output"
)

var checkCmd = &cobra.Command{
	Use:   "check <time>",
	Short: "Evaluate a stopwatch reading against the legal times",
	Long: `Parse a time in hh:mm:ss.ms form and compare it with the legal
reference times from the configuration. The reading is accepted when
its deviation from the nearest legal time does not exceed the
configured tolerance; rejection is a normal outcome, not an error.

Examples:
  timegate check 00:01:30.000
  timegate check --format json 00:00:05.500`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	seconds, err := clock.Parse(args[0])
	if err != nil {
		return err
	}

	result := match.Evaluate(seconds, cfg.LegalTimes, cfg.Tolerance)

	writer := output.New(cmd.OutOrStdout(), output.ParseFormat(viper.GetString("format")))
	return writer.WriteResult(result)
}
