package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bimmerbailey/timegate/internal/clock"
	"github.com/bimmerbailey/timegate/internal/match"
	"github.com/bimmerbailey/timegate/internal/output"
)

// selftestLegalTimes is the canonical reference set used by the
// built-in verification suite. It is independent of any config file.
var selftestLegalTimes = []float64{5, 10, 15, 30, 60, 90, 120}

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run the built-in verification suite",
	Long: `Evaluate a fixed table of stopwatch readings against the canonical
legal times {5, 10, 15, 30, 60, 90, 120} with the default tolerance,
and verify hh:mm:ss formatting. Exits non-zero if any case fails.`,
	Args: cobra.NoArgs,
	RunE: runSelftest,
}

func init() {
	rootCmd.AddCommand(selftestCmd)
}

type matchCase struct {
	name    string
	input   string
	want    float64
	matched bool
}

var matchCases = []matchCase{
	{"exact 5s", "00:00:05.000", 5, true},
	{"exact 90s", "00:01:30.000", 90, true},
	{"exact 120s", "00:02:00.000", 120, true},
	{"within tolerance below", "00:00:04.500", 5, true},
	{"within tolerance above", "00:00:05.500", 5, true},
	{"on tolerance boundary", "00:00:10.600", 10, true},
	{"outside tolerance", "00:00:05.700", 0, false},
	{"far from any legal time", "00:00:45.000", 0, false},
}

type formatCase struct {
	name    string
	seconds int
	want    string
}

var formatCases = []formatCase{
	{"format zero", 0, "00:00:00"},
	{"format 90s", 90, "00:01:30"},
	{"format hour rollover", 3661, "01:01:01"},
	{"format wide hours", 360000, "100:00:00"},
}

func runSelftest(cmd *cobra.Command, args []string) error {
	writer := output.New(cmd.OutOrStdout(), output.FormatText)
	failed := 0

	for _, tc := range matchCases {
		seconds, err := clock.Parse(tc.input)
		if err != nil {
			failed++
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s: parse error: %v\n", writer.Verdict(false, output.ColorAuto), tc.name, err)
			continue
		}

		got, ok := match.Closest(seconds, selftestLegalTimes, match.DefaultTolerance)
		pass := ok == tc.matched && (!ok || got == tc.want)
		if !pass {
			failed++
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", writer.Verdict(pass, output.ColorAuto), tc.name)
	}

	for _, tc := range formatCases {
		pass := clock.FormatHMS(tc.seconds) == tc.want
		if !pass {
			failed++
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", writer.Verdict(pass, output.ColorAuto), tc.name)
	}

	total := len(matchCases) + len(formatCases)
	if failed > 0 {
		return fmt.Errorf("selftest: %d of %d cases failed", failed, total)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d cases passed\n", total)
	return nil
}
