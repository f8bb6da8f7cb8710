package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tutils/lehmer"
	"github.com/tutils/lehmer/counter/period"
	"github.com/tutils/lehmer/logger"
)

const periodReport = 1 << 24

// periodCmd represents the period command
var periodCmd = &cobra.Command{
	Use:   "period",
	Short: "Check the full period of a multiplier",
	Long: `Step z -> a*z mod (2^31 - 1) from a start value until it comes back and compare
the step count with the full period m - 1, For example:
  lehmer period --multiplier=16807`,
	RunE: func(cmd *cobra.Command, args []string) error {
		start := lehmer.BindSeed(periodStart)
		if start == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "period: 1 (zero is absorbing)")
			return nil
		}

		steps := period.NewPeriodCounter(5 * time.Second)
		z := start
		var n int64
		for {
			z = lehmer.Multiply(z, periodMultiplier)
			n++
			if n%periodReport == 0 {
				steps.Add(periodReport)
				logger.Log().Debug().Int64("steps", steps.Value()).Int64("rate", steps.RatePerSec()).Msg("period")
			}
			if z == start || n >= int64(lehmer.Modulus) {
				break
			}
		}

		full := n == int64(lehmer.Modulus)-1
		fmt.Fprintf(cmd.OutOrStdout(), "period: %d\nfull period: %v\n", n, full)
		return nil
	},
}

var (
	periodMultiplier int32
	periodStart      int64
)

func init() {
	rootCmd.AddCommand(periodCmd)

	flags := periodCmd.Flags()
	flags.Int32VarP(&periodMultiplier, "multiplier", "a", lehmer.MinimalMultiplier, "multiplier to check")
	flags.Int64Var(&periodStart, "start", 1, "start value")
}
