package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/lehmer"
	"github.com/tutils/lehmer/variate"
)

// bernoulliCmd represents the bernoulli command
var bernoulliCmd = &cobra.Command{
	Use:   "bernoulli",
	Short: "Draw Bernoulli variates",
	Long: `Draw Bernoulli(p) variates, 1 when the normalized draw is below p, For example:
  lehmer bernoulli --p=0.3 --trials=10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := lehmer.New(1, viper.GetInt64("seed"))
		if err != nil {
			return err
		}
		defer st.Free()

		out := cmd.OutOrStdout()
		successes := 0
		for i := 0; i < varTrials; i++ {
			x := variate.Bernoulli(st, varP)
			successes += x
			fmt.Fprintln(out, x)
		}
		fmt.Fprintf(out, "successes: %d/%d\n", successes, varTrials)
		return nil
	},
}

// binomialCmd represents the binomial command
var binomialCmd = &cobra.Command{
	Use:   "binomial",
	Short: "Draw Binomial variates",
	Long: `Draw Binomial(n, p) variates, each the sum of n Bernoulli(p) draws, For example:
  lehmer binomial --n=20 --p=0.3 --trials=10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := lehmer.New(1, viper.GetInt64("seed"))
		if err != nil {
			return err
		}
		defer st.Free()

		out := cmd.OutOrStdout()
		var sum uint64
		for i := 0; i < varTrials; i++ {
			k := variate.Binomial(st, varN, varP)
			sum += uint64(k)
			fmt.Fprintln(out, k)
		}
		if varTrials > 0 {
			fmt.Fprintf(out, "mean: %.4f\n", float64(sum)/float64(varTrials))
		}
		return nil
	},
}

var (
	varP      float64
	varN      uint32
	varTrials int
)

func init() {
	rootCmd.AddCommand(bernoulliCmd)
	rootCmd.AddCommand(binomialCmd)

	for _, c := range []*cobra.Command{bernoulliCmd, binomialCmd} {
		flags := c.Flags()
		flags.Float64Var(&varP, "p", 0.5, "success probability")
		flags.IntVarP(&varTrials, "trials", "t", 1, "number of variates to draw")
	}
	binomialCmd.Flags().Uint32Var(&varN, "n", 1, "Bernoulli trials per variate")
}
