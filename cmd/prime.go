package cmd

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/lehmer"
	"github.com/tutils/lehmer/prime"
)

// primeCmd represents the prime command
var primeCmd = &cobra.Command{
	Use:   "prime [n...]",
	Short: "Miller-Rabin primality test",
	Long: `Test numbers for primality with witnesses drawn from the generator, For example:
  lehmer prime 2147483647 561 --rounds=20
  lehmer prime --sample=100`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if primeSample > 0 {
			primes, err := prime.Sample(primeSample)
			if err != nil {
				return err
			}
			for _, p := range primes {
				fmt.Fprintln(out, p)
			}
		}
		if len(args) == 0 {
			if primeSample == 0 {
				return errors.New("nothing to test: pass numbers or --sample")
			}
			return nil
		}

		st, err := lehmer.New(1, viper.GetInt64("seed"))
		if err != nil {
			return err
		}
		defer st.Free()

		for _, arg := range args {
			n, err := strconv.ParseUint(arg, 10, 64)
			if err != nil {
				return errors.Wrapf(err, "parse %q", arg)
			}
			verdict := "composite"
			if prime.IsProbablyPrime(st, n, primeRounds) {
				verdict = "probably prime"
			}
			fmt.Fprintf(out, "%d: %s\n", n, verdict)
		}
		return nil
	},
}

var (
	primeRounds int
	primeSample uint32
)

func init() {
	rootCmd.AddCommand(primeCmd)

	flags := primeCmd.Flags()
	flags.IntVarP(&primeRounds, "rounds", "k", 20, "Miller-Rabin rounds")
	flags.Uint32Var(&primeSample, "sample", 0, "list every prime up to this limit")
}
