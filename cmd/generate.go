package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/lehmer"
	"github.com/tutils/lehmer/logger"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate and walk a Lehmer sequence",
	Long: `Generate a sequence from a root seed and walk it from a start position, For example:
  lehmer generate --seed=42 --length=128 --position=10 --iterations=20 --normalize --verbose`,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := kindFlag("kind")
		if err != nil {
			return err
		}
		seed := viper.GetInt64("seed")
		st, err := lehmer.New(viper.GetInt("length"), seed, lehmer.WithLogger(*logger.Log()))
		if err != nil {
			return err
		}
		defer st.Free()
		st.Generate(kind, seed)
		st.Select(genPosition)

		out := cmd.OutOrStdout()
		verbose := genVerbose && !genQuiet
		if verbose {
			fmt.Fprintf(out, "Initial seed: %d\n", lehmer.BindSeed(seed))
			fmt.Fprintf(out, "Sequence length: %d\n", st.Size())
		}
		for i := 0; i < genIterations; i++ {
			if verbose {
				if genNormalize {
					fmt.Fprintf(out, "Position: %d, Seed: %d, Normalized: %.10f\n", i, st.Value(), st.Float())
				} else {
					fmt.Fprintf(out, "Position: %d, Seed: %d\n", i, st.Value())
				}
			}
			st.Next()
		}
		if !genVerbose && !genQuiet {
			fmt.Fprintf(out, "Final Seed: %d\n", st.Value())
		}
		return nil
	},
}

var (
	genPosition   int
	genIterations int
	genNormalize  bool
	genVerbose    bool
	genQuiet      bool
)

func init() {
	rootCmd.AddCommand(generateCmd)

	flags := generateCmd.Flags()
	flags.IntP("length", "l", lehmer.DefaultSize, "number of values in the sequence")
	flags.IntVarP(&genPosition, "position", "p", 0, "starting position in the sequence")
	flags.IntVarP(&genIterations, "iterations", "i", 10000, "number of positions to walk")
	flags.BoolVarP(&genNormalize, "normalize", "n", false, "also print values normalized to [0, 1)")
	flags.BoolVarP(&genVerbose, "verbose", "v", false, "print every visited value")
	flags.BoolVarP(&genQuiet, "quiet", "q", false, "suppress all output (overrides --verbose)")

	bindFlag("length", flags.Lookup("length"))
}
