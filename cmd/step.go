package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/lehmer"
	"github.com/tutils/lehmer/logger"
)

// stepCmd represents the step command
var stepCmd = &cobra.Command{
	Use:   "step",
	Short: "Step one lane of a multi-lane state",
	Long: `Create a state of several lanes, select one and apply a transition to it, For example:
  lehmer step --size=8 --lane=3 --count=5 --kind=gamma
  lehmer step --size=8 --seeder=jump --reseed=42 --lane=9`,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := kindFlag("kind")
		if err != nil {
			return err
		}
		seeder, err := lehmer.ParseKind(stepSeeder)
		if err != nil {
			return err
		}
		st, err := lehmer.New(viper.GetInt("size"), viper.GetInt64("seed"),
			lehmer.WithSeeder(seeder),
			lehmer.WithLogger(*logger.Log()),
		)
		if err != nil {
			return err
		}
		defer st.Free()

		st.Select(stepLane)
		if cmd.Flags().Changed("reseed") {
			st.SeedAll(stepReseed)
		}

		out := cmd.OutOrStdout()
		for i := 0; i < stepCount; i++ {
			v := st.Apply(kind)
			fmt.Fprintf(out, "lane %d step %d: %d %.10f\n", st.Index(), i+1, v, st.Float())
		}
		return nil
	},
}

var (
	stepLane   int
	stepCount  int
	stepSeeder string
	stepReseed int64
)

func init() {
	rootCmd.AddCommand(stepCmd)

	flags := stepCmd.Flags()
	flags.Int("size", lehmer.DefaultSize, "number of lanes (0 means the default)")
	flags.IntVar(&stepLane, "lane", 0, "lane to step, taken modulo size")
	flags.IntVarP(&stepCount, "count", "c", 10, "number of steps")
	flags.StringVar(&stepSeeder, "seeder", "direct", "transition deriving each lane from the previous one")
	flags.Int64Var(&stepReseed, "reseed", 0, "re-derive every lane from this seed before stepping")

	bindFlag("size", flags.Lookup("size"))
}
