package cmd

import (
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/tutils/lehmer"
	"github.com/tutils/lehmer/logger"
)

var (
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lehmer",
	Short: "Lehmer random number generator.",
	Long: `Lehmer linear congruential generator f(z) = a*z mod (2^31 - 1).
Explore sequences, sample variates and test primality, For example:
  lehmer generate --seed=42 --length=128 --position=10 --normalize --verbose
  lehmer step --size=8 --lane=3 --count=5 --kind=gamma
  lehmer prime 2147483647 --rounds=20
  lehmer serve --listen=127.0.0.1:8080`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		return logger.Setup(viper.GetString("log-format"), viper.GetString("log-level"))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Log().Error().Err(err).Msg("lehmer")
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.lehmer.yaml)")
	flags.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.String("log-format", "auto", "log format (auto, console, json)")
	flags.Int64P("seed", "z", lehmer.DefaultSeed, "root seed, bound into [0, 2^31 - 1)")
	flags.String("kind", "direct", "transition kind (direct, gamma, delta, jump)")

	for _, name := range []string{"log-level", "log-format", "seed", "kind"} {
		bindFlag(name, flags.Lookup(name))
	}
}

// bindings maps config keys to the flags backing them.
var bindings = map[string]*pflag.Flag{}

// bindFlag binds a config key to a flag and remembers it for rebindFlags.
func bindFlag(key string, f *pflag.Flag) {
	bindings[key] = f
	viper.BindPFlag(key, f)
}

// rebindFlags restores every binding after viper.Reset.
func rebindFlags() {
	for key, f := range bindings {
		viper.BindPFlag(key, f)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			return errors.Wrap(err, "home directory")
		}

		// Search config in home directory with name ".lehmer" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".lehmer")
	}

	viper.SetEnvPrefix("lehmer")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			return nil
		}
		return errors.Wrap(err, "read config")
	}
	logger.Log().Debug().Str("file", viper.ConfigFileUsed()).Msg("using config file")
	return nil
}

// kindFlag resolves the configured transition kind.
func kindFlag(key string) (lehmer.Kind, error) {
	return lehmer.ParseKind(viper.GetString(key))
}
