package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/lehmer"
	"github.com/tutils/lehmer/logger"
	"github.com/tutils/lehmer/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve generators over HTTP and websocket",
	Long: `Start the generator service, For example:
  lehmer serve --listen=127.0.0.1:8080
  curl 'http://127.0.0.1:8080/api/sequence?seed=42&length=10'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := kindFlag("kind")
		if err != nil {
			return err
		}
		s, err := server.NewServer(
			server.WithListenAddress(viper.GetString("listen")),
			server.WithState(serveSize, viper.GetInt64("seed")),
			server.WithKind(kind),
			server.WithMaxLength(serveMaxLength),
			server.WithLogger(*logger.Log()),
		)
		if err != nil {
			return err
		}
		return s.ListenAndServe()
	},
}

var (
	serveSize      int
	serveMaxLength int
)

func init() {
	rootCmd.AddCommand(serveCmd)

	flags := serveCmd.Flags()
	flags.StringP("listen", "l", server.DefaultListenAddress, "server listen address")
	flags.IntVar(&serveSize, "lanes", lehmer.DefaultSize, "lanes of the shared state behind /api/next")
	flags.IntVar(&serveMaxLength, "max-length", server.DefaultMaxLength, "largest sequence or trial count per request")

	bindFlag("listen", flags.Lookup("listen"))
}
