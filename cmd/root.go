package cmd

import (
	"fmt"

	"github.com/Mmx233/swayctl/cmd/generate"
	"github.com/Mmx233/swayctl/cmd/get"
	"github.com/Mmx233/swayctl/cmd/run"
	"github.com/Mmx233/swayctl/cmd/session"
	"github.com/Mmx233/swayctl/cmd/tick"
	"github.com/Mmx233/swayctl/cmd/watch"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	Version = "dev"

	showVersion bool
	debug       bool

	rootCmd = &cobra.Command{
		Use:   "swayctl",
		Short: "Control and observe sway/i3 over its IPC socket",
		Args:  cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			SetLogLevel()
		},
		Run: func(cmd *cobra.Command, args []string) {
			if showVersion {
				fmt.Println(Version)
				return
			}
			cmd.Help()
		},
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("failed to execute")
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "Print version information")
	session.RegisterFlags(rootCmd)
	rootCmd.AddCommand(run.Cmd)
	rootCmd.AddCommand(get.Cmd)
	rootCmd.AddCommand(watch.Cmd)
	rootCmd.AddCommand(tick.Cmd)
	rootCmd.AddCommand(generate.Cmd)
}

// SetLogLevel sets the global log level based on debug flag.
// Call this after flags are parsed.
func SetLogLevel() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
