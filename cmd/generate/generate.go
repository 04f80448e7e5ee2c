// Package generate implements `swayctl generate`: write resource
// templates, currently just the example configuration file.
package generate

import (
	"fmt"
	"os"

	"github.com/Mmx233/swayctl/config"
	"github.com/Mmx233/swayctl/examples"
	"github.com/Mmx233/swayctl/tools"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	outputFile = tools.GetenvDefault(config.EnvPrefix+"CONFIG", config.DefaultConfigFile)

	Cmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate resources",
		Args:  cobra.NoArgs,
	}

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Generate an example configuration file",
		Args:  cobra.NoArgs,
		RunE:  runConfigGenerate,
	}
)

func init() {
	configCmd.Flags().StringVarP(&outputFile, "output", "o", outputFile, "output config file path")
	Cmd.AddCommand(configCmd)
}

func runConfigGenerate(cmd *cobra.Command, args []string) error {
	logger := log.With().Str("com", "generate").Logger()

	if _, err := os.Stat(outputFile); err == nil {
		return fmt.Errorf("file already exists: %s", outputFile)
	}

	content, err := examples.Config()
	if err != nil {
		return fmt.Errorf("load config template: %w", err)
	}

	if err := os.WriteFile(outputFile, content, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	logger.Info().Str("file", outputFile).Msg("generated configuration")
	return nil
}
