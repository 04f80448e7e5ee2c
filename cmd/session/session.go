// Package session holds the flags and connection setup shared by every
// subcommand that talks to the window manager.
package session

import (
	"context"

	"github.com/Mmx233/swayctl/client"
	"github.com/Mmx233/swayctl/config"
	"github.com/Mmx233/swayctl/tools"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	configFile = tools.GetenvDefault(config.EnvPrefix+"CONFIG", config.DefaultConfigFile)
	socketPath string
)

// RegisterFlags attaches the shared --config and --socket persistent
// flags to the root command.
func RegisterFlags(root *cobra.Command) {
	root.PersistentFlags().StringVarP(&configFile, "config", "c", configFile, "path of config file")
	root.PersistentFlags().StringVarP(&socketPath, "socket", "s", "", "window manager socket path (overrides discovery)")
}

// Open loads the CLI config and connects to the window manager. Socket
// resolution order: --socket flag, config file, environment/glob
// discovery.
func Open(ctx context.Context) (*client.Client, *config.CLI, error) {
	cfg, err := config.LoadCLIConfig(configFile)
	if err != nil {
		return nil, nil, err
	}

	path := socketPath
	if path == "" {
		path = cfg.Socket
	}
	if path == "" {
		path, err = client.SocketPath()
		if err != nil {
			return nil, nil, err
		}
	}

	logger := log.With().Str("socket", path).Logger()
	logger.Debug().Msg("connecting to window manager")

	c, err := client.ConnectPath(ctx, path, logger)
	if err != nil {
		return nil, nil, err
	}
	return c, cfg, nil
}
