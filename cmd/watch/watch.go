// Package watch implements `swayctl watch`: subscribe to event kinds
// and stream them to stdout, one JSON object per line.
package watch

import (
	"fmt"

	"github.com/Mmx233/swayctl/cmd/session"
	"github.com/Mmx233/swayctl/config"
	"github.com/Mmx233/swayctl/protocol"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	count int

	Cmd = &cobra.Command{
		Use:   "watch [kinds...]",
		Short: "Subscribe to window manager events and stream them",
		Long: "Subscribe to window manager events and stream them to stdout,\n" +
			"one JSON object per line. Known kinds: " +
			fmt.Sprint(protocol.EventKindNames()),
		Args: cobra.ArbitraryArgs,
		RunE: runWatch,
	}
)

func init() {
	Cmd.Flags().IntVarP(&count, "count", "n", 0, "exit after this many events (0 = forever)")
}

// eventLine is the stdout representation of one event.
type eventLine struct {
	Event   string              `json:"event"`
	Payload jsoniter.RawMessage `json:"payload"`
}

// kindsFromArgsOrConfig resolves the kinds named on the command line,
// falling back to the config file (then its defaults) with no args.
func kindsFromArgsOrConfig(args []string, cfg *config.CLI) ([]protocol.EventKind, error) {
	if len(args) == 0 {
		return cfg.SubscribeKinds()
	}

	kinds := make([]protocol.EventKind, len(args))
	for i, name := range args {
		kind, err := protocol.EventKindFromName(name)
		if err != nil {
			return nil, err
		}
		kinds[i] = kind
	}
	return kinds, nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	c, cfg, err := session.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer c.Close()

	kinds, err := kindsFromArgsOrConfig(args, cfg)
	if err != nil {
		return err
	}

	sub, err := c.Subscribe(kinds...)
	if err != nil {
		return err
	}

	logger := log.With().Str("com", "watch").Logger()
	logger.Debug().Int("kinds", len(kinds)).Msg("streaming events")

	emitted := 0
	for {
		if err := c.Poll(); err != nil {
			return err
		}
		for {
			ev, ok := sub.TryReceive()
			if !ok {
				break
			}
			line, err := json.Marshal(eventLine{
				Event:   ev.Kind.String(),
				Payload: jsoniter.RawMessage(ev.Payload),
			})
			if err != nil {
				return err
			}
			fmt.Println(string(line))

			emitted++
			if count > 0 && emitted >= count {
				return nil
			}
		}
	}
}
