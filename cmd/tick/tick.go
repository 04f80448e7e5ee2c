// Package tick implements `swayctl tick`: broadcast a tick event to
// every client subscribed to ticks.
package tick

import (
	"fmt"

	"github.com/Mmx233/swayctl/cmd/session"
	"github.com/Mmx233/swayctl/config"
	"github.com/spf13/cobra"
)

var Cmd = &cobra.Command{
	Use:   "tick [payload]",
	Short: "Broadcast a tick event",
	Long: "Broadcast a tick event with the given payload to all clients\n" +
		"subscribed to tick events. Without a payload a unique one is\n" +
		"generated, so the sender can recognize its own tick.",
	Args: cobra.MaximumNArgs(1),
	RunE: runTick,
}

func runTick(cmd *cobra.Command, args []string) error {
	payload := config.GenerateTickPayload()
	if len(args) > 0 {
		payload = args[0]
	}

	c, _, err := session.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer c.Close()

	if _, err := c.SendTick([]byte(payload)); err != nil {
		return err
	}

	fmt.Println(payload)
	return nil
}
