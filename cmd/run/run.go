// Package run implements `swayctl run`: execute one window manager
// command, optionally targeted at windows matching criteria flags.
package run

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Mmx233/swayctl/cmd/session"
	"github.com/Mmx233/swayctl/command"
	"github.com/Mmx233/swayctl/protocol"
	"github.com/spf13/cobra"
)

var (
	conID    uint64
	focused  bool
	title    string
	class    string
	appID    string
	mark     string
	floating bool
	tiling   bool

	Cmd = &cobra.Command{
		Use:   "run <command...>",
		Short: "Run a window manager command, like swaymsg",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCommand,
	}
)

func init() {
	Cmd.Flags().Uint64Var(&conID, "con-id", 0, "target the container with this ID")
	Cmd.Flags().BoolVar(&focused, "focused", false, "target the focused container")
	Cmd.Flags().StringVar(&title, "title", "", "target windows whose title matches this pattern")
	Cmd.Flags().StringVar(&class, "class", "", "target windows whose X11 class matches this pattern")
	Cmd.Flags().StringVar(&appID, "app-id", "", "target windows whose app id matches this pattern")
	Cmd.Flags().StringVar(&mark, "mark", "", "target windows carrying this mark")
	Cmd.Flags().BoolVar(&floating, "floating", false, "target floating windows")
	Cmd.Flags().BoolVar(&tiling, "tiling", false, "target tiling windows")
}

func criteriaFromFlags() []command.Criteria {
	var criteria []command.Criteria
	if focused {
		criteria = append(criteria, command.ConIDFocused())
	}
	if conID != 0 {
		criteria = append(criteria, command.ConID(conID))
	}
	if title != "" {
		criteria = append(criteria, command.Title(title))
	}
	if class != "" {
		criteria = append(criteria, command.Class(class))
	}
	if appID != "" {
		criteria = append(criteria, command.AppID(appID))
	}
	if mark != "" {
		criteria = append(criteria, command.ConMark(mark))
	}
	if floating {
		criteria = append(criteria, command.Floating())
	}
	if tiling {
		criteria = append(criteria, command.Tiling())
	}
	return criteria
}

func runCommand(cmd *cobra.Command, args []string) error {
	c, _, err := session.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer c.Close()

	built := command.Raw(strings.Join(args, " ")).WithCriteria(criteriaFromFlags()...)
	reply, err := c.Run(built)
	if err != nil {
		return err
	}

	var results []protocol.CommandResult
	if err := protocol.DecodePayload(reply, &results); err != nil {
		return err
	}
	for _, r := range results {
		if !r.Success {
			fmt.Fprintln(os.Stderr, r.Error)
			return errors.New("command failed")
		}
	}

	fmt.Println(string(reply))
	return nil
}
