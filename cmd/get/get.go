// Package get implements `swayctl get`: print one window manager query
// reply as raw JSON.
package get

import (
	"fmt"

	"github.com/Mmx233/swayctl/client"
	"github.com/Mmx233/swayctl/cmd/session"
	"github.com/Mmx233/swayctl/tree"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// queries maps a target name to the query it runs.
var queries = map[string]func(c *client.Client) ([]byte, error){
	"workspaces":    func(c *client.Client) ([]byte, error) { return c.GetWorkspaces() },
	"outputs":       func(c *client.Client) ([]byte, error) { return c.GetOutputs() },
	"tree":          func(c *client.Client) ([]byte, error) { return c.GetTree() },
	"marks":         func(c *client.Client) ([]byte, error) { return c.GetMarks() },
	"version":       func(c *client.Client) ([]byte, error) { return c.GetVersion() },
	"binding-modes": func(c *client.Client) ([]byte, error) { return c.GetBindingModes() },
	"config":        func(c *client.Client) ([]byte, error) { return c.GetConfig() },
}

var Cmd = &cobra.Command{
	Use:   "get <target> [bar-id]",
	Short: "Query window manager state and print the raw JSON reply",
	Long: `Query window manager state and print the raw JSON reply.

Targets: workspaces, outputs, tree, marks, version, binding-modes,
config, bar-config [bar-id], focused (the focused window node),
workspace (the focused workspace).`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	target := args[0]
	if target != "bar-config" && len(args) > 1 {
		return fmt.Errorf("target %s takes no argument", target)
	}

	c, _, err := session.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer c.Close()

	switch target {
	case "bar-config":
		barID := ""
		if len(args) > 1 {
			barID = args[1]
		}
		return printReply(c.GetBarConfig(barID))
	case "focused":
		return printFocusedWindow(c)
	case "workspace":
		return printFocusedWorkspace(c)
	}

	query, ok := queries[target]
	if !ok {
		return fmt.Errorf("unknown target %q", target)
	}
	return printReply(query(c))
}

func printReply(reply []byte, err error) error {
	if err != nil {
		return err
	}
	fmt.Println(string(reply))
	return nil
}

func printFocusedWindow(c *client.Client) error {
	reply, err := c.GetTree()
	if err != nil {
		return err
	}
	node, ok, err := tree.Focused(reply)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no focused window")
	}
	return printNode(node)
}

func printFocusedWorkspace(c *client.Client) error {
	reply, err := c.GetWorkspaces()
	if err != nil {
		return err
	}
	ws, ok, err := tree.FocusedWorkspace(reply)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no focused workspace")
	}
	return printNode(ws)
}

func printNode(node tree.Node) error {
	out, err := json.Marshal(node)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
