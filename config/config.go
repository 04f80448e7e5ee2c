package config

import (
	"fmt"

	"github.com/Mmx233/swayctl/protocol"
)

const (
	EnvPrefix = "SWAYCTL_"
)

// CLI is the swayctl configuration file. All fields are optional.
type CLI struct {
	// Socket overrides socket discovery with a fixed path.
	Socket string `yaml:"socket"`

	// Subscribe lists the event kind names `swayctl watch` subscribes
	// to when none are given on the command line.
	Subscribe []string `yaml:"subscribe"`
}

// Validate checks that every configured subscribe name is a known event
// kind.
func (c *CLI) Validate() error {
	if _, err := c.SubscribeKinds(); err != nil {
		return err
	}
	return nil
}

// SubscribeKinds resolves the configured subscribe names. When none are
// configured it falls back to DefaultWatchKinds.
func (c *CLI) SubscribeKinds() ([]protocol.EventKind, error) {
	names := c.Subscribe
	if len(names) == 0 {
		names = DefaultWatchKinds
	}

	kinds := make([]protocol.EventKind, len(names))
	for i, name := range names {
		kind, err := protocol.EventKindFromName(name)
		if err != nil {
			return nil, fmt.Errorf("subscribe entry %d: %w", i, err)
		}
		kinds[i] = kind
	}
	return kinds, nil
}
