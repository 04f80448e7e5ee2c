package config

import "github.com/google/uuid"

// DefaultConfigFile is where the CLI looks for its configuration when
// no --config flag or SWAYCTL_CONFIG variable is set.
const DefaultConfigFile = "swayctl.yaml"

// DefaultWatchKinds are the event kinds `swayctl watch` subscribes to
// when neither flags nor config name any.
var DefaultWatchKinds = []string{"window", "workspace"}

// GenerateTickPayload generates a unique payload for a tick broadcast,
// so a watcher can tell its own ticks apart from other clients'.
func GenerateTickPayload() string {
	return uuid.New().String()
}
