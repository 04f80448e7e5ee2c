package protocol

import (
	"fmt"
	"sort"
)

// EventKind identifies an asynchronous event category. The value is the
// full event-flagged type code as it appears on the wire.
type EventKind uint32

const (
	EventWorkspace       EventKind = EventKind(eventFlag | 0x0)
	EventOutput          EventKind = EventKind(eventFlag | 0x1)
	EventMode            EventKind = EventKind(eventFlag | 0x2)
	EventWindow          EventKind = EventKind(eventFlag | 0x3)
	EventBarconfigUpdate EventKind = EventKind(eventFlag | 0x4)
	EventBinding         EventKind = EventKind(eventFlag | 0x5)
	EventShutdown        EventKind = EventKind(eventFlag | 0x6)
	EventTick            EventKind = EventKind(eventFlag | 0x7)
	EventBarStatusUpdate EventKind = EventKind(eventFlag | 0x14)
)

// eventNames maps known kinds to the names used in subscribe payloads.
var eventNames = map[EventKind]string{
	EventWorkspace:       "workspace",
	EventOutput:          "output",
	EventMode:            "mode",
	EventWindow:          "window",
	EventBarconfigUpdate: "barconfig_update",
	EventBinding:         "binding",
	EventShutdown:        "shutdown",
	EventTick:            "tick",
	EventBarStatusUpdate: "bar_status_update",
}

var eventKinds = func() map[string]EventKind {
	m := make(map[string]EventKind, len(eventNames))
	for k, name := range eventNames {
		m[name] = k
	}
	return m
}()

// Known reports whether the kind is one this package recognizes.
// Unknown kinds are still valid values; the window manager may emit
// categories newer than this client.
func (k EventKind) Known() bool {
	_, ok := eventNames[k]
	return ok
}

// Name returns the subscribe-payload name of the kind, or "" when the
// kind is unknown.
func (k EventKind) Name() string {
	return eventNames[k]
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown(0x%x)", uint32(k))
}

// MarshalJSON renders the kind as its subscribe-payload name.
func (k EventKind) MarshalJSON() ([]byte, error) {
	name, ok := eventNames[k]
	if !ok {
		return nil, fmt.Errorf("marshal event kind: %w: 0x%x", ErrUnknownEventKind, uint32(k))
	}
	return []byte(`"` + name + `"`), nil
}

// EventKindFromName resolves a subscribe-payload name such as "window"
// to its kind.
func EventKindFromName(name string) (EventKind, error) {
	k, ok := eventKinds[name]
	if !ok {
		return 0, fmt.Errorf("event kind %q: %w", name, ErrUnknownEventKind)
	}
	return k, nil
}

// EventKindNames lists the names of all known kinds, for CLI help and
// config validation.
func EventKindNames() []string {
	names := make([]string, 0, len(eventKinds))
	for name := range eventKinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
