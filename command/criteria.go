// Package command builds window-manager command text, optionally
// targeted at a subset of windows through a bracketed criteria prefix.
// The command grammar itself is the window manager's; this package only
// guarantees well-formed criteria and deterministic rendering.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// focusedSentinel is the literal the window manager accepts in place of
// a concrete value, meaning "same as the currently focused window".
const focusedSentinel = "__focused__"

// ErrUnknownWindowType reports a window_type value outside the closed
// set the window manager defines.
var ErrUnknownWindowType = errors.New("unknown window type")

// Criteria is one predicate of a criteria set. Values are constructed
// only through the functions below, so a Criteria always renders to a
// well-formed key=value token.
type Criteria struct {
	key   string
	value string
	bare  bool // floating / tiling carry no value
}

func (c Criteria) String() string {
	if c.bare {
		return c.key
	}
	return c.key + "=" + c.value
}

// renderCriteria joins a criteria set in its given order and wraps it in
// brackets. Emission order is the construction order, so equal inputs
// always render identical text.
func renderCriteria(criteria []Criteria) string {
	tokens := make([]string, len(criteria))
	for i, c := range criteria {
		tokens[i] = c.String()
	}
	return "[" + strings.Join(tokens, " ") + "]"
}

// Floating matches floating windows.
func Floating() Criteria {
	return Criteria{key: "floating", bare: true}
}

// Tiling matches tiling windows.
func Tiling() Criteria {
	return Criteria{key: "tiling", bare: true}
}

// Title compares the window title against a pattern, which may be a
// regular expression.
func Title(pattern string) Criteria {
	return Criteria{key: "title", value: pattern}
}

// TitleFocused matches windows whose title equals the focused window's.
func TitleFocused() Criteria {
	return Criteria{key: "title", value: focusedSentinel}
}

// Class compares the X11 window class against a pattern.
func Class(pattern string) Criteria {
	return Criteria{key: "class", value: pattern}
}

// ClassFocused matches windows whose class equals the focused window's.
func ClassFocused() Criteria {
	return Criteria{key: "class", value: focusedSentinel}
}

// AppID compares the Wayland app id against a pattern.
func AppID(pattern string) Criteria {
	return Criteria{key: "app_id", value: pattern}
}

// AppIDFocused matches windows whose app id equals the focused window's.
func AppIDFocused() Criteria {
	return Criteria{key: "app_id", value: focusedSentinel}
}

// Instance compares the X11 window instance against a pattern.
func Instance(pattern string) Criteria {
	return Criteria{key: "instance", value: pattern}
}

// InstanceFocused matches windows whose instance equals the focused window's.
func InstanceFocused() Criteria {
	return Criteria{key: "instance", value: focusedSentinel}
}

// Shell compares the window shell, such as "xdg_shell" or "xwayland",
// against a pattern.
func Shell(pattern string) Criteria {
	return Criteria{key: "shell", value: pattern}
}

// ShellFocused matches windows whose shell equals the focused window's.
func ShellFocused() Criteria {
	return Criteria{key: "shell", value: focusedSentinel}
}

// WindowRole compares the window role (WM_WINDOW_ROLE) against a pattern.
func WindowRole(pattern string) Criteria {
	return Criteria{key: "window_role", value: pattern}
}

// WindowRoleFocused matches windows whose role equals the focused window's.
func WindowRoleFocused() Criteria {
	return Criteria{key: "window_role", value: focusedSentinel}
}

// Workspace compares the workspace name against a pattern.
func Workspace(name string) Criteria {
	return Criteria{key: "workspace", value: name}
}

// WorkspaceFocused matches all views on the currently focused workspace.
func WorkspaceFocused() Criteria {
	return Criteria{key: "workspace", value: focusedSentinel}
}

// ConID matches the internal container ID, which can be found via IPC.
func ConID(id uint64) Criteria {
	return Criteria{key: "con_id", value: strconv.FormatUint(id, 10)}
}

// ConIDFocused matches the currently focused container.
func ConIDFocused() Criteria {
	return Criteria{key: "con_id", value: focusedSentinel}
}

// ConMark compares against the window marks. May be a regular expression.
func ConMark(mark string) Criteria {
	return Criteria{key: "con_mark", value: mark}
}

// ID matches the numeric X11 window ID.
func ID(id uint64) Criteria {
	return Criteria{key: "id", value: strconv.FormatUint(id, 10)}
}

// ErrUnknownUrgentState reports an urgent value outside the closed set
// the window manager defines.
var ErrUnknownUrgentState = errors.New("unknown urgent state")

// urgentStates is the closed value set of the urgent criterion.
var urgentStates = map[string]struct{}{
	"first":  {},
	"last":   {},
	"latest": {},
	"newest": {},
	"oldest": {},
	"recent": {},
}

// Urgent compares the urgent state of the window. The state must be one
// of "first", "last", "latest", "newest", "oldest" or "recent"; anything
// else is rejected here rather than at render time.
func Urgent(state string) (Criteria, error) {
	if _, ok := urgentStates[state]; !ok {
		return Criteria{}, fmt.Errorf("%w: %q", ErrUnknownUrgentState, state)
	}
	return Criteria{key: "urgent", value: state}, nil
}

// windowTypes is the closed value set of the window_type criterion
// (_NET_WM_WINDOW_TYPE).
var windowTypes = map[string]struct{}{
	"normal":        {},
	"dialog":        {},
	"utility":       {},
	"toolbar":       {},
	"splash":        {},
	"menu":          {},
	"dropdown_menu": {},
	"popup_menu":    {},
	"tooltip":       {},
	"notification":  {},
}

// WindowType compares against the window type (_NET_WM_WINDOW_TYPE).
// Values outside the window manager's closed set are rejected here
// rather than at render time.
func WindowType(t string) (Criteria, error) {
	if _, ok := windowTypes[t]; !ok {
		return Criteria{}, fmt.Errorf("%w: %q", ErrUnknownWindowType, t)
	}
	return Criteria{key: "window_type", value: t}, nil
}
