package command

import "strings"

// Command is one immutable unit of command text, optionally targeted by
// a criteria set. The zero value renders to the empty string.
type Command struct {
	text     string
	criteria []Criteria
}

// Raw builds a command from protocol-ready text. No escaping is
// performed; the caller supplies valid command syntax.
func Raw(text string) Command {
	return Command{text: text}
}

// Exec builds an "exec <program>" command.
func Exec(program string) Command {
	return Command{text: "exec " + program}
}

// WithCriteria returns a copy of the command with the given criteria
// appended to its criteria set. Emission preserves the order criteria
// were added in, keeping rendered text reproducible.
func (c Command) WithCriteria(criteria ...Criteria) Command {
	combined := make([]Criteria, 0, len(c.criteria)+len(criteria))
	combined = append(combined, c.criteria...)
	combined = append(combined, criteria...)
	return Command{text: c.text, criteria: combined}
}

// String renders the command: "[<criteria>] <text>" when criteria are
// present, the bare text otherwise.
func (c Command) String() string {
	if len(c.criteria) == 0 {
		return c.text
	}
	var b strings.Builder
	b.WriteString(renderCriteria(c.criteria))
	b.WriteByte(' ')
	b.WriteString(c.text)
	return b.String()
}

// Build composes a command string directly from text and an optional
// criteria set, without an intermediate Command value.
func Build(text string, criteria ...Criteria) string {
	if len(criteria) == 0 {
		return text
	}
	return renderCriteria(criteria) + " " + text
}
