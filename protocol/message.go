package protocol

import "fmt"

// MessageType identifies the kind of a request frame. The codes are part
// of the i3-ipc wire protocol and shared by sway.
type MessageType uint32

const (
	MsgRunCommand      MessageType = 0
	MsgGetWorkspaces   MessageType = 1
	MsgSubscribe       MessageType = 2
	MsgGetOutputs      MessageType = 3
	MsgGetTree         MessageType = 4
	MsgGetMarks        MessageType = 5
	MsgGetBarConfig    MessageType = 6
	MsgGetVersion      MessageType = 7
	MsgGetBindingModes MessageType = 8
	MsgGetConfig       MessageType = 9
	MsgSendTick        MessageType = 10
	MsgSync            MessageType = 11
)

// eventFlag is set on the type field of every unsolicited event frame.
// Frames without it are direct replies to a pending request.
const eventFlag uint32 = 0x80000000

// IsEvent reports whether this type code marks an event frame rather
// than a reply.
func (t MessageType) IsEvent() bool {
	return uint32(t)&eventFlag != 0
}

func (t MessageType) String() string {
	switch t {
	case MsgRunCommand:
		return "run_command"
	case MsgGetWorkspaces:
		return "get_workspaces"
	case MsgSubscribe:
		return "subscribe"
	case MsgGetOutputs:
		return "get_outputs"
	case MsgGetTree:
		return "get_tree"
	case MsgGetMarks:
		return "get_marks"
	case MsgGetBarConfig:
		return "get_bar_config"
	case MsgGetVersion:
		return "get_version"
	case MsgGetBindingModes:
		return "get_binding_modes"
	case MsgGetConfig:
		return "get_config"
	case MsgSendTick:
		return "send_tick"
	case MsgSync:
		return "sync"
	}
	if t.IsEvent() {
		return EventKind(t).String()
	}
	return fmt.Sprintf("unknown(0x%x)", uint32(t))
}

// Frame is one decoded unit of the wire protocol. The payload is UTF-8
// JSON text but is treated as opaque bytes here; callers decide whether
// and how to parse it.
type Frame struct {
	Type    MessageType
	Payload []byte
}

// IsEvent reports whether the frame carries an event rather than a reply.
func (f Frame) IsEvent() bool {
	return f.Type.IsEvent()
}

// EventKind returns the event kind of an event frame. Only meaningful
// when IsEvent reports true.
func (f Frame) EventKind() EventKind {
	return EventKind(f.Type)
}

// SubscribeAck is the reply payload of a subscribe request.
type SubscribeAck struct {
	Success bool `json:"success"`
}

// CommandResult is one element of a run_command reply payload.
type CommandResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
