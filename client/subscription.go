package client

import "github.com/Mmx233/swayctl/protocol"

// Event is one decoded event notification awaiting consumption.
type Event struct {
	Kind    protocol.EventKind
	Payload []byte
}

// Subscription tracks the event kinds requested on a connection and
// buffers matching events in arrival order. Events are pumped into the
// buffer by the Client while it reads the socket (Request and Poll);
// TryReceive never touches the socket.
//
// Events of kinds that were not requested are dropped at enqueue time.
// The subscribe request already told the window manager which kinds to
// send, so anything else on the wire is either a kind from a second
// subscribe on the same connection (unsupported here) or a category
// newer than this client; buffering those would grow the queue with
// items no caller asked for.
type Subscription struct {
	requested map[protocol.EventKind]struct{}
	queue     []Event
}

func newSubscription(kinds []protocol.EventKind) *Subscription {
	requested := make(map[protocol.EventKind]struct{}, len(kinds))
	for _, k := range kinds {
		requested[k] = struct{}{}
	}
	return &Subscription{requested: requested}
}

// Requested reports whether the given kind was part of this
// subscription.
func (s *Subscription) Requested(kind protocol.EventKind) bool {
	_, ok := s.requested[kind]
	return ok
}

// deliver appends an event to the buffer if its kind was requested and
// reports whether it was kept.
func (s *Subscription) deliver(kind protocol.EventKind, payload []byte) bool {
	if !s.Requested(kind) {
		return false
	}
	s.queue = append(s.queue, Event{Kind: kind, Payload: payload})
	return true
}

// TryReceive pops the oldest buffered event without blocking. The
// second return value is false when the buffer is empty; call
// Client.Poll to pump more data from the socket.
func (s *Subscription) TryReceive() (Event, bool) {
	if len(s.queue) == 0 {
		return Event{}, false
	}
	ev := s.queue[0]
	s.queue = s.queue[1:]
	return ev, true
}

// Pending returns the number of buffered events.
func (s *Subscription) Pending() int {
	return len(s.queue)
}
