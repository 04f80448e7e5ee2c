// Package client implements the i3-ipc protocol client: one blocking
// connection to the window manager, request/reply correlation, and
// pull-driven delivery of subscribed events.
package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mmx233/swayctl/command"
	"github.com/Mmx233/swayctl/protocol"
	"github.com/rs/zerolog"
)

var (
	// ErrAlreadySubscribed reports a second Subscribe call on one
	// connection, which the protocol does not support.
	ErrAlreadySubscribed = errors.New("already subscribed on this connection")

	// ErrSubscribeFailed reports a subscribe request the window manager
	// rejected.
	ErrSubscribeFailed = errors.New("subscribe rejected")

	// ErrUnexpectedFrame reports a non-event frame that arrived when no
	// request was pending, or a reply whose type does not match the
	// pending request. The stream is desynchronized; close and reconnect.
	ErrUnexpectedFrame = errors.New("unexpected frame")
)

// Client correlates requests with replies on one connection and routes
// interleaved event frames into its subscription buffer.
//
// One Client owns its connection, pending-request state and event queue
// exclusively. All calls are blocking and must come from one logical
// sequence; a caller wanting a background poll loop next to foreground
// requests has to serialize the two externally.
type Client struct {
	conn   *Conn
	sub    *Subscription
	logger zerolog.Logger
}

// New wraps an established connection.
func New(conn *Conn, logger zerolog.Logger) *Client {
	return &Client{
		conn: conn,
		logger: logger.With().
			Str("com", "ipc-client").
			Logger(),
	}
}

// Connect discovers the window manager socket and dials it.
func Connect(ctx context.Context, logger zerolog.Logger) (*Client, error) {
	path, err := SocketPath()
	if err != nil {
		return nil, err
	}
	return ConnectPath(ctx, path, logger)
}

// ConnectPath dials the window manager socket at the given path.
func ConnectPath(ctx context.Context, path string, logger zerolog.Logger) (*Client, error) {
	conn, err := Dial(ctx, path)
	if err != nil {
		return nil, err
	}
	return New(conn, logger), nil
}

// Close closes the underlying connection. Buffered events stay
// retrievable from the subscription.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Path returns the socket path of the underlying connection.
func (c *Client) Path() string {
	return c.conn.Path()
}

// Request sends one request frame and blocks until its reply arrives,
// returning the raw reply payload. Event frames read while waiting are
// routed into the subscription buffer in arrival order; nothing is
// dropped or reordered.
//
// The protocol has no pipelining and no cancellation: every request
// yields exactly one reply, and that reply must be consumed before the
// next request, or the stream desynchronizes for the life of the
// connection. Request keeps that contract by never returning between
// send and reply except with a connection-fatal error.
func (c *Client) Request(msgType protocol.MessageType, payload []byte) ([]byte, error) {
	if err := c.conn.SendFrame(msgType, payload); err != nil {
		return nil, err
	}

	for {
		frame, err := c.conn.RecvFrame()
		if err != nil {
			return nil, err
		}
		if frame.IsEvent() {
			c.routeEvent(frame)
			continue
		}
		if frame.Type != msgType {
			return nil, fmt.Errorf("%w: awaited %v reply, got %v", ErrUnexpectedFrame, msgType, frame.Type)
		}
		return frame.Payload, nil
	}
}

// Poll performs one blocking read and routes the frame. Use it between
// requests to pump subscribed events into the buffer. A non-event frame
// here means the stream slipped out of its request/reply rhythm and is
// surfaced as a protocol violation.
func (c *Client) Poll() error {
	frame, err := c.conn.RecvFrame()
	if err != nil {
		return err
	}
	if !frame.IsEvent() {
		return fmt.Errorf("%w: %v frame with no request pending", ErrUnexpectedFrame, frame.Type)
	}
	c.routeEvent(frame)
	return nil
}

func (c *Client) routeEvent(frame protocol.Frame) {
	kind := frame.EventKind()
	if c.sub == nil {
		c.logger.Warn().
			Stringer("kind", kind).
			Msg("event frame with no subscription, dropped")
		return
	}
	if c.sub.deliver(kind, frame.Payload) {
		c.logger.Debug().
			Stringer("kind", kind).
			Int("pending", c.sub.Pending()).
			Msg("event buffered")
	} else {
		c.logger.Debug().
			Stringer("kind", kind).
			Msg("event of unrequested kind, dropped")
	}
}

// Subscribe asks the window manager to deliver the given event kinds on
// this connection and returns the buffer they will be pumped into. It
// blocks until the acknowledgement reply arrives; events interleaved
// before the ack are already routed.
//
// The protocol supports one subscription per connection.
func (c *Client) Subscribe(kinds ...protocol.EventKind) (*Subscription, error) {
	if c.sub != nil {
		return nil, ErrAlreadySubscribed
	}

	payload, err := protocol.EncodeSubscribePayload(kinds)
	if err != nil {
		return nil, err
	}

	// Registered before the request so events the window manager emits
	// between subscribe and ack are routed, not dropped.
	c.sub = newSubscription(kinds)

	reply, err := c.Request(protocol.MsgSubscribe, payload)
	if err != nil {
		c.sub = nil
		return nil, err
	}

	var ack protocol.SubscribeAck
	if err := protocol.DecodePayload(reply, &ack); err != nil {
		c.sub = nil
		return nil, err
	}
	if !ack.Success {
		c.sub = nil
		return nil, ErrSubscribeFailed
	}

	c.logger.Info().
		Stringers("kinds", stringers(kinds)).
		Msg("subscribed")
	return c.sub, nil
}

// Run renders the command and executes it.
func (c *Client) Run(cmd command.Command) ([]byte, error) {
	return c.RunText(cmd.String())
}

// RunText executes protocol-ready command text, equivalent to
// `swaymsg <text>`. The payload on the wire is the raw command text;
// the protocol expects no JSON wrapping for run_command.
func (c *Client) RunText(text string) ([]byte, error) {
	return c.Request(protocol.MsgRunCommand, []byte(text))
}

// SendTick broadcasts a tick event with the given payload to all
// clients subscribed to tick events.
func (c *Client) SendTick(payload []byte) ([]byte, error) {
	return c.Request(protocol.MsgSendTick, payload)
}

// Sync asks the window manager to complete a round trip, guaranteeing
// all prior requests have been processed.
func (c *Client) Sync() ([]byte, error) {
	return c.Request(protocol.MsgSync, nil)
}

// GetWorkspaces returns the workspace list as raw JSON.
func (c *Client) GetWorkspaces() ([]byte, error) {
	return c.Request(protocol.MsgGetWorkspaces, nil)
}

// GetOutputs returns the output list as raw JSON.
func (c *Client) GetOutputs() ([]byte, error) {
	return c.Request(protocol.MsgGetOutputs, nil)
}

// GetTree returns the layout tree as raw JSON.
func (c *Client) GetTree() ([]byte, error) {
	return c.Request(protocol.MsgGetTree, nil)
}

// GetMarks returns the list of current marks as raw JSON.
func (c *Client) GetMarks() ([]byte, error) {
	return c.Request(protocol.MsgGetMarks, nil)
}

// GetBarConfig returns the config of the named bar as raw JSON. With an
// empty barID it returns the list of configured bar IDs instead.
func (c *Client) GetBarConfig(barID string) ([]byte, error) {
	var payload []byte
	if barID != "" {
		payload = []byte(barID)
	}
	return c.Request(protocol.MsgGetBarConfig, payload)
}

// GetVersion returns the window manager version as raw JSON.
func (c *Client) GetVersion() ([]byte, error) {
	return c.Request(protocol.MsgGetVersion, nil)
}

// GetBindingModes returns the list of binding modes as raw JSON.
func (c *Client) GetBindingModes() ([]byte, error) {
	return c.Request(protocol.MsgGetBindingModes, nil)
}

// GetConfig returns the last loaded config file as raw JSON.
func (c *Client) GetConfig() ([]byte, error) {
	return c.Request(protocol.MsgGetConfig, nil)
}

func stringers(kinds []protocol.EventKind) []fmt.Stringer {
	out := make([]fmt.Stringer, len(kinds))
	for i, k := range kinds {
		out[i] = k
	}
	return out
}
