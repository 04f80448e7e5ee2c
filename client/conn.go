package client

import (
	"context"
	"fmt"
	"net"

	"github.com/Mmx233/swayctl/protocol"
)

// Conn owns one stream socket to the window manager and moves whole
// frames across it. It never interprets message types; demultiplexing
// is the Client's job. A failed connection is not reusable: the caller
// must dial a new one.
type Conn struct {
	sock net.Conn
	path string
}

// Dial connects to the window manager socket at the given filesystem
// path.
func Dial(ctx context.Context, path string) (*Conn, error) {
	var d net.Dialer
	sock, err := d.DialContext(ctx, "unix", path)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", path, err)
	}
	return &Conn{sock: sock, path: path}, nil
}

// NewConn wraps an already-established stream. Tests use this with an
// in-memory pipe.
func NewConn(sock net.Conn) *Conn {
	return &Conn{sock: sock}
}

// Path returns the socket path this connection was dialed to, or ""
// for wrapped streams.
func (c *Conn) Path() string {
	return c.path
}

// SendFrame writes one frame as a single logical write.
func (c *Conn) SendFrame(msgType protocol.MessageType, payload []byte) error {
	return protocol.WriteFrame(c.sock, msgType, payload)
}

// RecvFrame blocks until one whole frame arrives or the socket fails.
// A stream that closes mid-frame surfaces an I/O error, never a
// truncated frame.
func (c *Conn) RecvFrame() (protocol.Frame, error) {
	return protocol.ReadFrame(c.sock)
}

// Close closes the underlying socket.
func (c *Conn) Close() error {
	return c.sock.Close()
}
