// Package e2e exercises the client against a scripted window manager
// listening on a real unix socket.
package e2e

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/Mmx233/swayctl/client"
	"github.com/Mmx233/swayctl/command"
	"github.com/Mmx233/swayctl/protocol"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startFakeWM listens on a unix socket in a temp dir, accepts one
// connection and runs the scripted session on it. Returns the socket
// path.
func startFakeWM(t *testing.T, session func(conn net.Conn)) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sway-ipc.1000.1.sock")

	listener, err := net.Listen("unix", path)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		session(conn)
	}()

	t.Cleanup(func() {
		listener.Close()
		<-done
	})
	return path
}

// replyOnce reads one request and answers it. Every request gets exactly
// one reply, the way the window manager behaves.
func replyOnce(t *testing.T, conn net.Conn, handle func(frame protocol.Frame) (protocol.MessageType, string)) {
	frame, err := protocol.ReadFrame(conn)
	if err != nil {
		t.Errorf("wm read: %v", err)
		return
	}
	typ, payload := handle(frame)
	if err := protocol.WriteFrame(conn, typ, []byte(payload)); err != nil {
		t.Errorf("wm write: %v", err)
	}
}

func pushEvent(t *testing.T, conn net.Conn, kind protocol.EventKind, payload string) {
	if err := protocol.WriteFrame(conn, protocol.MessageType(kind), []byte(payload)); err != nil {
		t.Errorf("wm push event: %v", err)
	}
}

func dial(t *testing.T, path string) *client.Client {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, err := client.ConnectPath(ctx, path, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestSession_QueryAndCommand(t *testing.T) {
	path := startFakeWM(t, func(conn net.Conn) {
		replyOnce(t, conn, func(frame protocol.Frame) (protocol.MessageType, string) {
			assert.Equal(t, protocol.MsgGetVersion, frame.Type)
			return protocol.MsgGetVersion, `{"major":1,"minor":10}`
		})
		replyOnce(t, conn, func(frame protocol.Frame) (protocol.MessageType, string) {
			assert.Equal(t, protocol.MsgRunCommand, frame.Type)
			assert.Equal(t, "[floating] move position center", string(frame.Payload))
			return protocol.MsgRunCommand, `[{"success":true}]`
		})
	})

	c := dial(t, path)
	assert.Equal(t, path, c.Path())

	version, err := c.GetVersion()
	require.NoError(t, err)
	assert.JSONEq(t, `{"major":1,"minor":10}`, string(version))

	reply, err := c.Run(command.Raw("move position center").WithCriteria(command.Floating()))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"success":true}]`, string(reply))
}

func TestSession_SubscribeAndStream(t *testing.T) {
	path := startFakeWM(t, func(conn net.Conn) {
		replyOnce(t, conn, func(frame protocol.Frame) (protocol.MessageType, string) {
			assert.Equal(t, protocol.MsgSubscribe, frame.Type)
			assert.Equal(t, `["window"]`, string(frame.Payload))
			return protocol.MsgSubscribe, `{"success":true}`
		})

		// One event interleaved before the next reply, one free-standing.
		pushEvent(t, conn, protocol.EventWindow, `{"change":"new"}`)
		replyOnce(t, conn, func(frame protocol.Frame) (protocol.MessageType, string) {
			assert.Equal(t, protocol.MsgGetWorkspaces, frame.Type)
			return protocol.MsgGetWorkspaces, `[]`
		})
		pushEvent(t, conn, protocol.EventWindow, `{"change":"focus"}`)
	})

	c := dial(t, path)

	sub, err := c.Subscribe(protocol.EventWindow)
	require.NoError(t, err)

	_, err = c.GetWorkspaces()
	require.NoError(t, err)

	// The event interleaved before the reply is already buffered.
	ev, ok := sub.TryReceive()
	require.True(t, ok)
	assert.Equal(t, `{"change":"new"}`, string(ev.Payload))

	// The free-standing event needs one poll.
	require.NoError(t, c.Poll())
	ev, ok = sub.TryReceive()
	require.True(t, ok)
	assert.Equal(t, `{"change":"focus"}`, string(ev.Payload))
}

func TestSession_AbruptDisconnect(t *testing.T) {
	path := startFakeWM(t, func(conn net.Conn) {
		frame, err := protocol.ReadFrame(conn)
		if err != nil {
			t.Errorf("wm read: %v", err)
			return
		}
		assert.Equal(t, protocol.MsgGetTree, frame.Type)
		// Window manager dies without replying.
		conn.Close()
	})

	c := dial(t, path)

	_, err := c.GetTree()
	require.Error(t, err)
}

func TestSession_DialRefused(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := client.ConnectPath(ctx, filepath.Join(t.TempDir(), "missing.sock"), zerolog.Nop())
	require.Error(t, err)
}
