package client

import (
	"net"
	"testing"

	"github.com/Mmx233/swayctl/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribe_PayloadAndAck(t *testing.T) {
	c, wm := newTestWM(t)
	wm.serve(func(conn net.Conn) {
		req := wm.readFrame(conn)
		assert.Equal(t, protocol.MsgSubscribe, req.Type)
		assert.Equal(t, `["window","tick"]`, string(req.Payload))
		wm.writeFrame(conn, protocol.MsgSubscribe, `{"success":true}`)
	})

	sub, err := c.Subscribe(protocol.EventWindow, protocol.EventTick)
	require.NoError(t, err)
	assert.True(t, sub.Requested(protocol.EventWindow))
	assert.True(t, sub.Requested(protocol.EventTick))
	assert.False(t, sub.Requested(protocol.EventWorkspace))
	assert.Zero(t, sub.Pending())
}

func TestSubscribe_FiltersUnrequestedKinds(t *testing.T) {
	c, wm := newTestWM(t)
	wm.serve(func(conn net.Conn) {
		wm.readFrame(conn)
		wm.writeFrame(conn, protocol.MsgSubscribe, `{"success":true}`)
		wm.writeFrame(conn, protocol.MessageType(protocol.EventTick), `{"first":true}`)
		wm.writeFrame(conn, protocol.MessageType(protocol.EventWindow), `{"change":"new"}`)
		// Never requested: dropped at enqueue time.
		wm.writeFrame(conn, protocol.MessageType(protocol.EventWorkspace), `{"change":"focus"}`)
		// Force one more round trip so the test can observe the queue
		// after all three events went through the dispatcher.
		req := wm.readFrame(conn)
		assert.Equal(t, protocol.MsgSync, req.Type)
		wm.writeFrame(conn, protocol.MsgSync, `{"success":true}`)
	})

	sub, err := c.Subscribe(protocol.EventWindow, protocol.EventTick)
	require.NoError(t, err)

	require.NoError(t, c.Poll())
	require.NoError(t, c.Poll())
	require.NoError(t, c.Poll())
	_, err = c.Sync()
	require.NoError(t, err)

	// Exactly two events retrievable, in arrival order.
	first, ok := sub.TryReceive()
	require.True(t, ok)
	assert.Equal(t, protocol.EventTick, first.Kind)
	assert.Equal(t, `{"first":true}`, string(first.Payload))

	second, ok := sub.TryReceive()
	require.True(t, ok)
	assert.Equal(t, protocol.EventWindow, second.Kind)
	assert.Equal(t, `{"change":"new"}`, string(second.Payload))

	_, ok = sub.TryReceive()
	assert.False(t, ok)
}

func TestSubscribe_Twice(t *testing.T) {
	c, wm := newTestWM(t)
	wm.serve(func(conn net.Conn) {
		wm.readFrame(conn)
		wm.writeFrame(conn, protocol.MsgSubscribe, `{"success":true}`)
	})

	_, err := c.Subscribe(protocol.EventTick)
	require.NoError(t, err)

	_, err = c.Subscribe(protocol.EventWindow)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlreadySubscribed)
}

func TestSubscribe_Rejected(t *testing.T) {
	c, wm := newTestWM(t)
	wm.serve(func(conn net.Conn) {
		wm.readFrame(conn)
		wm.writeFrame(conn, protocol.MsgSubscribe, `{"success":false}`)
	})

	_, err := c.Subscribe(protocol.EventTick)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSubscribeFailed)

	// A rejected subscribe leaves the connection free for another try.
	assert.Nil(t, c.sub)
}

func TestSubscribe_UnknownKind(t *testing.T) {
	c, wm := newTestWM(t)
	wm.serve(func(net.Conn) {}) // never reached on the wire

	_, err := c.Subscribe(protocol.EventKind(0x80000042))
	require.Error(t, err)
	assert.ErrorIs(t, err, protocol.ErrUnknownEventKind)
}

func TestSubscription_FIFO(t *testing.T) {
	sub := newSubscription([]protocol.EventKind{protocol.EventTick})
	for i := byte('a'); i <= 'e'; i++ {
		require.True(t, sub.deliver(protocol.EventTick, []byte{i}))
	}
	assert.Equal(t, 5, sub.Pending())

	for i := byte('a'); i <= 'e'; i++ {
		ev, ok := sub.TryReceive()
		require.True(t, ok)
		assert.Equal(t, []byte{i}, ev.Payload)
	}
	_, ok := sub.TryReceive()
	assert.False(t, ok)
}
