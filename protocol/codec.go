package protocol

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// json is a drop-in replacement for encoding/json with better performance
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Wire format: [6 bytes magic "i3-ipc"][4 bytes payload length LE][4 bytes type LE][payload]

// Magic is the fixed marker opening every frame.
const Magic = "i3-ipc"

const (
	magicLen  = len(Magic)
	headerLen = magicLen + 4 + 4

	// MaxPayload bounds the declared payload length. Layout trees on
	// busy sessions run to a few megabytes; anything near this limit
	// means the header was corrupt, not that the tree is that big.
	MaxPayload = 64 * 1024 * 1024
)

var (
	// ErrBadMagic reports a frame header that does not open with the
	// magic marker. The stream is desynchronized; the caller must close
	// and reconnect.
	ErrBadMagic = errors.New("malformed frame header")

	// ErrPayloadTooLarge reports a declared payload length above MaxPayload.
	ErrPayloadTooLarge = errors.New("payload too large")

	// ErrUnknownEventKind reports an event name or code this package has
	// no mapping for. Decoding never returns it; only name lookup and
	// kind marshaling do.
	ErrUnknownEventKind = errors.New("unknown event kind")
)

// WriteFrame writes one frame to the writer as a single Write call,
// using buffer pooling to reduce allocations.
func WriteFrame(w io.Writer, msgType MessageType, payload []byte) error {
	buf := GetBufferWithSize(headerLen + len(payload))
	defer PutBuffer(buf)

	var header [headerLen]byte
	copy(header[:], Magic)
	binary.LittleEndian.PutUint32(header[magicLen:], uint32(len(payload)))
	binary.LittleEndian.PutUint32(header[magicLen+4:], uint32(msgType))

	buf.Write(header[:])
	buf.Write(payload)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// EncodeFrame returns the wire bytes of one frame. Used where the caller
// owns buffering; WriteFrame is the hot path.
func EncodeFrame(msgType MessageType, payload []byte) []byte {
	out := make([]byte, headerLen+len(payload))
	copy(out, Magic)
	binary.LittleEndian.PutUint32(out[magicLen:], uint32(len(payload)))
	binary.LittleEndian.PutUint32(out[magicLen+4:], uint32(msgType))
	copy(out[headerLen:], payload)
	return out
}

// ReadFrame reads exactly one frame from the reader. The magic marker is
// verified before the length and type fields are trusted; a stream that
// closes mid-frame surfaces the underlying read error rather than a
// truncated frame.
func ReadFrame(r io.Reader) (Frame, error) {
	var header [headerLen]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return Frame{}, fmt.Errorf("read frame header: %w", err)
	}

	if string(header[:magicLen]) != Magic {
		return Frame{}, fmt.Errorf("%w: magic %q", ErrBadMagic, header[:magicLen])
	}

	length := binary.LittleEndian.Uint32(header[magicLen:])
	msgType := MessageType(binary.LittleEndian.Uint32(header[magicLen+4:]))

	if length > MaxPayload {
		return Frame{}, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, length)
	}

	// Allocation is necessary here as the payload is handed to the caller.
	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return Frame{}, fmt.Errorf("read frame payload: %w", err)
	}

	return Frame{Type: msgType, Payload: payload}, nil
}

// DecodePayload decodes a JSON payload into the given value.
func DecodePayload(payload []byte, v interface{}) error {
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}
	return nil
}

// EncodeSubscribePayload renders the payload of a subscribe request: a
// JSON array of event kind names.
func EncodeSubscribePayload(kinds []EventKind) ([]byte, error) {
	data, err := json.Marshal(kinds)
	if err != nil {
		return nil, fmt.Errorf("marshal subscribe payload: %w", err)
	}
	return data, nil
}
