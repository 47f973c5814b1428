// Package transport supplies the byte-stream collaborator spec.md leaves
// external to the codec: something that can hand frame.Decode a complete
// packet's bytes and write an encoded frame.Packet back out. Two
// implementations are provided, a raw TCP one and a WebSocket one: the
// codec itself never sees a net.Conn.
package transport

import (
	"net"

	"github.com/sparrowmqtt/mqtt5/frame"
)

// Conn is the minimal surface the ack-chain and session layers need from
// a live connection: read the next complete control packet, write one
// out, and close. Implementations own their own framing.
type Conn interface {
	ReadPacket() (frame.Packet, error)
	WritePacket(p frame.Packet) error
	Close() error
	RemoteAddr() net.Addr
}
